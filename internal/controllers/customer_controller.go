package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customerService services.CustomerService
}

func NewCustomerController(customerService services.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// ListCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Router /api/customers/ [get]
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	customers, err := cc.customerService.GetAllCustomers()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Router /api/customers/{id}/ [get]
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	customer, err := cc.customerService.GetCustomerByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary Create a customer
// @Description The phone number must match ^\+?1?\d{9,15}$
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerCreateRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Router /api/customers/ [post]
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req models.CustomerCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := cc.customerService.CreateCustomer(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body models.CustomerUpdateRequest true "Fields to change"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/customers/{id}/ [patch]
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	var req models.CustomerUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	customer, err := cc.customerService.UpdateCustomer(id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Deletes the customer and all of their orders
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204 "Customer deleted successfully"
// @Failure 404 {object} models.APIError
// @Router /api/customers/{id}/ [delete]
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "customer")
	if !ok {
		return
	}
	if err := cc.customerService.DeleteCustomer(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
