package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetAllOrders lists orders, optionally filtered by customer name or status
	GetAllOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// CreateOrder creates a new order
	CreateOrder(c *gin.Context)
	// UpdateOrder partially updates an order
	UpdateOrder(c *gin.Context)
	// DeleteOrder deletes an order by its ID
	DeleteOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description List orders. When customer_name and status are both given, orders matching either one are returned.
// @Tags orders
// @Produce json
// @Param customer_name query string false "Filter by exact customer name"
// @Param status query string false "Filter by status (init, paid, shipped, delivered)"
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/orders/ [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	filter := services.OrderFilter{
		CustomerName: ctx.Query("customer_name"),
		Status:       ctx.Query("status"),
	}

	orders, err := c.service.GetAllOrders(filter)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id}/ [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "order")
	if !ok {
		return
	}

	order, err := c.service.GetOrderByID(orderID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create an order for a customer from a list of pizza ids. The total is computed from the pizza prices.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.OrderCreateRequest true "Customer id, status and pizza ids"
// @Success 201 {object} models.OrderWriteResponse
// @Failure 400 {object} models.APIError
// @Router /api/orders/ [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req models.OrderCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, err := c.service.CreateOrder(req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewOrderWriteResponse(order))
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Shipped and delivered orders can not be changed. Sending pizzas replaces the set and recomputes the total.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body models.OrderUpdateRequest true "Fields to change"
// @Success 200 {object} models.OrderWriteResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id}/ [patch]
func (c *orderController) UpdateOrder(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "order")
	if !ok {
		return
	}

	var req models.OrderUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, err := c.service.UpdateOrder(orderID, req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewOrderWriteResponse(order))
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id}/ [delete]
func (c *orderController) DeleteOrder(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "order")
	if !ok {
		return
	}

	if err := c.service.DeleteOrder(orderID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
