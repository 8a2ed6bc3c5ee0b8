package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza partially updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with their flavours
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/pizzas/ [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/{id}/ [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(pizzaID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza from a size and a list of flavour ids. The price is computed from the flavours and size.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.PizzaCreateRequest true "Pizza size and flavour ids"
// @Success 201 {object} models.PizzaWriteResponse
// @Failure 400 {object} models.APIError
// @Router /api/pizzas/ [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req models.PizzaCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	createdPizza, err := c.service.CreatePizza(req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.NewPizzaWriteResponse(createdPizza))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Change the size and/or flavours of a pizza. The pizza and the init orders containing it are repriced.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.PizzaUpdateRequest true "Fields to change"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/{id}/ [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	var req models.PizzaUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updatedPizza, err := c.service.UpdatePizza(pizzaID, req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedPizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/{id}/ [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	pizzaID, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(pizzaID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
