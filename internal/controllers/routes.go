package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers served under /api
type Controllers struct {
	Flavours  FlavourController
	Pizzas    PizzaController
	Customers *CustomerController
	Orders    OrderController
}

// RegisterRoutes mounts the resource endpoints on the group. Only GET, POST, PATCH and DELETE
// are routed; other methods are answered with 405 when the engine has HandleMethodNotAllowed set.
func RegisterRoutes(api *gin.RouterGroup, c Controllers) {
	orders := api.Group("/orders")
	{
		orders.GET("/", c.Orders.GetAllOrders)
		orders.POST("/", c.Orders.CreateOrder)
		orders.GET("/:id/", c.Orders.GetOrderByID)
		orders.PATCH("/:id/", c.Orders.UpdateOrder)
		orders.DELETE("/:id/", c.Orders.DeleteOrder)
	}

	customers := api.Group("/customers")
	{
		customers.GET("/", c.Customers.ListCustomers)
		customers.POST("/", c.Customers.CreateCustomer)
		customers.GET("/:id/", c.Customers.GetCustomer)
		customers.PATCH("/:id/", c.Customers.UpdateCustomer)
		customers.DELETE("/:id/", c.Customers.DeleteCustomer)
	}

	pizzas := api.Group("/pizzas")
	{
		pizzas.GET("/", c.Pizzas.GetAllPizzas)
		pizzas.POST("/", c.Pizzas.CreatePizza)
		pizzas.GET("/:id/", c.Pizzas.GetPizzaByID)
		pizzas.PATCH("/:id/", c.Pizzas.UpdatePizza)
		pizzas.DELETE("/:id/", c.Pizzas.DeletePizza)
	}

	flavours := api.Group("/flavours")
	{
		flavours.GET("/", c.Flavours.GetAllFlavours)
		flavours.POST("/", c.Flavours.CreateFlavour)
		flavours.GET("/:id/", c.Flavours.GetFlavourByID)
		flavours.PATCH("/:id/", c.Flavours.UpdateFlavour)
		flavours.DELETE("/:id/", c.Flavours.DeleteFlavour)
	}
}

// MethodNotAllowed renders the 405 answer for methods the API does not route
func MethodNotAllowed(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, models.NewAPIError(models.ErrMethodNotAllowed,
		"Method \""+ctx.Request.Method+"\" not allowed."))
}

// NotFound renders the 404 answer for unknown routes
func NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
}
