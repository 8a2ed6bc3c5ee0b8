package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// FlavourController handles HTTP requests related to flavours
type FlavourController interface {
	GetAllFlavours(c *gin.Context)
	GetFlavourByID(c *gin.Context)
	CreateFlavour(c *gin.Context)
	UpdateFlavour(c *gin.Context)
	DeleteFlavour(c *gin.Context)
}

type flavourController struct {
	service services.FlavourService
}

// NewFlavourController creates a new instance of FlavourController
func NewFlavourController(service services.FlavourService) FlavourController {
	return &flavourController{service: service}
}

// GetAllFlavours godoc
// @Summary Get all flavours
// @Tags flavours
// @Produce json
// @Success 200 {array} models.Flavour
// @Router /api/flavours/ [get]
func (c *flavourController) GetAllFlavours(ctx *gin.Context) {
	flavours, err := c.service.GetAllFlavours()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flavours)
}

// GetFlavourByID godoc
// @Summary Get flavour by ID
// @Tags flavours
// @Produce json
// @Param id path int true "Flavour ID"
// @Success 200 {object} models.Flavour
// @Failure 404 {object} models.APIError
// @Router /api/flavours/{id}/ [get]
func (c *flavourController) GetFlavourByID(ctx *gin.Context) {
	flavourID, ok := parseID(ctx, "flavour")
	if !ok {
		return
	}

	flavour, err := c.service.GetFlavourByID(flavourID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flavour)
}

// CreateFlavour godoc
// @Summary Create a flavour
// @Tags flavours
// @Accept json
// @Produce json
// @Param flavour body models.FlavourCreateRequest true "Flavour"
// @Success 201 {object} models.Flavour
// @Failure 400 {object} models.APIError
// @Router /api/flavours/ [post]
func (c *flavourController) CreateFlavour(ctx *gin.Context) {
	var req models.FlavourCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flavour, err := c.service.CreateFlavour(req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, flavour)
}

// UpdateFlavour godoc
// @Summary Update a flavour
// @Description Changing added_price reprices every pizza with this flavour and the init orders containing them.
// @Tags flavours
// @Accept json
// @Produce json
// @Param id path int true "Flavour ID"
// @Param flavour body models.FlavourUpdateRequest true "Fields to change"
// @Success 200 {object} models.Flavour
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/flavours/{id}/ [patch]
func (c *flavourController) UpdateFlavour(ctx *gin.Context) {
	flavourID, ok := parseID(ctx, "flavour")
	if !ok {
		return
	}

	var req models.FlavourUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flavour, err := c.service.UpdateFlavour(flavourID, req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flavour)
}

// DeleteFlavour godoc
// @Summary Delete a flavour
// @Tags flavours
// @Param id path int true "Flavour ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/flavours/{id}/ [delete]
func (c *flavourController) DeleteFlavour(ctx *gin.Context) {
	flavourID, ok := parseID(ctx, "flavour")
	if !ok {
		return
	}

	if err := c.service.DeleteFlavour(flavourID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
