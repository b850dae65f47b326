package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"foodtruck-api/internal/models"

	"github.com/gin-gonic/gin"
)

// FoodTruckHandler handles food truck catalog requests
type FoodTruckHandler struct {
	service FoodTruckService
}

// Service interface for dependency injection
type FoodTruckService interface {
	GetFoodTrucks(context.Context) []models.FoodTruck
	GetFoodTruckByLocationID(context.Context, int64) (models.FoodTruck, bool)
	GetFoodTrucksByBlock(context.Context, string) ([]models.FoodTruck, bool)
	AddFoodTruck(context.Context, *models.FoodTruck) bool
}

// NewFoodTruckHandler creates a new food truck handler
func NewFoodTruckHandler(svc FoodTruckService) *FoodTruckHandler {
	registerValidations()
	return &FoodTruckHandler{service: svc}
}

// RegisterRoutes mounts the food truck routes on a versioned group
func (h *FoodTruckHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/foodtruck")
	g.GET("", h.GetFoodTrucks)
	g.GET("/locationId/:locationId", h.GetFoodTruckByLocationID)
	g.GET("/block/:block", h.GetFoodTrucksByBlock)
	g.POST("", h.AddFoodTruck)
}

// GetFoodTrucks handles GET /foodtruck requests
//
//	@Summary	List food trucks
//	@Tags		foodtruck
//	@Produce	json
//	@Success	200	{array}	models.FoodTruck
//	@Router		/foodtruck [get]
func (h *FoodTruckHandler) GetFoodTrucks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetFoodTrucks(c.Request.Context()))
}

// GetFoodTruckByLocationID handles GET /foodtruck/locationId/{locationId} requests
//
//	@Summary	Get a food truck by locationId
//	@Tags		foodtruck
//	@Produce	json
//	@Param		locationId	path		int	true	"Food truck unique identifier"
//	@Success	200			{object}	models.FoodTruck
//	@Failure	400			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/foodtruck/locationId/{locationId} [get]
func (h *FoodTruckHandler) GetFoodTruckByLocationID(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("locationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid locationId format"})
		return
	}

	truck, found := h.service.GetFoodTruckByLocationID(c.Request.Context(), locationID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "food truck not found"})
		return
	}

	c.JSON(http.StatusOK, truck)
}

// GetFoodTrucksByBlock handles GET /foodtruck/block/{block} requests
//
//	@Summary	List the food trucks of a block
//	@Tags		foodtruck
//	@Produce	json
//	@Param		block	path	string	true	"Block"
//	@Success	200		{array}		models.FoodTruck
//	@Failure	404		{object}	map[string]string
//	@Router		/foodtruck/block/{block} [get]
func (h *FoodTruckHandler) GetFoodTrucksByBlock(c *gin.Context) {
	trucks, found := h.service.GetFoodTrucksByBlock(c.Request.Context(), c.Param("block"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no food trucks found for block"})
		return
	}

	c.JSON(http.StatusOK, trucks)
}

// AddFoodTruck handles POST /foodtruck requests
//
//	@Summary	Add a food truck
//	@Tags		foodtruck
//	@Accept		json
//	@Produce	json
//	@Param		foodTruck	body		models.FoodTruck	true	"Food truck"
//	@Success	201			{object}	models.FoodTruck
//	@Failure	400			{object}	map[string]string
//	@Router		/foodtruck [post]
func (h *FoodTruckHandler) AddFoodTruck(c *gin.Context) {
	var truck models.FoodTruck
	if err := c.ShouldBindJSON(&truck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food truck: " + err.Error()})
		return
	}

	if !h.service.AddFoodTruck(c.Request.Context(), &truck) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food truck could not be added"})
		return
	}

	c.Header("Location", fmt.Sprintf("%s/locationId/%d", c.Request.URL.Path, truck.LocationID))
	c.JSON(http.StatusCreated, truck)
}
