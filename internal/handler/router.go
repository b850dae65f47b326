package handler

import (
	"context"
	"net/http"

	"foodtruck-api/docs"
	"foodtruck-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds the settings the HTTP surface depends on
type RouterConfig struct {
	APIVersion     string
	SwaggerEnabled bool
}

// CatalogService is the full service surface the router needs
type CatalogService interface {
	FoodTruckService
	CountFoodTrucks(context.Context) int
}

// NewRouter wires the HTTP routes to the catalog service
func NewRouter(cfg RouterConfig, svc CatalogService, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"records": svc.CountFoodTrucks(c.Request.Context()),
		})
	})

	basePath := "/v" + cfg.APIVersion
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = basePath
		docs.SwaggerInfo.Version = cfg.APIVersion
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	NewFoodTruckHandler(svc).RegisterRoutes(r.Group(basePath))

	return r
}
