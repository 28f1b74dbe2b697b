package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gcharris/writers-factory-app-sub009/config"
	_ "github.com/gcharris/writers-factory-app-sub009/docs"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/catalog"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/enhancement"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/estimate"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/foreman"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/scoring"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/squad"
	"github.com/gcharris/writers-factory-app-sub009/internal/api/v1/usage"
	"github.com/gcharris/writers-factory-app-sub009/internal/middleware"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// The desktop frontend is the only expected caller.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:1420"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Factory-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(middleware.TokenAuth(cfg.APIToken))
	{
		catalog.RegisterRoutes(v1, cfg)
		foreman.RegisterRoutes(v1, cfg)
		scoring.RegisterRoutes(v1)
		enhancement.RegisterRoutes(v1)
		squad.RegisterRoutes(v1)
		estimate.RegisterRoutes(v1, cfg)
		usage.RegisterRoutes(v1)
	}

	return router
}
