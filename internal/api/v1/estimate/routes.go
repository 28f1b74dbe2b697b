package estimate

import (
	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/config"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	router.POST("/estimate", EstimateCosts(cfg))
}
