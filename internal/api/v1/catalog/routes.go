package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/config"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("", GetCatalog)
		catalogGroup.POST("/refresh", RefreshCatalog(cfg))
	}
}
