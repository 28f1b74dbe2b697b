package foreman

import (
	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/config"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	foremanGroup := router.Group("/foreman")
	{
		foremanGroup.GET("/bindings", GetBindings)
		foremanGroup.PUT("/bindings", UpdateBindings)
		foremanGroup.GET("/resolve/:role", ResolveRole(cfg))
		foremanGroup.POST("/tier", ApplyTier(cfg))
	}
}
