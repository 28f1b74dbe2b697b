package enhancement

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	enhancementGroup := router.Group("/enhancement")
	{
		enhancementGroup.GET("/thresholds", GetThresholds)
		enhancementGroup.PUT("/thresholds", UpdateThresholds)
		enhancementGroup.POST("/route", RouteScore)
	}
}
