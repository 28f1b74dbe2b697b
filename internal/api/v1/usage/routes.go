package usage

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	usageGroup := router.Group("/usage")
	{
		usageGroup.GET("", GetUsage)
		usageGroup.POST("/record", RecordUsage)
	}
}
