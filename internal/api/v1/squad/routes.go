package squad

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	squadGroup := router.Group("/squad")
	{
		squadGroup.GET("/selection", GetSelection)
		squadGroup.PUT("/selection", ReplaceSelection)
		squadGroup.POST("/toggle", TogglePick)
		squadGroup.POST("/reset", ResetSelection)
	}
}
