package scoring

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	scoringGroup := router.Group("/scoring")
	{
		scoringGroup.GET("/weights", GetWeights)
		scoringGroup.PUT("/weights", UpdateWeights)
		scoringGroup.POST("/score", ScoreScene)
	}
}
