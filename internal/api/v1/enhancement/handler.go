package enhancement

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetThresholds godoc
// @Summary Get enhancement settings
// @Description Retrieve threshold cut points and aggressiveness
// @Tags enhancement
// @Produce json
// @Success 200 {object} utils.Response{data=SettingsResponse}
// @Failure 500 {object} utils.Response
// @Router /enhancement/thresholds [get]
func GetThresholds(c *gin.Context) {
	settings, err := services.GetEnhancementSettings()
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", SettingsResponse{Settings: settings}))
}

// UpdateThresholds godoc
// @Summary Replace enhancement settings
// @Description Atomically replace thresholds; ordering auto >= action_prompt >= six_pass >= rewrite is enforced
// @Tags enhancement
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Enhancement settings"
// @Success 200 {object} utils.Response{data=SettingsResponse}
// @Failure 400 {object} utils.Response
// @Router /enhancement/thresholds [put]
func UpdateThresholds(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	settings := models.EnhancementSettings{
		Thresholds:     req.Thresholds,
		Aggressiveness: engine.Aggressiveness(req.Aggressiveness),
	}
	if err := services.SaveEnhancementSettings(settings); err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Enhancement settings updated successfully", SettingsResponse{Settings: settings}))
}

// RouteScore godoc
// @Summary Route a scene score
// @Description Map a 0-100 score to its enhancement level under the persisted thresholds
// @Tags enhancement
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Scene score"
// @Success 200 {object} utils.Response{data=RouteResponse}
// @Failure 400 {object} utils.Response
// @Router /enhancement/route [post]
func RouteScore(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	level, aggressiveness, err := services.RouteScore(*req.Score)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", RouteResponse{
		Score:          *req.Score,
		Level:          level,
		Aggressiveness: aggressiveness,
	}))
}
