package scoring

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/internal/models"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetWeights godoc
// @Summary Get scoring settings
// @Description Retrieve rubric weights and calibration material
// @Tags scoring
// @Produce json
// @Success 200 {object} utils.Response{data=SettingsResponse}
// @Failure 500 {object} utils.Response
// @Router /scoring/weights [get]
func GetWeights(c *gin.Context) {
	settings, err := services.GetScoringSettings()
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", SettingsResponse{Settings: settings}))
}

// UpdateWeights godoc
// @Summary Replace scoring settings
// @Description Atomically replace rubric weights and calibration; weights must sum to exactly 100
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Scoring settings"
// @Success 200 {object} utils.Response{data=SettingsResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /scoring/weights [put]
func UpdateWeights(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	settings := models.ScoringSettings{Weights: req.Weights, Calibration: req.Calibration}
	if err := services.SaveScoringSettings(settings); err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Scoring settings updated successfully", SettingsResponse{Settings: settings}))
}

// ScoreScene godoc
// @Summary Score a scene
// @Description Score scene prose against the persisted rubric configuration
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Scene text"
// @Success 200 {object} utils.Response{data=ScoreResponse}
// @Failure 400 {object} utils.Response
// @Router /scoring/score [post]
func ScoreScene(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := services.ScoreScene(req.Scene)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ScoreResponse{Result: result}))
}
