package squad

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetSelection godoc
// @Summary Get tournament selection
// @Description List the models currently in the tournament pool
// @Tags squad
// @Produce json
// @Success 200 {object} utils.Response{data=SelectionResponse}
// @Failure 500 {object} utils.Response
// @Router /squad/selection [get]
func GetSelection(c *gin.Context) {
	ids, err := services.GetSelection()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch selection"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", SelectionResponse{ModelIDs: ids}))
}

// ReplaceSelection godoc
// @Summary Replace tournament selection
// @Description Atomically replace the tournament pool; every model must be available
// @Tags squad
// @Accept json
// @Produce json
// @Param request body ReplaceSelectionRequest true "Model ids"
// @Success 200 {object} utils.Response{data=SelectionResponse}
// @Failure 400 {object} utils.Response
// @Router /squad/selection [put]
func ReplaceSelection(c *gin.Context) {
	var req ReplaceSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	if err := services.ReplaceSelection(req.ModelIDs); err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}

	ids, err := services.GetSelection()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch selection"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Selection updated successfully", SelectionResponse{ModelIDs: ids}))
}

// TogglePick godoc
// @Summary Toggle one tournament pick
// @Description Add or remove one model; selecting an unavailable model is a no-op
// @Tags squad
// @Accept json
// @Produce json
// @Param request body ToggleRequest true "Model id"
// @Success 200 {object} utils.Response{data=ToggleResponse}
// @Failure 400 {object} utils.Response
// @Router /squad/toggle [post]
func TogglePick(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	selected, err := services.TogglePick(req.ModelID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ToggleResponse{ModelID: req.ModelID, Selected: selected}))
}

// ResetSelection godoc
// @Summary Reset tournament selection
// @Description Empty the tournament pool
// @Tags squad
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /squad/reset [post]
func ResetSelection(c *gin.Context) {
	if err := services.ResetSelection(); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reset selection"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Selection reset successfully", nil))
}
