package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetUsage godoc
// @Summary Month-to-date usage
// @Description Report per-role calls, tokens and spend for the current month
// @Tags usage
// @Produce json
// @Success 200 {object} utils.Response{data=services.UsageReport}
// @Failure 500 {object} utils.Response
// @Router /usage [get]
func GetUsage(c *gin.Context) {
	report, err := services.MonthToDate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read usage counters"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", report))
}

// RecordUsage godoc
// @Summary Record one model call
// @Description Accumulate one completed call into the month-to-date counters
// @Tags usage
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Call usage"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /usage/record [post]
func RecordUsage(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	if err := services.RecordUsage(req.Role, req.Tokens, req.Cost); err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Usage recorded successfully", nil))
}
