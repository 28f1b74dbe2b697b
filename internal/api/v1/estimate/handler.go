package estimate

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcharris/writers-factory-app-sub009/config"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
	"github.com/gcharris/writers-factory-app-sub009/pkg/logger"
)

// EstimateCosts godoc
// @Summary Project monthly cost
// @Description Project fixed and per-tournament cost for the live bindings and selection
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Optional budget ceiling override"
// @Success 200 {object} utils.Response{data=EstimateResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /estimate [post]
func EstimateCosts(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// An empty body means "use the configured budget".
		var req EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}

		budget := cfg.MonthlyBudget
		if req.MonthlyBudget != nil {
			budget = *req.MonthlyBudget
		}

		est, err := services.EstimateCosts(budget, services.BuildProfile(cfg))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
			return
		}

		// Actual spend is supplementary display data; a counter read
		// failure must not block the projection.
		var spent float64
		if report, err := services.MonthToDate(); err == nil {
			spent = report.TotalSpend
		} else {
			logger.Log.Warn("month-to-date read failed", zap.Error(err))
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", EstimateResponse{
			Estimate:         est,
			MonthToDateSpend: spent,
			Display: DisplayCosts{
				FixedMonthly:          engine.FormatCost(est.FixedMonthly),
				VariablePerTournament: engine.FormatCost(est.VariablePerTournament),
				Total:                 engine.FormatCost(est.Total()),
				MonthToDateSpend:      engine.FormatCost(spent),
			},
		}))
	}
}
