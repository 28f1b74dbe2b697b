package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/config"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetCatalog godoc
// @Summary List catalog models
// @Description Retrieve the model catalog with optional provider/tier/availability filtering
// @Tags catalog
// @Produce json
// @Param provider query string false "Filter by provider"
// @Param tier query string false "Filter by quality tier"
// @Param available query bool false "Filter by availability"
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Failure 500 {object} utils.Response
// @Router /catalog [get]
func GetCatalog(c *gin.Context) {
	filter := services.CatalogFilter{
		Provider: c.Query("provider"),
		Tier:     c.Query("tier"),
	}
	if availStr := c.Query("available"); availStr != "" {
		avail, err := strconv.ParseBool(availStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid available flag"))
			return
		}
		filter.Available = &avail
	}

	list, err := services.FindModels(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch catalog"))
		return
	}
	if list == nil {
		list = []models.Model{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{Models: list, Total: len(list)}))
}

// RefreshCatalog godoc
// @Summary Refresh model availability
// @Description Recompute per-model availability from configured credentials
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=RefreshResponse}
// @Failure 500 {object} utils.Response
// @Router /catalog/refresh [post]
func RefreshCatalog(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		changed, err := services.RefreshAvailability(cfg.ProviderCredentials())
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to refresh availability"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Availability refreshed", RefreshResponse{Changed: changed}))
	}
}
