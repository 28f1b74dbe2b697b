package foreman

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/config"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
	"github.com/gcharris/writers-factory-app-sub009/internal/services"
	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// GetBindings godoc
// @Summary Get role bindings
// @Description Retrieve the current role binding table
// @Tags foreman
// @Produce json
// @Success 200 {object} utils.Response{data=BindingsResponse}
// @Failure 500 {object} utils.Response
// @Router /foreman/bindings [get]
func GetBindings(c *gin.Context) {
	rows, err := services.ListBindings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bindings"))
		return
	}
	if rows == nil {
		rows = []models.RoleBinding{}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", BindingsResponse{Bindings: rows}))
}

// UpdateBindings godoc
// @Summary Replace role bindings
// @Description Atomically replace the whole role binding table
// @Tags foreman
// @Accept json
// @Produce json
// @Param request body UpdateBindingsRequest true "Role bindings"
// @Success 200 {object} utils.Response{data=BindingsResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /foreman/bindings [put]
func UpdateBindings(c *gin.Context) {
	var req UpdateBindingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	set := make(engine.BindingSet, len(req.Bindings))
	for role, modelID := range req.Bindings {
		set[role] = modelID
	}

	if err := services.ReplaceBindings(set); err != nil {
		c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
		return
	}

	rows, err := services.ListBindings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bindings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bindings updated successfully", BindingsResponse{Bindings: rows}))
}

// ResolveRole godoc
// @Summary Resolve a role to its serving model
// @Description Resolve a role through explicit binding, health.default and the global fallback
// @Tags foreman
// @Produce json
// @Param role path string true "Role id"
// @Success 200 {object} utils.Response{data=ResolveResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /foreman/resolve/{role} [get]
func ResolveRole(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.Param("role")
		m, err := services.ResolveRole(role, cfg.InputShare)
		if err != nil {
			c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ResolveResponse{Role: role, Model: m}))
	}
}

// ApplyTier godoc
// @Summary Apply an orchestrator tier
// @Description Overwrite all role bindings according to a cost/quality tier
// @Tags foreman
// @Accept json
// @Produce json
// @Param request body ApplyTierRequest true "Tier and optional budget ceiling"
// @Success 200 {object} utils.Response{data=BindingsResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /foreman/tier [post]
func ApplyTier(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyTierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}

		budget := cfg.MonthlyBudget
		if req.Budget != nil {
			budget = *req.Budget
		}

		rows, err := services.ApplyTier(engine.Tier(req.Tier), budget, services.BuildProfile(cfg))
		if err != nil {
			c.JSON(utils.HTTPStatus(err), utils.NewErrorResponse(utils.HTTPStatus(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Tier applied successfully", BindingsResponse{Bindings: rows}))
	}
}
