package foreman

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

type BindingsResponse struct {
	Bindings []models.RoleBinding `json:"bindings"`
}

type UpdateBindingsRequest struct {
	Bindings map[string]string `json:"bindings" binding:"required"`
}

type ResolveResponse struct {
	Role  string           `json:"role"`
	Model engine.ModelInfo `json:"model"`
}

type ApplyTierRequest struct {
	Tier   string   `json:"tier" binding:"required,oneof=budget balanced premium"`
	Budget *float64 `json:"budget" binding:"omitempty,min=0"`
}
