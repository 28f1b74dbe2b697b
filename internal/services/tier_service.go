package services

import (
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
	"github.com/gcharris/writers-factory-app-sub009/internal/models"
)

// ApplyTier resolves tier bindings against a fresh catalog snapshot and
// overwrites the whole binding table with the result. Applying the same
// tier twice with an unchanged catalog is a no-op overwrite.
func ApplyTier(tier engine.Tier, budget float64, profile engine.UsageProfile) ([]models.RoleBinding, error) {
	snapshot, err := Snapshot()
	if err != nil {
		return nil, err
	}

	bindings, err := engine.ApplyTier(tier, snapshot, profile, budget)
	if err != nil {
		return nil, err
	}

	if err := ReplaceBindings(bindings); err != nil {
		return nil, err
	}
	return ListBindings()
}
