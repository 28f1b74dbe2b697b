package services

import (
	"github.com/gcharris/writers-factory-app-sub009/config"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// BuildProfile assembles the estimator's usage profile from configuration.
// Every figure is env-tunable; see config for the defaults.
func BuildProfile(cfg *config.Config) engine.UsageProfile {
	calls := map[string]int{
		engine.RoleStrategic:     cfg.CallsStrategic,
		engine.RoleCoordinator:   cfg.CallsCoordinator,
		engine.RoleHealthDefault: cfg.CallsHealthCheck,
	}
	for _, check := range engine.HealthChecks {
		calls[engine.HealthRole(check)] = cfg.CallsHealthCheck
	}
	return engine.UsageProfile{
		CallsPerMonth:    calls,
		TokensPerCall:    cfg.TokensPerCall,
		InputShare:       cfg.InputShare,
		NumStrategies:    cfg.NumStrategies,
		TokensPerVariant: cfg.TokensPerVariant,
	}
}

// EstimateCosts projects monthly cost for the live bindings and tournament
// selection. Synchronous and network-free; budget handling (substitutions,
// exceeded flag) happens inside the engine.
func EstimateCosts(budget float64, profile engine.UsageProfile) (engine.CostEstimate, error) {
	snapshot, err := Snapshot()
	if err != nil {
		return engine.CostEstimate{}, err
	}
	bindings, err := GetBindings()
	if err != nil {
		return engine.CostEstimate{}, err
	}
	picks, err := GetSelection()
	if err != nil {
		return engine.CostEstimate{}, err
	}
	return engine.Estimate(bindings, picks, profile, snapshot, budget)
}
