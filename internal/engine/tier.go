package engine

import (
	"fmt"
	"sort"
)

// ApplyTier resolves a concrete model choice for every role under the given
// cost/quality tier. The result is a full overwrite of the binding table,
// never a merge, and the function is idempotent for an unchanged catalog.
//
//	budget   — best available free/local model everywhere; no cloud calls.
//	balanced — cheapest cost-per-quality cloud model for the strategic and
//	           coordinator roles, free/local for health checks.
//	premium  — highest-quality available model everywhere, then degraded
//	           back toward free models if a budget ceiling is set and the
//	           fixed monthly projection exceeds it.
func ApplyTier(tier Tier, catalog CatalogSnapshot, profile UsageProfile, budget float64) (BindingSet, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown tier %q", ErrInvalidConfiguration, tier)
	}

	free, hasFree := catalog.BestFreeLocal()

	switch tier {
	case TierBudget:
		if !hasFree {
			return nil, fmt.Errorf("%w: budget tier requires a free/local model", ErrNoAvailableModel)
		}
		return bindAll(free.ID), nil

	case TierBalanced:
		value, hasValue := bestValueCloud(catalog, profile.InputShare)
		bindings := make(BindingSet)
		for _, role := range AllRoles() {
			switch {
			case (role == RoleStrategic || role == RoleCoordinator) && hasValue:
				bindings[role] = value.ID
			case hasFree:
				bindings[role] = free.ID
			case hasValue:
				bindings[role] = value.ID
			default:
				return nil, fmt.Errorf("%w: applying balanced tier", ErrNoAvailableModel)
			}
		}
		return bindings, nil

	default: // TierPremium
		best, ok := highestQuality(catalog, profile.InputShare)
		if !ok {
			return nil, fmt.Errorf("%w: applying premium tier", ErrNoAvailableModel)
		}
		bindings := bindAll(best.ID)
		if budget <= 0 || !hasFree {
			return bindings, nil
		}
		// Degrade in the fixed role order until the fixed projection fits
		// the ceiling. The order guarantees that raising the budget never
		// shrinks the set of premium-bound roles.
		for _, role := range degradeOrder {
			est, err := project(bindings, nil, profile, catalog)
			if err != nil {
				return nil, err
			}
			if est.FixedMonthly <= budget {
				break
			}
			bindings[role] = free.ID
		}
		return bindings, nil
	}
}

func bindAll(modelID string) BindingSet {
	bindings := make(BindingSet)
	for _, role := range AllRoles() {
		bindings[role] = modelID
	}
	return bindings
}

// bestValueCloud picks the available paid model with the lowest blended
// cost per quality rank, ties broken by id.
func bestValueCloud(catalog CatalogSnapshot, inputShare float64) (ModelInfo, bool) {
	var candidates CatalogSnapshot
	for _, m := range catalog.AvailableModels() {
		if !m.Free() {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return ModelInfo{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		ri := candidates[i].BlendedCostPer1M(inputShare) / float64(candidates[i].QualityTier.QualityRank())
		rj := candidates[j].BlendedCostPer1M(inputShare) / float64(candidates[j].QualityTier.QualityRank())
		if ri != rj {
			return ri < rj
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0], true
}

// highestQuality picks the available model with the top quality rank,
// ties broken by higher blended cost, then id.
func highestQuality(catalog CatalogSnapshot, inputShare float64) (ModelInfo, bool) {
	avail := catalog.AvailableModels()
	if len(avail) == 0 {
		return ModelInfo{}, false
	}
	sort.Slice(avail, func(i, j int) bool {
		qi, qj := avail[i].QualityTier.QualityRank(), avail[j].QualityTier.QualityRank()
		if qi != qj {
			return qi > qj
		}
		ci, cj := avail[i].BlendedCostPer1M(inputShare), avail[j].BlendedCostPer1M(inputShare)
		if ci != cj {
			return ci > cj
		}
		return avail[i].ID < avail[j].ID
	})
	return avail[0], true
}
