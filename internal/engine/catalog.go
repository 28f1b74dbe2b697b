package engine

import (
	"fmt"
	"sort"
)

// Tier is a named cost/quality profile used to bulk-assign models to roles.
type Tier string

const (
	TierBudget   Tier = "budget"
	TierBalanced Tier = "balanced"
	TierPremium  Tier = "premium"
)

// Valid returns true if the tier is a known value.
func (t Tier) Valid() bool {
	switch t {
	case TierBudget, TierBalanced, TierPremium:
		return true
	default:
		return false
	}
}

// QualityRank maps a tier to its ordinal quality rank (1..3).
func (t Tier) QualityRank() int {
	switch t {
	case TierPremium:
		return 3
	case TierBalanced:
		return 2
	default:
		return 1
	}
}

// ModelInfo is the engine's read-only view of one catalog entry.
type ModelInfo struct {
	ID              string  `json:"id"`
	Provider        string  `json:"provider"`
	Name            string  `json:"name"`
	QualityTier     Tier    `json:"quality_tier"`
	CostPer1MInput  float64 `json:"cost_per_1m_input"`
	CostPer1MOutput float64 `json:"cost_per_1m_output"`
	Available       bool    `json:"available"`
}

// Free reports whether the model costs nothing to run (local models).
func (m ModelInfo) Free() bool {
	return m.CostPer1MInput == 0 && m.CostPer1MOutput == 0
}

// BlendedCostPer1M is the per-million-token rate for a call whose tokens
// split inputShare/1-inputShare between input and output.
func (m ModelInfo) BlendedCostPer1M(inputShare float64) float64 {
	return m.CostPer1MInput*inputShare + m.CostPer1MOutput*(1-inputShare)
}

// CatalogSnapshot is an immutable view of the model catalog taken at the
// start of an engine operation. Snapshots are cheap; callers take a fresh
// one per operation so cost figures always reflect current bindings.
type CatalogSnapshot []ModelInfo

// ByID looks a model up by id.
func (c CatalogSnapshot) ByID(id string) (ModelInfo, bool) {
	for _, m := range c {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// AvailableModels returns the available subset, order preserved.
func (c CatalogSnapshot) AvailableModels() CatalogSnapshot {
	var out CatalogSnapshot
	for _, m := range c {
		if m.Available {
			out = append(out, m)
		}
	}
	return out
}

// CheapestAvailable returns the available model with the lowest blended
// cost, ties broken by id. This is the global fallback of role resolution.
func (c CatalogSnapshot) CheapestAvailable(inputShare float64) (ModelInfo, bool) {
	avail := c.AvailableModels()
	if len(avail) == 0 {
		return ModelInfo{}, false
	}
	sort.Slice(avail, func(i, j int) bool {
		ci, cj := avail[i].BlendedCostPer1M(inputShare), avail[j].BlendedCostPer1M(inputShare)
		if ci != cj {
			return ci < cj
		}
		return avail[i].ID < avail[j].ID
	})
	return avail[0], true
}

// BestFreeLocal returns the highest-quality available free model, ties
// broken by id.
func (c CatalogSnapshot) BestFreeLocal() (ModelInfo, bool) {
	var best ModelInfo
	found := false
	for _, m := range c.AvailableModels() {
		if !m.Free() {
			continue
		}
		if !found ||
			m.QualityTier.QualityRank() > best.QualityTier.QualityRank() ||
			(m.QualityTier.QualityRank() == best.QualityTier.QualityRank() && m.ID < best.ID) {
			best = m
			found = true
		}
	}
	return best, found
}

// BindingSet maps a role id to the bound model id.
type BindingSet map[string]string

// Clone returns an independent copy of the binding set.
func (b BindingSet) Clone() BindingSet {
	out := make(BindingSet, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Validate checks that every role id is known and every referenced model
// exists in the catalog and is available.
func (b BindingSet) Validate(catalog CatalogSnapshot) error {
	for role, modelID := range b {
		if !ValidRole(role) {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidConfiguration, role)
		}
		m, ok := catalog.ByID(modelID)
		if !ok {
			return fmt.Errorf("%w: role %q bound to unknown model %q", ErrInvalidConfiguration, role, modelID)
		}
		if !m.Available {
			return fmt.Errorf("%w: role %q bound to unavailable model %q", ErrInvalidConfiguration, role, modelID)
		}
	}
	return nil
}

// Resolve returns the model serving a role. Resolution order: explicit
// binding, then the health.default binding for unbound health roles, then
// the cheapest available model in the catalog. A bound model that has since
// become unavailable or left the catalog falls through to the next step
// rather than failing, so credential removal degrades instead of breaking.
func Resolve(role string, bindings BindingSet, catalog CatalogSnapshot, inputShare float64) (ModelInfo, error) {
	if !ValidRole(role) {
		return ModelInfo{}, fmt.Errorf("%w: unknown role %q", ErrInvalidConfiguration, role)
	}
	if id, ok := bindings[role]; ok {
		if m, found := catalog.ByID(id); found && m.Available {
			return m, nil
		}
	}
	if IsHealthRole(role) && role != RoleHealthDefault {
		if id, ok := bindings[RoleHealthDefault]; ok {
			if m, found := catalog.ByID(id); found && m.Available {
				return m, nil
			}
		}
	}
	if m, ok := catalog.CheapestAvailable(inputShare); ok {
		return m, nil
	}
	return ModelInfo{}, fmt.Errorf("%w: resolving role %q", ErrNoAvailableModel, role)
}
