package engine

import (
	"fmt"
	"sort"
)

// UsageProfile carries the projection constants for cost estimation. All
// figures are configuration, not billing data; see config for the defaults
// and their env overrides.
type UsageProfile struct {
	// CallsPerMonth is the expected monthly call volume per role.
	CallsPerMonth map[string]int `json:"calls_per_month"`
	// TokensPerCall is combined input+output tokens per role call.
	TokensPerCall int `json:"tokens_per_call"`
	// InputShare is the fraction of TokensPerCall billed at the input rate.
	InputShare float64 `json:"input_share"`
	// NumStrategies is the total candidate variants per tournament round.
	NumStrategies int `json:"num_strategies"`
	// TokensPerVariant is the average tokens one variant consumes.
	TokensPerVariant int `json:"tokens_per_variant"`
}

// BreakdownEntry is the per-model share of the variable tournament cost.
type BreakdownEntry struct {
	ModelID  string  `json:"model_id"`
	Variants int     `json:"variants"`
	Cost     float64 `json:"cost"`
}

// Substitution records one budget-driven downgrade applied to the estimate.
type Substitution struct {
	Kind string `json:"kind"` // "pick" or "role"
	Slot string `json:"slot"` // model id for picks, role id for roles
	From string `json:"from"`
	To   string `json:"to"`
}

// CostEstimate is a derived, non-persisted cost projection. BudgetExceeded
// and Degraded are degraded-mode signals returned with the estimate, never
// raised as errors.
type CostEstimate struct {
	FixedMonthly          float64          `json:"fixed_monthly"`
	VariablePerTournament float64          `json:"variable_per_tournament"`
	TotalVariants         int              `json:"total_variants"`
	Breakdown             []BreakdownEntry `json:"breakdown"`
	BudgetExceeded        bool             `json:"budget_exceeded"`
	Degraded              bool             `json:"degraded"`
	Substitutions         []Substitution   `json:"substitutions,omitempty"`
}

// Total is the combined monthly projection.
func (e CostEstimate) Total() float64 {
	return e.FixedMonthly + e.VariablePerTournament
}

// Estimate projects monthly cost for the given bindings and tournament
// selection. Pure arithmetic over catalog metadata; no network calls. When
// a budget ceiling is set and exceeded, free/local models are substituted —
// tournament picks first (most expensive first), then role bindings in the
// fixed degrade order — until the projection fits, and the downgrades are
// reported on the estimate. The ceiling is never silently exceeded: if no
// free model exists to substitute, the estimate is returned with the
// exceeded flag raised.
func Estimate(bindings BindingSet, picks []string, profile UsageProfile, catalog CatalogSnapshot, budget float64) (CostEstimate, error) {
	est, err := project(bindings, picks, profile, catalog)
	if err != nil {
		return CostEstimate{}, err
	}
	if budget <= 0 || est.Total() <= budget {
		return est, nil
	}

	est.BudgetExceeded = true
	free, ok := catalog.BestFreeLocal()
	if !ok {
		// Nothing to substitute with; surface the excess and carry on.
		est.Degraded = true
		return est, nil
	}

	effBindings := bindings.Clone()
	effPicks := append([]string(nil), picks...)
	var subs []Substitution

	// Tournament picks are optional capacity: downgrade those first,
	// most expensive first.
	order := sortedByCostDesc(effPicks, catalog, profile.InputShare)
	for _, id := range order {
		m, found := catalog.ByID(id)
		if !found || m.Free() {
			continue
		}
		effPicks = replacePick(effPicks, id, free.ID)
		subs = append(subs, Substitution{Kind: "pick", Slot: id, From: id, To: free.ID})
		if over, e := underBudget(effBindings, effPicks, profile, catalog, budget); e == nil && !over {
			break
		}
	}

	if over, e := underBudget(effBindings, effPicks, profile, catalog, budget); e == nil && over {
		for _, role := range degradeOrder {
			// A role with no call volume contributes nothing to the
			// projection; substituting it would only pad the report.
			if profile.CallsPerMonth[role] == 0 {
				continue
			}
			m, err := Resolve(role, effBindings, catalog, profile.InputShare)
			if err != nil || m.Free() {
				continue
			}
			effBindings[role] = free.ID
			subs = append(subs, Substitution{Kind: "role", Slot: role, From: m.ID, To: free.ID})
			if over, e := underBudget(effBindings, effPicks, profile, catalog, budget); e == nil && !over {
				break
			}
		}
	}

	est, err = project(effBindings, effPicks, profile, catalog)
	if err != nil {
		return CostEstimate{}, err
	}
	est.BudgetExceeded = true
	est.Degraded = len(subs) > 0 || est.Total() > budget
	est.Substitutions = subs
	return est, nil
}

func underBudget(bindings BindingSet, picks []string, profile UsageProfile, catalog CatalogSnapshot, budget float64) (over bool, err error) {
	est, err := project(bindings, picks, profile, catalog)
	if err != nil {
		return false, err
	}
	return est.Total() > budget, nil
}

func project(bindings BindingSet, picks []string, profile UsageProfile, catalog CatalogSnapshot) (CostEstimate, error) {
	var est CostEstimate

	for _, role := range AllRoles() {
		calls := profile.CallsPerMonth[role]
		if calls == 0 {
			continue
		}
		m, err := Resolve(role, bindings, catalog, profile.InputShare)
		if err != nil {
			return CostEstimate{}, err
		}
		est.FixedMonthly += float64(calls) * float64(profile.TokensPerCall) *
			m.BlendedCostPer1M(profile.InputShare) / 1_000_000
	}

	allocation := allocateVariants(picks, profile, catalog)
	for _, entry := range allocation {
		est.Breakdown = append(est.Breakdown, entry)
		est.VariablePerTournament += entry.Cost
		est.TotalVariants += entry.Variants
	}
	return est, nil
}

// allocateVariants splits NumStrategies evenly across the selected models,
// handing the remainder to the cheapest models first.
func allocateVariants(picks []string, profile UsageProfile, catalog CatalogSnapshot) []BreakdownEntry {
	unique := dedupe(picks)
	if len(unique) == 0 || profile.NumStrategies <= 0 {
		return nil
	}
	sorted := sortedByCostAsc(unique, catalog, profile.InputShare)
	base := profile.NumStrategies / len(sorted)
	rem := profile.NumStrategies % len(sorted)

	entries := make([]BreakdownEntry, 0, len(sorted))
	for i, id := range sorted {
		variants := base
		if i < rem {
			variants++
		}
		var cost float64
		if m, ok := catalog.ByID(id); ok {
			cost = float64(variants) * float64(profile.TokensPerVariant) *
				m.BlendedCostPer1M(profile.InputShare) / 1_000_000
		}
		entries = append(entries, BreakdownEntry{ModelID: id, Variants: variants, Cost: cost})
	}
	return entries
}

// FormatCost renders a cost figure for display: "Free" at exactly zero,
// four decimals below one cent, three decimals otherwise.
func FormatCost(c float64) string {
	switch {
	case c == 0:
		return "Free"
	case c < 0.01:
		return fmt.Sprintf("$%.4f", c)
	default:
		return fmt.Sprintf("$%.3f", c)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func replacePick(picks []string, from, to string) []string {
	out := make([]string, 0, len(picks))
	for _, id := range picks {
		if id == from {
			id = to
		}
		out = append(out, id)
	}
	return dedupe(out)
}

func sortedByCostAsc(ids []string, catalog CatalogSnapshot, inputShare float64) []string {
	out := append([]string(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		ci := blendedOrZero(out[i], catalog, inputShare)
		cj := blendedOrZero(out[j], catalog, inputShare)
		if ci != cj {
			return ci < cj
		}
		return out[i] < out[j]
	})
	return out
}

func sortedByCostDesc(ids []string, catalog CatalogSnapshot, inputShare float64) []string {
	asc := sortedByCostAsc(ids, catalog, inputShare)
	out := make([]string, 0, len(asc))
	for i := len(asc) - 1; i >= 0; i-- {
		out = append(out, asc[i])
	}
	return out
}

func blendedOrZero(id string, catalog CatalogSnapshot, inputShare float64) float64 {
	if m, ok := catalog.ByID(id); ok {
		return m.BlendedCostPer1M(inputShare)
	}
	return 0
}
