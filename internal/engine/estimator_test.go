package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() UsageProfile {
	return UsageProfile{
		CallsPerMonth: map[string]int{
			RoleStrategic:   50,
			RoleCoordinator: 200,
		},
		TokensPerCall:    2000,
		InputShare:       0.75,
		NumStrategies:    6,
		TokensPerVariant: 3000,
	}
}

func flatRateCatalog() CatalogSnapshot {
	// Input and output rates equal, so the blended rate is the flat rate
	// and the arithmetic below stays readable.
	return CatalogSnapshot{
		{ID: "local/free", Provider: "ollama", QualityTier: TierBalanced, Available: true},
		{ID: "cloud/std", Provider: "anthropic", QualityTier: TierBalanced, CostPer1MInput: 4, CostPer1MOutput: 4, Available: true},
		{ID: "cloud/top", Provider: "anthropic", QualityTier: TierPremium, CostPer1MInput: 20, CostPer1MOutput: 20, Available: true},
	}
}

func TestEstimateFixedCost(t *testing.T) {
	bindings := BindingSet{}
	for _, role := range AllRoles() {
		bindings[role] = "cloud/std"
	}

	est, err := Estimate(bindings, nil, testProfile(), flatRateCatalog(), 0)
	require.NoError(t, err)
	// (50 + 200) calls x 2000 tokens x $4/1M = $2.00
	assert.InDelta(t, 2.0, est.FixedMonthly, 1e-9)
	assert.Zero(t, est.VariablePerTournament)
	assert.False(t, est.BudgetExceeded)
	assert.False(t, est.Degraded)
}

func TestEstimateVariableCostAllocation(t *testing.T) {
	picks := []string{"cloud/top", "cloud/std", "local/free", "local/free"}

	est, err := Estimate(BindingSet{}, picks, testProfile(), flatRateCatalog(), 0)
	require.NoError(t, err)

	// 6 strategies over 3 distinct picks: two variants each, no remainder.
	assert.Equal(t, 6, est.TotalVariants)
	require.Len(t, est.Breakdown, 3)
	byModel := map[string]BreakdownEntry{}
	for _, e := range est.Breakdown {
		byModel[e.ModelID] = e
	}
	assert.Equal(t, 2, byModel["local/free"].Variants)
	assert.Zero(t, byModel["local/free"].Cost)
	// 2 variants x 3000 tokens x $4/1M = $0.024
	assert.InDelta(t, 0.024, byModel["cloud/std"].Cost, 1e-9)
	// 2 variants x 3000 tokens x $20/1M = $0.12
	assert.InDelta(t, 0.12, byModel["cloud/top"].Cost, 1e-9)
}

func TestEstimateRemainderGoesToCheapest(t *testing.T) {
	profile := testProfile()
	profile.NumStrategies = 5
	picks := []string{"cloud/top", "local/free"}

	est, err := Estimate(BindingSet{}, picks, profile, flatRateCatalog(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, est.TotalVariants)
	for _, e := range est.Breakdown {
		if e.ModelID == "local/free" {
			assert.Equal(t, 3, e.Variants)
		} else {
			assert.Equal(t, 2, e.Variants)
		}
	}
}

func TestEstimateBudgetDegradation(t *testing.T) {
	bindings := BindingSet{}
	for _, role := range AllRoles() {
		bindings[role] = "cloud/std"
	}
	picks := []string{"cloud/top"}

	// Projected: fixed $2.00 + variable 6x3000x$20/1M = $0.36 -> $2.36,
	// over a $1.00 ceiling. The estimator must degrade, not error.
	est, err := Estimate(bindings, picks, testProfile(), flatRateCatalog(), 1.0)
	require.NoError(t, err)
	assert.True(t, est.BudgetExceeded)
	assert.True(t, est.Degraded)
	assert.LessOrEqual(t, est.Total(), 1.0)
	assert.NotEmpty(t, est.Substitutions)

	// The tournament pick is surrendered before any role binding.
	assert.Equal(t, "pick", est.Substitutions[0].Kind)
	assert.Equal(t, "cloud/top", est.Substitutions[0].From)
	assert.Equal(t, "local/free", est.Substitutions[0].To)

	// The strategic role is the last to degrade and survives here:
	// coordinator's $1.60 share going free leaves $0.40 under the ceiling.
	degradedRoles := map[string]bool{}
	for _, s := range est.Substitutions {
		if s.Kind == "role" {
			degradedRoles[s.Slot] = true
		}
	}
	assert.True(t, degradedRoles[RoleCoordinator])
	assert.False(t, degradedRoles[RoleStrategic])
}

func TestEstimateSkipsZeroVolumeRoles(t *testing.T) {
	// Health roles are bound but carry no call volume here. Substituting
	// them cannot change the projection, so none of them may show up in
	// the substitution report.
	bindings := BindingSet{}
	for _, role := range AllRoles() {
		bindings[role] = "cloud/std"
	}

	est, err := Estimate(bindings, nil, testProfile(), flatRateCatalog(), 1.0)
	require.NoError(t, err)
	assert.True(t, est.BudgetExceeded)
	require.NotEmpty(t, est.Substitutions)
	for _, s := range est.Substitutions {
		require.Equal(t, "role", s.Kind)
		assert.Greater(t, testProfile().CallsPerMonth[s.Slot], 0,
			"substituted role %q has no call volume", s.Slot)
	}
}

func TestEstimateNoFreeModelFlagsExcess(t *testing.T) {
	catalog := CatalogSnapshot{
		{ID: "cloud/std", Provider: "anthropic", QualityTier: TierBalanced, CostPer1MInput: 4, CostPer1MOutput: 4, Available: true},
	}
	bindings := BindingSet{RoleStrategic: "cloud/std", RoleCoordinator: "cloud/std"}

	est, err := Estimate(bindings, nil, testProfile(), catalog, 1.0)
	require.NoError(t, err)
	assert.True(t, est.BudgetExceeded)
	assert.True(t, est.Degraded)
	assert.Empty(t, est.Substitutions)
	assert.InDelta(t, 2.0, est.FixedMonthly, 1e-9)
}

func TestEstimateWithinBudgetUntouched(t *testing.T) {
	bindings := BindingSet{RoleStrategic: "cloud/std"}
	profile := testProfile()
	profile.CallsPerMonth = map[string]int{RoleStrategic: 50}

	est, err := Estimate(bindings, nil, profile, flatRateCatalog(), 1.0)
	require.NoError(t, err)
	// 50 x 2000 x $4/1M = $0.40
	assert.InDelta(t, 0.4, est.FixedMonthly, 1e-9)
	assert.False(t, est.BudgetExceeded)
	assert.False(t, est.Degraded)
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Free"},
		{0.0042, "$0.0042"},
		{0.009999, "$0.0100"},
		{0.01, "$0.010"},
		{1.5, "$1.500"},
		{12.3456, "$12.346"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCost(tt.in))
	}
}
