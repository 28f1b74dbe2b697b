package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() UsageProfile {
	profile := testProfile()
	profile.CallsPerMonth[RoleHealthDefault] = 120
	for _, check := range HealthChecks {
		profile.CallsPerMonth[HealthRole(check)] = 120
	}
	return profile
}

func TestApplyTierBudgetBindsLocalEverywhere(t *testing.T) {
	bindings, err := ApplyTier(TierBudget, flatRateCatalog(), fullProfile(), 0)
	require.NoError(t, err)

	for _, role := range AllRoles() {
		assert.Equal(t, "local/free", bindings[role])
	}

	est, err := Estimate(bindings, nil, fullProfile(), flatRateCatalog(), 0)
	require.NoError(t, err)
	assert.Zero(t, est.FixedMonthly)
}

func TestApplyTierBudgetNoLocalModel(t *testing.T) {
	catalog := CatalogSnapshot{
		{ID: "cloud/std", Provider: "anthropic", QualityTier: TierBalanced, CostPer1MInput: 4, CostPer1MOutput: 4, Available: true},
	}
	_, err := ApplyTier(TierBudget, catalog, fullProfile(), 0)
	assert.ErrorIs(t, err, ErrNoAvailableModel)
}

func TestApplyTierBalanced(t *testing.T) {
	bindings, err := ApplyTier(TierBalanced, flatRateCatalog(), fullProfile(), 0)
	require.NoError(t, err)

	// cloud/std: $4 blended over rank 2 = 2.0; cloud/top: $20 over rank 3 =
	// 6.67. The cheaper cost-per-quality model takes the two lead roles.
	assert.Equal(t, "cloud/std", bindings[RoleStrategic])
	assert.Equal(t, "cloud/std", bindings[RoleCoordinator])
	for _, check := range HealthChecks {
		assert.Equal(t, "local/free", bindings[HealthRole(check)])
	}
	assert.Equal(t, "local/free", bindings[RoleHealthDefault])
}

func TestApplyTierPremium(t *testing.T) {
	bindings, err := ApplyTier(TierPremium, flatRateCatalog(), fullProfile(), 0)
	require.NoError(t, err)
	for _, role := range AllRoles() {
		assert.Equal(t, "cloud/top", bindings[role])
	}
}

func TestApplyTierIdempotent(t *testing.T) {
	for _, tier := range []Tier{TierBudget, TierBalanced, TierPremium} {
		first, err := ApplyTier(tier, flatRateCatalog(), fullProfile(), 0)
		require.NoError(t, err)
		second, err := ApplyTier(tier, flatRateCatalog(), fullProfile(), 0)
		require.NoError(t, err)
		assert.Equal(t, first, second, "tier %s", tier)
	}
}

func TestApplyTierPremiumBudgetDegradation(t *testing.T) {
	// Full premium fixed cost: (50+200+120x8) x 2000 x $20/1M = $48.40.
	// A tight ceiling forces health checks down to the free model before
	// the coordinator and strategic roles.
	bindings, err := ApplyTier(TierPremium, flatRateCatalog(), fullProfile(), 11.0)
	require.NoError(t, err)

	assert.Equal(t, "cloud/top", bindings[RoleStrategic])
	est, err := Estimate(bindings, nil, fullProfile(), flatRateCatalog(), 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, est.FixedMonthly, 11.0)
}

func TestApplyTierBudgetMonotonicity(t *testing.T) {
	catalog := flatRateCatalog()
	profile := fullProfile()

	premiumRoles := func(budget float64) map[string]bool {
		bindings, err := ApplyTier(TierPremium, catalog, profile, budget)
		require.NoError(t, err)
		out := map[string]bool{}
		for role, id := range bindings {
			if id == "cloud/top" {
				out[role] = true
			}
		}
		return out
	}

	prev := premiumRoles(1.0)
	for _, budget := range []float64{2, 5, 10, 20, 40, 50} {
		cur := premiumRoles(budget)
		for role := range prev {
			assert.True(t, cur[role], "role %s lost premium binding when budget rose to %v", role, budget)
		}
		prev = cur
	}
}

func TestApplyTierRejectsUnknownTier(t *testing.T) {
	_, err := ApplyTier(Tier("luxury"), flatRateCatalog(), fullProfile(), 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
