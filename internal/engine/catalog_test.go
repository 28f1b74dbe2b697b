package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() CatalogSnapshot {
	return CatalogSnapshot{
		{ID: "ollama/llama3.1:8b", Provider: "ollama", QualityTier: TierBudget, Available: true},
		{ID: "ollama/qwen2.5:14b", Provider: "ollama", QualityTier: TierBalanced, Available: true},
		{ID: "anthropic/claude-haiku", Provider: "anthropic", QualityTier: TierBudget, CostPer1MInput: 0.8, CostPer1MOutput: 4, Available: true},
		{ID: "anthropic/claude-sonnet", Provider: "anthropic", QualityTier: TierBalanced, CostPer1MInput: 3, CostPer1MOutput: 15, Available: true},
		{ID: "anthropic/claude-opus", Provider: "anthropic", QualityTier: TierPremium, CostPer1MInput: 15, CostPer1MOutput: 75, Available: true},
		{ID: "openai/gpt-4o", Provider: "openai", QualityTier: TierPremium, CostPer1MInput: 2.5, CostPer1MOutput: 10, Available: false},
	}
}

func TestResolveExplicitBinding(t *testing.T) {
	catalog := testCatalog()
	bindings := BindingSet{RoleStrategic: "anthropic/claude-opus"}

	m, err := Resolve(RoleStrategic, bindings, catalog, 0.75)
	assert.NoError(t, err)
	assert.Equal(t, "anthropic/claude-opus", m.ID)
}

func TestResolveHealthFallsBackToDefault(t *testing.T) {
	catalog := testCatalog()
	bindings := BindingSet{RoleHealthDefault: "anthropic/claude-haiku"}

	m, err := Resolve(HealthRole("voice"), bindings, catalog, 0.75)
	assert.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku", m.ID)
}

func TestResolveUnboundUsesCheapestAvailable(t *testing.T) {
	catalog := testCatalog()

	m, err := Resolve(RoleCoordinator, BindingSet{}, catalog, 0.75)
	assert.NoError(t, err)
	// Free local models are the cheapest; lowest id wins the tie.
	assert.Equal(t, "ollama/llama3.1:8b", m.ID)
}

func TestResolveUnavailableBindingFallsThrough(t *testing.T) {
	catalog := testCatalog()
	bindings := BindingSet{RoleStrategic: "openai/gpt-4o"}

	m, err := Resolve(RoleStrategic, bindings, catalog, 0.75)
	assert.NoError(t, err)
	assert.Equal(t, "ollama/llama3.1:8b", m.ID)
}

func TestResolveNoAvailableModel(t *testing.T) {
	catalog := CatalogSnapshot{
		{ID: "openai/gpt-4o", Provider: "openai", QualityTier: TierPremium, Available: false},
	}
	_, err := Resolve(RoleStrategic, BindingSet{}, catalog, 0.75)
	assert.ErrorIs(t, err, ErrNoAvailableModel)
}

func TestResolveUnknownRole(t *testing.T) {
	_, err := Resolve("health.sorcery", BindingSet{}, testCatalog(), 0.75)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBindingSetValidate(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		bindings BindingSet
		wantErr  string
	}{
		{"valid", BindingSet{RoleStrategic: "anthropic/claude-sonnet", RoleHealthDefault: "ollama/llama3.1:8b"}, ""},
		{"unknown role", BindingSet{"editor": "anthropic/claude-sonnet"}, "unknown role"},
		{"unknown model", BindingSet{RoleStrategic: "mistral/large"}, "unknown model"},
		{"unavailable model", BindingSet{RoleStrategic: "openai/gpt-4o"}, "unavailable model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bindings.Validate(catalog)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBestFreeLocalPrefersQuality(t *testing.T) {
	m, ok := testCatalog().BestFreeLocal()
	assert.True(t, ok)
	assert.Equal(t, "ollama/qwen2.5:14b", m.ID)
}

func TestAllRolesClosedSet(t *testing.T) {
	roles := AllRoles()
	assert.Len(t, roles, 10)
	assert.True(t, ValidRole(RoleStrategic))
	assert.True(t, ValidRole("health.continuity"))
	assert.False(t, ValidRole("health.plot"))
	assert.True(t, IsHealthRole(RoleHealthDefault))
	assert.False(t, IsHealthRole(RoleCoordinator))
}
