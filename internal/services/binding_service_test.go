package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

func TestReplaceBindings(t *testing.T) {
	setupTestDB()
	require.NoError(t, SeedCatalog(allCreds()))

	set := engine.BindingSet{
		engine.RoleStrategic:     "anthropic/claude-opus",
		engine.RoleCoordinator:   "anthropic/claude-sonnet",
		engine.RoleHealthDefault: "ollama/llama3.1:8b",
	}
	require.NoError(t, ReplaceBindings(set))

	loaded, err := GetBindings()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)

	rows, err := ListBindings()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, engine.RoleStrategic, rows[0].RoleID)
}

func TestReplaceBindingsRejectsInvalidAndKeepsPrior(t *testing.T) {
	setupTestDB()
	require.NoError(t, SeedCatalog(localCreds()))

	prior := engine.BindingSet{engine.RoleStrategic: "ollama/qwen2.5:14b"}
	require.NoError(t, ReplaceBindings(prior))

	tests := []struct {
		name string
		set  engine.BindingSet
	}{
		{"unknown role", engine.BindingSet{"muse": "ollama/qwen2.5:14b"}},
		{"unknown model", engine.BindingSet{engine.RoleStrategic: "mistral/large"}},
		{"unavailable model", engine.BindingSet{engine.RoleStrategic: "anthropic/claude-opus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReplaceBindings(tt.set)
			assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)

			loaded, err := GetBindings()
			require.NoError(t, err)
			assert.Equal(t, prior, loaded)
		})
	}
}

func TestResolveRoleLiveBindings(t *testing.T) {
	setupTestDB()
	require.NoError(t, SeedCatalog(allCreds()))

	require.NoError(t, ReplaceBindings(engine.BindingSet{
		engine.RoleHealthDefault: "openai/gpt-4o-mini",
	}))

	// Unbound health check resolves through health.default.
	m, err := ResolveRole(engine.HealthRole("pacing"), 0.75)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", m.ID)

	// Binding changes are visible immediately.
	require.NoError(t, ReplaceBindings(engine.BindingSet{
		engine.RoleHealthDefault: "anthropic/claude-haiku",
	}))
	m, err = ResolveRole(engine.HealthRole("pacing"), 0.75)
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku", m.ID)
}
