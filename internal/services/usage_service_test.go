package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

func TestRecordUsageAndMonthToDate(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	require.NoError(t, RecordUsage(engine.RoleStrategic, 1800, 0.054))
	require.NoError(t, RecordUsage(engine.RoleStrategic, 2200, 0.066))
	require.NoError(t, RecordUsage(engine.RoleCoordinator, 900, 0.009))

	report, err := MonthToDate()
	require.NoError(t, err)

	strategic := report.Roles[engine.RoleStrategic]
	assert.Equal(t, int64(2), strategic.Calls)
	assert.Equal(t, int64(4000), strategic.Tokens)
	assert.InDelta(t, 0.12, strategic.Spend, 1e-9)

	assert.InDelta(t, 0.129, report.TotalSpend, 1e-9)
	assert.NotContains(t, report.Roles, engine.RoleHealthDefault)
}

func TestRecordUsageUnknownRole(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	err := RecordUsage("health.sorcery", 100, 0.001)
	assert.ErrorIs(t, err, engine.ErrInvalidConfiguration)
}

func TestMonthToDateEmpty(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	report, err := MonthToDate()
	require.NoError(t, err)
	assert.Zero(t, report.TotalSpend)
	assert.Empty(t, report.Roles)
}
