package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gcharris/writers-factory-app-sub009/internal/database"
	"github.com/gcharris/writers-factory-app-sub009/internal/engine"
)

// usageTTL keeps three months of counters around for trend display.
const usageTTL = 92 * 24 * time.Hour

func usageKey(month, role string) string {
	return fmt.Sprintf("usage:%s:%s", month, role)
}

func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

// RecordUsage accumulates one completed model call into the month-to-date
// counters. The inference layer reports here after each call; the engine
// itself never calls a model.
func RecordUsage(role string, tokens int64, cost float64) error {
	if !engine.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", engine.ErrInvalidConfiguration, role)
	}

	key := usageKey(currentMonth(), role)
	pipe := database.RedisClient.TxPipeline()
	pipe.HIncrBy(database.Ctx, key, "calls", 1)
	pipe.HIncrBy(database.Ctx, key, "tokens", tokens)
	pipe.HIncrByFloat(database.Ctx, key, "spend", cost)
	pipe.Expire(database.Ctx, key, usageTTL)
	_, err := pipe.Exec(database.Ctx)
	return err
}

// RoleUsage is the month-to-date consumption of one role.
type RoleUsage struct {
	Calls  int64   `json:"calls"`
	Tokens int64   `json:"tokens"`
	Spend  float64 `json:"spend"`
}

// UsageReport aggregates month-to-date consumption across all roles.
type UsageReport struct {
	Month      string               `json:"month"`
	TotalSpend float64              `json:"total_spend"`
	Roles      map[string]RoleUsage `json:"roles"`
}

// MonthToDate reads the current month's counters. The role set is closed,
// so the report walks it directly instead of scanning keys.
func MonthToDate() (UsageReport, error) {
	month := currentMonth()
	report := UsageReport{Month: month, Roles: make(map[string]RoleUsage)}

	for _, role := range engine.AllRoles() {
		fields, err := database.RedisClient.HGetAll(database.Ctx, usageKey(month, role)).Result()
		if err != nil {
			return UsageReport{}, err
		}
		if len(fields) == 0 {
			continue
		}
		usage := RoleUsage{}
		usage.Calls, _ = strconv.ParseInt(fields["calls"], 10, 64)
		usage.Tokens, _ = strconv.ParseInt(fields["tokens"], 10, 64)
		usage.Spend, _ = strconv.ParseFloat(fields["spend"], 64)
		report.Roles[role] = usage
		report.TotalSpend += usage.Spend
	}
	return report, nil
}
