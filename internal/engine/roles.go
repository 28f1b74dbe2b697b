package engine

import "strings"

const (
	RoleStrategic     = "strategic"
	RoleCoordinator   = "coordinator"
	RoleHealthDefault = "health.default"

	healthPrefix = "health."
)

// HealthChecks are the seven named scene health checks. Each has its own
// bindable role; unbound checks resolve through health.default.
var HealthChecks = []string{
	"voice",
	"character",
	"metaphor",
	"pacing",
	"continuity",
	"dialogue",
	"theme",
}

// HealthRole returns the role id for a named health check.
func HealthRole(check string) string {
	return healthPrefix + check
}

// AllRoles lists every bindable role in a fixed order: strategic,
// coordinator, health.default, then the health checks in declaration order.
func AllRoles() []string {
	roles := []string{RoleStrategic, RoleCoordinator, RoleHealthDefault}
	for _, check := range HealthChecks {
		roles = append(roles, HealthRole(check))
	}
	return roles
}

// ValidRole reports whether id belongs to the closed role set.
func ValidRole(id string) bool {
	for _, r := range AllRoles() {
		if r == id {
			return true
		}
	}
	return false
}

// IsHealthRole reports whether id is a health-check role (including
// health.default).
func IsHealthRole(id string) bool {
	return strings.HasPrefix(id, healthPrefix)
}

// degradeOrder is the sequence in which roles surrender their bound model
// when a budget ceiling forces substitution. The order is fixed so that a
// larger budget always degrades a (weak) subset of the roles a smaller
// budget would.
var degradeOrder = []string{
	HealthRole("theme"),
	HealthRole("dialogue"),
	HealthRole("continuity"),
	HealthRole("pacing"),
	HealthRole("metaphor"),
	HealthRole("character"),
	HealthRole("voice"),
	RoleHealthDefault,
	RoleCoordinator,
	RoleStrategic,
}
