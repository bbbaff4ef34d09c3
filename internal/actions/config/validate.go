package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var allowedValues = map[string][]string{
	"log_enabled":   {"true", "false"},
	"audit_enabled": {"true", "false"},
	"log_level":     {"debug", "info", "warn", "error"},
	"color":         {"auto", "always", "never"},
	"actor_kind":    {"interactive", "noninteractive"},
}

// countKeys hold whole numbers of zero or more.
var countKeys = map[string]bool{
	"audit_retention_days": true,
}

// AllowedValues returns the closed set of values for key, or nil when any
// value is accepted.
func AllowedValues(key string) []string {
	return allowedValues[key]
}

// rejection returns the message explaining why value cannot be stored
// under key, or "" when it can.
func rejection(key, value string) string {
	if countKeys[key] {
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return fmt.Sprintf("'%s' is not a valid value for %s (expected a whole number of 0 or more).", value, key)
		}
		return ""
	}

	allowed, ok := allowedValues[key]
	if !ok || slices.Contains(allowed, value) {
		return ""
	}
	return fmt.Sprintf("'%s' is not a valid value for %s (expected %s).", value, key, strings.Join(allowed, ", "))
}
