package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns rc file lines into a key/value map. Blank lines and comments
// are skipped, values may be wrapped in double quotes and the last
// occurrence of a key wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(strings.TrimSpace(value))
	}

	return cfg, nil
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

// quote wraps values containing spaces so Parse returns them intact.
func quote(value string) string {
	if strings.Contains(value, " ") {
		return `"` + value + `"`
	}
	return value
}
