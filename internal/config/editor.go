package config

import "strings"

// lineKey returns the key of an assignment line, or false for blank lines,
// comments and anything without '='.
func lineKey(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}

// Set replaces the first assignment of key, keeping a trailing comment, or
// appends one. The boolean reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	value = quote(value)

	for i, line := range lines {
		k, old, ok := lineKey(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(old, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(old[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every assignment of key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := lineKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
