package config

import "github.com/footprint-tools/cmdtree/internal/domain"

// Defaults holds the in-code default of every known key. Defaults are not
// persisted unless the rc file is being created.
var Defaults = func() map[string]func() string {
	out := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		out[key.Name] = func() string { return value }
	}
	return out
}()

// Get returns the value for key from the rc file at path, falling back to
// the default. The boolean is false for unknown keys that are not set.
func Get(path, key string) (string, bool) {
	cfg, err := load(path)
	if err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}
	return "", false
}

// GetAll returns the defaults merged with the rc file. A broken file yields
// the defaults alone.
func GetAll(path string) (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load(path)
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load(path string) (map[string]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
