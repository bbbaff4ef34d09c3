package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigKeys_SectionsAreKnown(t *testing.T) {
	sections := make(map[string]bool)
	for _, s := range ConfigSections() {
		sections[s] = true
	}

	for _, key := range ConfigKeys {
		require.True(t, sections[key.Section], "key %s has unknown section %q", key.Name, key.Section)
		require.NotEmpty(t, key.Description, "key %s has no description", key.Name)
	}
}

func TestGetConfigKey(t *testing.T) {
	key, ok := GetConfigKey("log_level")
	require.True(t, ok)
	require.Equal(t, "warn", key.Default)

	_, ok = GetConfigKey("nope")
	require.False(t, ok)
	require.False(t, IsValidConfigKey("nope"))
}

func TestConfigKeyNames_Order(t *testing.T) {
	names := ConfigKeyNames()
	require.Len(t, names, len(ConfigKeys))
	require.Equal(t, "log_enabled", names[0])
	require.Contains(t, names, "permissions")
}

func TestConfigKeysBySection(t *testing.T) {
	bySection := ConfigKeysBySection()
	require.Len(t, bySection["Logging"], 2)
	require.Len(t, bySection["Audit"], 2)
}
