package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config list
	Hidden      bool   // Hidden keys are not shown in config list
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `config list`.
var ConfigKeys = []ConfigKey{
	// Logging
	{
		Name:        "log_enabled",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Display
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
	},
	// Console
	{
		Name:        "actor_kind",
		Default:     "interactive",
		Description: "Kind of the console actor: interactive, noninteractive",
		Section:     "Console",
	},
	{
		Name:        "permissions",
		Default:     "*",
		Description: "Comma separated permissions granted to the console actor (* grants all)",
		Section:     "Console",
	},
	{
		Name:        "manifest",
		Default:     "",
		Description: "Path to the command manifest (empty uses the built-in one)",
		Section:     "Console",
	},
	// Audit
	{
		Name:        "audit_enabled",
		Default:     "true",
		Description: "Record every dispatched command in the audit database (true/false)",
		Section:     "Audit",
	},
	{
		Name:        "audit_retention_days",
		Default:     "30",
		Description: "Delete audit entries older than this many days at startup (0 keeps everything)",
		Section:     "Audit",
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// ConfigKeyNames returns the visible key names in display order. Used for
// completion of `config get|set|unset`.
func ConfigKeyNames() []string {
	names := make([]string, 0, len(ConfigKeys))
	for _, key := range ConfigKeys {
		if !key.Hidden {
			names = append(names, key.Name)
		}
	}
	return names
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Logging", "Display", "Console", "Audit"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
