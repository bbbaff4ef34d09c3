package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

type recordingActor struct {
	messages []string
}

func (a *recordingActor) SendMessage(text string)     { a.messages = append(a.messages, text) }
func (a *recordingActor) HasPermission(_ string) bool { return true }
func (a *recordingActor) Kind() dispatchers.ActorKind { return dispatchers.ActorInteractive }

type fakeConfig struct {
	values   map[string]string
	setErr   error
	unsetErr error
}

func (c *fakeConfig) Get(key string) (string, bool) {
	if v, ok := c.values[key]; ok {
		return v, true
	}
	if key == "log_level" {
		return "warn", true
	}
	return "", false
}

func (c *fakeConfig) GetAll() (map[string]string, error) {
	out := map[string]string{"log_level": "warn", "color": "auto"}
	for k, v := range c.values {
		out[k] = v
	}
	return out, nil
}

func (c *fakeConfig) Set(key, value string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	return nil
}

func (c *fakeConfig) Unset(key string) error {
	if c.unsetErr != nil {
		return c.unsetErr
	}
	delete(c.values, key)
	return nil
}

func newDeps() (Deps, *fakeConfig) {
	cfg := &fakeConfig{values: map[string]string{}}
	return Deps{Config: cfg, Styler: style.NopStyler{}}, cfg
}

func stringValues(raw ...string) []dispatchers.Value {
	out := make([]dispatchers.Value, len(raw))
	for i, r := range raw {
		out[i], _ = dispatchers.NewValue(dispatchers.ArgString, r)
	}
	return out
}

func TestGet(t *testing.T) {
	deps, cfg := newDeps()
	cfg.values["color"] = "never"

	tests := []struct {
		name    string
		key     string
		want    bool
		message string
	}{
		{name: "set value", key: "color", want: true, message: "never"},
		{name: "default value", key: "log_level", want: true, message: "warn"},
		{name: "unknown key", key: "nonexistent", want: false, message: "'nonexistent' is not a configuration key."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := &recordingActor{}
			require.Equal(t, tt.want, Get(deps)(actor, stringValues(tt.key)))
			require.Equal(t, []string{tt.message}, actor.messages)
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		setErr  error
		want    bool
		message string
	}{
		{name: "valid", key: "log_level", value: "debug", want: true, message: "log_level=debug"},
		{name: "free-form key", key: "manifest", value: "/tmp/c.yml", want: true, message: "manifest=/tmp/c.yml"},
		{name: "unknown key", key: "colour", value: "never", want: false, message: "'colour' is not a configuration key."},
		{name: "invalid value", key: "color", value: "sometimes", want: false, message: "'sometimes' is not a valid value for color (expected auto, always, never)."},
		{name: "retention days", key: "audit_retention_days", value: "7", want: true, message: "audit_retention_days=7"},
		{name: "retention disabled", key: "audit_retention_days", value: "0", want: true, message: "audit_retention_days=0"},
		{name: "negative retention", key: "audit_retention_days", value: "-3", want: false, message: "'-3' is not a valid value for audit_retention_days (expected a whole number of 0 or more)."},
		{name: "non-numeric retention", key: "audit_retention_days", value: "week", want: false, message: "'week' is not a valid value for audit_retention_days (expected a whole number of 0 or more)."},
		{name: "write failure", key: "color", value: "never", setErr: errors.New("disk full"), want: false, message: "Could not save color: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, cfg := newDeps()
			cfg.setErr = tt.setErr
			actor := &recordingActor{}

			require.Equal(t, tt.want, Set(deps)(actor, stringValues(tt.key, tt.value)))
			require.Equal(t, []string{tt.message}, actor.messages)

			if tt.want {
				require.Equal(t, tt.value, cfg.values[tt.key])
			}
		})
	}
}

func TestUnset(t *testing.T) {
	deps, cfg := newDeps()
	cfg.values["log_level"] = "debug"
	cfg.values["custom"] = "1"

	actor := &recordingActor{}
	require.True(t, Unset(deps)(actor, stringValues("log_level")))
	require.True(t, Unset(deps)(actor, stringValues("custom")))
	require.Equal(t, []string{`log_level reset to "warn"`, "custom removed"}, actor.messages)

	cfg.unsetErr = errors.New("locked")
	actor = &recordingActor{}
	require.False(t, Unset(deps)(actor, stringValues("color")))
	require.Equal(t, []string{"Could not unset color: locked"}, actor.messages)
}

func TestList(t *testing.T) {
	deps, cfg := newDeps()
	cfg.values["color"] = "always"

	actor := &recordingActor{}
	require.True(t, List(deps)(actor, nil))

	require.Equal(t, "Logging", actor.messages[0])
	require.Contains(t, actor.messages, "  log_level=warn")
	require.Contains(t, actor.messages, "Display")
	require.Contains(t, actor.messages, "  color=always")
	require.Contains(t, actor.messages, "Audit")
}

func TestAllowedValues(t *testing.T) {
	require.Equal(t, []string{"auto", "always", "never"}, AllowedValues("color"))
	require.Nil(t, AllowedValues("permissions"))
}
