package dispatchers

import (
	"testing"

	"github.com/footprint-tools/cmdtree/usage"
	"github.com/stretchr/testify/require"
)

func TestNewArgument_DefaultTypeMustMatch(t *testing.T) {
	_, err := NewArgument(ArgSpec{
		Name:    "amount",
		Type:    ArgInteger,
		Default: DefaultValue(ArgBoolean, "true"),
	})

	require.Error(t, err)
	require.True(t, usage.IsKind(err, usage.ErrInvalidDefault))
	require.Contains(t, err.Error(), "amount")
}

func TestNewArgument_WithDefault(t *testing.T) {
	arg, err := NewArgument(ArgSpec{
		Name:    "amount",
		Type:    ArgInteger,
		Default: DefaultValue(ArgInteger, "1"),
	})
	require.NoError(t, err)

	def, ok := arg.Default()
	require.True(t, ok)
	require.True(t, arg.HasDefault())
	require.Equal(t, 1, def.Int())
}

func TestNewArgument_WithoutDefault(t *testing.T) {
	arg, err := NewArgument(ArgSpec{Name: "target", Type: ArgString})
	require.NoError(t, err)

	_, ok := arg.Default()
	require.False(t, ok)
	require.Equal(t, "target", arg.Name())
	require.Equal(t, ArgString, arg.Type())
}

func TestArgument_CompletionsAreCopied(t *testing.T) {
	source := []string{"red", "green"}
	arg, err := NewArgument(ArgSpec{Name: "color", Type: ArgString, Completions: source})
	require.NoError(t, err)

	source[0] = "changed"
	got := arg.Completions()
	require.Equal(t, []string{"red", "green"}, got)

	got[1] = "changed"
	require.Equal(t, []string{"red", "green"}, arg.Completions())
}
