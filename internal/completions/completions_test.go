package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShell(t *testing.T) {
	tests := []struct {
		in      string
		want    Shell
		wantErr bool
	}{
		{in: "bash", want: ShellBash},
		{in: " ZSH ", want: ShellZsh},
		{in: "fish", want: ShellFish},
		{in: "powershell", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShell(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{name: "nothing", words: nil, want: ""},
		{name: "single empty word", words: []string{""}, want: ""},
		{name: "partial word", words: []string{"config", "g"}, want: "config g"},
		{name: "empty last word", words: []string{"config", ""}, want: "config "},
		{name: "word with space", words: []string{"echo", "a b"}, want: `echo "a b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Line(tt.words))
		})
	}
}

func TestScript(t *testing.T) {
	tests := []struct {
		shell  Shell
		checks []string
	}{
		{
			shell: ShellBash,
			checks: []string{
				"# my-tool bash completion script",
				"_my_tool_completions()",
				"my-tool __complete --",
				"complete -o default -F _my_tool_completions my-tool",
			},
		},
		{
			shell:  ShellZsh,
			checks: []string{"#compdef my-tool", "compdef _my_tool my-tool", "my-tool __complete --"},
		},
		{
			shell:  ShellFish,
			checks: []string{"complete -c my-tool -f", "(my-tool __complete --"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			script, err := Script(tt.shell, "my-tool")
			require.NoError(t, err)
			for _, check := range tt.checks {
				require.Contains(t, script, check)
			}
			require.False(t, strings.Contains(script, "{{"), "unreplaced placeholder in %s script", tt.shell)
		})
	}

	_, err := Script(Shell("tcsh"), "my-tool")
	require.Error(t, err)
}

func TestSourceInstructions(t *testing.T) {
	require.Equal(t, `eval "$(cmdtree --completion-script=bash)"`, SourceInstructions(ShellBash, "cmdtree"))
	require.Equal(t, "cmdtree --completion-script=fish | source", SourceInstructions(ShellFish, "cmdtree"))
	require.Equal(t, "~/.zshrc", RcFile(ShellZsh))
}

func TestBinaryName(t *testing.T) {
	require.NotEmpty(t, BinaryName())
}
