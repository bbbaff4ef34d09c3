package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: nil},
		{name: "blank", line: "   ", want: nil},
		{name: "words", line: "give 5 true", want: []string{"give", "5", "true"}},
		{name: "collapses spaces", line: "  give   5 ", want: []string{"give", "5", ""}},
		{name: "trailing space adds empty token", line: "config ", want: []string{"config", ""}},
		{name: "quotes group words", line: `echo "hello world" x`, want: []string{"echo", "hello world", "x"}},
		{name: "empty quotes", line: `echo ""`, want: []string{"echo", ""}},
		{name: "open quote keeps spaces", line: `echo "a `, want: []string{"echo", "a "}},
		{name: "tabs", line: "give\t5", want: []string{"give", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.line))
		})
	}
}

func TestSplitLabel(t *testing.T) {
	label, args := splitLabel([]string{"/give", "5"})
	require.Equal(t, "give", label)
	require.Equal(t, []string{"5"}, args)

	label, args = splitLabel(nil)
	require.Empty(t, label)
	require.Nil(t, args)
}
