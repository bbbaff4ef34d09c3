package console

import (
	"strings"
	"unicode"
)

// Tokenize splits a console line on whitespace. Double quotes group words
// and are dropped. A line ending in whitespace gets a trailing empty token,
// which is the token being completed.
func Tokenize(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		inQuote bool
		started bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	if len(tokens) > 0 && !inQuote && strings.TrimRightFunc(line, unicode.IsSpace) != line {
		tokens = append(tokens, "")
	}
	return tokens
}

// splitLabel separates the command label, minus an optional leading '/',
// from its arguments.
func splitLabel(tokens []string) (string, []string) {
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.TrimPrefix(tokens[0], "/"), tokens[1:]
}
