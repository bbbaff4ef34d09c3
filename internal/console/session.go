package console

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/usage"
)

// Suggester proposes known labels for an unknown one.
type Suggester interface {
	Suggest(label string) []string
}

// Session runs console lines for one actor.
type Session struct {
	platform  *Platform
	actor     dispatchers.Actor
	suggester Suggester
	logger    domain.Logger
}

func NewSession(platform *Platform, actor dispatchers.Actor, suggester Suggester, logger domain.Logger) *Session {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Session{
		platform:  platform,
		actor:     actor,
		suggester: suggester,
		logger:    logger,
	}
}

func (s *Session) Actor() dispatchers.Actor { return s.actor }

// Execute runs one line and reports whether a command handled it. Blank
// lines count as handled.
func (s *Session) Execute(line string) bool {
	tokens := Tokenize(line)
	if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return true
	}

	return s.Run(splitLabel(tokens))
}

// Run dispatches an already tokenized command.
func (s *Session) Run(label string, args []string) bool {
	if s.platform.Dispatch(s.actor, label, args) {
		return true
	}

	var suggestions []string
	if s.suggester != nil {
		suggestions = s.suggester.Suggest(label)
	}
	s.logger.Info("console: unknown command %q", label)
	s.actor.SendMessage(usage.UnknownCommand(label, suggestions...).Error())
	return false
}

// Complete returns the candidates for the last token of line.
func (s *Session) Complete(line string) []string {
	tokens := Tokenize(line)

	switch len(tokens) {
	case 0:
		return s.platform.Labels()
	case 1:
		prefix := strings.ToLower(tokens[0])
		slash := strings.HasPrefix(prefix, "/")
		prefix = strings.TrimPrefix(prefix, "/")

		var out []string
		for _, label := range s.platform.Labels() {
			if strings.HasPrefix(label, prefix) {
				if slash {
					label = "/" + label
				}
				out = append(out, label)
			}
		}
		return out
	}

	label, args := splitLabel(tokens)
	candidates, ok := s.platform.Complete(s.actor, label, args)
	if !ok {
		return nil
	}
	return candidates
}

// ApplyCompletion replaces the last token of line with the longest prefix
// shared by candidates, adding a space when exactly one candidate is left.
func ApplyCompletion(line string, candidates []string) string {
	if len(candidates) == 0 {
		return line
	}

	replacement := commonPrefix(candidates)
	if len(candidates) == 1 {
		replacement += " "
	}

	cut := strings.LastIndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	return line[:cut+1] + replacement
}

// commonPrefix returns the longest run of whole runes every word starts
// with.
func commonPrefix(words []string) string {
	first := slices.Min(words)
	last := slices.Max(words)

	i := 0
	for i < len(first) && i < len(last) {
		_, size := utf8.DecodeRuneInString(first[i:])
		if !strings.HasPrefix(last[i:], first[i:i+size]) {
			break
		}
		i += size
	}
	return first[:i]
}
