// Package console hosts the command tree in a terminal: it is the platform
// commands bind to and the actor that runs them.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/ui"
)

// Actor is the person (or script) at the console.
type Actor struct {
	id     string
	kind   dispatchers.ActorKind
	perms  []string
	styler domain.Styler

	mu  sync.Mutex
	out io.Writer
}

type ActorOptions struct {
	Kind dispatchers.ActorKind

	// Permissions granted to the actor. "*" grants everything and "a.*"
	// grants every permission below "a.".
	Permissions []string

	Out    io.Writer
	Styler domain.Styler
}

func NewActor(opts ActorOptions) *Actor {
	return &Actor{
		id:     uuid.NewString(),
		kind:   opts.Kind,
		perms:  opts.Permissions,
		styler: opts.Styler,
		out:    opts.Out,
	}
}

func (a *Actor) ID() string { return a.id }

func (a *Actor) Kind() dispatchers.ActorKind { return a.kind }

// SendMessage writes text on its own line, highlighting usage messages.
func (a *Actor) SendMessage(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintln(a.out, ui.FormatMessage(a.styler, text))
}

// SetOutput redirects further messages.
func (a *Actor) SetOutput(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.out = w
}

func (a *Actor) HasPermission(permission string) bool {
	for _, granted := range a.perms {
		switch {
		case granted == "*", granted == permission:
			return true
		case strings.HasSuffix(granted, ".*"):
			if strings.HasPrefix(permission, strings.TrimSuffix(granted, "*")) {
				return true
			}
		}
	}
	return false
}

// ParseActorKind reads the actor_kind config value.
func ParseActorKind(s string) (dispatchers.ActorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interactive", "":
		return dispatchers.ActorInteractive, nil
	case "noninteractive", "non-interactive":
		return dispatchers.ActorNonInteractive, nil
	default:
		return 0, fmt.Errorf("console: unknown actor kind %q", s)
	}
}

// ParsePermissions splits the comma separated permissions config value.
func ParsePermissions(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	_ dispatchers.Actor      = (*Actor)(nil)
	_ dispatchers.Identified = (*Actor)(nil)
)
