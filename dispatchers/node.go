package dispatchers

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/usage"
)

// Node is a command in the dispatch tree. The only implementations are
// *ParentCommand, which routes to children, and *ArgumentCommand, which
// resolves typed arguments and runs a handler.
type Node interface {
	Name() string
	Summary() string
	Aliases() []string
	Parent() *ParentCommand
	Matches(candidate string) bool
	Execute(actor Actor, args []string) bool
	Usage() string
	TabList(args []string) []string
	SendUsage(actor Actor)

	sealed()
}

type base struct {
	name            string
	summary         string
	aliases         []string
	permission      string
	interactiveOnly bool
	parent          *ParentCommand
}

func newBase(name string, aliases []string, summary, permission string, interactiveOnly bool, parent *ParentCommand) base {
	b := base{
		name:            name,
		summary:         summary,
		aliases:         []string{strings.ToLower(name)},
		permission:      permission,
		interactiveOnly: interactiveOnly,
		parent:          parent,
	}
	for _, alias := range aliases {
		alias = strings.ToLower(alias)
		if !slices.Contains(b.aliases, alias) {
			b.aliases = append(b.aliases, alias)
		}
	}
	return b
}

func (b *base) Name() string { return b.name }

func (b *base) Summary() string { return b.summary }

// Aliases returns the lower-cased names the node answers to, name first.
func (b *base) Aliases() []string {
	return slices.Clone(b.aliases)
}

func (b *base) Permission() string { return b.permission }

func (b *base) InteractiveOnly() bool { return b.interactiveOnly }

func (b *base) Parent() *ParentCommand { return b.parent }

// Matches reports whether candidate is the name or an alias, ignoring case.
func (b *base) Matches(candidate string) bool {
	return slices.Contains(b.aliases, strings.ToLower(candidate))
}

func (b *base) sealed() {}

// commandPath is the usage prefix shared by both variants.
func (b *base) commandPath() string {
	if b.parent != nil {
		return b.parent.parentUsage() + " " + b.name
	}
	return "/" + b.name
}

func (b *base) precondition(actor Actor) *usage.Error {
	if b.interactiveOnly && actor.Kind() != ActorInteractive {
		return usage.ActorKindRequired()
	}
	if b.permission != "" && !actor.HasPermission(b.permission) {
		return usage.MissingPermission()
	}
	return nil
}

// admit checks the actor against the node's requirements and tells the
// actor why it was turned away.
func (b *base) admit(actor Actor) bool {
	if err := b.precondition(actor); err != nil {
		actor.SendMessage(err.Message)
		return false
	}
	return true
}

func sendUsage(actor Actor, usageLine string) {
	actor.SendMessage("Usage: " + usageLine)
}
