package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdtree/usage"
)

// ArgumentCommand is a leaf command with an ordered list of typed arguments.
type ArgumentCommand struct {
	base
	args    []Argument
	handler Handler
}

// Arguments returns the declared arguments in order.
func (c *ArgumentCommand) Arguments() []Argument {
	out := make([]Argument, len(c.args))
	copy(out, c.args)
	return out
}

func (c *ArgumentCommand) Usage() string {
	var sb strings.Builder
	sb.WriteString(c.commandPath())
	for _, arg := range c.args {
		sb.WriteString(" <")
		sb.WriteString(arg.name)
		sb.WriteString(">")
	}
	return sb.String()
}

func (c *ArgumentCommand) SendUsage(actor Actor) {
	sendUsage(actor, c.Usage())
}

func (c *ArgumentCommand) Execute(actor Actor, args []string) bool {
	if !c.admit(actor) {
		return false
	}

	values, err := c.Resolve(args)
	if err != nil {
		if usage.IsKind(err, usage.ErrArgumentDeficit) {
			c.SendUsage(actor)
		} else {
			actor.SendMessage(err.Error())
		}
		return false
	}

	if c.handler == nil {
		return true
	}
	return c.handler(actor, values)
}

// Resolve reads args against the declared arguments.
//
// With at least as many tokens as arguments, every token becomes a value:
// declared slots take their declared type and surplus tokens are strings.
// With fewer tokens, missing slots fall back to their defaults and the first
// missing slot without one fails the whole call with ErrArgumentDeficit.
// A token that does not convert fails with ErrConversion.
func (c *ArgumentCommand) Resolve(args []string) ([]Value, error) {
	declared := len(c.args)
	values := make([]Value, max(declared, len(args)))

	if len(args) >= declared {
		for i, raw := range args {
			typ := ArgString
			if i < declared {
				typ = c.args[i].typ
			}
			v, err := NewValue(typ, raw)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}

	for i, arg := range c.args {
		if i < len(args) {
			v, err := arg.resolve(args[i])
			if err != nil {
				return nil, err
			}
			values[i] = v
			continue
		}

		def, ok := arg.Default()
		if !ok {
			return nil, usage.ArgumentDeficit(c.Usage())
		}
		values[i] = def
	}
	return values, nil
}

// TabList offers the completions of the slot being typed, which is the
// last of args. Nothing is offered past the declared slots.
func (c *ArgumentCommand) TabList(args []string) []string {
	if len(args) == 0 || len(c.args) < len(args) {
		return []string{}
	}
	return c.args[len(args)-1].Completions()
}
