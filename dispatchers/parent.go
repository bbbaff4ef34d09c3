package dispatchers

import "strings"

const defaultSuggestionsCount = 3

// ParentCommand routes the first token to one of its children.
type ParentCommand struct {
	base
	childrenLabel string
	children      []Node
}

func (p *ParentCommand) addChild(child Node) {
	p.children = append(p.children, child)
}

// Children returns the children in registration order.
func (p *ParentCommand) Children() []Node {
	out := make([]Node, len(p.children))
	copy(out, p.children)
	return out
}

func (p *ParentCommand) ChildrenLabel() string { return p.childrenLabel }

// Child returns the first child, in registration order, matching selector.
func (p *ParentCommand) Child(selector string) Node {
	for _, child := range p.children {
		if child.Matches(selector) {
			return child
		}
	}
	return nil
}

func (p *ParentCommand) Usage() string {
	return p.commandPath() + " <" + p.childrenLabel + ">"
}

// parentUsage is the usage prefix children build on; it leaves out the
// children label.
func (p *ParentCommand) parentUsage() string {
	return p.commandPath()
}

func (p *ParentCommand) SendUsage(actor Actor) {
	sendUsage(actor, p.Usage())
}

func (p *ParentCommand) Execute(actor Actor, args []string) bool {
	if !p.admit(actor) {
		return false
	}

	if len(args) == 0 {
		p.SendUsage(actor)
		return false
	}

	if child := p.Child(args[0]); child != nil {
		return child.Execute(actor, args[1:])
	}

	p.SendUsage(actor)
	if suggestions := FindSimilarCommands(args[0], p, defaultSuggestionsCount); len(suggestions) > 0 {
		actor.SendMessage("Did you mean: " + strings.Join(suggestions, ", ") + "?")
	}
	return false
}

// TabList returns child names while the selector is being typed and
// delegates to the selected child afterwards.
func (p *ParentCommand) TabList(args []string) []string {
	if len(args) == 0 {
		return []string{}
	}

	if len(args) == 1 {
		names := make([]string, 0, len(p.children))
		for _, child := range p.children {
			names = append(names, child.Name())
		}
		return names
	}

	child := p.Child(args[0])
	if child == nil {
		return []string{}
	}
	return child.TabList(args[1:])
}
