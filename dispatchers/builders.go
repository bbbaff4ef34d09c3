package dispatchers

import "fmt"

const defaultChildrenLabel = "subcommand"

// Parent creates a routing node and, when spec.Parent is set, appends it to
// that parent's children.
func Parent(spec ParentSpec) *ParentCommand {
	label := spec.ChildrenLabel
	if label == "" {
		label = defaultChildrenLabel
	}

	node := &ParentCommand{
		base:          newBase(spec.Name, spec.Aliases, spec.Summary, spec.Permission, spec.InteractiveOnly, spec.Parent),
		childrenLabel: label,
	}

	if spec.Parent != nil {
		spec.Parent.addChild(node)
	}
	return node
}

// Command creates a leaf node with typed arguments. Nothing is attached to
// spec.Parent unless every argument is valid.
func Command(spec CommandSpec) (*ArgumentCommand, error) {
	args := make([]Argument, 0, len(spec.Args))
	for _, as := range spec.Args {
		arg, err := NewArgument(as)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", spec.Name, err)
		}
		args = append(args, arg)
	}

	node := &ArgumentCommand{
		base:    newBase(spec.Name, spec.Aliases, spec.Summary, spec.Permission, spec.InteractiveOnly, spec.Parent),
		args:    args,
		handler: spec.Handler,
	}

	if spec.Parent != nil {
		spec.Parent.addChild(node)
	}
	return node, nil
}

// MustCommand is Command for trees declared in code; it panics on error.
func MustCommand(spec CommandSpec) *ArgumentCommand {
	node, err := Command(spec)
	if err != nil {
		panic(err)
	}
	return node
}
