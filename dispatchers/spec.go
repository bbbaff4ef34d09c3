package dispatchers

// Handler runs a command once its arguments are resolved. The returned
// value is handed back unchanged by Execute.
type Handler func(actor Actor, values []Value) bool

type ParentSpec struct {
	Name            string
	Aliases         []string
	Summary         string
	Permission      string
	InteractiveOnly bool
	ChildrenLabel   string
	Parent          *ParentCommand
}

type CommandSpec struct {
	Name            string
	Aliases         []string
	Summary         string
	Permission      string
	InteractiveOnly bool
	Parent          *ParentCommand
	Args            []ArgSpec
	Handler         Handler
}
