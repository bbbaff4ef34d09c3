package dispatchers

type testActor struct {
	id       string
	kind     ActorKind
	allowAll bool
	perms    map[string]bool
	messages []string
}

func newPlayer(perms ...string) *testActor {
	a := &testActor{id: "player-1", kind: ActorInteractive, perms: make(map[string]bool)}
	for _, p := range perms {
		a.perms[p] = true
	}
	return a
}

func newConsole() *testActor {
	return &testActor{id: "console", kind: ActorNonInteractive, allowAll: true}
}

func (a *testActor) SendMessage(text string) {
	a.messages = append(a.messages, text)
}

func (a *testActor) HasPermission(permission string) bool {
	return a.allowAll || a.perms[permission]
}

func (a *testActor) Kind() ActorKind { return a.kind }

func (a *testActor) ID() string { return a.id }

// capture returns a handler that stores the values it was called with.
func capture(out *[]Value, result bool) Handler {
	return func(_ Actor, values []Value) bool {
		*out = values
		return result
	}
}
