package dispatchers

// ActorKind tells interactive actors (a person at a prompt) apart from
// non-interactive ones (scripts, a server console).
type ActorKind int

const (
	ActorNonInteractive ActorKind = iota
	ActorInteractive
)

func (k ActorKind) String() string {
	if k == ActorInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// Actor is whoever issued a command. It is supplied by the host platform.
type Actor interface {
	SendMessage(text string)
	HasPermission(permission string) bool
	Kind() ActorKind
}

// Identified is implemented by actors that can be told apart in audit records.
type Identified interface {
	ID() string
}

func actorID(actor Actor) string {
	if id, ok := actor.(Identified); ok {
		return id.ID()
	}
	return ""
}
