package usage

// ActorKindRequired is returned when a command is limited to interactive actors.
func ActorKindRequired() *Error {
	return &Error{
		Kind:    ErrActorKindRequired,
		Message: "Only interactive actors can execute this command.",
	}
}

// MissingPermission is returned when the actor lacks the command's permission.
func MissingPermission() *Error {
	return &Error{
		Kind:    ErrMissingPermission,
		Message: "You do not have the permission for this command.",
	}
}
