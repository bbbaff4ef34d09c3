// Package usage holds the user-facing errors produced while dispatching a
// command. Every error carries a Kind so callers can branch on the failure
// category without matching message text.
package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrActorKindRequired
	ErrMissingPermission
	ErrConversion
	ErrArgumentDeficit
	ErrUnknownCommand
	ErrInvalidDefault
	ErrDuplicateCommand
	ErrUndeclaredCommand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrActorKindRequired:
		return "actor kind required"
	case ErrMissingPermission:
		return "missing permission"
	case ErrConversion:
		return "argument conversion"
	case ErrArgumentDeficit:
		return "argument deficit"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInvalidDefault:
		return "invalid default"
	case ErrDuplicateCommand:
		return "duplicate command"
	case ErrUndeclaredCommand:
		return "undeclared command"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
// Message is the exact text shown to the actor.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a usage error of the same kind, so
// errors.Is(err, &usage.Error{Kind: usage.ErrConversion}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first usage error in err's chain,
// or ErrUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// IsKind reports whether err carries a usage error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

var _ error = (*Error)(nil)
