package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no command matches the given selector.
// Similar names, if any, are offered as suggestions.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a known command.", command)
	if len(suggestions) > 0 {
		msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// DuplicateCommand is returned when a top-level name is registered twice.
func DuplicateCommand(name string) *Error {
	return &Error{
		Kind:    ErrDuplicateCommand,
		Message: fmt.Sprintf("command '%s' is already registered", name),
	}
}

// UndeclaredCommand is returned by a platform asked to bind a top-level
// name its own configuration does not declare.
func UndeclaredCommand(name string) *Error {
	return &Error{
		Kind:    ErrUndeclaredCommand,
		Message: fmt.Sprintf("command '%s' is not declared by the host", name),
	}
}
