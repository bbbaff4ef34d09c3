package usage

import "fmt"

// Conversion is returned when a raw token cannot be read as the expected type.
// typeName is the display name of the argument type.
func Conversion(raw, typeName string) *Error {
	return &Error{
		Kind:    ErrConversion,
		Message: fmt.Sprintf("'%s' is not a %s.", raw, typeName),
	}
}

// ArgumentDeficit is returned when a required argument has no token and no
// default. The message is the generic usage line; it does not name the slot.
func ArgumentDeficit(usageLine string) *Error {
	return &Error{
		Kind:    ErrArgumentDeficit,
		Message: "Usage: " + usageLine,
	}
}

// InvalidDefault is returned when an argument's default value has a
// different type than the argument itself.
func InvalidDefault(arg, want, got string) *Error {
	return &Error{
		Kind:    ErrInvalidDefault,
		Message: fmt.Sprintf("argument '%s': default is a %s, want a %s", arg, got, want),
	}
}
