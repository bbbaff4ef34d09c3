package dispatchers

// ArgType is the declared type of an argument slot.
type ArgType int

const (
	ArgInteger ArgType = iota
	ArgDecimal
	ArgString
	ArgBoolean
)

// String returns the display name used in conversion error messages.
func (t ArgType) String() string {
	switch t {
	case ArgInteger:
		return "integer"
	case ArgDecimal:
		return "number"
	case ArgBoolean:
		return "boolean"
	default:
		return "string"
	}
}
