package dispatchers

import "github.com/footprint-tools/cmdtree/usage"

// ArgSpec declares one argument slot of a command.
type ArgSpec struct {
	Name        string
	Type        ArgType
	Default     *Value
	Completions []string
}

// Argument is a validated, immutable ArgSpec.
type Argument struct {
	name        string
	typ         ArgType
	def         *Value
	completions []string
}

// NewArgument validates spec. A default must have the argument's own type.
func NewArgument(spec ArgSpec) (Argument, error) {
	if spec.Default != nil && spec.Default.Type() != spec.Type {
		return Argument{}, usage.InvalidDefault(spec.Name, spec.Type.String(), spec.Default.Type().String())
	}

	arg := Argument{
		name:        spec.Name,
		typ:         spec.Type,
		completions: append([]string(nil), spec.Completions...),
	}
	if spec.Default != nil {
		def := *spec.Default
		arg.def = &def
	}
	return arg, nil
}

func (a Argument) Name() string { return a.name }

func (a Argument) Type() ArgType { return a.typ }

// Default returns the default value and whether one was declared.
func (a Argument) Default() (Value, bool) {
	if a.def == nil {
		return Value{}, false
	}
	return *a.def, true
}

func (a Argument) HasDefault() bool { return a.def != nil }

// Completions returns a copy of the static completion list.
func (a Argument) Completions() []string {
	out := make([]string, len(a.completions))
	copy(out, a.completions)
	return out
}

func (a Argument) resolve(raw string) (Value, error) {
	return NewValue(a.typ, raw)
}
