package dispatchers

import (
	"math"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdtree/usage"
)

// Value is one raw token read as an ArgType. It is immutable and safe to
// share between dispatches.
type Value struct {
	typ        ArgType
	raw        string
	intVal     int
	decimalVal float64
	boolVal    bool
}

// NewValue converts raw to the given type.
//
// Integer and decimal tokens that do not parse fail with a usage error of
// kind ErrConversion. Boolean conversion never fails: anything other than a
// case-insensitive "true" reads as false. Strings are kept as given.
// An integer value also carries its decimal representation.
func NewValue(typ ArgType, raw string) (Value, error) {
	v := Value{typ: typ, raw: raw}

	switch typ {
	case ArgInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, usage.Conversion(raw, typ.String())
		}
		v.intVal = n
		v.decimalVal = float64(n)
	case ArgDecimal:
		f, err := parseDecimal(raw)
		if err != nil {
			return Value{}, usage.Conversion(raw, typ.String())
		}
		v.decimalVal = f
	case ArgBoolean:
		v.boolVal = strings.EqualFold(raw, "true")
	}

	return v, nil
}

// parseDecimal accepts finite base-10 numbers only: no inf or nan
// spellings, no hex floats, and no values that overflow a float64.
func parseDecimal(raw string) (float64, error) {
	if strings.ContainsAny(raw, "xX") {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

// DefaultValue is NewValue for literals written into command declarations.
// It panics if raw does not convert, like regexp.MustCompile.
func DefaultValue(typ ArgType, raw string) *Value {
	v, err := NewValue(typ, raw)
	if err != nil {
		panic("dispatchers: invalid default: " + err.Error())
	}
	return &v
}

func (v Value) Type() ArgType { return v.typ }

// Raw returns the token exactly as supplied.
func (v Value) Raw() string { return v.raw }

func (v Value) String() string { return v.raw }

func (v Value) Int() int { return v.intVal }

func (v Value) Decimal() float64 { return v.decimalVal }

func (v Value) Bool() bool { return v.boolVal }
