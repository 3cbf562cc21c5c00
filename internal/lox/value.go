package lox

import "strconv"

// ValueKind is the tag of a runtime value.
type ValueKind uint8

const (
	NilKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
)

func (k ValueKind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	}
	return "unknown"
}

// Value is a runtime value. The set of implementations is closed: NilValue,
// BoolValue, NumberValue and StringValue.
type Value interface {
	Kind() ValueKind
	String() string
}

type NilValue struct{}

type BoolValue bool

type NumberValue float64

type StringValue string

// Nil is the only nil value.
var Nil = NilValue{}

func (NilValue) Kind() ValueKind    { return NilKind }
func (BoolValue) Kind() ValueKind   { return BoolKind }
func (NumberValue) Kind() ValueKind { return NumberKind }
func (StringValue) Kind() ValueKind { return StringKind }

func (NilValue) String() string {
	return "nil"
}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v StringValue) String() string {
	return string(v)
}

// Stringify renders a value the way the print routine shows it to users.
func Stringify(v Value) string {
	if v == nil {
		return Nil.String()
	}
	return v.String()
}
