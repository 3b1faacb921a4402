package cmdargs

import (
	"fmt"
	"strings"
)

// ArgType is the semantic type an argument's value must satisfy.
type ArgType int

const (
	// None disables type validation.
	None ArgType = iota
	Integer
	Float
	Bool
	// Vector expects a three component value, e.g. "(X=1.0,Y=2.0,Z=3.0)".
	Vector
)

func (t ArgType) String() string {
	switch t {
	case None:
		return "none"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared type tags.
func (t ArgType) Valid() bool {
	return t >= None && t <= Vector
}

// ParseArgType resolves the textual form of an ArgType.
func ParseArgType(s string) (ArgType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "string", "":
		return None, nil
	case "integer", "int":
		return Integer, nil
	case "float":
		return Float, nil
	case "bool", "boolean":
		return Bool, nil
	case "vector", "vector3":
		return Vector, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// State is the tri-state result of the most recent parse.
type State int

const (
	Unparsed State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Unparsed:
		return "unparsed"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}
