package cmdargs

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?\d+\.?\d*$`)
)

// Validate reports whether value satisfies t. The whole value has to match,
// a valid prefix is not enough.
func Validate(value string, t ArgType) error {
	switch t {
	case None:
		return nil
	case Bool:
		if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
			return nil
		}
	case Integer:
		if integerPattern.MatchString(value) {
			return nil
		}
	case Float:
		if floatPattern.MatchString(value) {
			return nil
		}
	case Vector:
		if _, err := ParseVector3(value); err == nil {
			return nil
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidType, t)
	}

	return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidValue, value, t)
}
