package cmdargs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Vector3 is a three component value written as named fields, for example
// "(X=1.0,Y=2.0,Z=3.0)" or "X=1 Y=2 Z=3".
type Vector3 struct {
	X, Y, Z float64
}

var vectorComponentPattern = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseVector3 reads the X=, Y= and Z= fields of s. Each key is matched
// case-insensitively at its first occurrence and must be followed by a
// numeric literal. Anything around the fields is ignored.
func ParseVector3(s string) (Vector3, error) {
	var v Vector3
	components := []struct {
		key string
		dst *float64
	}{
		{"X=", &v.X},
		{"Y=", &v.Y},
		{"Z=", &v.Z},
	}

	for _, c := range components {
		idx := indexFold(s, c.key)
		if idx < 0 {
			return Vector3{}, fmt.Errorf("vector %q: missing %s component", s, c.key)
		}

		match := vectorComponentPattern.FindStringSubmatch(s[idx+len(c.key):])
		if match == nil {
			return Vector3{}, fmt.Errorf("vector %q: %s component is not numeric", s, c.key)
		}

		f, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("vector %q: %s component: %w", s, c.key, err)
		}
		*c.dst = f
	}

	return v, nil
}

func (v Vector3) String() string {
	return fmt.Sprintf("X=%.3f Y=%.3f Z=%.3f", v.X, v.Y, v.Z)
}

// indexFold is strings.Index with ASCII case folding.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
