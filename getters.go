package cmdargs

import (
	"fmt"
	"strconv"
	"strings"
)

// Signed is the set of integer types the integer getters convert to.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Value returns the raw captured value of name. The error tells apart why a
// value is unavailable: ErrNotParsed, ErrUnknownArg or ErrNotCaptured.
func (p *Parser) Value(name string) (string, error) {
	return p.value(name, None)
}

func (p *Parser) value(name string, requested ArgType) (string, error) {
	if p.state != Valid {
		return "", fmt.Errorf("%w: %s", ErrNotParsed, name)
	}

	spec, ok := p.index.Get(name)
	if !ok {
		return "", p.misuse(fmt.Errorf("%w: %s", ErrUnknownArg, name))
	}
	if !spec.captured {
		return "", p.misuse(fmt.Errorf("%w: %s", ErrNotCaptured, name))
	}
	if !spec.accepts(requested) {
		return "", p.misuse(fmt.Errorf("%w: %s is %s, requested %s", ErrTypeMismatch, name, spec.argType, requested))
	}

	return spec.value, nil
}

// GetInteger converts the value of name to T. The value is parsed as a 64 bit
// integer and converted without overflow checks, so narrow types truncate.
func GetInteger[T Signed](p *Parser, name string) (T, bool) {
	raw, err := p.value(name, Integer)
	if err != nil {
		return 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return T(n), true
}

func (p *Parser) GetInt8(name string) (int8, bool) {
	return GetInteger[int8](p, name)
}

func (p *Parser) GetInt16(name string) (int16, bool) {
	return GetInteger[int16](p, name)
}

func (p *Parser) GetInt32(name string) (int32, bool) {
	return GetInteger[int32](p, name)
}

func (p *Parser) GetInt64(name string) (int64, bool) {
	return GetInteger[int64](p, name)
}

func (p *Parser) GetInt(name string) (int, bool) {
	return GetInteger[int](p, name)
}

func (p *Parser) getFloat(name string, bitSize int) (float64, bool) {
	raw, err := p.value(name, Float)
	if err != nil {
		return 0, false
	}

	f, err := strconv.ParseFloat(raw, bitSize)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (p *Parser) GetFloat32(name string) (float32, bool) {
	f, ok := p.getFloat(name, 32)
	return float32(f), ok
}

func (p *Parser) GetFloat64(name string) (float64, bool) {
	return p.getFloat(name, 64)
}

func (p *Parser) GetBool(name string) (bool, bool) {
	raw, err := p.value(name, Bool)
	if err != nil {
		return false, false
	}

	switch {
	case strings.EqualFold(raw, "true"):
		return true, true
	case strings.EqualFold(raw, "false"):
		return false, true
	default:
		return false, false
	}
}

func (p *Parser) GetString(name string) (string, bool) {
	raw, err := p.value(name, None)
	return raw, err == nil
}

func (p *Parser) GetVector(name string) (Vector3, bool) {
	raw, err := p.value(name, Vector)
	if err != nil {
		return Vector3{}, false
	}

	v, err := ParseVector3(raw)
	if err != nil {
		return Vector3{}, false
	}
	return v, true
}

// GetValue stores the value of name into out, which must be a pointer to one
// of int8, int16, int32, int64, int, float32, float64, bool, string or
// Vector3. out is left untouched when false is returned.
func (p *Parser) GetValue(name string, out any) bool {
	switch dst := out.(type) {
	case *int8:
		return assign(dst)(p.GetInt8(name))
	case *int16:
		return assign(dst)(p.GetInt16(name))
	case *int32:
		return assign(dst)(p.GetInt32(name))
	case *int64:
		return assign(dst)(p.GetInt64(name))
	case *int:
		return assign(dst)(p.GetInt(name))
	case *float32:
		return assign(dst)(p.GetFloat32(name))
	case *float64:
		return assign(dst)(p.GetFloat64(name))
	case *bool:
		return assign(dst)(p.GetBool(name))
	case *string:
		return assign(dst)(p.GetString(name))
	case *Vector3:
		return assign(dst)(p.GetVector(name))
	default:
		p.misuse(fmt.Errorf("%w: %s cannot be stored in %T", ErrTypeMismatch, name, out))
		return false
	}
}

func assign[T any](dst *T) func(T, bool) bool {
	return func(v T, ok bool) bool {
		if ok && dst != nil {
			*dst = v
		}
		return ok && dst != nil
	}
}
