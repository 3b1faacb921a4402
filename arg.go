package cmdargs

// ArgSpec is a registered argument definition together with the raw value
// captured by the most recent parse.
type ArgSpec struct {
	name     string
	required bool
	argType  ArgType

	value    string
	captured bool
}

func (a *ArgSpec) Name() string {
	return a.name
}

func (a *ArgSpec) Required() bool {
	return a.required
}

func (a *ArgSpec) Type() ArgType {
	return a.argType
}

// Value returns the captured raw value. The second result is false when the
// argument was not found by the last parse, or no parse happened yet.
func (a *ArgSpec) Value() (string, bool) {
	return a.value, a.captured
}

func (a *ArgSpec) capture(value string) {
	a.value = value
	a.captured = true
}

func (a *ArgSpec) reset() {
	a.value = ""
	a.captured = false
}

// accepts reports whether a getter asking for requested may read this
// argument. None on either side matches anything.
func (a *ArgSpec) accepts(requested ArgType) bool {
	return a.argType == None || requested == None || a.argType == requested
}

type ArgOptions struct {
	Required bool
	Type     ArgType
}

type ArgOption func(*ArgOptions) error

// Required marks the argument as mandatory; Parse fails without it.
func Required() ArgOption {
	return func(opts *ArgOptions) error {
		opts.Required = true
		return nil
	}
}

// OfType sets the type the argument's value is validated against.
func OfType(t ArgType) ArgOption {
	return func(opts *ArgOptions) error {
		if !t.Valid() {
			return ErrInvalidType
		}
		opts.Type = t
		return nil
	}
}
