package cmdargs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mwantia/cmdargs/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, opts ...ParserOption) *Parser {
	t.Helper()

	parser, err := NewParser(opts...)
	require.NoError(t, err)
	return parser
}

func newScenarioParser(t *testing.T) *Parser {
	t.Helper()

	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-pos", Required(), OfType(Vector)))
	require.NoError(t, parser.AddArg("-count", OfType(Integer)))
	return parser
}

func TestParser_AddArg(t *testing.T) {
	parser := newTestParser(t)

	require.NoError(t, parser.AddArg("-name"))
	require.NoError(t, parser.AddArg("-pos", Required(), OfType(Vector)))

	args := parser.Args()
	require.Len(t, args, 2)
	assert.Equal(t, "-name", args[0].Name())
	assert.False(t, args[0].Required())
	assert.Equal(t, None, args[0].Type())
	assert.Equal(t, "-pos", args[1].Name())
	assert.True(t, args[1].Required())
	assert.Equal(t, Vector, args[1].Type())

	_, captured := args[0].Value()
	assert.False(t, captured, "no value before parsing")
	assert.Equal(t, Unparsed, parser.State())
}

func TestParser_AddArg_Duplicate(t *testing.T) {
	parser := newTestParser(t)

	require.NoError(t, parser.AddArg("-count", Required(), OfType(Integer)))
	err := parser.AddArg("-count", OfType(Bool))
	assert.ErrorIs(t, err, ErrDuplicateArg)

	spec, ok := parser.Lookup("-count")
	require.True(t, ok)
	assert.True(t, spec.Required(), "first definition is kept")
	assert.Equal(t, Integer, spec.Type(), "first definition is kept")
	assert.Len(t, parser.Args(), 1)
}

func TestParser_AddArg_AfterParse(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-a"))

	for name, command := range map[string]string{
		"valid":   "Cmd -a 1",
		"invalid": "Cmd",
	} {
		t.Run(name, func(t *testing.T) {
			parser.Reset()
			require.NoError(t, parser.AddArg("-a", Required()))
			parser.Parse(command)

			err := parser.AddArg("-b")
			assert.ErrorIs(t, err, ErrAlreadyParsed)
			_, exists := parser.Lookup("-b")
			assert.False(t, exists)
		})
	}
}

func TestParser_AddArg_InvalidInput(t *testing.T) {
	parser := newTestParser(t)

	assert.ErrorIs(t, parser.AddArg(""), ErrEmptyName)
	assert.ErrorIs(t, parser.AddArg("-x", OfType(ArgType(17))), ErrInvalidType)
	assert.Empty(t, parser.Args())
}

func TestParser_Strict(t *testing.T) {
	parser := newTestParser(t, WithStrict())
	require.NoError(t, parser.AddArg("-a", OfType(Float)))

	assert.Panics(t, func() { parser.AddArg("-a") })

	require.True(t, parser.Parse("Cmd -a 1.5"))
	assert.Panics(t, func() { parser.GetInt32("-a") }, "type mismatch")
	assert.Panics(t, func() { parser.GetString("-missing") }, "unknown argument")
	assert.Panics(t, func() { parser.AddArg("-b") }, "registration after parse")
}

func TestParser_ScenarioA(t *testing.T) {
	parser := newScenarioParser(t)

	require.True(t, parser.Parse(`Cmd -pos "(X=1.0,Y=2.0,Z=3.0)" -count 5`))
	assert.Equal(t, Valid, parser.State())
	assert.NoError(t, parser.Err())

	var pos Vector3
	var count int32
	require.True(t, parser.GetValue("-pos", &pos))
	require.True(t, parser.GetValue("-count", &count))
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, pos)
	assert.Equal(t, int32(5), count)
}

func TestParser_ScenarioB(t *testing.T) {
	parser := newScenarioParser(t)

	assert.False(t, parser.Parse(`Cmd -count 5`))
	assert.Equal(t, Invalid, parser.State())
	assert.ErrorIs(t, parser.Err(), ErrMissingArg)

	var pos Vector3
	var count int32
	assert.False(t, parser.GetValue("-pos", &pos))
	assert.False(t, parser.GetValue("-count", &count))
	assert.Zero(t, count, "failed getters leave the output untouched")
}

func TestParser_ScenarioC_QuotedValue(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-name"))

	require.True(t, parser.Parse(`Cmd -name "John Smith"`))
	name, ok := parser.GetString("-name")
	require.True(t, ok)
	assert.Equal(t, "John Smith", name)
}

func TestParser_ScenarioD_UnquotedValue(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-name"))

	require.True(t, parser.Parse(`Cmd -name John Doe`))
	name, ok := parser.GetString("-name")
	require.True(t, ok)
	assert.Equal(t, "John", name)
}

func TestParser_ScenarioE_Bool(t *testing.T) {
	cases := []struct {
		value string
		valid bool
		want  bool
	}{
		{"TRUE", true, true},
		{"false", true, false},
		{"FaLsE", true, false},
		{"1", false, false},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			parser := newTestParser(t)
			require.NoError(t, parser.AddArg("-flag", OfType(Bool)))

			ok := parser.Parse("Cmd -flag " + c.value)
			require.Equal(t, c.valid, ok)
			if !c.valid {
				assert.ErrorIs(t, parser.Err(), ErrInvalidValue)
				return
			}

			got, ok := parser.GetBool("-flag")
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParser_OptionalAbsent(t *testing.T) {
	parser := newScenarioParser(t)

	require.True(t, parser.Parse(`Cmd -pos "(X=1,Y=2,Z=3)"`))
	assert.True(t, parser.Has("-pos"))
	assert.False(t, parser.Has("-count"))

	_, ok := parser.GetInt64("-count")
	assert.False(t, ok, "absent optional arguments never satisfy a getter")

	_, err := parser.Value("-count")
	assert.ErrorIs(t, err, ErrNotCaptured)
}

func TestParser_ShortCircuit(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-a", OfType(Integer)))
	require.NoError(t, parser.AddArg("-b", OfType(Integer)))
	require.NoError(t, parser.AddArg("-c", OfType(Integer)))

	require.True(t, parser.Parse("Cmd -a 1 -b 2 -c 3"))
	require.False(t, parser.Parse("Cmd -a 1 -b two -c 3"))

	args := parser.Args()
	_, captured := args[0].Value()
	assert.True(t, captured, "arguments before the failure are captured")
	for _, spec := range args[1:] {
		_, captured := spec.Value()
		assert.False(t, captured, "%s should have been cleared", spec.Name())
	}
}

func TestParser_Failures(t *testing.T) {
	cases := []struct {
		name    string
		command string
		want    error
	}{
		{"missing required", "Cmd -other 1", ErrMissingArg},
		{"no value", "Cmd -req", ErrNoValue},
		{"invalid value", "Cmd -req 12x", ErrInvalidValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			parser := newTestParser(t, WithLogWriter(&buf))
			require.NoError(t, parser.AddArg("-req", Required(), OfType(Integer)))

			assert.False(t, parser.Parse(c.command))
			assert.True(t, errors.Is(parser.Err(), c.want), "got %v", parser.Err())
			assert.Contains(t, buf.String(), "-req", "diagnostic names the argument")
			assert.Contains(t, buf.String(), "ERROR")
		})
	}
}

func TestParser_InvalidValueDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	parser := newTestParser(t, WithLogWriter(&buf))
	require.NoError(t, parser.AddArg("-ratio", OfType(Float)))

	require.False(t, parser.Parse("Cmd -ratio abc"))
	assert.Contains(t, parser.Err().Error(), `"abc"`)
	assert.Contains(t, parser.Err().Error(), "float")
	assert.Contains(t, buf.String(), "-ratio")
}

func TestParser_TypeMismatch(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-ratio", OfType(Float)))

	var n int32
	assert.False(t, parser.GetValue("-ratio", &n), "before parsing")

	require.True(t, parser.Parse("Cmd -ratio 5"))
	assert.False(t, parser.GetValue("-ratio", &n), "after a successful parse")
	_, err := parser.value("-ratio", Integer)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	f, ok := parser.GetFloat32("-ratio")
	require.True(t, ok)
	assert.Equal(t, float32(5), f)

	raw, ok := parser.GetString("-ratio")
	require.True(t, ok, "string getters accept every type")
	assert.Equal(t, "5", raw)
}

func TestParser_Idempotent(t *testing.T) {
	commands := []string{
		`Cmd -pos "(X=1.0,Y=2.0,Z=3.0)" -count 5`,
		`Cmd -count 5`,
		`Cmd -pos X=1,Y=2,Z=3 -count five`,
	}

	for _, command := range commands {
		parser := newScenarioParser(t)

		first := parser.Parse(command)
		firstValues := capturedValues(parser)
		second := parser.Parse(command)

		assert.Equal(t, first, second, command)
		assert.Equal(t, firstValues, capturedValues(parser), command)
	}
}

func TestParser_Reset(t *testing.T) {
	parser := newScenarioParser(t)
	require.True(t, parser.Parse(`Cmd -pos "(X=1,Y=2,Z=3)" -count 5`))

	spec, _ := parser.Lookup("-count")
	parser.Reset()

	assert.Equal(t, Unparsed, parser.State())
	assert.NoError(t, parser.Err())
	assert.Empty(t, parser.Args())
	_, captured := spec.Value()
	assert.False(t, captured, "Reset clears captured values")

	var count int64
	assert.False(t, parser.GetValue("-count", &count))
	var pos Vector3
	assert.False(t, parser.GetValue("-pos", &pos))

	require.NoError(t, parser.AddArg("-count", Required(), OfType(Integer)))
	respec, ok := parser.Lookup("-count")
	require.True(t, ok)
	assert.True(t, respec.Required())
	_, captured = respec.Value()
	assert.False(t, captured, "re-registered arguments start empty")

	require.True(t, parser.Parse("Cmd -count 9"))
	require.True(t, parser.GetValue("-count", &count))
	assert.Equal(t, int64(9), count)
}

func TestParser_ResetAfterFailedParse(t *testing.T) {
	parser := newScenarioParser(t)
	require.False(t, parser.Parse("Cmd"))

	parser.Reset()
	assert.NoError(t, parser.Err())
	assert.NoError(t, parser.AddArg("-anything"))
}

func TestParser_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Name: "host", Level: log.Debug, Writer: &buf, NoTerminal: true})

	parser := newTestParser(t, WithLogger(logger))
	require.NoError(t, parser.AddArg("-x", Required()))
	require.False(t, parser.Parse("Cmd"))

	assert.Contains(t, buf.String(), "[host/cmdargs]")
}

func capturedValues(p *Parser) map[string]string {
	values := make(map[string]string)
	for _, spec := range p.Args() {
		if value, ok := spec.Value(); ok {
			values[spec.Name()] = value
		}
	}
	return values
}
