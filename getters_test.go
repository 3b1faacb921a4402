package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue_AllTargets(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-int", OfType(Integer)))
	require.NoError(t, parser.AddArg("-float", OfType(Float)))
	require.NoError(t, parser.AddArg("-bool", OfType(Bool)))
	require.NoError(t, parser.AddArg("-text"))
	require.NoError(t, parser.AddArg("-vec", OfType(Vector)))

	require.True(t, parser.Parse(`Cmd -int -1234 -float +2.5 -bool True -text "hello world" -vec "V(X=10.00, Y=20.00, Z=30.00)"`))

	var (
		i8  int8
		i16 int16
		i32 int32
		i64 int64
		i   int
		f32 float32
		f64 float64
		b   bool
		s   string
		v   Vector3
	)

	assert.True(t, parser.GetValue("-int", &i8))
	assert.True(t, parser.GetValue("-int", &i16))
	assert.True(t, parser.GetValue("-int", &i32))
	assert.True(t, parser.GetValue("-int", &i64))
	assert.True(t, parser.GetValue("-int", &i))
	assert.True(t, parser.GetValue("-float", &f32))
	assert.True(t, parser.GetValue("-float", &f64))
	assert.True(t, parser.GetValue("-bool", &b))
	assert.True(t, parser.GetValue("-text", &s))
	assert.True(t, parser.GetValue("-vec", &v))

	assert.Equal(t, int8(46), i8, "narrow widths truncate")
	assert.Equal(t, int16(-1234), i16)
	assert.Equal(t, int32(-1234), i32)
	assert.Equal(t, int64(-1234), i64)
	assert.Equal(t, -1234, i)
	assert.Equal(t, float32(2.5), f32)
	assert.Equal(t, 2.5, f64)
	assert.True(t, b)
	assert.Equal(t, "hello world", s)
	assert.Equal(t, Vector3{10, 20, 30}, v)
}

func TestGetValue_UnsupportedTarget(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-int", OfType(Integer)))
	require.True(t, parser.Parse("Cmd -int 3"))

	var u uint
	assert.False(t, parser.GetValue("-int", &u))
	assert.False(t, parser.GetValue("-int", nil))
	var nilInt *int
	assert.False(t, parser.GetValue("-int", nilInt))
}

func TestGetters_CrossType(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-int", OfType(Integer)))
	require.NoError(t, parser.AddArg("-bool", OfType(Bool)))
	require.NoError(t, parser.AddArg("-vec", OfType(Vector)))
	require.NoError(t, parser.AddArg("-any"))

	require.True(t, parser.Parse(`Cmd -int 7 -bool false -vec X=1,Y=2,Z=3 -any 12`))

	_, ok := parser.GetFloat64("-int")
	assert.False(t, ok, "integer arguments do not coerce to float")
	_, ok = parser.GetBool("-int")
	assert.False(t, ok)
	_, ok = parser.GetInt("-bool")
	assert.False(t, ok)
	_, ok = parser.GetVector("-bool")
	assert.False(t, ok)
	_, ok = parser.GetInt("-vec")
	assert.False(t, ok)

	n, ok := parser.GetInt("-any")
	require.True(t, ok, "untyped arguments satisfy any getter that can convert them")
	assert.Equal(t, 12, n)
	f, ok := parser.GetFloat64("-any")
	require.True(t, ok)
	assert.Equal(t, 12.0, f)
	_, ok = parser.GetBool("-any")
	assert.False(t, ok, "12 is not a boolean")
	_, ok = parser.GetVector("-any")
	assert.False(t, ok)

	b, ok := parser.GetBool("-bool")
	require.True(t, ok)
	assert.False(t, b)
}

func TestGetInteger_Overflow(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-big", OfType(Integer)))
	require.NoError(t, parser.AddArg("-wide", OfType(Integer)))

	require.True(t, parser.Parse("Cmd -big 99999999999999999999 -wide -300"))

	_, ok := GetInteger[int64](parser, "-big")
	assert.False(t, ok, "values beyond 64 bits cannot be converted")

	n, ok := GetInteger[int8](parser, "-wide")
	require.True(t, ok)
	assert.Equal(t, int8(-44), n)
}

func TestGetters_NotParsed(t *testing.T) {
	parser := newTestParser(t)
	require.NoError(t, parser.AddArg("-a"))

	_, err := parser.Value("-a")
	assert.ErrorIs(t, err, ErrNotParsed)

	require.True(t, parser.Parse("Cmd -a 1"))
	_, err = parser.Value("-b")
	assert.ErrorIs(t, err, ErrUnknownArg)

	value, err := parser.Value("-a")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}
