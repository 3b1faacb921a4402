package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector3(t *testing.T) {
	cases := []struct {
		in   string
		want Vector3
	}{
		{"(X=1.0,Y=2.0,Z=3.0)", Vector3{1, 2, 3}},
		{"V(X=10.00, Y=20.00, Z=30.00)", Vector3{10, 20, 30}},
		{"X=-1.5 Y=+2 Z=.25", Vector3{-1.5, 2, 0.25}},
		{"z=3 y=2 x=1", Vector3{1, 2, 3}},
		{"X= 4 Y=5 Z=6e1", Vector3{4, 5, 60}},
	}

	for _, c := range cases {
		got, err := ParseVector3(c.in)
		require.NoError(t, err, "ParseVector3(%q)", c.in)
		assert.Equal(t, c.want, got, "ParseVector3(%q)", c.in)
	}
}

func TestParseVector3_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"(1.0,2.0,3.0)",
		"(X=1.0,Y=2.0)",
		"(X=one,Y=2.0,Z=3.0)",
		"(X=1.0,Y=,Z=3.0)",
	} {
		_, err := ParseVector3(in)
		assert.Error(t, err, "ParseVector3(%q)", in)
	}
}

func TestVector3_StringRoundTrip(t *testing.T) {
	v := Vector3{X: 1.25, Y: -2, Z: 300.5}
	assert.Equal(t, "X=1.250 Y=-2.000 Z=300.500", v.String())

	parsed, err := ParseVector3(v.String())
	require.NoError(t, err)
	assert.Equal(t, v, parsed)
}
