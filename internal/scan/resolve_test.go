package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelta(t *testing.T) {
	tests := []struct {
		arg      string
		ini, fin int
		want     int
	}{
		{"10", 1, 5, 10},
		{"+10", 1, 5, 10},
		{"-3", 1, 5, -3},
		{"0", 1, 5, 0},
		// Equation form: delta = target - ref.
		{"=100", 5, 10, 95},
		{"i=100", 5, 10, 95},
		{"ini=100", 5, 10, 95},
		{"f=50", 5, 10, 40},
		{"fin=50", 5, 10, 40},
		{"7=10", 5, 10, 3},
		{"=-5", 2, 9, -7},
	}
	for _, tt := range tests {
		got, err := ParseDelta(tt.arg, tt.ini, tt.fin)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, "delta %q with ini=%d fin=%d", tt.arg, tt.ini, tt.fin)
	}
}

func TestParseDeltaInvalid(t *testing.T) {
	for _, arg := range []string{"", "abc", "x=5", "=5x", "1=2=3", "+-4"} {
		_, err := ParseDelta(arg, 1, 5)
		require.Error(t, err, arg)
		assert.ErrorIs(t, err, ErrIncrement, arg)
	}
}

func TestResolveDirectionSafety(t *testing.T) {
	tests := []struct {
		name             string
		ini, fin, delta  int
		wantIni, wantFin int
		wantStep         int
	}{
		{"positive shift flips ascending walk", 1, 5, 10, 5, 1, -1},
		{"negative shift keeps ascending walk", 1, 5, -10, 1, 5, 1},
		{"positive shift keeps descending walk", 5, 1, 3, 5, 1, -1},
		{"negative shift flips descending walk", 5, 1, -3, 1, 5, 1},
		{"zero shift never flips", 1, 5, 0, 1, 5, 1},
		{"single number", 4, 4, 9, 4, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ini, fin := orient(tt.ini, tt.fin, tt.delta)
			assert.Equal(t, tt.wantIni, ini)
			assert.Equal(t, tt.wantFin, fin)

			step := 1
			if fin < ini {
				step = -1
			}
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

func TestResolveBounds(t *testing.T) {
	res := &Result{Window: Window{Low: 3, High: 9}, Found: true}

	span, err := Resolve("auto", "auto", "0", res)
	require.NoError(t, err)
	assert.Equal(t, Span{Ini: 3, Fin: 9, Delta: 0, Step: 1}, span)

	span, err = Resolve("1", "4", "+2", res)
	require.NoError(t, err)
	assert.Equal(t, Span{Ini: 4, Fin: 1, Delta: 2, Step: -1}, span)
}

func TestResolveAutoWithoutCandidates(t *testing.T) {
	res := &Result{}

	_, err := Resolve("auto", "10", "0", res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCandidates)

	// Literal bounds do not need the scan to have found anything.
	span, err := Resolve("2", "6", "1=4", res)
	require.NoError(t, err)
	assert.Equal(t, 3, span.Delta)
}

func TestResolveBadBound(t *testing.T) {
	_, err := Resolve("first", "10", "0", &Result{Found: true})
	require.Error(t, err)
}
