package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNumber(t *testing.T, tpl string) *Number {
	t.Helper()
	n, err := ParseNumber(tpl)
	require.NoError(t, err)
	return n
}

func TestParseSpread(t *testing.T) {
	s, err := ParseSpread("%03d-%03d", false)
	require.NoError(t, err)

	assert.Equal(t, "003-004", s.Format(3, 4))

	first, second, ok := s.Match("041-042")
	require.True(t, ok)
	assert.Equal(t, 41, first)
	assert.Equal(t, 42, second)

	_, _, ok = s.Match("041_042")
	assert.False(t, ok)
}

func TestParseSpreadErrors(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
	}{
		{"one placeholder", "%03d"},
		{"three placeholders", "%d-%d-%d"},
		{"zero width slot", "%0d-%03d"},
		{"empty separator unbounded", "%d%d"},
		{"empty separator half fixed", "%03d%d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpread(tt.tpl, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTemplate)
		})
	}
}

// An empty separator is allowed when both widths are fixed: the boundary
// between the numbers is still unambiguous.
func TestParseSpreadEmptySeparatorFixed(t *testing.T) {
	s, err := ParseSpread("%03d%03d", false)
	require.NoError(t, err)

	assert.Equal(t, "099100", s.Format(99, 100))

	first, second, ok := s.Match("011012")
	require.True(t, ok)
	assert.Equal(t, 11, first)
	assert.Equal(t, 12, second)
}

func TestDerive(t *testing.T) {
	single := mustNumber(t, "p%03d_x")

	s, err := Derive(single, "-", nil, false)
	require.NoError(t, err)

	// Prefix and suffix of the single template survive the splice.
	assert.Equal(t, "p005-006_x", s.Format(5, 6))

	first, second, ok := s.Match("p005-006_x")
	require.True(t, ok)
	assert.Equal(t, 5, first)
	assert.Equal(t, 6, second)

	// The single-page matcher must not accept the spread name.
	_, ok2 := single.Match("p005-006_x")
	assert.False(t, ok2)
}

func TestDeriveSecondOverride(t *testing.T) {
	single := mustNumber(t, "%03d")
	second := mustNumber(t, "%d")

	s, err := Derive(single, "-", second, false)
	require.NoError(t, err)
	assert.Equal(t, "009-10", s.Format(9, 10))

	first, sec, ok := s.Match("099-100")
	require.True(t, ok)
	assert.Equal(t, 99, first)
	assert.Equal(t, 100, sec)
}

func TestDeriveEmptyJoinNeedsFixedWidths(t *testing.T) {
	_, err := Derive(mustNumber(t, "%d"), "", nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplate)

	_, err = Derive(mustNumber(t, "%03d"), "", nil, false)
	assert.NoError(t, err)
}

func TestSpreadReversed(t *testing.T) {
	s, err := Derive(mustNumber(t, "%03d"), "-", nil, true)
	require.NoError(t, err)

	// The second logical number prints first.
	assert.Equal(t, "004-003", s.Format(3, 4))

	// Matching maps back to logical order.
	first, second, ok := s.Match("042-041")
	require.True(t, ok)
	assert.Equal(t, 41, first)
	assert.Equal(t, 42, second)
}
