package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("12,3")
	require.NoError(t, err)
	assert.Equal(t, MakePosition(12, 3), p)

	for _, invalid := range []string{"", "1", "1,2,3", "-1,2", "a,2", "1, 2", "1,"} {
		_, err := ParsePosition(invalid)
		assert.ErrorIs(t, err, ErrInvalidPosition, invalid)
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(2, 10)", MakePosition(2, 10).String())
}

func TestEuclideanDistance(t *testing.T) {
	assert.Equal(t, 0.0, EuclideanDistance(MakePosition(1, 1), MakePosition(1, 1)))
	assert.Equal(t, 5.0, EuclideanDistance(MakePosition(0, 0), MakePosition(3, 4)))
	assert.InDelta(t, math.Sqrt2, EuclideanDistance(MakePosition(2, 2), MakePosition(1, 1)), 1e-12)
}

func TestEuclideanDistanceIsAdmissible(t *testing.T) {
	origin := MakePosition(0, 0)
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			p := MakePosition(row, col)
			assert.LessOrEqual(t, EuclideanDistance(origin, p), float64(row+col))
		}
	}
}

func TestIsAdjacent(t *testing.T) {
	p := MakePosition(3, 3)
	assert.True(t, p.IsAdjacent(p.Offset(1, 0)))
	assert.True(t, p.IsAdjacent(p.Offset(0, -1)))
	assert.False(t, p.IsAdjacent(p))
	assert.False(t, p.IsAdjacent(p.Offset(1, 1)))
	assert.False(t, p.IsAdjacent(p.Offset(0, 2)))
}
