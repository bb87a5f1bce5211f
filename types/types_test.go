package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceString(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, " ", Piece(0).String())
}

func TestPieceOther(t *testing.T) {
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
}

func TestPointIndexIsBijective(t *testing.T) {
	seen := make(map[int]Point)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := Point{X: x, Y: y}
			i := p.Index()
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, Size*Size)
			_, dup := seen[i]
			assert.False(t, dup, "index %d used twice", i)
			seen[i] = p
			assert.Equal(t, p, PointFromIndex(i))
		}
	}
	assert.Len(t, seen, 9)
}

func TestPointValid(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{2, 2}, true},
		{Point{1, 2}, true},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
		{Point{3, 0}, false},
		{Point{0, 3}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.Valid(), "%s", tt.p)
	}
}

func TestAllPoints(t *testing.T) {
	points := AllPoints()
	if assert.Len(t, points, 9) {
		assert.Equal(t, Point{0, 0}, points[0])
		assert.Equal(t, Point{2, 0}, points[2])
		assert.Equal(t, Point{0, 1}, points[3])
		assert.Equal(t, Point{2, 2}, points[8])
	}
}
