package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tictactoe-term/types"
)

var directions = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func TestCursorStartsTopLeft(t *testing.T) {
	var c Cursor
	assert.Equal(t, types.Point{X: 0, Y: 0}, c.Pos())
}

func TestCursorMoveStaysOnBoard(t *testing.T) {
	for _, start := range types.AllPoints() {
		for _, d := range directions {
			c := Cursor{pos: start}
			moved := c.MoveBy(d[0], d[1])
			got := c.Pos()

			assert.True(t, got.Valid(), "from %s by %v", start, d)
			want := types.Point{X: start.X + d[0], Y: start.Y + d[1]}
			if want.Valid() {
				assert.True(t, moved)
				assert.Equal(t, want, got)
			} else {
				assert.False(t, moved)
				assert.Equal(t, start, got)
			}
		}
	}
}

func TestCursorRejectsLeftAndUpFromOrigin(t *testing.T) {
	var c Cursor
	assert.False(t, c.MoveBy(-1, 0))
	assert.False(t, c.MoveBy(0, -1))
	assert.Equal(t, types.Point{X: 0, Y: 0}, c.Pos())
}

func TestCursorRejectsWholeMove(t *testing.T) {
	c := Cursor{pos: types.Point{X: 2, Y: 1}}
	// x would leave the board, so y must not change either
	assert.False(t, c.MoveBy(1, 1))
	assert.Equal(t, types.Point{X: 2, Y: 1}, c.Pos())
}
