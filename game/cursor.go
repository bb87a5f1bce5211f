package game

import "tictactoe-term/types"

// Cursor is the highlighted cell. The zero value sits at (0,0).
type Cursor struct {
	pos types.Point
}

// Pos returns the highlighted cell.
func (c *Cursor) Pos() types.Point {
	return c.pos
}

// MoveBy shifts the cursor by (dx, dy). A move that would leave the board
// is dropped entirely.
func (c *Cursor) MoveBy(dx, dy int) bool {
	next := types.Point{X: c.pos.X + dx, Y: c.pos.Y + dy}
	if !next.Valid() {
		return false
	}
	c.pos = next
	return true
}
