// Package game holds the tic-tac-toe rules: the board, the cursor, line
// judging and the state machine driven by input signals.
package game

import "tictactoe-term/types"

// Board is the 3x3 grid. A zero slot is empty.
type Board struct {
	cells [types.Size * types.Size]types.Piece
}

// PieceAt returns the piece at p, or false if the cell is empty.
func (b *Board) PieceAt(p types.Point) (types.Piece, bool) {
	piece := b.cells[p.Index()]
	return piece, piece != 0
}

// Place writes piece at p, overwriting whatever was there.
// Callers are expected to check the cell is empty first.
func (b *Board) Place(p types.Point, piece types.Piece) {
	b.cells[p.Index()] = piece
}

// Full returns true if no cell is empty.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == 0 {
			return false
		}
	}
	return true
}
