package game

import "tictactoe-term/types"

// Lines lists every three-in-a-row, in the order Winner checks them.
var Lines = [8][3]types.Point{
	// rows
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	// columns
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	// diagonals
	{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}},
}

// Winner returns the piece owning the first complete line, if any.
func Winner(b *Board) (types.Piece, bool) {
	for _, line := range Lines {
		if piece, ok := lineOwner(b, line); ok {
			return piece, true
		}
	}
	return 0, false
}

func lineOwner(b *Board, line [3]types.Point) (types.Piece, bool) {
	first, ok := b.PieceAt(line[0])
	if !ok {
		return 0, false
	}
	for _, p := range line[1:] {
		piece, ok := b.PieceAt(p)
		if !ok || piece != first {
			return 0, false
		}
	}
	return first, true
}
