// Package types contains shared data structures for tictactoe-term.
package types

import "fmt"

// Size is the width and height of the board.
const Size = 3

// Piece is the marker a player places on the board.
// The zero value is not a piece; it is used by Board to mean an empty cell.
type Piece uint8

const (
	X Piece = iota + 1
	O
)

// String returns the one-letter label of the piece.
func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Other returns the opposite piece.
func (p Piece) Other() Piece {
	if p == X {
		return O
	}
	return X
}

// Point represents a position on the board.
// X is the column, Y is the row, both counted from the top left.
type Point struct {
	X int
	Y int
}

// Index maps the point to its board slot.
func (p Point) Index() int {
	return p.X + p.Y*Size
}

// Valid returns true if the point is on the board.
func (p Point) Valid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PointFromIndex is the inverse of Point.Index.
func PointFromIndex(i int) Point {
	return Point{X: i % Size, Y: i / Size}
}

// AllPoints returns every point on the board in index order.
func AllPoints() []Point {
	points := make([]Point, 0, Size*Size)
	for i := 0; i < Size*Size; i++ {
		points = append(points, PointFromIndex(i))
	}
	return points
}
