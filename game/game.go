package game

import "tictactoe-term/types"

// Signal is a classified input event.
type Signal int

const (
	Ignored Signal = iota
	Quit
	Up
	Down
	Left
	Right
	Place
)

func (s Signal) String() string {
	switch s {
	case Quit:
		return "quit"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Place:
		return "place"
	}
	return "ignored"
}

// State is the phase of the game.
type State int

const (
	Playing State = iota
	Won
)

// Outcome reports what Apply did with a signal.
type Outcome int

const (
	// NoOp means nothing happened; the signal was not recognised.
	NoOp Outcome = iota
	// Moved means the cursor moved one cell.
	Moved
	// Blocked means a move would have left the board and was dropped.
	Blocked
	// Placed means a piece was placed and the game goes on.
	Placed
	// Finished means a piece was placed and completed a line.
	Finished
	// Rejected means the placement was refused: the cell is taken or the game is over.
	Rejected
	// Quitting means the player asked to quit. Game state is untouched.
	Quitting
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Placed:
		return "placed"
	case Finished:
		return "finished"
	case Rejected:
		return "rejected"
	case Quitting:
		return "quitting"
	}
	return "noop"
}

// Game is the complete state of one game. X always moves first.
type Game struct {
	board  Board
	cursor Cursor
	turn   types.Piece
	winner types.Piece
	moves  int
}

// New returns a game with an empty board, the cursor at (0,0) and X to move.
func New() *Game {
	return &Game{turn: types.X}
}

// Apply performs at most one transition for sig.
func (g *Game) Apply(sig Signal) Outcome {
	switch sig {
	case Quit:
		return Quitting
	case Up:
		return g.move(0, -1)
	case Down:
		return g.move(0, 1)
	case Left:
		return g.move(-1, 0)
	case Right:
		return g.move(1, 0)
	case Place:
		return g.place()
	}
	return NoOp
}

func (g *Game) move(dx, dy int) Outcome {
	if g.cursor.MoveBy(dx, dy) {
		return Moved
	}
	return Blocked
}

func (g *Game) place() Outcome {
	if g.State() == Won {
		return Rejected
	}
	pos := g.cursor.Pos()
	if _, taken := g.board.PieceAt(pos); taken {
		return Rejected
	}
	g.board.Place(pos, g.turn)
	g.turn = g.turn.Other()
	g.moves++
	if winner, ok := Winner(&g.board); ok {
		g.winner = winner
		return Finished
	}
	return Placed
}

// Cursor returns the highlighted cell.
func (g *Game) Cursor() types.Point {
	return g.cursor.Pos()
}

// PieceAt returns the piece at p, or false if the cell is empty.
func (g *Game) PieceAt(p types.Point) (types.Piece, bool) {
	return g.board.PieceAt(p)
}

// Turn returns the piece the next placement will put down.
func (g *Game) Turn() types.Piece {
	return g.turn
}

// Winner returns the winning piece once a line is complete.
func (g *Game) Winner() (types.Piece, bool) {
	return g.winner, g.winner != 0
}

// State returns Won once a winner exists, otherwise Playing.
// A full board with no line is still Playing.
func (g *Game) State() State {
	if g.winner != 0 {
		return Won
	}
	return Playing
}

// Moves returns the number of successful placements.
func (g *Game) Moves() int {
	return g.moves
}

// BoardFull returns true if every cell is occupied.
func (g *Game) BoardFull() bool {
	return g.board.Full()
}
