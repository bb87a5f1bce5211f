package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-term/config"
	"tictactoe-term/game"
	"tictactoe-term/types"
)

const (
	cellWidth = 3
	statusX   = 16
	statusY   = 1
	hintY     = 5
	textWidth = 16

	hintText = "Press q to exit."
)

// BoardView renders a game: the grid on the left, status lines on the right.
type BoardView struct {
	theme config.Theme
}

// NewBoardView returns a view drawing with the given theme colors.
func NewBoardView(theme config.Theme) *BoardView {
	return &BoardView{theme: theme}
}

// Draw paints g onto screen. It does not clear or show the screen.
func (v *BoardView) Draw(screen tcell.Screen, g *game.Game) {
	cursor := g.Cursor()
	for _, p := range types.AllPoints() {
		label := ' '
		if piece, ok := g.PieceAt(p); ok {
			label = []rune(piece.String())[0]
		}
		col, row := cellOrigin(p)
		drawCell(screen, v.theme.Style(p == cursor), label, col, row)
	}

	tview.Print(screen, StatusLine(g), statusX, statusY, textWidth, tview.AlignLeft, tcell.PaletteColor(v.theme.Colors.Status))
	tview.Print(screen, hintText, statusX, hintY, textWidth, tview.AlignLeft, tcell.PaletteColor(v.theme.Colors.Hint))
}

// StatusLine is the turn or winner text shown next to the board.
func StatusLine(g *game.Game) string {
	if winner, ok := g.Winner(); ok {
		return fmt.Sprintf("Winner: %s", winner)
	}
	return fmt.Sprintf("Next player: %s", g.Turn())
}

// cellOrigin returns the screen column and row of the left edge of a cell.
func cellOrigin(p types.Point) (int, int) {
	return (cellWidth+1)*p.X + 1, 2*p.Y + 1
}

// drawCell draws a 3-character cell with the label in the middle.
func drawCell(s tcell.Screen, style tcell.Style, label rune, col, row int) {
	s.SetContent(col, row, ' ', nil, style)
	s.SetContent(col+1, row, label, nil, style)
	s.SetContent(col+2, row, ' ', nil, style)
}
