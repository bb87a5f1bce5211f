// Package ui draws the game on a tcell screen and feeds it key events.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"tictactoe-term/game"
)

// ClassifyKey maps a key press to the signal the game understands.
func ClassifyKey(event *tcell.EventKey) game.Signal {
	switch event.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyUp:
		return game.Up
	case tcell.KeyDown:
		return game.Down
	case tcell.KeyLeft:
		return game.Left
	case tcell.KeyRight:
		return game.Right
	case tcell.KeyEnter:
		return game.Place
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			return game.Quit
		case 'k':
			return game.Up
		case 'j':
			return game.Down
		case 'h':
			return game.Left
		case 'l':
			return game.Right
		case ' ':
			return game.Place
		}
	}
	return game.Ignored
}
