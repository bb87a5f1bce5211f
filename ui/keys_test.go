package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"tictactoe-term/game"
)

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want game.Signal
	}{
		{"q", tcell.KeyRune, 'q', game.Quit},
		{"escape", tcell.KeyEsc, 0, game.Quit},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.Quit},
		{"up", tcell.KeyUp, 0, game.Up},
		{"down", tcell.KeyDown, 0, game.Down},
		{"left", tcell.KeyLeft, 0, game.Left},
		{"right", tcell.KeyRight, 0, game.Right},
		{"k", tcell.KeyRune, 'k', game.Up},
		{"j", tcell.KeyRune, 'j', game.Down},
		{"h", tcell.KeyRune, 'h', game.Left},
		{"l", tcell.KeyRune, 'l', game.Right},
		{"space", tcell.KeyRune, ' ', game.Place},
		{"enter", tcell.KeyEnter, 0, game.Place},
		{"other rune", tcell.KeyRune, 'x', game.Ignored},
		{"capital Q", tcell.KeyRune, 'Q', game.Ignored},
		{"tab", tcell.KeyTab, 0, game.Ignored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			assert.Equal(t, tt.want, ClassifyKey(ev))
		})
	}
}
