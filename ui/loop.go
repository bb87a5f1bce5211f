package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"tictactoe-term/game"
)

// ErrInputClosed is returned when the screen stops delivering events.
var ErrInputClosed = errors.New("input closed")

// Loop renders the game and applies one key event per frame.
type Loop struct {
	screen tcell.Screen
	game   *game.Game
	view   *BoardView
	log    *slog.Logger
}

// NewLoop returns a loop that plays g on screen, logging transitions to log.
func NewLoop(screen tcell.Screen, g *game.Game, view *BoardView, log *slog.Logger) *Loop {
	return &Loop{
		screen: screen,
		game:   g,
		view:   view,
		log:    log,
	}
}

// Run blocks until the player quits or the screen fails. The caller owns
// screen setup and teardown.
func (l *Loop) Run() error {
	for {
		l.screen.Clear()
		l.view.Draw(l.screen, l.game)
		l.screen.Show()

		switch ev := l.screen.PollEvent().(type) {
		case nil:
			return ErrInputClosed
		case *tcell.EventError:
			return fmt.Errorf("read input: %w", ev)
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventKey:
			if l.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies the key to the game and returns true on quit.
func (l *Loop) handleKey(ev *tcell.EventKey) bool {
	sig := ClassifyKey(ev)
	pos := l.game.Cursor()
	outcome := l.game.Apply(sig)

	switch outcome {
	case game.Quitting:
		l.log.Info("quit", "moves", l.game.Moves())
		return true
	case game.Finished:
		winner, _ := l.game.Winner()
		l.log.Info("game won", "winner", winner.String(), "at", pos.String(), "moves", l.game.Moves())
	case game.NoOp:
	default:
		l.log.Debug("signal applied", "signal", sig.String(), "outcome", outcome.String(), "from", pos.String(), "cursor", l.game.Cursor().String())
	}
	return false
}
