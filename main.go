// tictactoe-term is a two-player tic-tac-toe game for the terminal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"tictactoe-term/config"
	"tictactoe-term/game"
	"tictactoe-term/ui"
)

func main() {
	if err := run(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// run owns the terminal for the life of the game. The screen is released
// before run returns, so errors can be printed to a normal terminal.
func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}

	logger, closeLog := initLogger(cfg)
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	logger.Info("game started")
	loop := ui.NewLoop(screen, game.New(), ui.NewBoardView(cfg.Theme), logger)
	if err := loop.Run(); err != nil {
		logger.Error("game aborted", "err", err)
		return err
	}
	return nil
}

// initLogger opens the log file under the XDG state directory. The terminal
// belongs to the game, so logs never go to stdout or stderr.
func initLogger(cfg *config.Config) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: cfg.Log.ParsedLevel()}
	session := uuid.NewString()

	path, err := config.LogPath()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, opts)).With("session", session)
	return logger, func() { f.Close() }
}

func printError(err error) {
	out := termenv.NewOutput(os.Stderr)
	msg := out.String(fmt.Sprintf("tictactoe-term: %s", err)).Foreground(out.Color("1"))
	fmt.Fprintln(out, msg)
}
