package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "tictactoe/config.json"
	logFile = "tictactoe/tictactoe.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds 256-color palette indices.
type ConfigColors struct {
	CellFG   int `json:"cell_fg"`
	CellBG   int `json:"cell_bg"`
	CursorFG int `json:"cursor_fg"`
	CursorBG int `json:"cursor_bg"`
	Status   int `json:"status"`
	Hint     int `json:"hint"`
}

type Theme struct {
	Colors ConfigColors `json:"colors"`
}

// LogConfig controls the debug log written under the XDG state directory.
type LogConfig struct {
	Level string `json:"level"`
}

type Config struct {
	Theme Theme     `json:"theme"`
	Log   LogConfig `json:"log"`
}

// InitConfig returns the defaults, overlaid with the user's config file if
// one exists.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	colors := c.Theme.Colors
	for _, v := range []int{colors.CellFG, colors.CellBG, colors.CursorFG, colors.CursorBG, colors.Status, colors.Hint} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", v)}
		}
	}
	if colors.CursorFG == colors.CursorBG {
		return &InvalidConfig{"cursor_fg and cursor_bg must differ"}
	}
	if colors.CursorFG == colors.CellFG && colors.CursorBG == colors.CellBG {
		return &InvalidConfig{"cursor colors must differ from cell colors"}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// ParsedLevel returns the parsed log level. After Validate it cannot fail, so an
// unparseable value falls back to info.
func (l LogConfig) ParsedLevel() slog.Level {
	level, err := l.SlogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// Style returns the style for a cell, highlighted or not.
func (t Theme) Style(cursor bool) tcell.Style {
	if cursor {
		return tcell.StyleDefault.
			Foreground(tcell.PaletteColor(t.Colors.CursorFG)).
			Background(tcell.PaletteColor(t.Colors.CursorBG))
	}
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(t.Colors.CellFG)).
		Background(tcell.PaletteColor(t.Colors.CellBG))
}

// LogPath returns the log file location, creating its directory.
func LogPath() (string, error) {
	return xdg.StateFile(logFile)
}

func readCfgFile(filePath string, a interface{}) error {
	if err := cleanenv.ReadConfig(filePath, a); err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	return nil
}
