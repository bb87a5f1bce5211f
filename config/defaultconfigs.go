package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			CellFG:   15,
			CellBG:   0,
			CursorFG: 0,
			CursorBG: 15,
			Status:   15,
			Hint:     8,
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: "info",
		},
	}
}
