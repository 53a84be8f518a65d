package config

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keys: KeysConfig{
			Previous: []string{"h", "left"},
			Next:     []string{"l", "right"},
			Quit:     []string{"q", "ctrl+c"},
			Help:     []string{"?"},
		},
		Display: DisplayConfig{
			CellWidth:        8,
			ShowStatus:       true,
			ShowProgress:     true,
			StatusForeground: "15",
			StatusBackground: "240",
		},
		Export: ExportConfig{
			Width:      1920,
			Height:     1080,
			Background: "#ffffff",
			Foreground: "#1a1a1a",
			Output:     "slides",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
