// Package config holds the compile-time defaults shared by the front ends.
// Nothing is read from disk or the environment.
package config

import "log/slog"

// Config holds application settings.
type Config struct {
	AppID string
	Title string

	WindowWidth  float32
	WindowHeight float32
	ColumnWidth  float32

	// TableHeight is the number of rows the terminal preview and folder
	// picker show at once.
	TableHeight int

	LogLevel    slog.Level
	LogFileName string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppID:        "com.blackarck.prefixren",
		Title:        "Batch Prefix Renamer",
		WindowWidth:  700,
		WindowHeight: 420,
		ColumnWidth:  320,
		TableHeight:  12,
		LogLevel:     slog.LevelInfo,
		LogFileName:  "prefixren.log",
	}
}
