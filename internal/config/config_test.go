package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Batch Prefix Renamer", cfg.Title)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Greater(t, cfg.WindowWidth, 2*cfg.ColumnWidth)
	assert.Positive(t, cfg.TableHeight)
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Title = "changed"
	assert.NotEqual(t, a.Title, Default().Title)
}
