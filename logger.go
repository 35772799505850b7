package foxlang

import (
	"io"
	"log/slog"
	"strings"

	"github.com/midbel/foxlang/config"
)

// NewLogger builds a logger with the level and format of cfg.
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, &opts)
	} else {
		handler = slog.NewTextHandler(w, &opts)
	}
	return slog.New(handler), nil
}
