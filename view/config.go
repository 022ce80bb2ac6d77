package view

import (
	"log/slog"

	"github.com/iw2rmb/postcursor/post"
)

// Config configures the viewer Model.
type Config struct {
	// Post is the document to display. A nil post renders nothing.
	Post *post.Post

	// Rendering options.
	ShowLeafNums bool
	ShowStatus   bool
	Style        Style
	KeyMap       KeyMap

	// Logger receives resolver diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a config with the default style and key map.
func DefaultConfig(p *post.Post) Config {
	return Config{
		Post:       p,
		ShowStatus: true,
		Style:      DefaultStyle(),
		KeyMap:     DefaultKeyMap(),
	}
}
