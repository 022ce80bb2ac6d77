// Package app wires configuration, logging and the post cursor packages into
// the postcursor commands.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
)

var (
	ErrNoDocument  = errors.New("no document path configured")
	ErrBadLocation = errors.New("bad location")
)

// App runs postcursor commands against one configuration.
type App struct {
	config *Config
	out    io.Writer
	log    *slog.Logger
}

// New builds an App. Without WithConfig the default config is used.
func New(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.config == nil {
		a.config = NewDefaultConfig()
	}
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	return a, nil
}

func (a *App) Config() *Config { return a.config }

func (a *App) Logger() *slog.Logger { return a.log }

// LoadPost reads the configured document.
func (a *App) LoadPost() (*post.Post, error) {
	path := a.config.Document.Path
	if path == "" {
		return nil, ErrNoDocument
	}
	p, err := post.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("Document loaded",
		slog.String("path", path),
		slog.Int("sections", len(p.Sections)),
		slog.Int("leaves", p.LeafCount()))
	return p, nil
}

// ParseLocation parses "head", "tail" or "LEAF:OFFSET" into a position of p.
func ParseLocation(p *post.Post, s string) (cursor.Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "head":
		if pos, ok := cursor.PostHead(p); ok {
			return pos, nil
		}
		return cursor.Position{}, fmt.Errorf("%w: post has no leaf sections", ErrBadLocation)
	case "tail":
		if pos, ok := cursor.PostTail(p); ok {
			return pos, nil
		}
		return cursor.Position{}, fmt.Errorf("%w: post has no leaf sections", ErrBadLocation)
	}

	leafStr, offStr, ok := strings.Cut(s, ":")
	if !ok {
		return cursor.Position{}, fmt.Errorf("%w %q: want head, tail or LEAF:OFFSET", ErrBadLocation, s)
	}
	leaf, err := strconv.Atoi(strings.TrimSpace(leafStr))
	if err != nil {
		return cursor.Position{}, fmt.Errorf("%w %q: leaf: %w", ErrBadLocation, s, err)
	}
	off, err := strconv.Atoi(strings.TrimSpace(offStr))
	if err != nil {
		return cursor.Position{}, fmt.Errorf("%w %q: offset: %w", ErrBadLocation, s, err)
	}
	section, ok := p.LeafAt(leaf)
	if !ok {
		return cursor.Position{}, fmt.Errorf("%w %q: post has %d leaves", ErrBadLocation, s, p.LeafCount())
	}
	return cursor.New(section, off)
}

// ParsePath parses a comma separated child index path such as "1,0,2".
func ParsePath(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: node path %q: %w", ErrBadLocation, s, err)
		}
		out = append(out, i)
	}
	return out, nil
}

// FormatPosition renders pos as "LEAF:OFFSET section  snippet", where the
// snippet marks the cursor with '|' and shows atoms in braces.
func FormatPosition(pos cursor.Position) string {
	if pos.IsBlank() {
		return "blank"
	}
	return fmt.Sprintf("%d:%d\t%s\t%s", pos.LeafIndex(), pos.Offset(), pos.Section(), Snippet(pos))
}

// Snippet renders the section text with a bar at the cursor.
func Snippet(pos cursor.Position) string {
	s := pos.Section()
	if s == nil {
		return ""
	}
	if s.IsCard() {
		label := "[" + s.Tag + "]"
		if pos.IsHead() {
			return "|" + label
		}
		return label + "|"
	}

	var b strings.Builder
	at := pos.Offset()
	written := false
	off := 0
	for _, m := range s.Markers {
		if m.IsAtom() {
			if !written && at == off {
				b.WriteByte('|')
				written = true
			}
			b.WriteString("{" + m.Value + "}")
			off++
			continue
		}
		if !written && at >= off && at < off+m.Length() {
			i, _ := s.ByteOffset(at)
			j, _ := s.ByteOffset(off)
			cut := i - j
			b.WriteString(m.Value[:cut])
			b.WriteByte('|')
			b.WriteString(m.Value[cut:])
			written = true
		} else {
			b.WriteString(m.Value)
		}
		off += m.Length()
	}
	if !written {
		b.WriteByte('|')
	}
	return b.String()
}
