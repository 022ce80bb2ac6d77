package app

import (
	"fmt"
	"log/slog"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/resolve"
	"github.com/iw2rmb/postcursor/surface"
)

// WalkOptions configures Walk.
type WalkOptions struct {
	Direction cursor.Direction
	// Word walks word boundaries instead of single units.
	Word bool
}

// Walk prints every stop from one post edge to the other.
func (a *App) Walk(opts WalkOptions) error {
	p, err := a.LoadPost()
	if err != nil {
		return err
	}
	start, ok := cursor.PostHead(p)
	if opts.Direction == cursor.Backward {
		start, ok = cursor.PostTail(p)
	}
	if !ok {
		a.log.Warn("Nothing to walk", slog.String("path", a.config.Document.Path))
		return nil
	}

	stops := 0
	for pos := start; ; stops++ {
		fmt.Fprintln(a.out, FormatPosition(pos))
		next := pos.Move(opts.Direction)
		if opts.Word {
			next = pos.MoveWord(opts.Direction)
		}
		if next.Equal(pos) {
			break
		}
		pos = next
	}
	a.log.Debug("Walk finished",
		slog.String("direction", opts.Direction.String()),
		slog.Bool("word", opts.Word),
		slog.Int("stops", stops+1))
	return nil
}

// MoveOptions configures Move.
type MoveOptions struct {
	At        string
	Direction cursor.Direction
	Units     int
	Word      bool
}

// Move prints the position reached from opts.At.
func (a *App) Move(opts MoveOptions) error {
	p, err := a.LoadPost()
	if err != nil {
		return err
	}
	from, err := ParseLocation(p, opts.At)
	if err != nil {
		return err
	}

	to := from
	switch {
	case opts.Word:
		for range max(opts.Units, 1) {
			to = to.MoveWord(opts.Direction)
		}
	default:
		to = from.MoveN(opts.Direction, opts.Units)
	}
	a.log.Debug("Moved",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("direction", opts.Direction.String()),
		slog.Bool("word", opts.Word))
	fmt.Fprintln(a.out, FormatPosition(to))
	return nil
}

// ResolveOptions configures Resolve.
type ResolveOptions struct {
	// Path addresses the node by child indexes from the surface root.
	Path   []int
	Offset int
	// Dump prints the rendered surface before the result.
	Dump bool
}

// Resolve renders the document and resolves a surface location.
func (a *App) Resolve(opts ResolveOptions) error {
	p, err := a.LoadPost()
	if err != nil {
		return err
	}
	tree := surface.Render(p)
	if opts.Dump {
		fmt.Fprint(a.out, tree.Dump())
	}

	node, ok := tree.NodeAtPath(opts.Path...)
	if !ok {
		return fmt.Errorf("%w: no surface node at %v", ErrBadLocation, opts.Path)
	}
	pos, err := resolve.New(tree, resolve.WithLogger(a.log)).FromNode(node, opts.Offset)
	if err != nil {
		return fmt.Errorf("resolve %v@%d: %w", opts.Path, opts.Offset, err)
	}
	fmt.Fprintln(a.out, FormatPosition(pos))
	return nil
}
