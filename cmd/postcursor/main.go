package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/iw2rmb/postcursor"
	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/internal/app"
	pkgconfig "github.com/iw2rmb/postcursor/pkg/config"
)

// newApp loads the config named by the global flags and builds the app.
// Interactive commands keep the terminal free of log output.
func newApp(cmd *cli.Command, interactive bool) (*app.App, func(), error) {
	cfg := app.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc := cmd.String("document"); doc != "" {
		cfg.Document.Path = doc
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = nil
	}
	logger, closer, err := app.NewLogger(cfg.App, fallback)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)

	a, err := app.New(app.WithConfig(cfg), app.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return a, func() { _ = closer.Close() }, nil
}

func direction(cmd *cli.Command) (cursor.Direction, error) {
	return cursor.ParseDirection(cmd.String("dir"))
}

func walk(_ context.Context, cmd *cli.Command) error {
	a, done, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer done()
	dir := cursor.Forward
	if cmd.Bool("backward") {
		dir = cursor.Backward
	}
	return a.Walk(app.WalkOptions{Direction: dir, Word: cmd.Bool("word")})
}

func move(word bool) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		a, done, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer done()
		dir, err := direction(cmd)
		if err != nil {
			return err
		}
		return a.Move(app.MoveOptions{
			At:        cmd.String("at"),
			Direction: dir,
			Units:     int(cmd.Int("units")),
			Word:      word,
		})
	}
}

func resolveNode(_ context.Context, cmd *cli.Command) error {
	a, done, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer done()
	path, err := app.ParsePath(cmd.String("node"))
	if err != nil {
		return err
	}
	return a.Resolve(app.ResolveOptions{
		Path:   path,
		Offset: int(cmd.Int("offset")),
		Dump:   cmd.Bool("dump"),
	})
}

func viewPost(ctx context.Context, cmd *cli.Command) error {
	a, done, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer done()
	return a.View(ctx, app.ViewOptions{Watch: cmd.Bool("watch")})
}

// moveFlags returns fresh flags for each command that moves a cursor.
func moveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "at", Usage: "Start location: head, tail or LEAF:OFFSET", Value: "head"},
		&cli.StringFlag{Name: "dir", Usage: "Direction: forward or backward", Value: "forward"},
		&cli.IntFlag{Name: "units", Aliases: []string{"n"}, Usage: "Number of steps", Value: 1},
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "postcursor",
		Usage:   "Explore logical cursor movement over structured rich-text posts",
		Version: postcursor.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("POSTCURSOR_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "document",
				Aliases: []string{"d"},
				Usage:   "Path to a post document (YAML)",
				Sources: cli.EnvVars("POSTCURSOR_DOCUMENT"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the configured log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "walk",
				Usage: "Print every cursor stop from one end of the post to the other",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "backward", Aliases: []string{"b"}, Usage: "Walk from the tail"},
					&cli.BoolFlag{Name: "word", Aliases: []string{"w"}, Usage: "Stop at word boundaries"},
				},
				Action: walk,
			},
			{
				Name:   "move",
				Usage:  "Move the cursor by units",
				Flags:  moveFlags(),
				Action: move(false),
			},
			{
				Name:   "word",
				Usage:  "Move the cursor by words",
				Flags:  moveFlags(),
				Action: move(true),
			},
			{
				Name:  "resolve",
				Usage: "Resolve a rendered surface location into a position",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "node", Usage: "Child index path from the surface root, e.g. 1,0"},
					&cli.IntFlag{Name: "offset", Usage: "Offset inside the node"},
					&cli.BoolFlag{Name: "dump", Usage: "Print the rendered surface first"},
				},
				Action: resolveNode,
			},
			{
				Name:  "view",
				Usage: "Open the post in the terminal viewer",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "watch", Usage: "Reload the post when the file changes"},
				},
				Action: viewPost,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
