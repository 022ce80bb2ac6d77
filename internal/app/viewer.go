package app

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/postcursor/post"
	"github.com/iw2rmb/postcursor/view"
)

// ViewOptions configures View.
type ViewOptions struct {
	// Watch reloads the document when it changes on disk.
	Watch bool

	// Input and Output replace the terminal; used by tests.
	Input  io.Reader
	Output io.Writer
}

type viewProgram struct {
	m view.Model
}

func (p viewProgram) Init() tea.Cmd { return p.m.Init() }

func (p viewProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.m, cmd = p.m.Update(msg)
	return p, cmd
}

func (p viewProgram) View() string { return p.m.View() }

// View runs the interactive viewer until the user quits or ctx is
// cancelled.
func (a *App) View(ctx context.Context, opts ViewOptions) error {
	p, err := a.LoadPost()
	if err != nil {
		return err
	}

	vc := a.config.View
	cfg := view.DefaultConfig(p)
	cfg.ShowLeafNums = vc.ShowLeafNums
	cfg.ShowStatus = vc.ShowStatus
	cfg.Logger = a.log

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	progOpts := []tea.ProgramOption{tea.WithContext(gCtx)}
	if vc.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if vc.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	prog := tea.NewProgram(viewProgram{m: view.New(cfg)}, progOpts...)

	if opts.Watch {
		g.Go(func() error {
			return WatchPost(gCtx, a.config.Document.Path, vc.ReloadDelay, a.log, func(p *post.Post, err error) {
				if err != nil {
					prog.Send(view.LoadErrorMsg{Err: err})
					return
				}
				prog.Send(view.PostLoadedMsg{Post: p})
			})
		})
	}

	g.Go(func() error {
		// Quitting the viewer stops the watcher.
		defer cancel()
		if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	return g.Wait()
}
