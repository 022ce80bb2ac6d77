package view

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
	"github.com/iw2rmb/postcursor/resolve"
	"github.com/iw2rmb/postcursor/surface"
)

// PostLoadedMsg replaces the displayed post.
type PostLoadedMsg struct {
	Post *post.Post
}

// LoadErrorMsg reports a failed reload; the current post stays on screen.
type LoadErrorMsg struct {
	Err error
}

// Model is a Bubble Tea component that renders a post and a cursor range.
type Model struct {
	cfg      Config
	log      *slog.Logger
	post     *post.Post
	tree     *surface.Tree
	resolver *resolve.Resolver
	lines    []line

	sel     cursor.Range
	focused bool
	status  string

	viewport viewport.Model
	help     help.Model
	width    int
	height   int

	mouseDragging bool
	mouseAnchor   cursor.Position
}

func New(cfg Config) Model {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		cfg:      cfg,
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.load(cfg.Post)
	if pos, ok := cursor.PostHead(m.post); ok {
		m.sel = cursor.Caret(pos)
	}
	m.rebuildContent()
	return m
}

func (m *Model) load(p *post.Post) {
	if p == nil {
		p = post.New()
	}
	m.post = p
	m.tree = surface.Render(p)
	m.resolver = resolve.New(m.tree, resolve.WithLogger(m.log))
	m.lines = buildLines(m.tree)
}

func (m Model) Post() *post.Post { return m.post }

func (m Model) Tree() *surface.Tree { return m.tree }

// Cursor returns the focus end of the selection.
func (m Model) Cursor() cursor.Position { return m.sel.Focus }

func (m Model) Selection() cursor.Range { return m.sel }

// SetCursor collapses the selection onto pos.
func (m Model) SetCursor(pos cursor.Position) Model {
	m.sel = cursor.Caret(pos)
	m.rebuildContent()
	m.followCursor()
	return m
}

// SetPost replaces the post. Positions into the old post are re-resolved by
// leaf index and clamped offset.
func (m Model) SetPost(p *post.Post) Model {
	anchor, focus := m.sel.Anchor, m.sel.Focus
	m.load(p)
	m.sel = cursor.NewRange(m.carry(anchor), m.carry(focus))
	m.status = ""
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m *Model) carry(pos cursor.Position) cursor.Position {
	n := m.post.LeafCount()
	if n == 0 {
		return cursor.Position{}
	}
	idx := 0
	if !pos.IsBlank() {
		idx = clampInt(pos.LeafIndex(), 0, n-1)
	}
	leaf, _ := m.post.LeafAt(idx)
	out, err := cursor.New(leaf, min(pos.Offset(), leaf.Length()))
	if err != nil {
		head, _ := cursor.Head(leaf)
		return head
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = m.height
	if m.cfg.ShowStatus && m.viewport.Height > 0 {
		m.viewport.Height--
	}
	m.help.Width = m.width

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case PostLoadedMsg:
		return m.SetPost(msg.Post), nil
	case LoadErrorMsg:
		m.status = "reload failed: " + msg.Err.Error()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the focus line into view.
func (m *Model) followCursor() {
	row, ok := m.lineIndex(m.sel.Focus.Section())
	if !ok {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *Model) lineIndex(s *post.Section) (int, bool) {
	if s == nil {
		return 0, false
	}
	for i, ln := range m.lines {
		if ln.section == s {
			return i, true
		}
	}
	return 0, false
}
