package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
)

const testDoc = `
sections:
  - markup: p
    markers:
      - text: "ab "
      - atom: mention
        value: "@bob"
  - card: image
  - list: ul
    items:
      - text: "cd"
`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "post.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(t *testing.T, doc string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Document.Path = writeDoc(t, doc)
	var out bytes.Buffer
	a, err := New(WithConfig(cfg), WithOutput(&out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, &out
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestParseLocation(t *testing.T) {
	p := post.WithText("abc", "de")

	cases := []struct {
		in   string
		leaf int
		off  int
	}{
		{in: "head", leaf: 0, off: 0},
		{in: "", leaf: 0, off: 0},
		{in: "TAIL", leaf: 1, off: 2},
		{in: "0:2", leaf: 0, off: 2},
		{in: " 1 : 1 ", leaf: 1, off: 1},
	}
	for _, tc := range cases {
		pos, err := ParseLocation(p, tc.in)
		if err != nil {
			t.Fatalf("ParseLocation(%q): %v", tc.in, err)
		}
		if pos.LeafIndex() != tc.leaf || pos.Offset() != tc.off {
			t.Fatalf("ParseLocation(%q)=%v, want %d:%d", tc.in, pos, tc.leaf, tc.off)
		}
	}

	for _, in := range []string{"x", "a:1", "0:b", "5:0"} {
		if _, err := ParseLocation(p, in); !errors.Is(err, ErrBadLocation) {
			t.Fatalf("ParseLocation(%q): err=%v, want ErrBadLocation", in, err)
		}
	}
	if _, err := ParseLocation(p, "0:9"); !errors.Is(err, cursor.ErrOffsetOutOfRange) {
		t.Fatalf("out of range offset: err=%v", err)
	}
	if _, err := ParseLocation(post.New(), "head"); !errors.Is(err, ErrBadLocation) {
		t.Fatalf("empty post: err=%v", err)
	}
}

func TestParsePath(t *testing.T) {
	got, err := ParsePath("1, 0,2")
	if err != nil || len(got) != 3 || got[0] != 1 || got[1] != 0 || got[2] != 2 {
		t.Fatalf("ParsePath=%v,%v", got, err)
	}
	if got, err := ParsePath(""); err != nil || got != nil {
		t.Fatalf("empty path=%v,%v", got, err)
	}
	if _, err := ParsePath("1,x"); !errors.Is(err, ErrBadLocation) {
		t.Fatalf("bad path err=%v", err)
	}
}

func TestSnippet(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("ab"), post.Atom("mention", "@bob"), post.Text("🙈c")),
		post.Card("image", nil),
	)
	para, card := p.Sections[0], p.Sections[1]

	cases := []struct {
		pos  cursor.Position
		want string
	}{
		{pos: cursor.MustNew(para, 0), want: "|ab{@bob}🙈c"},
		{pos: cursor.MustNew(para, 2), want: "ab|{@bob}🙈c"},
		{pos: cursor.MustNew(para, 3), want: "ab{@bob}|🙈c"},
		{pos: cursor.MustNew(para, 5), want: "ab{@bob}🙈|c"},
		{pos: cursor.MustNew(para, 6), want: "ab{@bob}🙈c|"},
		{pos: cursor.MustNew(card, 0), want: "|[image]"},
		{pos: cursor.MustNew(card, 1), want: "[image]|"},
	}
	for _, tc := range cases {
		if got := Snippet(tc.pos); got != tc.want {
			t.Fatalf("Snippet(%v)=%q, want %q", tc.pos, got, tc.want)
		}
	}
	if got := FormatPosition(cursor.Position{}); got != "blank" {
		t.Fatalf("blank format=%q", got)
	}
}

func TestWalk_VisitsEveryStop(t *testing.T) {
	a, out := newTestApp(t, testDoc)
	if err := a.Walk(WalkOptions{Direction: cursor.Forward}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	lines := outputLines(out)
	// "ab " + atom = 5 stops, card 2, item 3.
	if len(lines) != 10 {
		t.Fatalf("stops=%d, want 10:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "|ab {@bob}") || !strings.HasSuffix(lines[9], "cd|") {
		t.Fatalf("unexpected walk:\n%s", out)
	}
}

func TestWalk_WordsBackward(t *testing.T) {
	a, out := newTestApp(t, testDoc)
	if err := a.Walk(WalkOptions{Direction: cursor.Backward, Word: true}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	lines := outputLines(out)
	if !strings.HasSuffix(lines[0], "cd|") || !strings.HasSuffix(lines[len(lines)-1], "|ab {@bob}") {
		t.Fatalf("unexpected word walk:\n%s", out)
	}
}

func TestMove(t *testing.T) {
	cases := []struct {
		opts MoveOptions
		want string
	}{
		{opts: MoveOptions{At: "0:0", Direction: cursor.Forward, Units: 2}, want: "0:2"},
		{opts: MoveOptions{At: "0:4", Direction: cursor.Forward, Units: 1}, want: "1:0"},
		{opts: MoveOptions{At: "1:0", Direction: cursor.Forward, Units: 1}, want: "1:1"},
		{opts: MoveOptions{At: "head", Direction: cursor.Forward, Word: true}, want: "0:2"},
		{opts: MoveOptions{At: "tail", Direction: cursor.Backward, Word: true, Units: 2}, want: "1:0"},
	}
	for _, tc := range cases {
		a, out := newTestApp(t, testDoc)
		if err := a.Move(tc.opts); err != nil {
			t.Fatalf("Move(%+v): %v", tc.opts, err)
		}
		if got := out.String(); !strings.HasPrefix(got, tc.want+"\t") {
			t.Fatalf("Move(%+v)=%q, want prefix %q", tc.opts, got, tc.want)
		}
	}

	a, _ := newTestApp(t, testDoc)
	if err := a.Move(MoveOptions{At: "nope"}); !errors.Is(err, ErrBadLocation) {
		t.Fatalf("bad location err=%v", err)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		opts ResolveOptions
		want string
	}{
		{opts: ResolveOptions{Path: nil, Offset: 0}, want: "0:0"},
		{opts: ResolveOptions{Path: nil, Offset: 1}, want: "2:2"},
		{opts: ResolveOptions{Path: []int{0, 0}, Offset: 2}, want: "0:2"},
		{opts: ResolveOptions{Path: []int{0, 1}, Offset: 1}, want: "0:4"},
		{opts: ResolveOptions{Path: []int{1, 0}, Offset: 0}, want: "1:0"},
		{opts: ResolveOptions{Path: []int{1, 2}, Offset: 0}, want: "1:1"},
		{opts: ResolveOptions{Path: []int{2}, Offset: 0}, want: "2:0"},
	}
	for _, tc := range cases {
		a, out := newTestApp(t, testDoc)
		if err := a.Resolve(tc.opts); err != nil {
			t.Fatalf("Resolve(%+v): %v", tc.opts, err)
		}
		if got := out.String(); !strings.HasPrefix(got, tc.want+"\t") {
			t.Fatalf("Resolve(%+v)=%q, want prefix %q", tc.opts, got, tc.want)
		}
	}

	a, out := newTestApp(t, testDoc)
	if err := a.Resolve(ResolveOptions{Path: []int{0}, Dump: true}); err != nil {
		t.Fatalf("Resolve dump: %v", err)
	}
	if !strings.HasPrefix(out.String(), "div\n") {
		t.Fatalf("dump should come first, got %q", out.String())
	}

	a, _ = newTestApp(t, testDoc)
	if err := a.Resolve(ResolveOptions{Path: []int{9}}); !errors.Is(err, ErrBadLocation) {
		t.Fatalf("missing node err=%v", err)
	}
}

func TestLoadPost_RequiresPath(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.LoadPost(); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("err=%v, want ErrNoDocument", err)
	}
	if err := a.Walk(WalkOptions{Direction: cursor.Forward}); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("walk err=%v, want ErrNoDocument", err)
	}
}
