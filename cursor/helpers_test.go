package cursor

import (
	"strings"
	"testing"

	"github.com/iw2rmb/postcursor/post"
)

// splitBar splits bar notation ("ab|c") into text and cursor offset.
func splitBar(t *testing.T, s string) (string, int) {
	t.Helper()
	i := strings.Index(s, "|")
	if i < 0 {
		t.Fatalf("no cursor bar in %q", s)
	}
	return s[:i] + s[i+1:], i
}

// atomPost builds a single-paragraph post where every 'A' is an atom and
// everything else is text.
func atomPost(text string) *post.Post {
	var markers []*post.Marker
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			markers = append(markers, post.Text(run.String()))
			run.Reset()
		}
	}
	for _, r := range text {
		if r == 'A' {
			flush()
			markers = append(markers, post.Atom("the-atom", "@atom"))
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return post.New(post.Paragraph(markers...))
}

func mustPos(t *testing.T, s *post.Section, offset int) Position {
	t.Helper()
	p, err := New(s, offset)
	if err != nil {
		t.Fatalf("New(%v, %d): %v", s, offset, err)
	}
	return p
}

func mustHead(t *testing.T, s *post.Section) Position {
	t.Helper()
	p, err := Head(s)
	if err != nil {
		t.Fatalf("Head(%v): %v", s, err)
	}
	return p
}

func mustTail(t *testing.T, s *post.Section) Position {
	t.Helper()
	p, err := Tail(s)
	if err != nil {
		t.Fatalf("Tail(%v): %v", s, err)
	}
	return p
}

func assertPos(t *testing.T, got, want Position, msg string) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
}

// allPositions walks p forward one unit at a time from its head.
func allPositions(t *testing.T, p *post.Post) []Position {
	t.Helper()
	pos, ok := PostHead(p)
	if !ok {
		t.Fatalf("post has no leaves")
	}
	out := []Position{pos}
	for !pos.IsTailOfPost() {
		next := pos.Move(Forward)
		if next.Equal(pos) {
			t.Fatalf("forward walk stuck at %v", pos)
		}
		pos = next
		out = append(out, pos)
	}
	return out
}
