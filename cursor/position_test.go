package cursor

import (
	"errors"
	"strings"
	"testing"

	"github.com/iw2rmb/postcursor/post"
)

func TestNew_RejectsContainerSection(t *testing.T) {
	p := post.New(post.List("ul", post.Item(post.Text("a")), post.Item(post.Text("b"))))

	_, err := New(p.Sections[0], 0)
	if !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("err=%v, want ErrInvalidSection", err)
	}
	var ise *InvalidSectionError
	if !errors.As(err, &ise) || ise.Section != p.Sections[0] {
		t.Fatalf("err=%v, want *InvalidSectionError for the list", err)
	}

	if _, err := New(nil, 0); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("nil section err=%v, want ErrInvalidSection", err)
	}
}

func TestNew_OffsetRange(t *testing.T) {
	p := post.New(post.Paragraph(post.Text("abc")), post.Card("image", nil))
	para, card := p.Sections[0], p.Sections[1]

	for _, off := range []int{0, 1, 3} {
		if _, err := New(para, off); err != nil {
			t.Fatalf("New(para, %d): %v", off, err)
		}
	}
	for _, off := range []int{-1, 4} {
		_, err := New(para, off)
		if !errors.Is(err, ErrOffsetOutOfRange) {
			t.Fatalf("New(para, %d) err=%v, want ErrOffsetOutOfRange", off, err)
		}
		var oor *OffsetOutOfRangeError
		if !errors.As(err, &oor) || oor.Offset != off || oor.Length != 3 {
			t.Fatalf("err=%#v", err)
		}
	}
	if _, err := New(card, 1); err != nil {
		t.Fatalf("card tail: %v", err)
	}
	if _, err := New(card, 2); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("card offset 2 err=%v, want ErrOffsetOutOfRange", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustNew(post.List("ul"), 0)
}

func TestHeadTail_OfContainerUseLeaves(t *testing.T) {
	p := post.New(post.List("ul", post.Item(post.Text("a")), post.Item(post.Text("bc"))))
	list := p.Sections[0]

	head := mustHead(t, list)
	if head.Section() != list.Items[0] || head.Offset() != 0 {
		t.Fatalf("head=%v", head)
	}
	tail := mustTail(t, list)
	if tail.Section() != list.Items[1] || tail.Offset() != 2 {
		t.Fatalf("tail=%v", tail)
	}

	if _, err := Head(post.New(post.List("ol")).Sections[0]); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("head of empty list err=%v", err)
	}
}

func TestPostHeadTail(t *testing.T) {
	p := post.WithText("abc", "def")
	head, ok := PostHead(p)
	if !ok || !head.IsHeadOfPost() || head.IsTailOfPost() {
		t.Fatalf("head=%v ok=%v", head, ok)
	}
	tail, ok := PostTail(p)
	if !ok || !tail.IsTailOfPost() || tail.Section() != p.Sections[1] || tail.Offset() != 3 {
		t.Fatalf("tail=%v ok=%v", tail, ok)
	}
	if mustTail(t, p.Sections[0]).IsTailOfPost() {
		t.Fatalf("tail of first section is not the tail of the post")
	}

	if _, ok := PostHead(post.New()); ok {
		t.Fatalf("empty post has no head")
	}
	if _, ok := PostTail(post.New(post.List("ul"))); ok {
		t.Fatalf("post with an empty list has no tail")
	}
}

func TestCompare_DocumentOrder(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("ab")),
		post.List("ul", post.Item(post.Text("c"))),
		post.Card("image", nil),
	)
	a0 := mustPos(t, p.Sections[0], 0)
	a2 := mustPos(t, p.Sections[0], 2)
	c0 := mustPos(t, p.Sections[1].Items[0], 0)
	card := mustPos(t, p.Sections[2], 0)

	ordered := []Position{{}, a0, a2, c0, card}
	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Compare(ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Fatalf("Compare(%v, %v)=%d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
	if !a0.Before(a2) || !card.After(c0) {
		t.Fatalf("Before/After disagree with Compare")
	}
}

func TestEqual_SameSectionAndOffset(t *testing.T) {
	p := post.WithText("abc", "abc")
	a := mustPos(t, p.Sections[0], 1)
	if !a.Equal(mustPos(t, p.Sections[0], 1)) {
		t.Fatalf("equal positions compare unequal")
	}
	if a.Equal(mustPos(t, p.Sections[1], 1)) {
		t.Fatalf("positions in different sections with the same text must differ")
	}
}

func TestAccessors(t *testing.T) {
	p := post.New(post.Paragraph(post.Text("a"), post.Atom("mention", "@bob")), post.Paragraph(post.Text("z")))
	pos := mustPos(t, p.Sections[0], 1)

	if got := pos.LeafIndex(); got != 0 {
		t.Fatalf("leaf index=%d", got)
	}
	if got := mustPos(t, p.Sections[1], 0).LeafIndex(); got != 1 {
		t.Fatalf("leaf index=%d", got)
	}
	m, off, ok := pos.Marker(post.BiasRight)
	if !ok || !m.IsAtom() || off != 0 {
		t.Fatalf("marker right=%v,%d,%v", m, off, ok)
	}
	if !strings.Contains(pos.String(), "markup<p>[0]") {
		t.Fatalf("string=%q", pos.String())
	}

	var blank Position
	if !blank.IsBlank() || blank.IsHead() || blank.LeafIndex() != -1 {
		t.Fatalf("blank position accessors")
	}
	if !blank.Move(Forward).IsBlank() || !blank.MoveWord(Backward).IsBlank() {
		t.Fatalf("blank position must not move")
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"forward": Forward, "Right": Forward, "backward": Backward, " left ": Backward}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Fatalf("ParseDirection(%q)=%v,%v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Fatalf("expected error")
	}
	if Forward.Sign()*3 != 3 || Backward.Sign()*3 != -3 {
		t.Fatalf("direction signs")
	}
	if Forward.Reverse() != Backward || Backward.String() != "backward" {
		t.Fatalf("reverse/string")
	}
}
