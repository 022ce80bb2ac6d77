package cursor

import (
	"testing"

	"github.com/iw2rmb/postcursor/post"
)

func TestMove_WithinMarkupSection(t *testing.T) {
	p := post.WithText("abcd")
	s := p.Sections[0]
	pos := mustPos(t, s, 2)

	assertPos(t, pos.Move(Forward), mustPos(t, s, 3), "right position")
	assertPos(t, pos.Move(Backward), mustPos(t, s, 1), "left position")
}

func TestMove_EmojiAware(t *testing.T) {
	p := post.WithText("a🙈z")
	s := p.Sections[0]
	if got := s.Markers[0].Length(); got != 4 {
		t.Fatalf("marker length=%d, want 4", got)
	}

	pos := mustHead(t, s)
	wantForward := []int{1, 3, 4}
	for _, want := range wantForward {
		pos = pos.Move(Forward)
		if pos.Offset() != want {
			t.Fatalf("forward offset=%d, want %d", pos.Offset(), want)
		}
	}
	wantBackward := []int{3, 1, 0}
	for _, want := range wantBackward {
		pos = pos.Move(Backward)
		if pos.Offset() != want {
			t.Fatalf("backward offset=%d, want %d", pos.Offset(), want)
		}
	}
}

func TestMove_FromInsideSurrogatePairSnapsToBoundary(t *testing.T) {
	s := post.WithText("a🙈z").Sections[0]
	inside := mustPos(t, s, 2)

	assertPos(t, inside.Move(Forward), mustPos(t, s, 3), "forward out of pair")
	assertPos(t, inside.Move(Backward), mustPos(t, s, 1), "backward out of pair")
}

func TestMove_GraphemeClusters(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	s := post.WithText("e\u0301" + family + "x").Sections[0]

	pos := mustHead(t, s).Move(Forward)
	if pos.Offset() != 2 {
		t.Fatalf("combining sequence: offset=%d, want 2", pos.Offset())
	}
	pos = pos.Move(Forward)
	if pos.Offset() != 10 {
		t.Fatalf("zwj sequence: offset=%d, want 10", pos.Offset())
	}
	pos = pos.Move(Backward)
	if pos.Offset() != 2 {
		t.Fatalf("zwj sequence backward: offset=%d, want 2", pos.Offset())
	}
}

func TestMove_AtomIsOneUnit(t *testing.T) {
	p := atomPost("aAb")
	s := p.Sections[0]

	pos := mustPos(t, s, 1).Move(Forward)
	assertPos(t, pos, mustPos(t, s, 2), "over atom")
	assertPos(t, pos.Move(Backward), mustPos(t, s, 1), "back over atom")
}

func TestMove_MarkerBoundaryBreaksCluster(t *testing.T) {
	// The combining mark lives in its own marker and is stepped separately.
	s := post.New(post.Paragraph(post.Text("e"), post.Text("\u0301", "b"))).Sections[0]
	pos := mustHead(t, s).Move(Forward)
	if pos.Offset() != 1 {
		t.Fatalf("offset=%d, want 1", pos.Offset())
	}
}

func TestMove_BetweenMarkupSections(t *testing.T) {
	p := post.WithText("a", "b", "c")
	mid := p.Sections[1]

	assertPos(t, mustHead(t, mid).Move(Backward), mustTail(t, p.Sections[0]), "left to prev section")
	assertPos(t, mustTail(t, mid).Move(Forward), mustHead(t, p.Sections[2]), "right to next section")
}

func TestMove_BetweenNestedSections(t *testing.T) {
	p := post.New(post.List("ul",
		post.Item(post.Text("a")),
		post.Item(post.Text("b")),
		post.Item(post.Text("c")),
	))
	items := p.Sections[0].Items

	assertPos(t, mustHead(t, items[1]).Move(Backward), mustTail(t, items[0]), "left to prev item")
	assertPos(t, mustTail(t, items[1]).Move(Forward), mustHead(t, items[2]), "right to next item")
}

func TestMove_FromNestedToUnnested(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("a")),
		post.List("ul", post.Item(post.Text("b"))),
		post.Paragraph(post.Text("c")),
	)
	item := p.Sections[1].Items[0]

	assertPos(t, mustHead(t, item).Move(Backward), mustTail(t, p.Sections[0]), "left to prev section")
	assertPos(t, mustTail(t, item).Move(Forward), mustHead(t, p.Sections[2]), "right to next section")
}

func TestMove_AcrossCard(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("a")),
		post.Card("my-card", nil),
		post.Paragraph(post.Text("c")),
	)
	card := p.Sections[1]
	cardHead, cardTail := mustHead(t, card), mustTail(t, card)

	assertPos(t, cardHead.Move(Backward), mustTail(t, p.Sections[0]), "left to prev section")
	assertPos(t, cardTail.Move(Forward), mustHead(t, p.Sections[2]), "right to next section")
	assertPos(t, cardHead.Move(Forward), cardTail, "l-to-r across card")
	assertPos(t, cardTail.Move(Backward), cardHead, "r-to-l across card")
}

func TestMove_AcrossCardIntoLists(t *testing.T) {
	p := post.New(
		post.List("ul", post.Item(post.Text("a1")), post.Item(post.Text("a2"))),
		post.Card("my-card", nil),
		post.List("ul", post.Item(post.Text("c1")), post.Item(post.Text("c2"))),
	)
	card := p.Sections[1]

	assertPos(t, mustHead(t, card).Move(Backward), mustTail(t, p.Sections[0].Items[1]), "left into list")
	assertPos(t, mustTail(t, card).Move(Forward), mustHead(t, p.Sections[2].Items[0]), "right into list")
}

func TestMove_SkipsEmptyContainers(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("a")),
		post.List("ul"),
		post.Paragraph(post.Text("b")),
	)
	assertPos(t, mustTail(t, p.Sections[0]).Move(Forward), mustHead(t, p.Sections[2]), "over empty list")
}

func TestMove_NoOpAtPostEdges(t *testing.T) {
	p := post.WithText("abc", "def")
	head, _ := PostHead(p)
	tail, _ := PostTail(p)

	assertPos(t, head.Move(Backward), head, "head move left is head")
	assertPos(t, tail.Move(Forward), tail, "tail move right is tail")
	assertPos(t, head.MoveN(Backward, 5), head, "head multi-move left is head")
}

func TestMoveN_MultipleUnits(t *testing.T) {
	p := post.WithText("abc", "def")
	head, _ := PostHead(p)
	tail, _ := PostTail(p)
	units := len("abc") + 1 + len("def")

	assertPos(t, head.MoveN(Forward, units), tail, "head can move to tail")
	assertPos(t, tail.MoveN(Backward, units), head, "tail can move to head")
	assertPos(t, tail.MoveN(Forward, -units), head, "negative units reverse direction")
	assertPos(t, head.MoveN(Forward, units+10), tail, "overshoot stops at tail")

	for _, dir := range []Direction{Forward, Backward} {
		assertPos(t, head.MoveN(dir, 0), head, "MoveN(0) is a no-op")
		mid := mustPos(t, p.Sections[0], 2)
		assertPos(t, mid.MoveN(dir, 0), mid, "MoveN(0) is a no-op")
	}
}

func TestMoveN_MatchesRepeatedMove(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("a🙈"), post.Atom("x", "@x")),
		post.Card("image", nil),
		post.List("ul", post.Item(post.Text("z"))),
	)
	head, _ := PostHead(p)
	want := head
	for i := 1; i <= 8; i++ {
		want = want.Move(Forward)
		assertPos(t, head.MoveN(Forward, i), want, "MoveN vs repeated Move")
	}
}

func TestMove_RoundTripEveryPosition(t *testing.T) {
	p := post.New(
		post.Paragraph(post.Text("ab🙈"), post.Atom("mention", "@bob"), post.Text("")),
		post.Card("image", nil),
		post.List("ul", post.Item(post.Text("éx")), post.Item()),
		post.Paragraph(),
		post.Card("video", nil),
	)

	for _, pos := range allPositions(t, p) {
		if !pos.IsTailOfPost() {
			assertPos(t, pos.Move(Forward).Move(Backward), pos, "forward then backward")
		}
		if !pos.IsHeadOfPost() {
			assertPos(t, pos.Move(Backward).Move(Forward), pos, "backward then forward")
		}
	}
}

func TestMove_NeverLandsInsideSurrogatePair(t *testing.T) {
	p := post.WithText("🙈🙉 x🙊")

	var got []int
	for _, pos := range allPositions(t, p) {
		got = append(got, pos.Offset())
	}
	want := []int{0, 2, 4, 5, 6, 8}
	if len(got) != len(want) {
		t.Fatalf("offsets=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offsets=%v, want %v", got, want)
		}
	}
}
