package app

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/iw2rmb/postcursor/post"
)

type reloadCall struct {
	post *post.Post
	err  error
}

func TestReloader_SkipsUnchangedContent(t *testing.T) {
	path := writeDoc(t, "sections:\n  - markup: p\n    text: one\n")
	var calls []reloadCall
	r := newReloader(path, slog.New(slog.DiscardHandler), func(p *post.Post, err error) {
		calls = append(calls, reloadCall{p, err})
	})

	r.reload()
	if len(calls) != 0 {
		t.Fatalf("unchanged file reported %d reloads", len(calls))
	}

	if err := os.WriteFile(path, []byte("sections:\n  - markup: p\n    text: two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r.reload()
	if len(calls) != 1 || calls[0].err != nil || calls[0].post.Sections[0].Text() != "two" {
		t.Fatalf("calls=%+v", calls)
	}

	if err := os.WriteFile(path, []byte("sections:\n  - bogus: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r.reload()
	if len(calls) != 2 || calls[1].err == nil {
		t.Fatalf("invalid document should report an error, calls=%+v", calls)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	r.reload()
	if len(calls) != 3 || calls[2].err == nil {
		t.Fatalf("missing document should report an error, calls=%+v", calls)
	}
}

func TestWatchPost_ReloadsOnWrite(t *testing.T) {
	path := writeDoc(t, "sections:\n  - markup: p\n    text: before\n")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan reloadCall, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchPost(ctx, path, 10*time.Millisecond, slog.New(slog.DiscardHandler), func(p *post.Post, err error) {
			got <- reloadCall{p, err}
		})
	}()

	// Keep rewriting until the watcher picks up a change; the watch may
	// not be registered yet on the first write.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for i := 0; ; i++ {
		select {
		case call := <-got:
			if call.err != nil {
				t.Fatalf("reload error: %v", call.err)
			}
			if text := call.post.Sections[0].Text(); text[:5] != "after" {
				t.Fatalf("reloaded text=%q", text)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("WatchPost: %v", err)
			}
			return
		case <-tick.C:
			body := "sections:\n  - markup: p\n    text: after" + string(rune('a'+i%26)) + "\n"
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-ctx.Done():
			t.Fatalf("no reload observed")
		}
	}
}
