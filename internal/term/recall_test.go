package term

import "testing"

func TestRecallEmptyNeverMoves(t *testing.T) {
	var r Recall
	if text, ok := r.Prev(); ok || text != "" {
		t.Fatalf("Prev on empty = %q,%v", text, ok)
	}
	if text := r.Next(); text != "" {
		t.Fatalf("Next on empty = %q", text)
	}
	if r.Cursor() != 0 || r.Len() != 0 {
		t.Fatalf("cursor=%d len=%d, want 0,0", r.Cursor(), r.Len())
	}
}

func TestRecallWalkBackAndForth(t *testing.T) {
	var r Recall
	for _, s := range []string{"one", "two", "three"} {
		r.Add(s)
	}
	if r.Cursor() != 3 || r.Browsing() {
		t.Fatalf("cursor=%d browsing=%v after adds", r.Cursor(), r.Browsing())
	}

	for _, want := range []string{"three", "two", "one"} {
		got, ok := r.Prev()
		if !ok || got != want {
			t.Fatalf("Prev = %q,%v want %q", got, ok, want)
		}
	}
	if _, ok := r.Prev(); ok {
		t.Fatalf("Prev at oldest should be a no-op")
	}
	if r.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", r.Cursor())
	}

	for _, want := range []string{"two", "three", ""} {
		if got := r.Next(); got != want {
			t.Fatalf("Next = %q want %q", got, want)
		}
	}
	if r.Cursor() != 3 {
		t.Fatalf("cursor = %d, want sentinel 3", r.Cursor())
	}
	if got := r.Next(); got != "" || r.Cursor() != 3 {
		t.Fatalf("Next past sentinel = %q cursor=%d", got, r.Cursor())
	}
}

func TestRecallAddResetsCursor(t *testing.T) {
	var r Recall
	r.Add("a")
	r.Add("b")
	r.Prev()
	r.Prev()
	r.Add("c")
	if r.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", r.Cursor())
	}
	if got, _ := r.Prev(); got != "c" {
		t.Fatalf("Prev = %q, want c", got)
	}
}

func TestRecallKeepsDuplicates(t *testing.T) {
	var r Recall
	r.Add("help")
	r.Add("help")
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %v", entries)
	}
	entries[0] = "mutated"
	if r.Entries()[0] != "help" {
		t.Fatalf("Entries must return a copy")
	}
}
