package tui

import (
	"testing"

	"portfolio-term/internal/term"
)

func TestCompleteSingleMatch(t *testing.T) {
	names := term.NewInterpreter().Names()
	got := complete("who", names)
	if got.Value != "whoami" {
		t.Fatalf("complete(who) = %+v", got)
	}
}

func TestCompleteNoMatchKeepsInput(t *testing.T) {
	got := complete("zzz", term.NewInterpreter().Names())
	if got.Value != "zzz" || len(got.Candidates) != 0 {
		t.Fatalf("complete(zzz) = %+v", got)
	}
}

func TestCompleteCommonPrefix(t *testing.T) {
	got := complete("pro", []string{"profile", "projects"})
	if got.Value != "pro" {
		t.Fatalf("unexpected value %q", got.Value)
	}
	got = complete("s", []string{"skills", "skillset"})
	if got.Value != "skills" {
		t.Fatalf("complete(s) = %+v, want common prefix skills", got)
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("candidates = %v", got.Candidates)
	}
}

func TestCompleteEmptyListsAll(t *testing.T) {
	names := []string{"about", "help"}
	got := complete("", names)
	if got.Value != "" || len(got.Candidates) != 2 {
		t.Fatalf("complete(\"\") = %+v", got)
	}
}

func TestCommonPrefix(t *testing.T) {
	if got := commonPrefix([]string{"whoami", "web"}); got != "w" {
		t.Fatalf("commonPrefix = %q", got)
	}
	if got := commonPrefix([]string{"about", "help"}); got != "" {
		t.Fatalf("commonPrefix = %q", got)
	}
}
