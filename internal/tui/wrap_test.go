package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextWords(t *testing.T) {
	got := wrapText("JavaScript, TypeScript, React, Node.js", 12)
	want := []string{"JavaScript,", "TypeScript,", "React,", "Node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapText = %#v, want %#v", got, want)
	}
}

func TestWrapTextKeepsBlankLines(t *testing.T) {
	got := wrapText("", 10)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("wrapText(\"\") = %#v", got)
	}
}

func TestWrapTextBreaksLongWord(t *testing.T) {
	got := wrapText("https://www.arulmozhikumar.online", 10)
	for _, line := range got {
		if runewidth.StringWidth(line) > 10 {
			t.Fatalf("line %q wider than 10", line)
		}
	}
	if joined := got[0] + got[1] + got[2] + got[3]; joined != "https://www.arulmozhikumar.online" {
		t.Fatalf("broken word lost content: %#v", got)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	got := wrapText("日本語日本語", 4)
	want := []string{"日本", "語日", "本語"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapText = %#v, want %#v", got, want)
	}
}
