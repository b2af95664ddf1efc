package components

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTopBar_TruncatesServerByRunes(t *testing.T) {
	tb := NewTopBar()
	tb.SetWidth(120)
	tb.SetServer("http://" + strings.Repeat("日", 40) + ".example")

	lines := tb.buildContextInfo()
	if len(lines) == 0 {
		t.Fatal("Expected context lines")
	}
	if !utf8.ValidString(lines[0]) {
		t.Error("Expected the server line to stay valid UTF-8")
	}
	if !strings.Contains(lines[0], "...") {
		t.Error("Expected a truncation marker")
	}
}

func TestTopBar_ShortServerKeptWhole(t *testing.T) {
	tb := NewTopBar()
	tb.SetServer("http://127.0.0.1:5000")

	lines := tb.buildContextInfo()
	if !strings.Contains(lines[0], "http://127.0.0.1:5000") {
		t.Errorf("Expected the full URL, got %q", lines[0])
	}
}
