package components

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStatusBar_TruncatesByRunes(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(11)
	sb.SetMessage(strings.Repeat("世", 40), StatusInfo)

	view := sb.View()
	if !utf8.ValidString(view) {
		t.Error("Expected truncation to keep the view valid UTF-8")
	}
	if !strings.Contains(view, "...") {
		t.Error("Expected a truncation marker")
	}
}

func TestStatusBar_NarrowWidth(t *testing.T) {
	sb := NewStatusBar()
	sb.SetMessage("a message far wider than the bar", StatusError)

	for _, width := range []int{0, 1, 2, 3} {
		sb.SetWidth(width)
		if view := sb.View(); !utf8.ValidString(view) {
			t.Errorf("Expected valid UTF-8 at width %d", width)
		}
	}
}
