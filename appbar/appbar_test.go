package appbar

import (
	"strings"
	"testing"

	"github.com/alexcabrera/surface/hexcolor"
)

func TestWithSubtitleCopiesEverythingElse(t *testing.T) {
	base := Bar{
		Leading:  "←",
		Title:    "Old",
		Actions:  []string{"save", "menu"},
		Elevated: true,
	}

	got := base.WithSubtitle("Inbox", "3 unread")

	if got.Title != "Inbox" || got.Subtitle != "3 unread" {
		t.Fatalf("title region = %q/%q", got.Title, got.Subtitle)
	}
	if got.Leading != "←" || !got.Elevated {
		t.Error("other fields should carry over")
	}
	if len(got.Actions) != 2 || got.Actions[0] != "save" {
		t.Errorf("actions should carry over, got %v", got.Actions)
	}
	if got.TitleSize != DefaultTitleSize || got.SubtitleSize != DefaultSubtitleSize {
		t.Errorf("sizes = %d/%d, want defaults", got.TitleSize, got.SubtitleSize)
	}
	if got.LeadingInset == 0 {
		t.Error("present leading element should gain the padding inset")
	}
}

func TestWithSubtitleValueSemantics(t *testing.T) {
	base := Bar{Title: "Old", Actions: []string{"a"}}
	decorated := base.WithSubtitle("New", "sub")

	if base.Title != "Old" || base.Subtitle != "" {
		t.Fatal("receiver must not be modified")
	}
	decorated.Actions[0] = "b"
	if base.Actions[0] != "a" {
		t.Fatal("actions slice must be copied, not shared")
	}
}

func TestWithSubtitleNoLeadingNoInset(t *testing.T) {
	got := Bar{}.WithSubtitle("T", "S")
	if got.LeadingInset != 0 {
		t.Fatal("absent leading element should gain no inset")
	}
}

func TestWithSubtitleOptions(t *testing.T) {
	tint := hexcolor.MustParse("#FF00FF")
	got := Bar{}.WithSubtitle("T", "S",
		WithTextColor(tint), WithTitleSize(24), WithSubtitleSize(10))

	if got.TextColor != tint {
		t.Errorf("text color = %s", got.TextColor.Hex())
	}
	if got.TitleSize != 24 || got.SubtitleSize != 10 {
		t.Errorf("sizes = %d/%d", got.TitleSize, got.SubtitleSize)
	}
}

func TestRenderContainsTitleRegion(t *testing.T) {
	bar := Bar{Leading: "←", Actions: []string{"⚙"}}.WithSubtitle("Inbox", "3 unread")
	out := bar.Render(60)

	if !strings.Contains(out, "Inbox") {
		t.Error("render should contain the title")
	}
	if !strings.Contains(out, "3 unread") {
		t.Error("render should contain the subtitle")
	}
	if !strings.Contains(out, "⚙") {
		t.Error("render should contain the actions")
	}
	if lines := strings.Split(out, "\n"); len(lines) < 2 {
		t.Errorf("two-line title stack expected, got %d line(s)", len(lines))
	}
}

func TestRenderElevatedRule(t *testing.T) {
	out := Bar{Title: "T", Elevated: true}.Render(20)
	if !strings.Contains(out, "────") {
		t.Fatal("elevated bar should render a bottom rule")
	}
}

func TestRenderTruncatesLongTitle(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := Bar{Title: long}.Render(20)
	if strings.Contains(out, long) {
		t.Fatal("overlong title should be truncated")
	}
	if !strings.Contains(out, "…") {
		t.Fatal("truncation should leave an ellipsis")
	}
}
