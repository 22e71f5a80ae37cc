package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNumberWithCommas(t *testing.T) {
	cases := map[int]string{0: "0", 12: "12", 800: "800", 1024: "1,024", 1234567: "1,234,567", -4500: "-4,500"}
	for n, want := range cases {
		if got := numberWithCommas(n); got != want {
			t.Errorf("numberWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRenderFooterWidth(t *testing.T) {
	st := FooterState{
		Mode:          "HOVER",
		FileName:      "pokemon.csv",
		FilterLabel:   "generation=1 legendary=all",
		HoverLabel:    "Charizard",
		Shown:         166,
		Total:         800,
		StatusMessage: noticeText("Showing 166 of 800", noticeInfo),
		Legend:        "(? help)",
	}
	for _, width := range []int{60, 140} {
		out := RenderFooter(width, st, DefaultFooterStyles())
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("width %d: %d lines", width, len(lines))
		}
		for i, l := range lines {
			if w := lipgloss.Width(l); w != width {
				t.Errorf("width %d: line %d is %d wide", width, i, w)
			}
		}
	}
	out := RenderFooter(140, st, DefaultFooterStyles())
	for _, want := range []string{"Shown 166/800", "HOVER: Charizard", "pokemon.csv"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
	if RenderFooter(0, st, DefaultFooterStyles()) != "" {
		t.Errorf("zero width should render nothing")
	}
}

func TestNoticeText(t *testing.T) {
	if got := noticeText("done", noticeSuccess); got != "✓ done" {
		t.Fatalf("got %q", got)
	}
	if got := noticeText("", noticeError); got != "" {
		t.Fatalf("got %q", got)
	}
}
