package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/world"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input  string
		n      int
		want   int
		wantOK bool
	}{
		{"1", 3, 1, true},
		{" 3 ", 3, 3, true},
		{"0", 3, 0, false},
		{"4", 3, 0, false},
		{"-1", 3, 0, false},
		{"two", 3, 0, false},
		{"", 3, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseChoice(tt.input, tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseChoice(%q, %d) = %d, %v; want %d, %v", tt.input, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input   string
		wantYes bool
		wantOK  bool
	}{
		{"y", true, true},
		{"YES", true, true},
		{" n ", false, true},
		{"No", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		yes, ok := ParseYesNo(tt.input)
		if yes != tt.wantYes || ok != tt.wantOK {
			t.Errorf("ParseYesNo(%q) = %v, %v; want %v, %v", tt.input, yes, ok, tt.wantYes, tt.wantOK)
		}
	}
}

func TestMenuRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	c := NewStreamConsole(strings.NewReader("9\nabc\n2\n"), &out)

	got, err := Menu(c, "Main", []string{"Fight", "Shop", "Quit"})
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if got != 1 {
		t.Errorf("Menu = %d, want 1", got)
	}
	if n := strings.Count(out.String(), "Invalid choice"); n != 2 {
		t.Errorf("printed %d invalid-choice messages, want 2", n)
	}
	if !strings.Contains(out.String(), "=== MAIN ===") {
		t.Errorf("missing title in output:\n%s", out.String())
	}
}

func TestConfirm(t *testing.T) {
	c := NewStreamConsole(strings.NewReader("what\nY\n"), io.Discard)
	yes, err := Confirm(c, "Continue?")
	if err != nil || !yes {
		t.Errorf("Confirm = %v, %v; want true, nil", yes, err)
	}
}

func TestAskSkipsBlankLines(t *testing.T) {
	c := NewStreamConsole(strings.NewReader("\n   \nAyla\n"), io.Discard)
	got, err := Ask(c, "Name: ")
	if err != nil || got != "Ayla" {
		t.Errorf("Ask = %q, %v; want Ayla, nil", got, err)
	}
}

func TestReadLineEOF(t *testing.T) {
	c := NewStreamConsole(strings.NewReader(""), io.Discard)
	if _, err := Choose(c, "Pick", 2); !errors.Is(err, io.EOF) {
		t.Errorf("Choose error = %v, want io.EOF", err)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		current, max int
		want         string
	}{
		{100, 100, "HP: [####################] 100/100\n"},
		{50, 100, "HP: [##########----------] 50/100\n"},
		{0, 100, "HP: [--------------------] 0/100\n"},
		{-5, 100, "HP: [--------------------] 0/100\n"},
		{7, 0, "HP: [####################] 7/1\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		NewStreamConsole(strings.NewReader(""), &out).HealthBar("HP", tt.current, tt.max, tcell.ColorGreen)
		if out.String() != tt.want {
			t.Errorf("HealthBar(%d, %d) = %q, want %q", tt.current, tt.max, out.String(), tt.want)
		}
	}
}

func TestMap(t *testing.T) {
	var out bytes.Buffer
	c := NewStreamConsole(strings.NewReader(""), &out)
	c.Map([]world.Tile{world.TileCleared, world.TileHero, world.TileTreasure, world.TileBoss})
	if got, want := out.String(), "[.][@][$][B]\n"; got != want {
		t.Errorf("Map = %q, want %q", got, want)
	}
}

func TestMapLineStyles(t *testing.T) {
	l := mapLine([]world.Tile{world.TileHero, world.TileBoss})
	if len(l) != 6 {
		t.Fatalf("len(mapLine) = %d, want 6", len(l))
	}
	if l[1].text != "@" || l[4].text != "B" {
		t.Errorf("glyphs = %q, %q; want @, B", l[1].text, l[4].text)
	}
	if l[1].style != tileStyle(world.TileHero) {
		t.Error("hero glyph not drawn in hero style")
	}
}
