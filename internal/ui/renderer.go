package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/world"
)

// span is a run of text drawn in one style.
type span struct {
	text  string
	style tcell.Style
}

// line is one row of console output.
type line []span

func plain(text string) line {
	return line{{text: text, style: tcell.StyleDefault.Foreground(tcell.ColorWhite)}}
}

// Renderer draws the scrollback and the input prompt to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws as many of the most recent lines as fit above the prompt row,
// then the prompt and the text typed so far.
func (r *Renderer) Render(lines []line, prompt, input string) {
	r.screen.Clear()
	_, height := r.screen.Size()
	rows := height - 1
	if rows < 0 {
		rows = 0
	}

	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for y, l := range lines[start:] {
		x := 0
		for _, s := range l {
			x = r.drawText(x, y, s.text, s.style)
		}
	}

	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	x := r.drawText(0, rows, prompt, promptStyle)
	x = r.drawText(x, rows, input, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.ShowCursor(x, rows)
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// tileStyle returns the style for a dungeon map tile.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileHero:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.TileBoss:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case world.TileFight:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.TileTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	case world.TileRest:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileCleared:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault
	}
}

// mapLine renders tiles as "[.][@][E]" with each glyph colored.
func mapLine(tiles []world.Tile) line {
	bracket := tcell.StyleDefault.Foreground(tcell.ColorGray)
	l := make(line, 0, len(tiles)*3)
	for _, t := range tiles {
		l = append(l,
			span{text: "[", style: bracket},
			span{text: string(t.Rune()), style: tileStyle(t)},
			span{text: "]", style: bracket},
		)
	}
	return l
}

// barLine renders a labeled health bar with the filled part in color.
func barLine(label string, current, max int, color tcell.Color) line {
	filled, empty, counts := barText(current, max)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	return line{
		{text: label + ": [", style: white},
		{text: filled, style: tcell.StyleDefault.Foreground(color)},
		{text: empty, style: tcell.StyleDefault.Foreground(tcell.ColorDarkGray)},
		{text: "] " + counts, style: white},
	}
}
