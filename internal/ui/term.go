package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/world"
)

const scrollback = 500

// TermConsole is a full-screen tcell console. Output scrolls upward and the
// bottom row holds the input prompt.
type TermConsole struct {
	screen   *Screen
	renderer *Renderer
	lines    []line
}

// NewTermConsole takes over the terminal.
func NewTermConsole() (*TermConsole, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &TermConsole{screen: screen, renderer: NewRenderer(screen)}, nil
}

func (c *TermConsole) push(l line) {
	c.lines = append(c.lines, l)
	if len(c.lines) > scrollback {
		c.lines = c.lines[len(c.lines)-scrollback:]
	}
}

// Println writes one line. Embedded newlines start new rows.
func (c *TermConsole) Println(text string) {
	for _, row := range strings.Split(text, "\n") {
		c.push(plain(row))
	}
}

// Printf formats and writes one line.
func (c *TermConsole) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}

// Title writes a bold cyan heading.
func (c *TermConsole) Title(text string) {
	c.push(nil)
	c.push(line{{
		text:  "=== " + strings.ToUpper(text) + " ===",
		style: tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	}})
}

// HealthBar writes a colored bar.
func (c *TermConsole) HealthBar(label string, current, max int, color tcell.Color) {
	c.push(barLine(label, current, max, color))
}

// Map writes the dungeon progress strip with colored glyphs.
func (c *TermConsole) Map(tiles []world.Tile) {
	c.push(mapLine(tiles))
}

// Clear drops the scrollback.
func (c *TermConsole) Clear() {
	c.lines = c.lines[:0]
}

// ReadLine redraws the screen and collects keystrokes until Enter. Escape
// and Ctrl-C return ErrInterrupted.
func (c *TermConsole) ReadLine(prompt string) (string, error) {
	var input []rune
	c.renderer.Render(c.lines, prompt, string(input))

	for {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrInterrupted
			case tcell.KeyEnter:
				text := string(input)
				c.push(line{
					{text: prompt, style: tcell.StyleDefault.Foreground(tcell.ColorYellow)},
					{text: text, style: tcell.StyleDefault.Foreground(tcell.ColorWhite)},
				})
				return text, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case nil:
			// Screen finalized.
			return "", ErrInterrupted
		}
		c.renderer.Render(c.lines, prompt, string(input))
	}
}

// Close restores the terminal.
func (c *TermConsole) Close() {
	c.screen.Close()
}
