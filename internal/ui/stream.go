package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/world"
)

// StreamConsole is a line-oriented console over plain reader and writer
// streams. It backs plain mode and scripted tests.
type StreamConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewStreamConsole creates a console reading lines from r and writing to w.
func NewStreamConsole(r io.Reader, w io.Writer) *StreamConsole {
	return &StreamConsole{in: bufio.NewScanner(r), out: w}
}

// Println writes one line.
func (c *StreamConsole) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Printf formats and writes one line.
func (c *StreamConsole) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Title writes a heading.
func (c *StreamConsole) Title(text string) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", strings.ToUpper(text))
}

// HealthBar writes an uncolored bar.
func (c *StreamConsole) HealthBar(label string, current, max int, _ tcell.Color) {
	filled, empty, counts := barText(current, max)
	fmt.Fprintf(c.out, "%s: [%s%s] %s\n", label, filled, empty, counts)
}

// Map writes the dungeon progress strip.
func (c *StreamConsole) Map(tiles []world.Tile) {
	var b strings.Builder
	for _, t := range tiles {
		b.WriteByte('[')
		b.WriteRune(t.Rune())
		b.WriteByte(']')
	}
	fmt.Fprintln(c.out, b.String())
}

// Clear writes a blank line; streams cannot be cleared.
func (c *StreamConsole) Clear() {
	fmt.Fprintln(c.out)
}

// ReadLine writes the prompt and reads one line. It returns io.EOF when
// the input is exhausted.
func (c *StreamConsole) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := c.in.Text()
	fmt.Fprintln(c.out)
	return line, nil
}

// Close is a no-op.
func (c *StreamConsole) Close() {}
