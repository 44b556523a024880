package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/juanmuller24/text-based-battle/internal/world"
)

// ErrInterrupted is returned by ReadLine when the player quits the prompt
// (Escape or Ctrl-C on the terminal console).
var ErrInterrupted = errors.New("input interrupted")

const healthBarWidth = 20

// Colors used for health bars.
var (
	HeroColor = tcell.ColorGreen
	ManaColor = tcell.ColorBlue
)

// Console is the text interface the game plays through.
type Console interface {
	// Println writes one line of text.
	Println(text string)
	// Printf formats and writes one line of text.
	Printf(format string, args ...any)
	// Title writes an emphasized heading.
	Title(text string)
	// HealthBar draws a labeled bar for current out of max.
	HealthBar(label string, current, max int, color tcell.Color)
	// Map draws the dungeon progress strip.
	Map(tiles []world.Tile)
	// Clear starts a fresh page.
	Clear()
	// ReadLine shows prompt and blocks until the player submits a line.
	ReadLine(prompt string) (string, error)
	// Close releases the console.
	Close()
}

// ParseChoice parses a menu selection in [1, n].
func ParseChoice(input string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

// ParseYesNo parses a y/n answer.
func ParseYesNo(input string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// Choose prompts until the player enters a number in [1, n].
func Choose(c Console, prompt string, n int) (int, error) {
	for {
		line, err := c.ReadLine(fmt.Sprintf("%s (1-%d): ", prompt, n))
		if err != nil {
			return 0, err
		}
		if v, ok := ParseChoice(line, n); ok {
			return v, nil
		}
		c.Printf("Invalid choice. Please enter 1-%d.", n)
	}
}

// Menu prints a numbered list of options and returns the chosen index,
// counting from zero.
func Menu(c Console, title string, options []string) (int, error) {
	c.Title(title)
	for i, opt := range options {
		c.Printf("%d. %s", i+1, opt)
	}
	v, err := Choose(c, "Choose", len(options))
	if err != nil {
		return 0, err
	}
	return v - 1, nil
}

// Confirm prompts until the player answers y or n.
func Confirm(c Console, prompt string) (bool, error) {
	for {
		line, err := c.ReadLine(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		if yes, ok := ParseYesNo(line); ok {
			return yes, nil
		}
		c.Println("Please enter 'y' or 'n'.")
	}
}

// Ask prompts until the player enters a non-empty line.
func Ask(c Console, prompt string) (string, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}

// Pause waits for Enter.
func Pause(c Console) error {
	_, err := c.ReadLine("Press Enter to continue...")
	return err
}

// barText renders "[#####-----] 50/100".
func barText(current, max int) (filled, empty string, counts string) {
	if max <= 0 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	n := current * healthBarWidth / max
	if n > healthBarWidth {
		n = healthBarWidth
	}
	return strings.Repeat("#", n), strings.Repeat("-", healthBarWidth-n), fmt.Sprintf("%d/%d", current, max)
}
