package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/bingo/internal/card"
	"github.com/arcanaland/bingo/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [deck.json]",
	Short: "Preview a card of a deck in the terminal",
	Long: `Show prints one card of a deck as a text grid, sized to the terminal.
Cards are numbered from 1, as printed on the rendered PDF.

Examples:
  bingo show deck.json
  bingo show deck.json --card 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.LoadDeck(args[0])
		if err != nil {
			return err
		}

		n, _ := cmd.Flags().GetInt("card")
		if n < 1 || n > len(d) {
			return fmt.Errorf("card %d out of range, deck has %d cards", n, len(d))
		}
		c := d[n-1]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", n, err)
		}

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		fmt.Print(renderGrid(c, n, width))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("card", "c", 1, "card number to show")
}

// renderGrid draws the card as a box-drawing grid no wider than width.
func renderGrid(c card.Card, index, width int) string {
	cols := c.Columns()
	cellWidth := (width - cols - 1) / cols
	if cellWidth > 12 {
		cellWidth = 12
	}
	if cellWidth < 1 {
		cellWidth = 1
	}

	line := func(left, mid, right string) string {
		segs := make([]string, cols)
		for i := range segs {
			segs[i] = strings.Repeat("─", cellWidth)
		}
		return left + strings.Join(segs, mid) + right + "\n"
	}
	row := func(cells []string) string {
		return "│" + strings.Join(cells, "│") + "│\n"
	}

	var b strings.Builder
	b.WriteString(line("┌", "┬", "┐"))

	header := make([]string, cols)
	for i := range header {
		header[i] = headerColor(i, cols, center(card.HeaderLetter(i), cellWidth))
	}
	b.WriteString(row(header))

	for r := 0; r < c.Rows(); r++ {
		b.WriteString(line("├", "┼", "┤"))
		cells := make([]string, cols)
		for i := range cells {
			cell := c[i][r]
			if cell.IsJoker() {
				cells[i] = colorize.YellowString(center("★", cellWidth))
				continue
			}
			cells[i] = center(truncate(cell.String(), cellWidth), cellWidth)
		}
		b.WriteString(row(cells))
	}
	b.WriteString(line("└", "┴", "┘"))

	label := fmt.Sprintf("%d", index)
	pad := cols*(cellWidth+1) + 1 - len(label)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + colorize.HiBlackString(label) + "\n")
	return b.String()
}

// headerColor paints column i of n with a hue spread evenly over the columns.
func headerColor(i, n int, s string) string {
	if colorize.NoColor {
		return s
	}
	c := colorful.Hsv(360*float64(i)/float64(n), 0.6, 0.95)
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 1 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-1]) + "…"
}
