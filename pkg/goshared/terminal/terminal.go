// Package terminal lays out text for the width of the controlling terminal.
//
// Widths are measured in display cells, so wide runes and ANSI styling
// line up:
//
//	terminal.Middle("build")                      // "====...==== build ====...===="
//	terminal.Columns(names, terminal.WithSep(" | "))
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

type options struct {
	width int
	fill  string
	sep   string
}

// Option configures Middle and Columns.
type Option func(*options)

// WithWidth sets the line width instead of asking the terminal.
func WithWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.width = n
		}
	}
}

// WithFill sets the padding used by Middle. Default "=".
func WithFill(s string) Option {
	return func(o *options) {
		if s != "" {
			o.fill = s
		}
	}
}

// WithSep sets the separator between Columns cells. Default two spaces.
func WithSep(s string) Option {
	return func(o *options) {
		o.sep = s
	}
}

func newOptions(opts []Option) options {
	o := options{fill: "=", sep: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width == 0 {
		o.width = Width(DefaultWidth)
	}
	return o
}

// Width returns the column count of stdout, or def when stdout is not a
// terminal or its size is unknown. A def of zero or less means 80.
func Width(def int) int {
	if def <= 0 {
		def = DefaultWidth
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return def
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// Middle centres the text form of obj in a line of fill characters:
// pad, a space, the text, a space, pad. The padding is never negative, so
// text wider than the line comes back with single spaces around it.
func Middle(obj any, opts ...Option) string {
	o := newOptions(opts)
	text := fmt.Sprint(obj)

	pad := max((o.width-lipgloss.Width(text)-2)/2, 0)
	fill := strings.Repeat(o.fill, pad)
	return fill + " " + text + " " + fill
}

// PrintMiddle writes Middle(obj) and a newline to w and returns the line.
func PrintMiddle(w io.Writer, obj any, opts ...Option) (string, error) {
	line := Middle(obj, opts...)
	_, err := fmt.Fprintln(w, line)
	return line, err
}

// Columns arranges items in rows that fit the line width. Every cell is
// padded to the widest item and cells are joined by the separator. An
// item that does not fit on the current row starts the next one; an item
// wider than the line gets a row of its own.
func Columns(items []string, opts ...Option) []string {
	if len(items) == 0 {
		return nil
	}
	o := newOptions(opts)

	longest := 0
	for _, it := range items {
		longest = max(longest, lipgloss.Width(it))
	}
	sepWidth := lipgloss.Width(o.sep)

	var (
		lines []string
		row   []string
		used  int
	)
	for _, it := range items {
		cell := it + strings.Repeat(" ", longest-lipgloss.Width(it))
		need := longest
		if len(row) > 0 {
			need += sepWidth
		}
		if len(row) > 0 && used+need > o.width {
			lines = append(lines, strings.Join(row, o.sep))
			row, used, need = nil, 0, longest
		}
		row = append(row, cell)
		used += need
	}
	return append(lines, strings.Join(row, o.sep))
}

// PrintColumns writes each row of Columns(items) to w and returns the rows.
func PrintColumns(w io.Writer, items []string, opts ...Option) ([]string, error) {
	lines := Columns(items, opts...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return lines, err
		}
	}
	return lines, nil
}
