package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/goshared/pkg/goshared/strutil"
	"github.com/randalmurphal/goshared/pkg/goshared/terminal"
	"github.com/randalmurphal/goshared/pkg/goshared/ulist"
)

func newMiddleCommand() *cobra.Command {
	var (
		fill  string
		width int
	)

	cmd := &cobra.Command{
		Use:   "middle TEXT...",
		Short: "Print text centred in a line of fill characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := terminal.PrintMiddle(cmd.OutOrStdout(), strings.Join(args, " "),
				terminal.WithFill(fill), terminal.WithWidth(width))
			return err
		},
	}

	cmd.Flags().StringVar(&fill, "char", "=", "fill character")
	cmd.Flags().IntVar(&width, "width", 0, "line width (default: terminal width)")
	return cmd
}

func newColumnsCommand() *cobra.Command {
	var (
		sep    string
		width  int
		unique bool
	)

	cmd := &cobra.Command{
		Use:   "columns [ITEM...]",
		Short: "Print items in columns; reads lines from stdin without arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				var err error
				if items, err = readLines(cmd); err != nil {
					return err
				}
			}
			if unique {
				items = ulist.New(items...).Items()
			}
			_, err := terminal.PrintColumns(cmd.OutOrStdout(), items,
				terminal.WithSep(sep), terminal.WithWidth(width))
			return err
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "  ", "separator between columns")
	cmd.Flags().IntVar(&width, "width", 0, "line width (default: terminal width)")
	cmd.Flags().BoolVar(&unique, "unique", false, "drop repeated items, keeping the first")
	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func newRanstrCommand() *cobra.Command {
	var (
		minLen int
		maxLen int
		chars  string
		ext    bool
	)

	cmd := &cobra.Command{
		Use:   "ranstr",
		Short: "Print a random string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minLen < 0 || (maxLen != 0 && maxLen < minLen) {
				return fmt.Errorf("invalid length range [%d, %d]", minLen, maxLen)
			}
			if ext && chars == "" {
				chars = strutil.AlphanumericExtChars
			}
			fmt.Fprintln(cmd.OutOrStdout(), strutil.RanStr(minLen, strutil.WithMaxLen(maxLen), strutil.WithChars(chars)))
			return nil
		},
	}

	cmd.Flags().IntVar(&minLen, "min", 12, "minimum length")
	cmd.Flags().IntVar(&maxLen, "max", 0, "maximum length (default: exactly --min)")
	cmd.Flags().StringVar(&chars, "chars", "", "characters to draw from")
	cmd.Flags().BoolVar(&ext, "ext", false, "include punctuation")
	return cmd
}

func newTruncCommand() *cobra.Command {
	var (
		start    int
		end      int
		ellipsis string
	)

	cmd := &cobra.Command{
		Use:   "trunc TEXT",
		Short: "Shorten text to its head, an ellipsis and its tail",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strutil.TruncStr(args[0],
				strutil.WithStart(start), strutil.WithEnd(end), strutil.WithEllipsis(ellipsis)))
		},
	}

	cmd.Flags().IntVar(&start, "start", 3, "leading characters kept")
	cmd.Flags().IntVar(&end, "end", 0, "trailing characters kept")
	cmd.Flags().StringVar(&ellipsis, "ellipsis", "...", "marker placed where text was cut")
	return cmd
}
