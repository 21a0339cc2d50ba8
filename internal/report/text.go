// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

const ruleWidth = 80

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("─", ruleWidth)
)

// styles holds the lipgloss styles for one text rendering. When color is off
// every style is a no-op so the plain layout survives byte-for-byte.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	ok      lipgloss.Style
	count   lipgloss.Style
}

func newStyles(color bool) styles {
	s := styles{
		title:   lipgloss.NewStyle(),
		section: lipgloss.NewStyle(),
		ok:      lipgloss.NewStyle(),
		count:   lipgloss.NewStyle(),
	}
	if !color {
		return s
	}
	s.title = s.title.Bold(true)
	s.section = s.section.Bold(true).Foreground(lipgloss.Color("#f6be00"))
	s.ok = s.ok.Foreground(lipgloss.Color("#00c800"))
	s.count = s.count.Foreground(lipgloss.Color("#00c8f0"))
	return s
}

// Text renders the human-readable sectioned report: a header block, summary
// counts, then one block per difference kind.
func Text(doc Document, opts Options) error {
	w := opts.writer()
	st := newStyles(opts.Color)

	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, st.title.Render("JSON COMPARISON REPORT"))
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintf(w, "Left:  %s\n", doc.Summary.Left)
	fmt.Fprintf(w, "Right: %s\n", doc.Summary.Right)
	fmt.Fprintln(w, heavyRule)

	if doc.Summary.TotalDifferences == 0 {
		fmt.Fprintf(w, "\n%s\n\n", st.ok.Render("✓ Documents are identical!"))
		return nil
	}

	fmt.Fprintf(w, "\nTotal differences found: %s\n\n",
		st.count.Render(strconv.Itoa(doc.Summary.TotalDifferences)))

	if opts.Color {
		writeSummaryTable(w, doc.Summary, st)
	}

	res := doc.Differences

	if len(res.MissingInRight) > 0 {
		writeSectionHeader(w, st, "MISSING IN RIGHT", len(res.MissingInRight))
		for _, item := range res.MissingInRight {
			fmt.Fprintf(w, "  Path:  %s\n", item.Path)
			fmt.Fprintf(w, "  Value: %s\n", item.Value)
			fmt.Fprintln(w)
		}
	}

	if len(res.MissingInLeft) > 0 {
		writeSectionHeader(w, st, "MISSING IN LEFT", len(res.MissingInLeft))
		for _, item := range res.MissingInLeft {
			fmt.Fprintf(w, "  Path:  %s\n", item.Path)
			fmt.Fprintf(w, "  Value: %s\n", item.Value)
			fmt.Fprintln(w)
		}
	}

	if len(res.TypeMismatches) > 0 {
		writeSectionHeader(w, st, "TYPE MISMATCHES", len(res.TypeMismatches))
		for _, item := range res.TypeMismatches {
			fmt.Fprintf(w, "  Path:  %s\n", item.Path)
			fmt.Fprintf(w, "  Left:  %s = %s\n", item.LeftType, item.Left)
			fmt.Fprintf(w, "  Right: %s = %s\n", item.RightType, item.Right)
			fmt.Fprintln(w)
		}
	}

	if len(res.ValueMismatches) > 0 {
		writeSectionHeader(w, st, "VALUE MISMATCHES", len(res.ValueMismatches))
		for _, item := range res.ValueMismatches {
			fmt.Fprintf(w, "  Path:  %s\n", item.Path)
			fmt.Fprintf(w, "  Left:  %v\n", item.Left)
			fmt.Fprintf(w, "  Right: %v\n", item.Right)
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, heavyRule)
	return nil
}

func writeSectionHeader(w io.Writer, st styles, title string, count int) {
	fmt.Fprintf(w, "\n%s\n", lightRule)
	fmt.Fprintln(w, st.section.Render(fmt.Sprintf("%s (%d items)", title, count)))
	fmt.Fprintf(w, "%s\n", lightRule)
}

// writeSummaryTable renders the per-kind counts as a small table. Only used
// in color mode so plain output stays stable for scripts.
func writeSummaryTable(w io.Writer, s Summary, st styles) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return st.count.PaddingLeft(2)
			}
			return lipgloss.NewStyle()
		}).
		Rows(
			[]string{"Missing in right", strconv.Itoa(s.MissingInRight)},
			[]string{"Missing in left", strconv.Itoa(s.MissingInLeft)},
			[]string{"Type mismatches", strconv.Itoa(s.TypeMismatches)},
			[]string{"Value mismatches", strconv.Itoa(s.ValueMismatches)},
		)
	fmt.Fprintln(w, t)
}
