// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Browse opens an interactive pager over the difference records. Differences
// are listed one per line; the cursor expands the record under it.
func Browse(doc Document) error {
	m := newBrowseModel(doc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// browseEntry is one difference flattened for list display.
type browseEntry struct {
	kind   string
	path   string
	detail []string
}

type browseModel struct {
	summary Summary
	entries []browseEntry
	cursor  int
	vp      viewport.Model
	ready   bool
}

var (
	browseHeaderStyle = lipgloss.NewStyle().Bold(true)
	browseKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6be00"))
	browseCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
	browseDetailStyle = lipgloss.NewStyle().Faint(true)
)

func newBrowseModel(doc Document) browseModel {
	var entries []browseEntry

	for _, item := range doc.Differences.MissingInRight {
		entries = append(entries, browseEntry{
			kind:   "missing-in-right",
			path:   item.Path,
			detail: []string{"value: " + item.Value},
		})
	}
	for _, item := range doc.Differences.MissingInLeft {
		entries = append(entries, browseEntry{
			kind:   "missing-in-left",
			path:   item.Path,
			detail: []string{"value: " + item.Value},
		})
	}
	for _, item := range doc.Differences.TypeMismatches {
		entries = append(entries, browseEntry{
			kind: "type-mismatch",
			path: item.Path,
			detail: []string{
				fmt.Sprintf("left:  %s = %s", item.LeftType, item.Left),
				fmt.Sprintf("right: %s = %s", item.RightType, item.Right),
			},
		})
	}
	for _, item := range doc.Differences.ValueMismatches {
		entries = append(entries, browseEntry{
			kind: "value-mismatch",
			path: item.Path,
			detail: []string{
				fmt.Sprintf("left:  %v", item.Left),
				fmt.Sprintf("right: %v", item.Right),
			},
		})
	}

	return browseModel{summary: doc.Summary, entries: entries}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		m.vp.SetContent(m.renderEntries())
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.vp.SetContent(m.renderEntries())
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			m.vp.SetContent(m.renderEntries())
		case "pgup":
			m.vp.HalfViewUp()
		case "pgdown":
			m.vp.HalfViewDown()
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := browseHeaderStyle.Render(
		fmt.Sprintf("%s ⇄ %s  (%d differences)",
			m.summary.Left, m.summary.Right, m.summary.TotalDifferences))
	help := "↑/↓: move, PGUP/PGDN: scroll, Q/ESC: quit"
	return header + "\n" + m.vp.View() + "\n" + help
}

func (m browseModel) renderEntries() string {
	var b strings.Builder
	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = browseCursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, browseKindStyle.Render(e.kind), e.path)
		if i == m.cursor {
			for _, d := range e.detail {
				fmt.Fprintf(&b, "      %s\n", browseDetailStyle.Render(d))
			}
		}
	}
	return b.String()
}
