// Package ui implements the interactive catalog browser behind
// "catlint browse".
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"catlint/internal/catalog"
	"catlint/internal/diag"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cleanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	findingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// entryItem adapts one catalog occurrence for the bubbles list.
type entryItem struct {
	entry    catalog.Entry
	findings []diag.Diagnostic
}

func (i entryItem) Title() string {
	if len(i.findings) == 0 {
		return i.entry.RawName
	}
	return fmt.Sprintf("%s (%d)", i.entry.RawName, len(i.findings))
}

func (i entryItem) Description() string {
	if i.entry.Description == "" {
		return "(no description)"
	}
	return truncate(i.entry.Description, 70)
}

func (i entryItem) FilterValue() string { return i.entry.RawName }

// browseModel is the Bubble Tea model: a list of entries with a detail pane
// toggled by enter.
type browseModel struct {
	title    string
	lst      list.Model
	detail   *entryItem
	width    int
	height   int
	quitting bool
}

// NewBrowseModel builds the browser over an already-checked catalog. The
// bag associates findings with entries via the heading span.
func NewBrowseModel(title string, cat *catalog.Catalog, bag *diag.Bag) tea.Model {
	byHeading := make(map[uint32][]diag.Diagnostic)
	for _, d := range bag.Items() {
		byHeading[d.Primary.Start] = append(byHeading[d.Primary.Start], d)
	}

	items := make([]list.Item, 0, cat.Total())
	for _, name := range cat.Names() {
		for _, e := range cat.Occurrences(name) {
			items = append(items, entryItem{
				entry:    e,
				findings: byHeading[e.Heading.Start],
			})
		}
	}

	lst := list.New(items, list.NewDefaultDelegate(), 80, 24)
	lst.Title = title
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)

	return &browseModel{title: title, lst: lst, width: 80, height: 24}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
		case "enter":
			if m.detail == nil {
				if item, ok := m.lst.SelectedItem().(entryItem); ok {
					m.detail = &item
				}
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lst.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.detail != nil {
		return m.detailView(*m.detail)
	}
	return m.lst.View()
}

func (m *browseModel) detailView(item entryItem) string {
	var b strings.Builder
	e := item.entry

	b.WriteString(titleStyle.Render(e.RawName))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (occurrence %d)", e.Ordinal)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(wrapOrPlaceholder(e.Description, m.width))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Prevention tip"))
	b.WriteString("\n")
	b.WriteString(wrapOrPlaceholder(e.Tip, m.width))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Findings"))
	b.WriteString("\n")
	if len(item.findings) == 0 {
		b.WriteString(cleanStyle.Render("  none"))
		b.WriteString("\n")
	} else {
		for _, d := range item.findings {
			b.WriteString(findingStyle.Render(fmt.Sprintf("  %s %s", d.Code.ID(), d.Message)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc/q: back"))
	return b.String()
}

func wrapOrPlaceholder(text string, width int) string {
	if text == "" {
		return dimStyle.Render("  (empty)")
	}
	return "  " + wrap(text, width-4)
}

// wrap breaks text into display-width-aware lines.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	var (
		lines   []string
		current strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && runewidth.StringWidth(current.String())+1+runewidth.StringWidth(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n  ")
}

// truncate shortens a string to the given display width.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
