package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme defines the colors used for tables.
type Theme struct {
	Primary lipgloss.Color // titles, headers and borders
	Dim     lipgloss.Color // secondary text
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Table is a titled grid of strings.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Render draws the table with DefaultTheme.
func (t Table) Render() string {
	return t.RenderWith(NewStyles(DefaultTheme))
}

// RenderWith draws the table with s.
func (t Table) RenderWith(s Styles) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		}).
		Headers(t.Header...).
		Rows(t.Rows...)
	if t.Title == "" {
		return tbl.Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(t.Title), tbl.Render())
}
