package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"portfolioterm/pkg/termtypes"
)

// TableStyles styles the two-column tables used by help, contact and awards.
type TableStyles struct {
	Header lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
	Border lipgloss.Style
}

// PlainTableStyles renders tables without colour.
func PlainTableStyles() TableStyles {
	return TableStyles{
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Key:    lipgloss.NewStyle().Padding(0, 1),
		Value:  lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle(),
	}
}

// Row is one key/value line of a two-column table.
type Row struct {
	Key   string
	Value string
}

// Table renders a bordered two-column table.
func Table(styles TableStyles, keyHeader, valueHeader string, rows []Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(keyHeader, valueHeader).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case col == 0:
				return styles.Key
			default:
				return styles.Value
			}
		})
	for _, r := range rows {
		t.Row(r.Key, r.Value)
	}
	return t.String()
}

// TableFragment builds a single-element fragment holding an optional intro
// line above the table.
func TableFragment(styles TableStyles, intro, keyHeader, valueHeader string, rows []Row) *termtypes.Fragment {
	tbl := Table(styles, keyHeader, valueHeader, rows)
	if intro == "" {
		return termtypes.NewFragment(tbl)
	}
	return termtypes.NewFragment(intro + "\n" + tbl)
}
