package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/data"
)

// MissingLabel is what an absent or empty description shows as in the table.
const MissingLabel = "None"

const descriptionColumnWidth = 28

// AssetTable renders one page of assets as a description matrix: file name,
// title, then one column per selected language.
type AssetTable struct {
	Width int
}

func NewAssetTable() *AssetTable {
	return &AssetTable{Width: 120}
}

// Headers returns the column titles for the current selection, languages in
// fetch order.
func (t *AssetTable) Headers(languages []data.Language, selected map[string]bool) []string {
	headers := []string{"File name", "Title"}
	for _, lang := range languages {
		if selected[lang.ID] {
			headers = append(headers, lang.Name)
		}
	}
	return headers
}

// Rows builds the cell matrix for the visible assets.
func (t *AssetTable) Rows(assets []data.Asset, languages []data.Language, selected map[string]bool) [][]string {
	rows := make([][]string, 0, len(assets))
	for _, asset := range assets {
		title := asset.Title
		if title == "" {
			title = MissingLabel
		}
		row := []string{truncate(asset.FileName, descriptionColumnWidth), truncate(title, descriptionColumnWidth)}
		for _, lang := range languages {
			if !selected[lang.ID] {
				continue
			}
			text := asset.DescriptionText(lang.ID)
			if text == "" {
				text = MissingLabel
			}
			row = append(row, truncate(text, descriptionColumnWidth))
		}
		rows = append(rows, row)
	}
	return rows
}

func (t *AssetTable) View(assets []data.Asset, languages []data.Language, selected map[string]bool) string {
	if len(assets) == 0 {
		return styles.MutedStyle.Render("No assets match the current filters")
	}

	headerStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := t.Rows(assets, languages, selected)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2 && rows[row][col] == MissingLabel:
				return cellStyle.Foreground(styles.Error)
			default:
				return cellStyle
			}
		}).
		Headers(t.Headers(languages, selected)...)

	for _, row := range rows {
		tbl.Row(row...)
	}
	return tbl.String()
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
