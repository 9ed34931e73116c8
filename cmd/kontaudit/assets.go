package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kontent-tools/kontaudit/pkg/audit"
	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List assets and their description status",
	Long:  "Fetch the environment and print the asset description matrix, optionally filtered",
	Run: func(cmd *cobra.Command, args []string) {
		query, _ := cmd.Flags().GetString("query")
		missingOnly, _ := cmd.Flags().GetBool("missing-only")
		langCodes, _ := cmd.Flags().GetStringSlice("lang")

		session, _, err := loadSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}

		// --lang narrows the selection by codename; default is all active.
		if len(langCodes) > 0 {
			wanted := make(map[string]bool, len(langCodes))
			for _, code := range langCodes {
				wanted[code] = true
			}
			selected := make(map[string]bool)
			for _, lang := range session.Languages {
				if wanted[lang.Codename] {
					selected[lang.ID] = true
				}
			}
			session.Selected = selected
		}

		filtered := audit.Filter(session.Assets, session.Selected, query, missingOnly)
		if len(filtered) == 0 {
			fmt.Println("No assets match the given filters.")
			return
		}

		columns := []table.Column{
			{Title: "File name", Width: 28},
			{Title: "Title", Width: 28},
		}
		for _, lang := range session.SelectedLanguages() {
			columns = append(columns, table.Column{Title: lang.Name, Width: 24})
		}

		rows := []table.Row{}
		for _, asset := range filtered {
			title := asset.Title
			if title == "" {
				title = "None"
			}
			row := table.Row{
				truncateString(asset.FileName, 26),
				truncateString(title, 26),
			}
			for _, lang := range session.SelectedLanguages() {
				text := asset.DescriptionText(lang.ID)
				if text == "" {
					text = "None"
				}
				row = append(row, truncateString(text, 22))
			}
			rows = append(rows, row)
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = lipgloss.NewStyle()
		t.SetStyles(s)

		fmt.Printf("\n🗂  %d of %d assets\n\n", len(filtered), len(session.Assets))
		fmt.Println(t.View())
	},
}

func init() {
	assetsCmd.Flags().StringP("query", "q", "", "Filter by title or description substring")
	assetsCmd.Flags().BoolP("missing-only", "m", false, "Only assets missing a description in a selected language")
	assetsCmd.Flags().StringSliceP("lang", "l", nil, "Language codenames to audit (default: all active)")
}
