package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kontent-tools/kontaudit/pkg/audit"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show per-language description completeness",
	Long:  "Fetch the environment and print how completely each active language's asset descriptions are filled in",
	Run: func(cmd *cobra.Command, args []string) {
		session, _, err := loadSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}

		rows := audit.Overview(session.Assets, session.Languages, session.Selected)
		if len(rows) == 0 {
			fmt.Println("No active languages configured.")
			return
		}

		var (
			orange = lipgloss.Color("#F05A22")

			headerStyle = lipgloss.NewStyle().Foreground(orange).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(orange)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Language", "Described %", "Described", "Total", "Default")

		for _, row := range rows {
			def := ""
			if row.IsDefault {
				def = "yes"
			}
			t.Row(
				truncateString(row.LanguageName, 30),
				fmt.Sprintf("%d%%", row.Percent),
				fmt.Sprintf("%d", row.WithDescription),
				fmt.Sprintf("%d", row.TotalAssets),
				def,
			)
		}

		fmt.Println(t)
		fmt.Printf("\n%d of %d assets fully described in all selected languages\n",
			rows[0].FullyDescribed, rows[0].TotalAssets)
	},
}
