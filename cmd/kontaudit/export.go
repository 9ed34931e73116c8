package cmd

import (
	"fmt"

	"github.com/kontent-tools/kontaudit/pkg/audit"
	"github.com/kontent-tools/kontaudit/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [overview|assets|report]",
	Short: "Export audit results to a file",
	Long: "Write the completeness overview or the filtered asset table as CSV, " +
		"or the overview as an EPUB report",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"overview", "assets", "report"},
	Run: func(cmd *cobra.Command, args []string) {
		query, _ := cmd.Flags().GetString("query")
		missingOnly, _ := cmd.Flags().GetBool("missing-only")
		outDir, _ := cmd.Flags().GetString("out")

		session, cfg, err := loadSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		if outDir == "" {
			outDir = cfg.ExportDir
		}

		var path string
		switch args[0] {
		case "overview":
			rows := audit.Overview(session.Assets, session.Languages, session.Selected)
			path, err = integrations.NewCSVExporter(outDir).WriteOverview(session.EnvironmentID, rows)

		case "assets":
			filtered := audit.Filter(session.Assets, session.Selected, query, missingOnly)
			path, err = integrations.NewCSVExporter(outDir).WriteAssets(
				session.EnvironmentID, filtered, session.Languages, session.Selected)

		case "report":
			rows := audit.Overview(session.Assets, session.Languages, session.Selected)
			path, err = integrations.NewReportBuilder(outDir).CreateReport(
				session.EnvironmentID, rows, len(session.Assets))

		default:
			err = fmt.Errorf("unknown export target %q", args[0])
		}
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("📄 Wrote %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("query", "q", "", "Filter the assets export by substring")
	exportCmd.Flags().BoolP("missing-only", "m", false, "Only export assets missing a description")
	exportCmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
}
