package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kontent-tools/kontaudit/pkg/data"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Dump the fetched data into a DuckDB file",
	Long:  "Write assets, descriptions and languages into a local DuckDB database for ad-hoc SQL",
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out")

		session, cfg, err := loadSession(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		if outDir == "" {
			outDir = cfg.ExportDir
		}

		path := filepath.Join(outDir, session.EnvironmentID+"-snapshot.duckdb")
		snap, err := data.OpenSnapshot(path)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer snap.Close()

		if err := snap.Write(session.Assets, session.Languages); err != nil {
			cobra.CheckErr(fmt.Errorf("snapshot failed: %w", err))
		}

		fmt.Printf("🦆 Wrote %s (%d assets, %d languages)\n", path, len(session.Assets), len(session.Languages))
	},
}

func init() {
	snapshotCmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
}
