package cmd

import (
	"os"

	"github.com/kontent-tools/kontaudit/pkg/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kontaudit",
	Short: "Audit asset descriptions in a Kontent.ai environment",
	Long:  "Find assets with missing titles and per-language descriptions, with a TUI and one-shot commands",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		cfg, err := loadConfig(cmd)
		if err != nil {
			cobra.CheckErr(err)
		}
		if env, _ := cmd.Flags().GetString("env"); env != "" {
			cfg.EnvironmentID = env
		}
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("env", "", "Environment ID")
	rootCmd.PersistentFlags().String("api-key", "", "Management API key (falls back to KONTAUDIT_API_KEY, then a prompt)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ~/.kontaudit.yaml)")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
