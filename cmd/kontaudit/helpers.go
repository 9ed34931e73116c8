package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kontent-tools/kontaudit/pkg/config"
	"github.com/kontent-tools/kontaudit/pkg/services"
	"github.com/kontent-tools/kontaudit/pkg/sources"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	return config.LoadOrDefault(path, explicit)
}

func resolveEnvironment(cmd *cobra.Command, cfg config.Config) (string, error) {
	if env, _ := cmd.Flags().GetString("env"); env != "" {
		return env, nil
	}
	if cfg.EnvironmentID != "" {
		return cfg.EnvironmentID, nil
	}
	return "", fmt.Errorf("no environment ID: pass --env or set environment_id in the config file")
}

// resolveAPIKey never echoes the key and never writes it anywhere.
func resolveAPIKey(cmd *cobra.Command) (string, error) {
	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		return key, nil
	}
	if key := os.Getenv("KONTAUDIT_API_KEY"); key != "" {
		return key, nil
	}

	fmt.Fprint(os.Stderr, "Management API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("no API key provided")
	}
	return string(raw), nil
}

// loadSession resolves credentials and runs the staged fetch for the one-shot
// commands.
func loadSession(cmd *cobra.Command) (*services.Session, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	environmentID, err := resolveEnvironment(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	apiKey, err := resolveAPIKey(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}

	session := services.NewSession(environmentID, sources.NewKontent(environmentID, apiKey))
	if err := session.Load(context.Background()); err != nil {
		_, message := services.UserMessage(err)
		return nil, config.Config{}, fmt.Errorf("%s (%w)", message, err)
	}
	return session, cfg, nil
}

// truncateString shortens a string for table cells.
func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		max = 4
	}
	return string(runes[:max-3]) + "..."
}
