// Package main is the entry point for the brandpost CLI and HTTP service.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/brandpost/internal/config"
)

// cfg is loaded once before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "brandpost",
	Short: "Generate on-brand blog posts from a PDF corpus",
	Long: `brandpost converts a folder of company PDFs into a Markdown chunk corpus
and drives local Ollama models to draft, re-tone and translate blog posts
grounded in it.

Settings come from environment variables, optionally overlaid by a YAML file
given with --config or $BRANDPOST_CONFIG.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file overlaid on the environment")
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
