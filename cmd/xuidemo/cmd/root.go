// Package cmd implements the xuidemo command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/xui/engine/config"
	"github.com/hubastard/xui/engine/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "xuidemo",
	Short: "Immediate-mode UI demo and tooling",
	Long: `Runs the xui widget demo on a GLFW/OpenGL or Ebitengine window, or
replays scripted frames headlessly and prints the resulting command list.

Examples:
  xuidemo run                          # OpenGL window
  xuidemo ebiten --config xui.toml     # Ebitengine window with custom style
  xuidemo dump --frames 4 --png out.png`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

		if configPath == "" {
			cfg = config.Default()
			return nil
		}
		var err error
		cfg, err = config.LoadFile(configPath)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// contextOptions turns the loaded config into ui.New options.
func contextOptions() []ui.ContextOption {
	return []ui.ContextOption{
		ui.WithLimits(cfg.UILimits()),
		ui.WithStyle(cfg.UIStyle()),
		ui.WithLogger(slog.Default()),
	}
}
