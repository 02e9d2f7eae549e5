// Command rdx runs rare-disease diagnosis sessions from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rare-disease-dx/internal/app"
	"github.com/rare-disease-dx/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "rdx",
		Short:        "Rare disease differential diagnosis (demonstration only, not for clinical use)",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: search ./config.yaml, ./config, ~/.rare-disease-dx)")

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(diagnoseCmd(opts))
	rootCmd.AddCommand(sessionCmd(opts))
	rootCmd.AddCommand(statusCmd(opts))

	return rootCmd
}

// openSession loads configuration and opens the persisted session.
func openSession(ctx context.Context, opts *rootOptions) (*app.Session, *config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	s, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
