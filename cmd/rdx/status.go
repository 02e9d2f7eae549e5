package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rare-disease-dx/internal/config"
)

// status describes the on-disk setup for the loaded configuration.
type status struct {
	DataDir         string
	DataDirExists   bool
	Backend         string
	Slot            string
	SnapshotPath    string
	SnapshotPresent bool
	Issues          []string
}

func getStatus(cfg *config.Config) status {
	st := status{
		DataDir: cfg.DataDir,
		Backend: cfg.Snapshot.Backend,
		Slot:    cfg.Snapshot.Slot,
		Issues:  []string{},
	}

	if _, err := os.Stat(cfg.DataDir); err == nil {
		st.DataDirExists = true
	} else if !os.IsNotExist(err) {
		st.Issues = append(st.Issues, fmt.Sprintf("Cannot read data directory: %v", err))
	}

	switch cfg.Snapshot.Backend {
	case config.BackendFile:
		st.SnapshotPath = cfg.SnapshotFilePath()
	case config.BackendSQLite:
		st.SnapshotPath = cfg.SnapshotDBPath()
	}
	if st.SnapshotPath != "" {
		if _, err := os.Stat(st.SnapshotPath); err == nil {
			st.SnapshotPresent = true
		}
	}

	if cfg.Scoring.CacheSize == 0 {
		st.Issues = append(st.Issues, "Scoring cache is disabled (scoring.cache_size = 0)")
	}
	return st
}

func statusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the effective configuration and where the session is kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			printStatus(cmd.OutOrStdout(), getStatus(cfg))
			return nil
		},
	}
}

func printStatus(out io.Writer, st status) {
	fmt.Fprintln(out, "Data Directory:")
	fmt.Fprintf(out, "  Path: %s\n", st.DataDir)
	if st.DataDirExists {
		fmt.Fprintln(out, "  Status: Exists")
	} else {
		fmt.Fprintln(out, "  Status: Will be created on first run")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Session Snapshot:")
	fmt.Fprintf(out, "  Backend: %s\n", st.Backend)
	fmt.Fprintf(out, "  Slot: %s\n", st.Slot)
	if st.SnapshotPath != "" {
		fmt.Fprintf(out, "  Location: %s\n", st.SnapshotPath)
		if st.SnapshotPresent {
			fmt.Fprintln(out, "  Saved: Present")
		} else {
			fmt.Fprintln(out, "  Saved: Not created yet")
		}
	} else {
		fmt.Fprintln(out, "  Saved: Not persisted across runs")
	}

	if len(st.Issues) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Issues:")
		for _, issue := range st.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}
}
