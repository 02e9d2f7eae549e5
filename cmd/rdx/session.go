package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/report"
	"github.com/rare-disease-dx/internal/workflow"
)

func sessionCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect, export or reset the saved session",
	}
	cmd.AddCommand(sessionShowCmd(root))
	cmd.AddCommand(sessionResetCmd(root))
	cmd.AddCommand(sessionReportCmd(root))
	return cmd
}

func sessionShowCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved workflow state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer s.Close()

			state := s.Controller().State()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}

			if !s.Resumed() {
				fmt.Fprintln(out, "No saved session.")
			}
			fmt.Fprintf(out, "Session:  %s\n", s.Snapshots().ID())
			fmt.Fprintf(out, "Step:     %d of %d (%s)\n", state.Step, domain.LastStep, workflow.StepName(state.Step))
			fmt.Fprintf(out, "Status:   %s\n", state.Status)
			fmt.Fprintf(out, "Symptoms: %s\n", orNone(strings.Join(state.Profile.SelectedSymptomIDs, ", ")))
			fmt.Fprintf(out, "Age:      %s\n", orNone(state.Profile.AgeRange))
			fmt.Fprintf(out, "Gender:   %s\n", orNone(state.Profile.Gender))
			fmt.Fprintf(out, "Family:   %s\n", orNone(strings.Join(state.Profile.FamilyHistory, ", ")))
			if state.Computed() {
				fmt.Fprintf(out, "Results:  %d match(es)\n", len(state.Results))
			} else {
				fmt.Fprintln(out, "Results:  not computed")
			}
			if state.LastError != "" {
				fmt.Fprintf(out, "Error:    %s\n", state.LastError)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the state as JSON")
	return cmd
}

func sessionResetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := openSession(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.Controller().Dispatch(workflow.Reset{}).Accepted {
				return fmt.Errorf("session is busy: %w", workflow.ErrBusy)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session reset.")
			return nil
		},
	}
}

func sessionReportCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the saved results as a JSON report",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := openSession(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer s.Close()

			now := time.Now()
			r := report.Build(s.Controller().State(), now)
			if !r.Completed {
				return errors.New("no results to export: run 'rdx diagnose' first")
			}

			if output == "-" {
				return report.WriteJSON(cmd.OutOrStdout(), r)
			}
			if output == "" {
				output = filepath.Join(cfg.ExportDir(), fmt.Sprintf("report-%s.json", now.UTC().Format("20060102-150405")))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("failed to create export directory: %w", err)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			if err := report.WriteJSON(f, r); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write report file: %w", err)
			}

			s.Logger().WithField("path", output).Info("Report exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "report path, \"-\" for stdout (default: <data_dir>/exports/report-<timestamp>.json)")
	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
