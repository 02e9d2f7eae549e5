package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rare-disease-dx/internal/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the bundled symptom and condition catalog",
	}
	cmd.AddCommand(catalogSymptomsCmd())
	cmd.AddCommand(catalogConditionsCmd())
	cmd.AddCommand(catalogOptionsCmd())
	return cmd
}

func catalogSymptomsCmd() *cobra.Command {
	var filter catalog.SymptomFilter

	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "List symptoms, optionally filtered by category or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Default()
			if err != nil {
				return err
			}

			symptoms := store.FilterSymptoms(filter)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSEVERITY")
			for _, s := range symptoms {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.Severity)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d symptom(s)\n", len(symptoms))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "only list symptoms in this category (\"All\" for any)")
	cmd.Flags().StringVar(&filter.Query, "search", "", "case-insensitive substring of the symptom name")
	return cmd
}

func catalogConditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List conditions with their symptom signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Default()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tRARITY\tSYMPTOMS\tAGE GROUPS")
			for _, c := range store.AllConditions() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					c.ID, c.Name, c.Rarity, len(c.SymptomIDs), strings.Join(c.AgeGroups, ","))
			}
			return w.Flush()
		},
	}
}

func catalogOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List accepted categories, age ranges, genders and family-history labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.Default()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Symptom categories: %s\n", strings.Join(store.Categories(), ", "))
			fmt.Fprintf(out, "Age ranges:         %s\n", strings.Join(store.AgeRanges(), ", "))
			fmt.Fprintf(out, "Genders:            %s\n", strings.Join(catalog.Genders(), ", "))
			fmt.Fprintf(out, "Family history:     %s\n", strings.Join(catalog.FamilyHistoryCategories(), ", "))
			return nil
		},
	}
}
