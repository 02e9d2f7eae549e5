package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rare-disease-dx/internal/catalog"
	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/profile"
	"github.com/rare-disease-dx/internal/report"
	"github.com/rare-disease-dx/internal/workflow"
)

// profileFile is the YAML shape accepted by diagnose --profile.
type profileFile struct {
	Symptoms       []string `yaml:"symptoms"`
	GeneticMarkers string   `yaml:"genetic_markers"`
	AgeRange       string   `yaml:"age_range"`
	Gender         string   `yaml:"gender"`
	FamilyHistory  []string `yaml:"family_history"`
}

type diagnoseOptions struct {
	profilePath string
	symptoms    []string
	genetic     string
	age         string
	gender      string
	family      []string
	json        bool
}

func diagnoseCmd(root *rootOptions) *cobra.Command {
	opts := &diagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Start a new session, collect the profile and rank candidate conditions",
		Example: `  rdx diagnose --symptom neuro_003 --symptom neuro_004 --age 30-50 --gender Male
  rdx diagnose --profile patient.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "YAML profile file; flags override its fields")
	cmd.Flags().StringSliceVar(&opts.symptoms, "symptom", nil, "selected symptom id (repeatable)")
	cmd.Flags().StringVar(&opts.genetic, "genetic", "", "free-form genetic marker text")
	cmd.Flags().StringVar(&opts.age, "age", "", "age range, see 'rdx catalog options'")
	cmd.Flags().StringVar(&opts.gender, "gender", "", "gender, see 'rdx catalog options'")
	cmd.Flags().StringSliceVar(&opts.family, "family", nil, "family-history category (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the report as JSON")
	return cmd
}

func runDiagnose(cmd *cobra.Command, root *rootOptions, opts *diagnoseOptions) error {
	p, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	s, _, err := openSession(cmd.Context(), root)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := validateProfile(s.Catalog(), p); err != nil {
		return err
	}
	if profile.ExceedsAdvisoryLimit(p.GeneticMarkerText) {
		s.Logger().WithField("length", len(p.GeneticMarkerText)).
			Warnf("Genetic marker text exceeds %d characters", profile.GeneticTextAdvisoryLimit)
	}

	c := s.Controller()
	steps := []workflow.Action{
		workflow.Reset{},
		workflow.UpdateSymptoms{IDs: p.SelectedSymptomIDs},
		workflow.Advance{},
		workflow.UpdateGeneticMarkers{Text: p.GeneticMarkerText},
		workflow.Advance{},
		workflow.UpdateDemographics{AgeRange: &p.AgeRange, Gender: &p.Gender},
	}
	for _, category := range p.FamilyHistory {
		steps = append(steps, workflow.ToggleFamilyHistory{Category: category, Present: true})
	}
	for _, a := range steps {
		if !c.Dispatch(a).Accepted {
			return fmt.Errorf("cannot continue past %s: %s", workflow.StepName(c.State().Step), missingFor(c.State()))
		}
	}

	outcome := c.Dispatch(workflow.Advance{})
	if !outcome.Accepted {
		return fmt.Errorf("cannot start analysis: %s", missingFor(c.State()))
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing profile...")
	if _, err := outcome.Computation.Wait(cmd.Context()); err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	r := report.Build(c.State(), time.Now())
	if opts.json {
		return report.WriteJSON(cmd.OutOrStdout(), r)
	}
	return report.WriteText(cmd.OutOrStdout(), r)
}

// resolve merges the optional profile file with the command-line flags.
func (o *diagnoseOptions) resolve(cmd *cobra.Command) (domain.PatientProfile, error) {
	p := domain.NewPatientProfile()

	if o.profilePath != "" {
		pf, err := readProfileFile(o.profilePath)
		if err != nil {
			return p, err
		}
		for _, id := range pf.Symptoms {
			p.SelectedSymptomIDs = profile.AddSymptom(p.SelectedSymptomIDs, id)
		}
		p.GeneticMarkerText = pf.GeneticMarkers
		p.AgeRange = pf.AgeRange
		p.Gender = pf.Gender
		p.FamilyHistory = append(p.FamilyHistory, pf.FamilyHistory...)
	}

	flags := cmd.Flags()
	if flags.Changed("symptom") {
		p.SelectedSymptomIDs = []string{}
	}
	for _, id := range o.symptoms {
		p.SelectedSymptomIDs = profile.AddSymptom(p.SelectedSymptomIDs, id)
	}
	if flags.Changed("genetic") {
		p.GeneticMarkerText = o.genetic
	}
	if flags.Changed("age") {
		p.AgeRange = o.age
	}
	if flags.Changed("gender") {
		p.Gender = o.gender
	}
	if flags.Changed("family") {
		p.FamilyHistory = append([]string{}, o.family...)
	}
	return p, nil
}

func readProfileFile(path string) (profileFile, error) {
	var pf profileFile

	f, err := os.Open(path)
	if err != nil {
		return pf, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return pf, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return pf, nil
}

// validateProfile rejects values the catalog does not offer. The core accepts
// anything; this check belongs to the command line.
func validateProfile(store *catalog.Store, p domain.PatientProfile) error {
	var errs []error
	for _, id := range p.SelectedSymptomIDs {
		if _, err := store.SymptomByID(id); err != nil {
			errs = append(errs, domain.NewValidationError("symptom", "unknown symptom id", id))
		}
	}
	if p.AgeRange != "" && !store.IsAgeRange(p.AgeRange) {
		errs = append(errs, domain.NewValidationError("age", "unknown age range", p.AgeRange))
	}
	if p.Gender != "" && !catalog.IsGender(p.Gender) {
		errs = append(errs, domain.NewValidationError("gender", "unknown gender", p.Gender))
	}
	for _, c := range p.FamilyHistory {
		if !catalog.IsFamilyHistoryCategory(c) {
			errs = append(errs, domain.NewValidationError("family", "unknown family-history category", c))
		}
	}
	return errors.Join(errs...)
}

func missingFor(state domain.WorkflowState) string {
	switch state.Step {
	case 1:
		return "at least one symptom is required"
	case 3:
		return "age range and gender are required"
	default:
		return "step incomplete"
	}
}
