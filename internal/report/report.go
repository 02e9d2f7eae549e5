// Package report summarises a finished diagnosis session for display and export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/matching"
)

// ExportVersion is stamped on every JSON export.
const ExportVersion = "1.0"

// HighConfidenceThreshold is the confidence at or above which a result counts
// towards HighConfidenceCount.
const HighConfidenceThreshold = 60

// Disclaimer accompanies every report.
const Disclaimer = "DEMONSTRATION REPORT - NOT FOR CLINICAL USE. " +
	"Results are not intended for clinical diagnosis or medical decision-making. " +
	"Always consult qualified healthcare professionals for proper medical evaluation and diagnosis."

// Entry is one ranked result as presented in a report.
type Entry struct {
	Rank               int                      `json:"rank"`
	ConditionID        string                   `json:"condition_id"`
	Name               string                   `json:"name"`
	Confidence         int                      `json:"confidence"`
	Level              matching.ConfidenceLevel `json:"level"`
	Prevalence         string                   `json:"prevalence"`
	Rarity             domain.Rarity            `json:"rarity"`
	MatchingSymptomIDs []string                 `json:"matching_symptom_ids"`
	RiskFactors        []string                 `json:"risk_factors"`
	MoreInfo           string                   `json:"more_info,omitempty"`
}

// Report is the summary of one session.
type Report struct {
	GeneratedAt         time.Time `json:"generated_at"`
	Completed           bool      `json:"completed"`
	ResultCount         int       `json:"result_count"`
	SymptomsAnalyzed    int       `json:"symptoms_analyzed"`
	HighConfidenceCount int       `json:"high_confidence_count"`
	Results             []Entry   `json:"results"`
	Disclaimer          string    `json:"disclaimer"`
}

// Export is the JSON document written by WriteJSON.
type Export struct {
	Version string `json:"version"`
	Report  Report `json:"report"`
}

// Build summarises state. A session that has not been scored yields a report
// with Completed false and no results.
func Build(state domain.WorkflowState, generatedAt time.Time) Report {
	r := Report{
		GeneratedAt:      generatedAt,
		Completed:        state.Computed(),
		ResultCount:      len(state.Results),
		SymptomsAnalyzed: len(state.Profile.SelectedSymptomIDs),
		Results:          make([]Entry, 0, len(state.Results)),
		Disclaimer:       Disclaimer,
	}

	for i, res := range state.Results {
		if res.Confidence >= HighConfidenceThreshold {
			r.HighConfidenceCount++
		}
		r.Results = append(r.Results, Entry{
			Rank:               i + 1,
			ConditionID:        res.Condition.ID,
			Name:               res.Condition.Name,
			Confidence:         res.Confidence,
			Level:              matching.LevelFor(res.Confidence),
			Prevalence:         res.Condition.Prevalence,
			Rarity:             res.Condition.Rarity,
			MatchingSymptomIDs: append([]string{}, res.MatchingSymptomIDs...),
			RiskFactors:        append([]string{}, res.RiskFactors...),
			MoreInfo:           res.Condition.MoreInfo,
		})
	}
	return r
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	export := &Export{
		Version: ExportVersion,
		Report:  r,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText writes a plain-text rendering of r, one ranked result per block.
func WriteText(w io.Writer, r Report) error {
	ew := &errWriter{w: w}

	ew.printf("Rare Disease Diagnostic Report\n")
	ew.printf("Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	if !r.Completed {
		ew.printf("No results available. Complete a diagnostic assessment first.\n")
	} else {
		ew.printf("Symptoms analyzed: %d\n", r.SymptomsAnalyzed)
		ew.printf("Conditions matched: %d (%d high confidence)\n\n", r.ResultCount, r.HighConfidenceCount)
		if r.ResultCount == 0 {
			ew.printf("No condition matched the profile above the reporting threshold.\n")
		}
		for _, e := range r.Results {
			ew.printf("%d. %s\n", e.Rank, e.Name)
			ew.printf("   Confidence: %d%% (%s)\n", e.Confidence, e.Level)
			ew.printf("   Prevalence: %s\n", e.Prevalence)
			if len(e.RiskFactors) > 0 {
				ew.printf("   Risk factors: %s\n", strings.Join(e.RiskFactors, ", "))
			}
		}
	}
	ew.printf("\n%s\n", r.Disclaimer)
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
