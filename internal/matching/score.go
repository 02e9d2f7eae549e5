// Package matching ranks catalog conditions against a patient profile.
//
// Score is a fixed, deterministic heuristic. It blends how much of a condition's
// symptom signature the patient shows with how much of the patient's selection
// the condition explains, then adds flat bonuses for a genetic marker hit and an
// age-group match.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/rare-disease-dx/internal/domain"
)

// Scoring constants
const (
	ConditionCoverageWeight = 0.6
	ProfileCoverageWeight   = 0.4
	GeneticBonus            = 15.0
	AgeBonus                = 10.0
	MaxConfidence           = 95
	MinConfidence           = 20 // results must score strictly above this
	MaxResults              = 5
	MultipleSymptomMinimum  = 3 // more matches than this earns the multiple-match tag
)

// Risk factor tags
const (
	RiskGeneticPredisposition = "Genetic predisposition"
	RiskAgeGroupMatch         = "Age group match"
	RiskMultipleSymptomMatch  = "Multiple symptom match"
)

// ConditionSource supplies the conditions to rank. *catalog.Store satisfies it.
type ConditionSource interface {
	AllConditions() []domain.Condition
}

// Score ranks every condition of src against profile and returns at most
// MaxResults results ordered by confidence, highest first. Ties keep catalog
// order. The returned slice is never nil; an empty slice is a valid outcome.
func Score(profile domain.PatientProfile, src ConditionSource) []domain.MatchResult {
	results := []domain.MatchResult{}
	if len(profile.SelectedSymptomIDs) == 0 {
		return results
	}

	selected := make(map[string]bool, len(profile.SelectedSymptomIDs))
	for _, id := range profile.SelectedSymptomIDs {
		selected[id] = true
	}
	geneticText := strings.ToLower(profile.GeneticMarkerText)

	for _, c := range src.AllConditions() {
		if len(c.SymptomIDs) == 0 {
			continue
		}
		result, keep := scoreCondition(c, profile, selected, geneticText)
		if keep {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// scoreCondition computes one condition's result and whether it passes the threshold.
func scoreCondition(c domain.Condition, profile domain.PatientProfile, selected map[string]bool, geneticText string) (domain.MatchResult, bool) {
	matched := []string{}
	for _, id := range c.SymptomIDs {
		if selected[id] {
			matched = append(matched, id)
		}
	}

	conditionCoverage := float64(len(matched)) / float64(len(c.SymptomIDs))
	profileCoverage := float64(len(matched)) / float64(len(profile.SelectedSymptomIDs))

	confidence := (conditionCoverage*ConditionCoverageWeight + profileCoverage*ProfileCoverageWeight) * 100

	if geneticMatch(geneticText, c.GeneticMarkers) {
		confidence += GeneticBonus
	}

	ageMatch := profile.AgeRange != "" && c.InAgeGroup(profile.AgeRange)
	if ageMatch {
		confidence += AgeBonus
	}

	confidence = math.Min(confidence, MaxConfidence)
	rounded := int(math.Round(confidence))

	riskFactors := []string{}
	if c.HasGeneticMarkers() {
		riskFactors = append(riskFactors, RiskGeneticPredisposition)
	}
	if ageMatch {
		riskFactors = append(riskFactors, RiskAgeGroupMatch)
	}
	if len(matched) > MultipleSymptomMinimum {
		riskFactors = append(riskFactors, RiskMultipleSymptomMatch)
	}

	return domain.MatchResult{
		Condition:          c,
		Confidence:         rounded,
		MatchingSymptomIDs: matched,
		RiskFactors:        riskFactors,
	}, rounded > MinConfidence
}

// geneticMatch reports whether the first word of any marker label occurs in
// the lower-cased genetic text. Substring matching is intentionally loose.
func geneticMatch(lowerText string, markers []string) bool {
	if lowerText == "" {
		return false
	}
	for _, marker := range markers {
		fields := strings.Fields(marker)
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(fields[0])) {
			return true
		}
	}
	return false
}
