// Package profile accumulates the patient profile gathered by the diagnosis workflow.
//
// Every update replaces the held profile with a fresh value, so a profile handed
// out by Profile is never changed afterwards. Updates are total: they never fail
// and applying the same payload twice has the same effect as applying it once.
package profile

import (
	"github.com/rare-disease-dx/internal/domain"
)

// GeneticTextAdvisoryLimit is the length above which collaborators should warn
// that the genetic marker text is unusually long. The engine has no limit.
const GeneticTextAdvisoryLimit = 10000

// Demographics carries a partial demographics update. Nil fields are left untouched.
type Demographics struct {
	AgeRange *string `json:"age_range,omitempty"`
	Gender   *string `json:"gender,omitempty"`
}

// Accumulator holds the in-progress patient profile.
// It is not safe for concurrent use; the workflow controller serialises access.
type Accumulator struct {
	profile domain.PatientProfile
}

// NewAccumulator returns an Accumulator holding an empty profile.
func NewAccumulator() *Accumulator {
	return &Accumulator{profile: domain.NewPatientProfile()}
}

// FromProfile returns an Accumulator seeded with a copy of p.
func FromProfile(p domain.PatientProfile) *Accumulator {
	a := &Accumulator{profile: p.Clone()}
	if a.profile.SelectedSymptomIDs == nil {
		a.profile.SelectedSymptomIDs = []string{}
	}
	if a.profile.FamilyHistory == nil {
		a.profile.FamilyHistory = []string{}
	}
	return a
}

// Profile returns a copy of the held profile.
func (a *Accumulator) Profile() domain.PatientProfile {
	return a.profile.Clone()
}

// SetSymptoms replaces the selected symptom ids verbatim. Ids are not checked
// against the catalog; unknown ids simply never match a condition.
func (a *Accumulator) SetSymptoms(ids []string) {
	next := a.profile.Clone()
	next.SelectedSymptomIDs = append([]string{}, ids...)
	a.profile = next
}

// SetGeneticMarkerText replaces the raw genetic marker text verbatim.
func (a *Accumulator) SetGeneticMarkerText(text string) {
	next := a.profile.Clone()
	next.GeneticMarkerText = text
	a.profile = next
}

// SetDemographics shallow-merges the non-nil fields of d into the profile.
func (a *Accumulator) SetDemographics(d Demographics) {
	next := a.profile.Clone()
	if d.AgeRange != nil {
		next.AgeRange = *d.AgeRange
	}
	if d.Gender != nil {
		next.Gender = *d.Gender
	}
	a.profile = next
}

// ToggleFamilyHistory adds category when present is true and removes it otherwise.
func (a *Accumulator) ToggleFamilyHistory(category string, present bool) {
	next := a.profile.Clone()
	has := next.HasFamilyHistory(category)
	switch {
	case present && !has:
		next.FamilyHistory = append(next.FamilyHistory, category)
	case !present && has:
		kept := make([]string, 0, len(next.FamilyHistory))
		for _, c := range next.FamilyHistory {
			if c != category {
				kept = append(kept, c)
			}
		}
		next.FamilyHistory = kept
	}
	a.profile = next
}

// AddSymptom returns ids with id appended, unless it is already selected.
func AddSymptom(ids []string, id string) []string {
	out := append([]string{}, ids...)
	for _, existing := range ids {
		if existing == id {
			return out
		}
	}
	return append(out, id)
}

// RemoveSymptom returns ids without any occurrence of id.
func RemoveSymptom(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// ExceedsAdvisoryLimit reports whether text is longer than GeneticTextAdvisoryLimit.
func ExceedsAdvisoryLimit(text string) bool {
	return len(text) > GeneticTextAdvisoryLimit
}

// StringPtr is a convenience for building Demographics literals.
func StringPtr(s string) *string {
	return &s
}
