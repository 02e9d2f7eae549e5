package domain

// Catalog Models

// Symptom is an immutable entry of the symptom catalog.
type Symptom struct {
	ID       string   `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Severity Severity `json:"severity" validate:"oneof=mild moderate severe"`
}

// Condition is an immutable entry of the condition catalog. SymptomIDs is the
// condition's canonical symptom signature, kept in catalog order.
type Condition struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	SymptomIDs     []string `json:"symptom_ids"`
	Prevalence     string   `json:"prevalence"`
	Rarity         Rarity   `json:"rarity" validate:"oneof=rare very-rare ultra-rare"`
	GeneticMarkers []string `json:"genetic_markers"`
	AgeGroups      []string `json:"age_groups"`
	MoreInfo       string   `json:"more_info"`
}

// HasGeneticMarkers reports whether the condition lists any genetic marker labels.
func (c Condition) HasGeneticMarkers() bool {
	return len(c.GeneticMarkers) > 0
}

// InAgeGroup reports whether label is one of the condition's age groups.
func (c Condition) InAgeGroup(label string) bool {
	for _, g := range c.AgeGroups {
		if g == label {
			return true
		}
	}
	return false
}

// Profile Models

// PatientProfile is the data gathered by the three collection steps.
// Slices are never shared between profile values; use Clone before handing one out.
type PatientProfile struct {
	SelectedSymptomIDs []string `json:"selected_symptom_ids"`
	GeneticMarkerText  string   `json:"genetic_marker_text"`
	AgeRange           string   `json:"age_range"`
	Gender             string   `json:"gender"`
	FamilyHistory      []string `json:"family_history"`
}

// NewPatientProfile returns an empty profile with non-nil collections.
func NewPatientProfile() PatientProfile {
	return PatientProfile{
		SelectedSymptomIDs: []string{},
		FamilyHistory:      []string{},
	}
}

// Clone returns a deep copy of the profile.
func (p PatientProfile) Clone() PatientProfile {
	out := p
	out.SelectedSymptomIDs = cloneStrings(p.SelectedSymptomIDs)
	out.FamilyHistory = cloneStrings(p.FamilyHistory)
	return out
}

// HasFamilyHistory reports whether category is recorded in the family history.
func (p PatientProfile) HasFamilyHistory(category string) bool {
	for _, c := range p.FamilyHistory {
		if c == category {
			return true
		}
	}
	return false
}

// Result Models

// MatchResult is one ranked candidate produced by a scoring run.
type MatchResult struct {
	Condition          Condition `json:"condition"`
	Confidence         int       `json:"confidence" validate:"min=0,max=95"`
	MatchingSymptomIDs []string  `json:"matching_symptom_ids"`
	RiskFactors        []string  `json:"risk_factors"`
}

// Clone returns a deep copy of the result.
func (m MatchResult) Clone() MatchResult {
	out := m
	out.Condition.SymptomIDs = cloneStrings(m.Condition.SymptomIDs)
	out.Condition.GeneticMarkers = cloneStrings(m.Condition.GeneticMarkers)
	out.Condition.AgeGroups = cloneStrings(m.Condition.AgeGroups)
	out.MatchingSymptomIDs = cloneStrings(m.MatchingSymptomIDs)
	out.RiskFactors = cloneStrings(m.RiskFactors)
	return out
}

// Workflow Models

// Step bounds of the data-collection workflow.
const (
	FirstStep = 1
	LastStep  = 3
)

// WorkflowState is the full observable state of a diagnosis session.
//
// Results is nil until a scoring run has completed; a completed run that kept
// no candidates leaves it as a non-nil empty slice.
type WorkflowState struct {
	Step      int            `json:"step" validate:"min=1,max=3"`
	Status    Status         `json:"status" validate:"oneof=editing computing"`
	Profile   PatientProfile `json:"profile"`
	Results   []MatchResult  `json:"results" validate:"dive"`
	LastError string         `json:"last_error,omitempty"`
}

// NewWorkflowState returns the initial session state.
func NewWorkflowState() WorkflowState {
	return WorkflowState{
		Step:    FirstStep,
		Status:  EDITING,
		Profile: NewPatientProfile(),
	}
}

// Computed reports whether a scoring run has produced a result set.
func (s WorkflowState) Computed() bool {
	return s.Results != nil
}

// Clone returns a deep copy of the state.
func (s WorkflowState) Clone() WorkflowState {
	out := s
	out.Profile = s.Profile.Clone()
	if s.Results != nil {
		out.Results = make([]MatchResult, len(s.Results))
		for i, r := range s.Results {
			out.Results[i] = r.Clone()
		}
	}
	return out
}

// cloneStrings copies a string slice, preserving nil.
func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
