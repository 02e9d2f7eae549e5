package workflow

// ActionKind names a dispatched action, or the internal event that caused a state change.
type ActionKind string

const (
	KindUpdateSymptoms       ActionKind = "update_symptoms"
	KindUpdateGeneticMarkers ActionKind = "update_genetic_markers"
	KindUpdateDemographics   ActionKind = "update_demographics"
	KindToggleFamilyHistory  ActionKind = "toggle_family_history"
	KindAdvance              ActionKind = "advance"
	KindRetreat              ActionKind = "retreat"
	KindReset                ActionKind = "reset"

	// Events raised by the controller itself.
	KindComputationDone ActionKind = "computation_done"
	KindRestore         ActionKind = "restore"
)

// Action is one entry of the dispatch surface. The set is closed; only the
// types in this file implement it.
type Action interface {
	Kind() ActionKind
	isAction()
}

// UpdateSymptoms replaces the selected symptom ids.
type UpdateSymptoms struct {
	IDs []string
}

// UpdateGeneticMarkers replaces the raw genetic marker text.
type UpdateGeneticMarkers struct {
	Text string
}

// UpdateDemographics merges the non-nil fields into the profile.
type UpdateDemographics struct {
	AgeRange *string
	Gender   *string
}

// ToggleFamilyHistory adds or removes a family-history category.
type ToggleFamilyHistory struct {
	Category string
	Present  bool
}

// Advance moves to the next step, or starts scoring from the last step.
type Advance struct{}

// Retreat moves back one step.
type Retreat struct{}

// Reset discards the session and returns to the initial state.
type Reset struct{}

func (UpdateSymptoms) Kind() ActionKind       { return KindUpdateSymptoms }
func (UpdateGeneticMarkers) Kind() ActionKind { return KindUpdateGeneticMarkers }
func (UpdateDemographics) Kind() ActionKind   { return KindUpdateDemographics }
func (ToggleFamilyHistory) Kind() ActionKind  { return KindToggleFamilyHistory }
func (Advance) Kind() ActionKind              { return KindAdvance }
func (Retreat) Kind() ActionKind              { return KindRetreat }
func (Reset) Kind() ActionKind                { return KindReset }

func (UpdateSymptoms) isAction()       {}
func (UpdateGeneticMarkers) isAction() {}
func (UpdateDemographics) isAction()   {}
func (ToggleFamilyHistory) isAction()  {}
func (Advance) isAction()              {}
func (Retreat) isAction()              {}
func (Reset) isAction()                {}
