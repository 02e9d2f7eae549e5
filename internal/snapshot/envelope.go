// Package snapshot persists the diagnosis session to a local slot so a restart
// resumes where the user left off.
//
// A snapshot is a versioned JSON envelope around the workflow state. Anything
// that fails to decode, carries another version, or does not pass shape
// validation is treated exactly like a missing snapshot.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/rare-disease-dx/internal/domain"
)

// Version is the only envelope version this build reads or writes.
const Version = 1

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Envelope is the persisted record.
//
// JSON strings cannot carry invalid UTF-8, so free-form genetic marker text
// that is not valid UTF-8 travels base64-encoded in GeneticMarkerRaw and the
// string field is left empty.
type Envelope struct {
	Version          int                  `json:"version"`
	SessionID        string               `json:"session_id" validate:"required,uuid"`
	SavedAt          time.Time            `json:"saved_at" validate:"required"`
	State            domain.WorkflowState `json:"state"`
	GeneticMarkerRaw []byte               `json:"genetic_marker_raw,omitempty"`
}

// Encode wraps state in a current-version envelope.
func Encode(sessionID string, state domain.WorkflowState, savedAt time.Time) ([]byte, error) {
	env := Envelope{
		Version:   Version,
		SessionID: sessionID,
		SavedAt:   savedAt.UTC(),
		State:     state,
	}
	if text := state.Profile.GeneticMarkerText; !utf8.ValidString(text) {
		env.GeneticMarkerRaw = []byte(text)
		env.State = state.Clone()
		env.State.Profile.GeneticMarkerText = ""
	}
	if err := validate.Struct(env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if field, ok := invalidUTF8(state.Profile); ok {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrInvalidSnapshot, field)
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses and checks an envelope. Errors wrap domain.ErrSnapshotVersion
// or domain.ErrInvalidSnapshot.
func Decode(data []byte) (Envelope, error) {
	var env Envelope

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if dec.More() {
		return Envelope{}, fmt.Errorf("%w: trailing data", domain.ErrInvalidSnapshot)
	}

	if env.Version != Version {
		return Envelope{}, fmt.Errorf("%w: got %d, want %d", domain.ErrSnapshotVersion, env.Version, Version)
	}
	if err := validate.Struct(env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if env.GeneticMarkerRaw != nil {
		if env.State.Profile.GeneticMarkerText != "" {
			return Envelope{}, fmt.Errorf("%w: genetic marker text stored twice", domain.ErrInvalidSnapshot)
		}
		env.State.Profile.GeneticMarkerText = string(env.GeneticMarkerRaw)
		env.GeneticMarkerRaw = nil
	}
	return env, nil
}

// invalidUTF8 names the first profile label that JSON would rewrite. Genetic
// marker text is handled separately.
func invalidUTF8(p domain.PatientProfile) (string, bool) {
	for _, id := range p.SelectedSymptomIDs {
		if !utf8.ValidString(id) {
			return "selected_symptom_ids", true
		}
	}
	for _, c := range p.FamilyHistory {
		if !utf8.ValidString(c) {
			return "family_history", true
		}
	}
	if !utf8.ValidString(p.AgeRange) {
		return "age_range", true
	}
	if !utf8.ValidString(p.Gender) {
		return "gender", true
	}
	return "", false
}
