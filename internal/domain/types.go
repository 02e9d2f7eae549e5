// Package domain contains the core entities of the rare-disease candidate matching engine:
// the static symptom and condition catalog entries, the patient profile collected by the
// diagnosis workflow, and the ranked match results produced by scoring.
//
// Confidence values are heuristic match strengths, not calibrated probabilities.
// Nothing in this package performs medical inference.
package domain

import (
	"errors"
	"fmt"
)

// Severity is the clinical severity attached to a catalog symptom.
type Severity string

const (
	MILD     Severity = "mild"
	MODERATE Severity = "moderate"
	SEVERE   Severity = "severe"
)

// Rarity classifies how uncommon a catalog condition is.
type Rarity string

const (
	RARE       Rarity = "rare"
	VERY_RARE  Rarity = "very-rare"
	ULTRA_RARE Rarity = "ultra-rare"
)

// Status is the workflow's activity status.
type Status string

const (
	EDITING   Status = "editing"
	COMPUTING Status = "computing"
)

// Validation errors for catalog and snapshot integrity
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidSeverity  = errors.New("invalid symptom severity")
	ErrInvalidRarity    = errors.New("invalid condition rarity")
	ErrInvalidStatus    = errors.New("invalid workflow status")
	ErrSnapshotAbsent   = errors.New("snapshot absent")
	ErrSnapshotVersion  = errors.New("unsupported snapshot version")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrStoreUnavailable = errors.New("snapshot store unavailable")
)

// IsValid reports whether the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case MILD, MODERATE, SEVERE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid reports whether the rarity is one of the known tiers.
func (r Rarity) IsValid() bool {
	switch r {
	case RARE, VERY_RARE, ULTRA_RARE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the rarity.
func (r Rarity) String() string {
	return string(r)
}

// IsValid reports whether the status is one of the workflow statuses.
func (s Status) IsValid() bool {
	switch s {
	case EDITING, COMPUTING:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}
