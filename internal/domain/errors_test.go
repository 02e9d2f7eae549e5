package domain

import (
	"errors"
	"testing"
)

func TestCatalogError(t *testing.T) {
	tests := []struct {
		name        string
		conditionID string
		symptomID   string
		reason      string
		expected    string
	}{
		{
			name:        "Unknown symptom reference",
			conditionID: "disease_001",
			symptomID:   "neuro_999",
			reason:      "unknown symptom id",
			expected:    "catalog integrity: condition disease_001: symptom neuro_999: unknown symptom id",
		},
		{
			name:        "Condition only",
			conditionID: "disease_002",
			reason:      "duplicate condition id",
			expected:    "catalog integrity: condition disease_002: duplicate condition id",
		},
		{
			name:      "Symptom only",
			symptomID: "gi_001",
			reason:    "duplicate symptom id",
			expected:  "catalog integrity: symptom gi_001: duplicate symptom id",
		},
		{
			name:     "Catalog wide",
			reason:   "no conditions",
			expected: "catalog integrity: no conditions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCatalogError(tt.conditionID, tt.symptomID, tt.reason)

			if err.Error() != tt.expected {
				t.Errorf("Expected error string %s, got %s", tt.expected, err.Error())
			}

			var target *CatalogError
			if !errors.As(error(err), &target) {
				t.Errorf("Expected errors.As to match *CatalogError")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
		value   interface{}
	}{
		{
			name:    "Unknown age range",
			field:   "age_range",
			message: "not a catalog age range",
			value:   "30-39",
		},
		{
			name:    "Unknown gender",
			field:   "gender",
			message: "not a known gender option",
			value:   "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message, tt.value)

			if err.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, err.Field)
			}

			if err.Message != tt.message {
				t.Errorf("Expected message %s, got %s", tt.message, err.Message)
			}

			if err.Value != tt.value {
				t.Errorf("Expected value %v, got %v", tt.value, err.Value)
			}

			expectedError := "validation error for field '" + tt.field + "': " + tt.message
			if err.Error() != expectedError {
				t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
			}
		})
	}
}
