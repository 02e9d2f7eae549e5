package domain

import (
	"fmt"
)

// CatalogError reports a catalog integrity violation. It is a configuration
// error: the catalog must not be used once one has been found.
type CatalogError struct {
	ConditionID string `json:"condition_id,omitempty"`
	SymptomID   string `json:"symptom_id,omitempty"`
	Reason      string `json:"reason"`
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	switch {
	case e.ConditionID != "" && e.SymptomID != "":
		return fmt.Sprintf("catalog integrity: condition %s: symptom %s: %s", e.ConditionID, e.SymptomID, e.Reason)
	case e.ConditionID != "":
		return fmt.Sprintf("catalog integrity: condition %s: %s", e.ConditionID, e.Reason)
	case e.SymptomID != "":
		return fmt.Sprintf("catalog integrity: symptom %s: %s", e.SymptomID, e.Reason)
	default:
		return fmt.Sprintf("catalog integrity: %s", e.Reason)
	}
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(conditionID, symptomID, reason string) *CatalogError {
	return &CatalogError{
		ConditionID: conditionID,
		SymptomID:   symptomID,
		Reason:      reason,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
