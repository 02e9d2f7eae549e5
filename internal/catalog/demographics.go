package catalog

import (
	"fmt"

	"github.com/rare-disease-dx/internal/domain"
)

var genderOptions = []string{
	"Male", "Female", "Other", "Prefer not to say",
}

var familyHistoryCategories = []string{
	"Cancer", "Heart Disease", "Diabetes", "Neurological Disorders",
	"Mental Health Conditions", "Autoimmune Disorders", "Genetic Disorders",
	"Kidney Disease", "Lung Disease", "Blood Disorders",
}

// Genders returns the fixed gender enumeration.
func Genders() []string {
	return append([]string(nil), genderOptions...)
}

// IsGender reports whether g is one of the gender options.
func IsGender(g string) bool {
	for _, o := range genderOptions {
		if o == g {
			return true
		}
	}
	return false
}

// FamilyHistoryCategories returns the family-history condition categories.
func FamilyHistoryCategories() []string {
	return append([]string(nil), familyHistoryCategories...)
}

// IsFamilyHistoryCategory reports whether c is a family-history category.
func IsFamilyHistoryCategory(c string) bool {
	for _, o := range familyHistoryCategories {
		if o == c {
			return true
		}
	}
	return false
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}
