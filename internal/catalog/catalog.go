// Package catalog holds the bundled, read-only reference data: the symptom catalog,
// the condition catalog and the demographic option lists offered to collaborators.
//
// A Store is validated once when it is built. A condition whose symptom signature
// references an unknown symptom is a configuration error and the Store is never
// returned in that case.
package catalog

import (
	"strings"
	"sync"

	"github.com/rare-disease-dx/internal/domain"
)

// allCategories is the category filter value that matches every symptom.
const allCategories = "All"

// Store exposes read-only lookups over the catalog.
type Store struct {
	symptoms   []domain.Symptom
	conditions []domain.Condition
	symptomIdx map[string]int
	categories []string
	ageRanges  []string
}

// SymptomFilter narrows FilterSymptoms results.
type SymptomFilter struct {
	Query    string   // case-insensitive substring of the symptom name
	Category string   // "" or "All" matches every category
	Exclude  []string // symptom ids left out, typically the current selection
}

// New builds a Store from the given entries and validates catalog integrity.
// The inputs are copied; later changes to them do not affect the Store.
func New(symptoms []domain.Symptom, conditions []domain.Condition) (*Store, error) {
	s := &Store{
		symptoms:   make([]domain.Symptom, len(symptoms)),
		conditions: make([]domain.Condition, len(conditions)),
		symptomIdx: make(map[string]int, len(symptoms)),
	}
	copy(s.symptoms, symptoms)
	for i, c := range conditions {
		s.conditions[i] = cloneCondition(c)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	seenCategory := make(map[string]bool)
	for _, sym := range s.symptoms {
		if !seenCategory[sym.Category] {
			seenCategory[sym.Category] = true
			s.categories = append(s.categories, sym.Category)
		}
	}

	seenAge := make(map[string]bool)
	for _, c := range s.conditions {
		for _, g := range c.AgeGroups {
			if !seenAge[g] {
				seenAge[g] = true
				s.ageRanges = append(s.ageRanges, g)
			}
		}
	}

	return s, nil
}

// validate checks ids are unique and every signature entry resolves.
func (s *Store) validate() error {
	if len(s.conditions) == 0 {
		return domain.NewCatalogError("", "", "catalog has no conditions")
	}

	for i, sym := range s.symptoms {
		if sym.ID == "" {
			return domain.NewCatalogError("", "", "symptom with empty id")
		}
		if !sym.Severity.IsValid() {
			return domain.NewCatalogError("", sym.ID, "invalid severity "+sym.Severity.String())
		}
		if _, dup := s.symptomIdx[sym.ID]; dup {
			return domain.NewCatalogError("", sym.ID, "duplicate symptom id")
		}
		s.symptomIdx[sym.ID] = i
	}

	seen := make(map[string]bool, len(s.conditions))
	for _, c := range s.conditions {
		if c.ID == "" {
			return domain.NewCatalogError("", "", "condition with empty id")
		}
		if seen[c.ID] {
			return domain.NewCatalogError(c.ID, "", "duplicate condition id")
		}
		seen[c.ID] = true

		if !c.Rarity.IsValid() {
			return domain.NewCatalogError(c.ID, "", "invalid rarity "+c.Rarity.String())
		}

		inSignature := make(map[string]bool, len(c.SymptomIDs))
		for _, id := range c.SymptomIDs {
			if _, ok := s.symptomIdx[id]; !ok {
				return domain.NewCatalogError(c.ID, id, "unknown symptom id")
			}
			if inSignature[id] {
				return domain.NewCatalogError(c.ID, id, "symptom repeated in signature")
			}
			inSignature[id] = true
		}
	}
	return nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the Store built from the bundled catalog data.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = New(symptomData, conditionData)
	})
	return defaultStore, defaultErr
}

// MustDefault is Default for callers that treat an integrity error as fatal.
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// SymptomByID looks up a symptom. The error wraps domain.ErrNotFound.
func (s *Store) SymptomByID(id string) (domain.Symptom, error) {
	i, ok := s.symptomIdx[id]
	if !ok {
		return domain.Symptom{}, notFound("symptom", id)
	}
	return s.symptoms[i], nil
}

// ConditionByID looks up a condition. The error wraps domain.ErrNotFound.
func (s *Store) ConditionByID(id string) (domain.Condition, error) {
	for _, c := range s.conditions {
		if c.ID == id {
			return cloneCondition(c), nil
		}
	}
	return domain.Condition{}, notFound("condition", id)
}

// AllSymptoms returns every symptom in catalog order.
func (s *Store) AllSymptoms() []domain.Symptom {
	out := make([]domain.Symptom, len(s.symptoms))
	copy(out, s.symptoms)
	return out
}

// AllConditions returns every condition in catalog order.
func (s *Store) AllConditions() []domain.Condition {
	out := make([]domain.Condition, len(s.conditions))
	for i, c := range s.conditions {
		out[i] = cloneCondition(c)
	}
	return out
}

// Categories returns the symptom categories in first-seen catalog order.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

// AgeRanges returns the age-range labels used by condition age groups.
func (s *Store) AgeRanges() []string {
	return append([]string(nil), s.ageRanges...)
}

// IsAgeRange reports whether label is a catalog age-range label.
func (s *Store) IsAgeRange(label string) bool {
	for _, r := range s.ageRanges {
		if r == label {
			return true
		}
	}
	return false
}

// FilterSymptoms returns the symptoms matching f, in catalog order.
func (s *Store) FilterSymptoms(f SymptomFilter) []domain.Symptom {
	query := strings.ToLower(f.Query)
	exclude := make(map[string]bool, len(f.Exclude))
	for _, id := range f.Exclude {
		exclude[id] = true
	}

	var out []domain.Symptom
	for _, sym := range s.symptoms {
		if exclude[sym.ID] {
			continue
		}
		if f.Category != "" && f.Category != allCategories && sym.Category != f.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(sym.Name), query) {
			continue
		}
		out = append(out, sym)
	}
	return out
}

func cloneCondition(c domain.Condition) domain.Condition {
	c.SymptomIDs = append([]string{}, c.SymptomIDs...)
	c.AgeGroups = append([]string{}, c.AgeGroups...)
	if c.GeneticMarkers != nil {
		c.GeneticMarkers = append([]string{}, c.GeneticMarkers...)
	}
	return c
}
