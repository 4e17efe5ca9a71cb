package ir

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Schema describes the entity and relation types inferred from a document,
// plus a validation map narrowing which relations are legal per entity.
// It is derived from a document's text but not owned by it.
type Schema struct {
	Entities         []string            `json:"entities" validate:"required,min=1"`
	Relations        []string            `json:"relations" validate:"required,min=1"`
	ValidationSchema map[string][]string `json:"validation_schema"`
}

// Validate checks that entities and relations are non-empty and that every
// relation referenced by the validation map is declared in Relations.
// Violations are reported, never repaired: whether they are fatal is the
// caller's decision.
func (s *Schema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return err
	}

	declared := make(map[string]bool, len(s.Relations))
	for _, rel := range s.Relations {
		declared[rel] = true
	}

	for entity, relations := range s.ValidationSchema {
		for _, rel := range relations {
			if !declared[rel] {
				return &ValidationError{
					Field:   fmt.Sprintf("validation_schema[%q]", entity),
					Message: fmt.Sprintf("relation %q is not declared in relations", rel),
				}
			}
		}
	}
	return nil
}
