package views

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/models"
)

// Rule is a validity predicate over a field's current value.
type Rule func(value string) bool

// Form is an explicit validation-rule table: one predicate per field,
// evaluated against the current values. Submit-enablement is the derived
// Valid() over all fields, so the result is independent of fill order.
type Form struct {
	rules  map[string]Rule
	values map[string]string
}

// NewForm creates a form with empty field values.
func NewForm(rules map[string]Rule) *Form {
	return &Form{
		rules:  rules,
		values: make(map[string]string),
	}
}

// Set records a field's current value.
func (f *Form) Set(field, value string) {
	f.values[field] = value
}

// Get returns a field's current value.
func (f *Form) Get(field string) string {
	return f.values[field]
}

// FieldValid evaluates one field's rule against its current value.
func (f *Form) FieldValid(field string) bool {
	rule, ok := f.rules[field]
	if !ok {
		return true
	}
	return rule(f.values[field])
}

// Valid reports whether every field passes its rule. Pure function of the
// current values.
func (f *Form) Valid() bool {
	for field := range f.rules {
		if !f.FieldValid(field) {
			return false
		}
	}
	return true
}

// --- Common rules ---

// Required rejects empty and whitespace-only values.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidEmail checks the email shape.
func ValidEmail(value string) bool {
	return auth.ValidateEmail(value)
}

// ValidDate checks for a parseable YYYY-MM-DD calendar date.
func ValidDate(value string) bool {
	_, err := models.ParseDate(value)
	return err == nil
}

// LengthBetween bounds the rune count of a trimmed value.
func LengthBetween(min, max int) Rule {
	return func(value string) bool {
		n := utf8.RuneCountInString(strings.TrimSpace(value))
		return n >= min && n <= max
	}
}

// KnownID accepts a numeric value for which known reports true.
func KnownID(known func(id int64) bool) Rule {
	return func(value string) bool {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		return known(id)
	}
}
