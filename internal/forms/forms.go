// Package forms implements the dialog/form binding shared by every resource
// screen: a flat string-valued form state mapped to and from records, with
// submit-time required-field validation and comma-list round-tripping. One
// schema table per resource parameterizes the binding instead of six
// hand-written copies.
package forms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"recruitdesk/pkg/models"
	"recruitdesk/pkg/utils"
)

// Field describes one form input
type Field struct {
	// Name is the wire name of the bound record field
	Name string
	// Label is the human-readable name used in validation messages
	Label string
	// Required fields are checked at submit time, first failure wins
	Required bool
	// Default seeds the field in create mode
	Default string
	// DefaultToday seeds date fields with the current date in create mode
	DefaultToday bool
	// List fields are comma-separated in the form and []string on the wire
	List bool
	// Int fields are numeric on the wire
	Int bool
}

// Schema is the per-resource form configuration
type Schema struct {
	Resource string
	Fields   []Field
}

// Form is the editable state behind one dialog: a flat map of string values
// keyed by field name
type Form struct {
	schema Schema
	values map[string]string
}

// New creates a form in create mode, seeded with the full default object.
// State from a previous edit session never carries over.
func New(schema Schema) *Form {
	f := &Form{schema: schema}
	f.Reset()
	return f
}

// Reset returns the form to the full default object
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.schema.Fields))
	today := time.Now().Format(models.DateLayout)
	for _, field := range f.schema.Fields {
		switch {
		case field.DefaultToday:
			f.values[field.Name] = today
		default:
			f.values[field.Name] = field.Default
		}
	}
}

// LoadRecord switches the form to edit mode: every field present on the
// record is copied in verbatim, list fields are joined for display, and
// absent fields fall back to their defaults.
func (f *Form) LoadRecord(record models.Entity) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to read record into form: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to read record into form: %w", err)
	}

	f.Reset()
	for _, field := range f.schema.Fields {
		value, ok := fields[field.Name]
		if !ok || value == nil {
			continue
		}
		f.values[field.Name] = displayValue(field, value)
	}
	return nil
}

// displayValue renders one record value into its form representation
func displayValue(field Field, value any) string {
	if field.List {
		if items, ok := value.([]any); ok {
			strs := make([]string, 0, len(items))
			for _, item := range items {
				strs = append(strs, fmt.Sprint(item))
			}
			return utils.JoinList(strs)
		}
	}
	if num, ok := value.(float64); ok {
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

// Value returns the current value of a field
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Set replaces the value of a field
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

// FillIfEmpty applies lookup-suggestion values, but only to fields that are
// currently empty: selecting a suggestion is never destructive to manually
// typed data.
func (f *Form) FillIfEmpty(suggested map[string]string) {
	for name, value := range suggested {
		if f.values[name] == "" {
			f.values[name] = value
		}
	}
}

// Validate runs the submit-time required-field check, stopping at the first
// failing field
func (f *Form) Validate() error {
	for _, field := range f.schema.Fields {
		if field.Required && f.values[field.Name] == "" {
			return utils.NewValidationError(fmt.Sprintf("%s is required", field.Label))
		}
	}
	return nil
}

// Payload constructs the outbound record payload: comma-separated list
// inputs are split, trimmed and emptied of blank segments; numeric fields
// are converted; everything else passes through as entered.
func (f *Form) Payload() (map[string]any, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(f.schema.Fields))
	for _, field := range f.schema.Fields {
		value := f.values[field.Name]
		switch {
		case field.List:
			payload[field.Name] = utils.SplitList(value)
		case field.Int:
			if value == "" {
				payload[field.Name] = 0
				continue
			}
			num, err := strconv.Atoi(value)
			if err != nil {
				return nil, utils.NewValidationError(fmt.Sprintf("%s must be a number", field.Label))
			}
			payload[field.Name] = num
		default:
			payload[field.Name] = value
		}
	}
	return payload, nil
}
