package model

import (
	"fmt"
	"strings"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// blank reports whether a mapping value is empty after trimming.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateViewConfig checks a view configuration for constraint violations.
// It returns a *ValidationError if any rules fail, or nil if the config is
// valid. Validation is pure: it never mutates the config and never panics.
func ValidateViewConfig(c *ViewConfig) error {
	var ve ValidationError

	// ID and text mappings are required. Both missing is a single combined
	// error; just one missing is field-specific.
	m := c.FieldMappings
	switch {
	case blank(m.ID) && blank(m.Text):
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "field_mappings",
			Message: "id and text mappings are required",
		})
	case blank(m.ID):
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "field_mappings.id",
			Message: "is required",
		})
	case blank(m.Text):
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "field_mappings.text",
			Message: "is required",
		})
	}

	// Optional mappings, when present, must not be whitespace-only.
	optional := []struct {
		name  string
		value string
	}{
		{"field_mappings.start", m.Start},
		{"field_mappings.end", m.End},
		{"field_mappings.progress", m.Progress},
		{"field_mappings.parent", m.Parent},
		{"field_mappings.parents", m.Parents},
		{"field_mappings.dependency", m.Dependency},
		{"field_mappings.duration", m.Duration},
		{"field_mappings.type", m.Type},
	}
	for _, opt := range optional {
		if opt.value != "" && blank(opt.value) {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   opt.name,
				Message: "must not be blank when set",
			})
		}
	}

	// View mode: must be a valid enum value if present.
	if c.ViewMode != "" && !c.ViewMode.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "view_mode",
			Message: fmt.Sprintf("invalid value %q", c.ViewMode),
		})
	}

	// Default duration: must be positive if present.
	if c.DefaultDuration < 0 {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "default_duration",
			Message: fmt.Sprintf("must be greater than 0, got %d", c.DefaultDuration),
		})
	}

	// Missing-date behaviors: must be valid enum values if present.
	if c.MissingStartBehavior != "" && !c.MissingStartBehavior.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "missing_start_behavior",
			Message: fmt.Sprintf("invalid value %q", c.MissingStartBehavior),
		})
	}
	if c.MissingEndBehavior != "" && !c.MissingEndBehavior.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "missing_end_behavior",
			Message: fmt.Sprintf("invalid value %q", c.MissingEndBehavior),
		})
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
