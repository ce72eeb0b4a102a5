// Package validation collects request field violations before a write
// reaches the store layer.
package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Required flags a missing or blank string field.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// RequiredPtr flags an absent or blank optional string field.
func RequiredPtr(field string, value *string, v Violations) {
	if value == nil || strings.TrimSpace(*value) == "" {
		v[field] = "required"
	}
}
