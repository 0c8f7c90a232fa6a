package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// The store keeps form fields, staff form grants and submission answers as
// serialized JSON text columns rather than normalized sub-tables. The types
// below implement driver.Valuer/sql.Scanner so GORM round-trips them
// transparently across sqlite, mysql and postgres.

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// StringList is an ordered list of strings stored as a JSON text column.
// Used for staff allowed_forms grants and field options.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Contains reports whether s is in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// FormField is one question on an application form. Field order within a
// form is meaningful and preserved.
type FormField struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	FieldType   string     `json:"field_type"` // text, textarea, select, radio, checkbox
	Options     StringList `json:"options,omitempty"`
	Required    bool       `json:"required"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// FormFieldList is the ordered field sequence of a form, stored as JSON text.
type FormFieldList []FormField

func (l FormFieldList) Value() (driver.Value, error) {
	if l == nil {
		l = FormFieldList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *FormFieldList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ResponseMap maps a field id to the applicant's answer: a string, or an
// ordered list of strings for checkbox fields. Stored as JSON text.
type ResponseMap map[string]interface{}

func (m ResponseMap) Value() (driver.Value, error) {
	if m == nil {
		m = ResponseMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *ResponseMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

var validFieldTypes = map[string]bool{
	"text":     true,
	"textarea": true,
	"select":   true,
	"radio":    true,
	"checkbox": true,
}

// Validate checks field types on a form definition.
func (l FormFieldList) Validate() error {
	for _, f := range l {
		if f.ID == "" {
			return errors.New("form field missing id")
		}
		if !validFieldTypes[f.FieldType] {
			return fmt.Errorf("invalid field type %q", f.FieldType)
		}
	}
	return nil
}
