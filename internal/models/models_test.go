package models

import (
	"testing"
)

func TestUser_CanAccessForm_Admin(t *testing.T) {
	u := &User{Role: RoleAdmin}

	if !u.CanAccessForm("form-1") {
		t.Error("admin must access any form")
	}
	if !u.CanAccessForm("form-never-granted") {
		t.Error("admin must access forms outside any grant list")
	}
}

func TestUser_CanAccessForm_Staff(t *testing.T) {
	u := &User{Role: RoleStaff, AllowedForms: StringList{"form-1", "form-3"}}

	if !u.CanAccessForm("form-1") {
		t.Error("staff must access a granted form")
	}
	if u.CanAccessForm("form-2") {
		t.Error("staff must not access an ungranted form")
	}
}

func TestUser_CanAccessForm_StaffEmptyGrants(t *testing.T) {
	u := &User{Role: RoleStaff}

	if u.CanAccessForm("form-1") {
		t.Error("staff with no grants must not access any form")
	}
}

func TestStringList_Contains(t *testing.T) {
	l := StringList{"a", "b"}

	if !l.Contains("a") {
		t.Error("Contains should find existing element")
	}
	if l.Contains("c") {
		t.Error("Contains should not find missing element")
	}
	if (StringList{}).Contains("a") {
		t.Error("empty list contains nothing")
	}
}

func TestFormFieldList_RoundTrip(t *testing.T) {
	fields := FormFieldList{
		{ID: "f1", Label: "Name", FieldType: "text", Required: true},
		{ID: "f2", Label: "Why us?", FieldType: "textarea", Placeholder: "Tell us"},
		{ID: "f3", Label: "Age group", FieldType: "select", Options: StringList{"18-25", "26+"}},
	}

	val, err := fields.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded FormFieldList
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(decoded) != 3 {
		t.Fatalf("decoded %d fields, expected 3", len(decoded))
	}
	// Order is meaningful and must survive the text column.
	for i, f := range fields {
		if decoded[i].ID != f.ID {
			t.Errorf("field %d id = %q, expected %q", i, decoded[i].ID, f.ID)
		}
	}
	if decoded[0].Required != true {
		t.Error("required flag lost in round trip")
	}
	if len(decoded[2].Options) != 2 {
		t.Errorf("options lost in round trip: %v", decoded[2].Options)
	}
}

func TestFormFieldList_Validate(t *testing.T) {
	good := FormFieldList{{ID: "f1", FieldType: "text"}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}

	badType := FormFieldList{{ID: "f1", FieldType: "dropdown"}}
	if err := badType.Validate(); err == nil {
		t.Error("Validate() should reject unknown field type")
	}

	noID := FormFieldList{{FieldType: "text"}}
	if err := noID.Validate(); err == nil {
		t.Error("Validate() should reject fields without id")
	}
}

func TestResponseMap_ScanString(t *testing.T) {
	var m ResponseMap
	if err := m.Scan(`{"f1":"hello","f2":["a","b"]}`); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if m["f1"] != "hello" {
		t.Errorf("f1 = %v, expected %q", m["f1"], "hello")
	}
	if list, ok := m["f2"].([]interface{}); !ok || len(list) != 2 {
		t.Errorf("f2 = %v, expected list of 2", m["f2"])
	}
}

func TestScanJSON_NilAndEmpty(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Errorf("Scan(nil) error = %v", err)
	}
	if err := l.Scan([]byte{}); err != nil {
		t.Errorf("Scan(empty) error = %v", err)
	}
	if err := l.Scan(""); err != nil {
		t.Errorf("Scan(\"\") error = %v", err)
	}
}
