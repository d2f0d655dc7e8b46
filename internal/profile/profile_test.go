package profile

import (
	"encoding/json"
	"reflect"
	"testing"
)

func testProfile() *Profile {
	return New(
		[]Field{{Name: "name", Value: "Neelabh"}},
		[]Field{
			{Name: "locations", Value: "Remote"},
			{Name: "locations", Value: "New York"},
			{Name: "salary", Value: "80000"},
		},
	)
}

func TestAppend_Dedup(t *testing.T) {
	p := testProfile()

	if !p.Append("locations", "Berlin") {
		t.Error("expected append of new value to succeed")
	}
	for range 5 {
		if p.Append("locations", "Berlin") {
			t.Error("expected duplicate append to be ignored")
		}
	}

	got := p.Values("locations")
	want := []string{"Remote", "New York", "Berlin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values(locations) = %v, want %v", got, want)
	}
}

func TestAppend_UnknownField(t *testing.T) {
	p := testProfile()

	if p.Append("hobbies", "chess") {
		t.Error("expected append to unknown field to be ignored")
	}
	if got := p.Fields(); !reflect.DeepEqual(got, []string{"locations", "salary"}) {
		t.Errorf("Fields() = %v", got)
	}
}

func TestAppend_EmptyValue(t *testing.T) {
	p := testProfile()

	if p.Append("salary", "") {
		t.Error("expected empty value to be ignored")
	}
}

func TestSeedDedup(t *testing.T) {
	p := New(nil, []Field{
		{Name: "cards", Value: "HDFC"},
		{Name: "cards", Value: "HDFC"},
	})
	if got := p.Values("cards"); len(got) != 1 {
		t.Errorf("expected seeded duplicates to collapse, got %v", got)
	}
}

func TestEditable_ReturnsCopy(t *testing.T) {
	p := testProfile()

	m := p.Editable()
	m["locations"][0] = "mutated"
	m["salary"] = append(m["salary"], "999")

	if got := p.Values("locations")[0]; got != "Remote" {
		t.Errorf("profile mutated through Editable copy: %q", got)
	}
	if got := p.Values("salary"); len(got) != 1 {
		t.Errorf("profile mutated through Editable copy: %v", got)
	}
}

func TestFixedValue(t *testing.T) {
	p := testProfile()

	if got := p.FixedValue("name"); got != "Neelabh" {
		t.Errorf("FixedValue(name) = %q", got)
	}
	if got := p.FixedValue("missing"); got != "" {
		t.Errorf("FixedValue(missing) = %q, want empty", got)
	}
}

func TestEditableJSON(t *testing.T) {
	p := testProfile()

	var decoded map[string][]string
	if err := json.Unmarshal([]byte(p.EditableJSON()), &decoded); err != nil {
		t.Fatalf("EditableJSON not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded["locations"], []string{"Remote", "New York"}) {
		t.Errorf("decoded locations = %v", decoded["locations"])
	}
}
