package fields

import (
	"encoding/json"
	"reflect"
	"testing"

	"certification-api/models"
)

func TestNewSetHasDefaultForEveryField(t *testing.T) {
	s := NewSet()
	if len(s) != len(Registry) {
		t.Fatalf("defaults: got %d fields, want %d", len(s), len(Registry))
	}
	for _, def := range Registry {
		v, ok := s[def.Name]
		if !ok {
			t.Errorf("field %s missing from defaults", def.Name)
			continue
		}
		if v == nil {
			t.Errorf("field %s defaults to nil", def.Name)
		}
		if !s.IsEmpty(def.Name) && def.Kind != KindBool {
			t.Errorf("field %s default is not empty", def.Name)
		}
	}
}

func TestRegistryNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Registry {
		if seen[def.Name] {
			t.Errorf("field %s registered twice", def.Name)
		}
		seen[def.Name] = true
	}
}

func TestNormalizeDesignationsESOExclusive(t *testing.T) {
	got := NormalizeDesignations([]string{"small", "eso", "women"})
	if !reflect.DeepEqual(got, []string{"eso"}) {
		t.Fatalf("eso should clear other designations, got %v", got)
	}

	got = NormalizeDesignations([]string{"small", "small", "women", ""})
	if !reflect.DeepEqual(got, []string{"small", "women"}) {
		t.Fatalf("expected deduped designations, got %v", got)
	}
}

func TestSetUnmarshalUsesRegistryTypes(t *testing.T) {
	payload := `{
		"legalName": "Acme Paving LLC",
		"isMailingSameAsPhysical": true,
		"designations": ["small", "women"],
		"owners": [{"id": "o1", "full_name": "Pat Jones", "title": "CEO", "ownership_percentage": 100}],
		"annualReceipts": {"most_recent": {"amount": "250000", "year": "2025"}},
		"unknownField": "ignored",
		"tradeName": null
	}`

	var s Set
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := s.String("legalName"); got != "Acme Paving LLC" {
		t.Errorf("legalName = %q", got)
	}
	if !s.Bool("isMailingSameAsPhysical") {
		t.Error("isMailingSameAsPhysical should be true")
	}
	if got := s.Strings("designations"); !reflect.DeepEqual(got, []string{"small", "women"}) {
		t.Errorf("designations = %v", got)
	}
	owners := s.Owners("owners")
	if len(owners) != 1 || owners[0].FullName != "Pat Jones" || owners[0].OwnershipPercentage != 100 {
		t.Errorf("owners = %+v", owners)
	}
	if got := s.Receipts("annualReceipts").MostRecent.Amount; got != "250000" {
		t.Errorf("annualReceipts amount = %q", got)
	}
	if _, ok := s["unknownField"]; ok {
		t.Error("unknown fields should be dropped")
	}
	if _, ok := s["tradeName"]; ok {
		t.Error("null values should be dropped")
	}
}

func TestStripBlanksKeepsEmptyArraysAndFalseBools(t *testing.T) {
	s := Set{
		"legalName": "",
		"tradeName": "Acme",
		"contacts":  []models.Contact{},
		"isMailingSameAsPhysical": false,
	}
	stripped := s.StripBlanks()

	if _, ok := stripped["legalName"]; ok {
		t.Error("empty string should be stripped")
	}
	if _, ok := stripped["tradeName"]; !ok {
		t.Error("non-empty string should survive")
	}
	if _, ok := stripped["contacts"]; !ok {
		t.Error("empty array is real user intent and should survive")
	}
	if _, ok := stripped["isMailingSameAsPhysical"]; !ok {
		t.Error("false bool should survive")
	}
}
