package fields

import (
	"strings"
	"testing"

	"certification-api/models"
)

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateStepScopesToSubstep(t *testing.T) {
	s := NewSet()
	// Designations screen: both its fields missing
	errs := ValidateStep(s, 1, 1)
	if !hasFieldError(errs, "designations") || !hasFieldError(errs, "businessType") {
		t.Fatalf("expected designation-screen errors, got %v", errs)
	}
	// Violations on other screens must not leak in
	if hasFieldError(errs, "legalName") || hasFieldError(errs, "signatureName") {
		t.Fatalf("substep validation leaked other screens: %v", errs)
	}
}

func TestDependentRequiredness(t *testing.T) {
	s := NewSet()
	s["hasEIN"] = "yes"
	errs := ValidateStep(s, 1, 3)
	if !hasFieldError(errs, "ein") {
		t.Error("ein should be required when hasEIN is yes")
	}

	s["hasEIN"] = "no"
	errs = ValidateStep(s, 1, 3)
	if hasFieldError(errs, "ein") {
		t.Error("ein should not be required when hasEIN is no")
	}

	s["isMailingSameAsPhysical"] = true
	errs = ValidateStep(s, 1, 2)
	if hasFieldError(errs, "mailingAddress") {
		t.Error("mailingAddress should not be required when same as physical")
	}
}

func TestPatternValidation(t *testing.T) {
	s := NewSet()
	s["zipCode"] = "1234"
	s["ein"] = "12-3456789"
	s["hasEIN"] = "yes"

	errs := Validate(s)
	if !hasFieldError(errs, "zipCode") {
		t.Error("short zip should fail")
	}
	if hasFieldError(errs, "ein") {
		t.Error("well-formed EIN should pass")
	}
}

func TestCascadingContactRule(t *testing.T) {
	first := models.Contact{
		ID: "c1", ContactName: "Pat", ContactTitle: "CEO",
		BusinessPhone: "804-555-0101", BusinessEmail: "pat@acme.test",
	}

	// Second contact untouched: no errors for it.
	s := NewSet()
	s["contacts"] = []models.Contact{first, {ID: "c2"}}
	for _, e := range Validate(s) {
		if strings.HasPrefix(e.Field, "contacts[1]") {
			t.Fatalf("empty non-first contact should be optional, got %v", e)
		}
	}

	// Second contact partially filled: its required sub-fields all apply.
	s["contacts"] = []models.Contact{first, {ID: "c2", ContactName: "Sam"}}
	errs := Validate(s)
	if !hasFieldError(errs, "contacts[1].contactTitle") ||
		!hasFieldError(errs, "contacts[1].businessPhone") ||
		!hasFieldError(errs, "contacts[1].businessEmail") {
		t.Fatalf("partially-filled contact should require its sub-fields, got %v", errs)
	}

	// First contact is always fully required.
	s["contacts"] = []models.Contact{{ID: "c1"}}
	errs = Validate(s)
	if !hasFieldError(errs, "contacts[0].contactName") {
		t.Fatal("first contact is always required")
	}
}

func TestCascadingOwnerRule(t *testing.T) {
	s := NewSet()
	s["owners"] = []models.Owner{
		{ID: "o1", FullName: "Pat Jones", Title: "CEO", OwnershipPercentage: 60},
		{},
		{ID: "o3", OwnershipPercentage: 40},
	}
	errs := Validate(s)
	if hasFieldError(errs, "owners[1].fullName") {
		t.Error("untouched non-first owner should be optional")
	}
	if !hasFieldError(errs, "owners[2].fullName") {
		t.Error("partially-filled owner should require a name")
	}
}
