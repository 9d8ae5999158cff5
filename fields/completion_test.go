package fields

import (
	"math"
	"testing"

	"certification-api/models"
)

func filledRequired() Set {
	s := NewSet()
	s["designations"] = []string{"small"}
	s["businessType"] = "LLC"
	s["legalName"] = "Acme Paving LLC"
	s["physicalAddress"] = "1 Main St"
	s["city"] = "Richmond"
	s["state"] = "VA"
	s["zipCode"] = "23220"
	s["businessPhone"] = "804-555-0101"
	s["businessEmail"] = "pat@acme.test"
	s["contactName"] = "Pat Jones"
	s["contactTitle"] = "CEO"
	s["taxIdentificationNumber"] = "12-3456789"
	s["businessEstablishmentYear"] = "2015"
	s["annualReceipts"] = models.AnnualReceipts{MostRecent: models.ReceiptYear{Amount: "250000", Year: "2025"}}
	s["contacts"] = []models.Contact{{ID: "c1", ContactName: "Pat", ContactTitle: "CEO", BusinessPhone: "804-555-0101", BusinessEmail: "pat@acme.test"}}
	s["affiliates"] = []models.Affiliate{{ID: "a1", OwnerName: "Pat Jones", FirmName: "Acme Two", OwnershipPercentage: 15}}
	return s
}

func TestEstimateEmptyIsZero(t *testing.T) {
	if got := EstimateCompletion(NewSet()); got != 0 {
		t.Fatalf("empty set estimates %d, want 0", got)
	}
}

func TestEstimateRequiredOnly(t *testing.T) {
	want := int(math.Round(100 * float64(len(RequiredFields)) /
		float64(len(RequiredFields)+len(DocumentFields))))
	if got := EstimateCompletion(filledRequired()); got != want {
		t.Fatalf("required-only estimate = %d, want %d", got, want)
	}
}

func TestEstimateEverythingIs100(t *testing.T) {
	s := filledRequired()
	for _, doc := range DocumentFields {
		s[doc] = []string{doc + "/file.pdf"}
	}
	if got := EstimateCompletion(s); got != 100 {
		t.Fatalf("full set estimates %d, want 100", got)
	}
}

// Populating any additional field never lowers the estimate.
func TestEstimateMonotonicity(t *testing.T) {
	base := NewSet()
	prev := EstimateCompletion(base)

	grow := filledRequired()
	for _, name := range RequiredFields {
		base[name] = grow[name]
		cur := EstimateCompletion(base)
		if cur < prev {
			t.Fatalf("estimate dropped from %d to %d after adding %s", prev, cur, name)
		}
		prev = cur
	}
	for _, doc := range DocumentFields {
		base[doc] = []string{doc + "/file.pdf"}
		cur := EstimateCompletion(base)
		if cur < prev {
			t.Fatalf("estimate dropped from %d to %d after adding %s", prev, cur, doc)
		}
		prev = cur
	}
	if prev != 100 {
		t.Fatalf("final estimate = %d, want 100", prev)
	}
}
