package fields

import (
	"reflect"
	"testing"

	"certification-api/models"
)

// Every registered field must appear in the storage mapping exactly once,
// and every mapped column must be distinct.
func TestMappingCoversRegistryExactlyOnce(t *testing.T) {
	fieldSeen := make(map[string]int)
	columnSeen := make(map[string]int)
	for _, bd := range bindings {
		fieldSeen[bd.field]++
		columnSeen[bd.column]++
	}

	for _, def := range Registry {
		switch fieldSeen[def.Name] {
		case 0:
			t.Errorf("field %s has no storage mapping", def.Name)
		case 1:
		default:
			t.Errorf("field %s mapped %d times", def.Name, fieldSeen[def.Name])
		}
	}
	for name, n := range fieldSeen {
		if _, ok := Lookup(name); !ok {
			t.Errorf("mapping references unregistered field %s", name)
		}
		if n != 1 {
			t.Errorf("field %s mapped %d times", name, n)
		}
	}
	for col, n := range columnSeen {
		if n != 1 {
			t.Errorf("column %s mapped %d times", col, n)
		}
	}
}

func TestApplyToRecordTouchesOnlyPresentFields(t *testing.T) {
	app := models.Application{LegalName: "Existing Name", City: "Richmond"}
	s := Set{"tradeName": "Acme"}

	cols := ApplyToRecord(s, &app)

	if !reflect.DeepEqual(cols, []string{"trade_name"}) {
		t.Fatalf("columns = %v", cols)
	}
	if app.LegalName != "Existing Name" || app.City != "Richmond" {
		t.Error("fields absent from the set must not be overwritten")
	}
	if app.TradeName != "Acme" {
		t.Error("present field was not applied")
	}
}

func TestLegalNameShadowsBusinessName(t *testing.T) {
	app := models.Application{}
	cols := ApplyToRecord(Set{"legalName": "Acme Paving LLC"}, &app)

	if app.BusinessName != "Acme Paving LLC" {
		t.Error("business_name should shadow legalName")
	}
	found := false
	for _, c := range cols {
		if c == "business_name" {
			found = true
		}
	}
	if !found {
		t.Errorf("business_name missing from touched columns: %v", cols)
	}
}

func TestYesNoRoundTrip(t *testing.T) {
	app := models.Application{}
	ApplyToRecord(Set{"hasEIN": "yes", "isFranchise": "no"}, &app)
	if !app.HasEIN || app.IsFranchise {
		t.Fatalf("yes/no not stored as booleans: %+v", app)
	}

	back := FromRecord(&app)
	if back.String("hasEIN") != "yes" {
		t.Errorf("hasEIN rehydrated as %q", back.String("hasEIN"))
	}
	if back.String("isFranchise") != "no" {
		t.Errorf("isFranchise rehydrated as %q", back.String("isFranchise"))
	}
}

func TestFullRoundTrip(t *testing.T) {
	s := NewSet()
	s["legalName"] = "Acme Paving LLC"
	s["designations"] = []string{"small", "women"}
	s["zipCode"] = "23220"
	s["isConfidential"] = true
	s["owners"] = []models.Owner{{ID: "o1", FullName: "Pat Jones", Title: "CEO", OwnershipPercentage: 100}}
	s["contacts"] = []models.Contact{{ID: "c1", ContactName: "Pat", ContactTitle: "CEO", BusinessPhone: "804-555-0101", BusinessEmail: "pat@acme.test"}}
	s["annualReceipts"] = models.AnnualReceipts{MostRecent: models.ReceiptYear{Amount: "250000", Year: "2025"}}
	s["swamTaxDocuments"] = []string{"swamTaxDocuments/abc.pdf"}

	app := models.Application{}
	ApplyToRecord(s, &app)
	back := FromRecord(&app)

	if back.String("legalName") != "Acme Paving LLC" {
		t.Error("legalName lost in round trip")
	}
	if !reflect.DeepEqual(back.Strings("designations"), []string{"small", "women"}) {
		t.Errorf("designations = %v", back.Strings("designations"))
	}
	if !back.Bool("isConfidential") {
		t.Error("isConfidential lost in round trip")
	}
	if got := back.Owners("owners"); len(got) != 1 || got[0].ID != "o1" {
		t.Errorf("owners = %+v", got)
	}
	if got := back.Receipts("annualReceipts"); got.MostRecent.Amount != "250000" {
		t.Errorf("annualReceipts = %+v", got)
	}
	if !reflect.DeepEqual(back.Strings("swamTaxDocuments"), []string{"swamTaxDocuments/abc.pdf"}) {
		t.Errorf("swamTaxDocuments = %v", back.Strings("swamTaxDocuments"))
	}
}

func TestDocumentColumnKnowsEverySlot(t *testing.T) {
	app := models.Application{}
	for _, slot := range DocumentFields {
		if DocumentColumn(&app, slot) == nil {
			t.Errorf("no column for document slot %s", slot)
		}
	}
	if DocumentColumn(&app, "nope") != nil {
		t.Error("unknown slot should map to nil")
	}
}
