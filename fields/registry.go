package fields

import "regexp"

// Kind is a field's semantic type.
type Kind int

const (
	KindString Kind = iota
	KindYesNo       // "yes" / "no" / "" stored as a boolean column
	KindBool
	KindStringSlice
	KindOwners
	KindContacts
	KindAffiliates
	KindNAICS
	KindReceipts
	KindCorporation
	KindLLC
)

// Dependency makes a field required only when another field holds a value,
// e.g. ein is required once hasEIN is answered "yes".
type Dependency struct {
	Field  string
	Equals any
}

// Definition declares one form field: type, validation, and the wizard
// substep it belongs to (used to gate forward navigation).
type Definition struct {
	Name         string
	Kind         Kind
	Required     bool
	Pattern      *regexp.Regexp
	Message      string
	RequiredWhen *Dependency
	Step         int
	Substep      int
}

var (
	einPattern   = regexp.MustCompile(`^\d{2}-?\d{7}$`)
	ssnPattern   = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phonePattern = regexp.MustCompile(`^[\d\s()+.-]{10,20}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	yearPattern  = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// DesignationESO is mutually exclusive with every other designation:
// selecting it clears the rest.
const DesignationESO = "eso"

// DocumentFields lists the eleven document-path array fields in upload
// slot order. Each one is both a registry field and an upload slot name.
var DocumentFields = []string{
	"generalSubmissionDocuments",
	"businessFinancialDocuments",
	"personalDocuments",
	"businessOperationalDocuments",
	"corporateOrganizationalDocuments",
	"additionalDocuments",
	"swamBusinessFormationDocuments",
	"swamTaxDocuments",
	"swamEmploymentDocuments",
	"swamPersonalDocuments",
	"swamAdditionalDocuments",
}

// Registry is the canonical field set. Validation and the storage mapping
// are both derived from it; no other package duplicates a required-ness
// check or a column name.
var Registry = buildRegistry()

func buildRegistry() []Definition {
	defs := []Definition{
		// 1.1 Designations and business types
		{Name: "designations", Kind: KindStringSlice, Required: true, Message: "Select at least one certification type", Step: 1, Substep: 1},
		{Name: "businessType", Kind: KindString, Required: true, Message: "Business type is required", Step: 1, Substep: 1},

		// 1.2 General information
		{Name: "legalName", Kind: KindString, Required: true, Message: "Legal name is required", Step: 1, Substep: 2},
		{Name: "tradeName", Kind: KindString, Step: 1, Substep: 2},
		{Name: "physicalAddress", Kind: KindString, Required: true, Message: "Physical address is required", Step: 1, Substep: 2},
		{Name: "isMailingSameAsPhysical", Kind: KindBool, Step: 1, Substep: 2},
		{Name: "mailingAddress", Kind: KindString, RequiredWhen: &Dependency{Field: "isMailingSameAsPhysical", Equals: false}, Message: "Mailing address is required", Step: 1, Substep: 2},
		{Name: "city", Kind: KindString, Required: true, Message: "City is required", Step: 1, Substep: 2},
		{Name: "state", Kind: KindString, Required: true, Message: "State is required", Step: 1, Substep: 2},
		{Name: "zipCode", Kind: KindString, Required: true, Pattern: zipPattern, Message: "Valid ZIP code is required", Step: 1, Substep: 2},
		{Name: "country", Kind: KindString, Step: 1, Substep: 2},
		{Name: "contactName", Kind: KindString, Required: true, Message: "Contact name is required", Step: 1, Substep: 2},
		{Name: "contactTitle", Kind: KindString, Required: true, Message: "Contact title is required", Step: 1, Substep: 2},
		{Name: "businessPhone", Kind: KindString, Required: true, Pattern: phonePattern, Message: "Valid phone number is required", Step: 1, Substep: 2},
		{Name: "businessPhoneExt", Kind: KindString, Step: 1, Substep: 2},
		{Name: "businessFax", Kind: KindString, Step: 1, Substep: 2},
		{Name: "businessEmail", Kind: KindString, Required: true, Pattern: emailPattern, Message: "Valid email is required", Step: 1, Substep: 2},
		{Name: "website", Kind: KindString, Step: 1, Substep: 2},
		{Name: "isRegisteredWithEVA", Kind: KindYesNo, Step: 1, Substep: 2},
		{Name: "isRegisteredWithVASCC", Kind: KindYesNo, Step: 1, Substep: 2},
		{Name: "isFranchise", Kind: KindYesNo, Step: 1, Substep: 2},
		{Name: "receiveMarketingEmails", Kind: KindYesNo, Step: 1, Substep: 2},
		{Name: "contacts", Kind: KindContacts, Required: true, Message: "At least one contact is required", Step: 1, Substep: 2},

		// 1.3 Tax information
		{Name: "hasEIN", Kind: KindYesNo, Step: 1, Substep: 3},
		{Name: "ein", Kind: KindString, Pattern: einPattern, RequiredWhen: &Dependency{Field: "hasEIN", Equals: "yes"}, Message: "Valid EIN is required", Step: 1, Substep: 3},
		{Name: "ssn", Kind: KindString, Pattern: ssnPattern, RequiredWhen: &Dependency{Field: "taxIdentificationType", Equals: "ssn"}, Message: "Valid SSN is required", Step: 1, Substep: 3},
		{Name: "taxIdentificationType", Kind: KindString, Required: true, Message: "Tax identification type is required", Step: 1, Substep: 3},
		{Name: "taxIdentificationNumber", Kind: KindString, Required: true, Message: "Tax identification number is required", Step: 1, Substep: 3},
		{Name: "businessStartDate", Kind: KindString, Step: 1, Substep: 3},
		{Name: "fiscalYearEnd", Kind: KindString, Step: 1, Substep: 3},
		{Name: "businessEstablishmentYear", Kind: KindString, Required: true, Pattern: yearPattern, Message: "Establishment year is required", Step: 1, Substep: 3},
		{Name: "annualGrossReceipts", Kind: KindString, Step: 1, Substep: 3},
		{Name: "numEmployees", Kind: KindString, Step: 1, Substep: 3},
		{Name: "annualReceipts", Kind: KindReceipts, Required: true, Message: "Most recent annual receipts are required", Step: 1, Substep: 3},

		// 1.4 Ownership
		{Name: "ownershipStructure", Kind: KindString, Step: 1, Substep: 4},
		{Name: "owners", Kind: KindOwners, Required: true, Message: "At least one owner is required", Step: 1, Substep: 4},
		{Name: "doOwnersHave10PctOwnershipInOtherFirms", Kind: KindBool, Step: 1, Substep: 4},
		{Name: "affiliates", Kind: KindAffiliates, Step: 1, Substep: 4},

		// 1.5 Corporation, LLC, or LLP details
		{Name: "corporationInfo", Kind: KindCorporation, Step: 1, Substep: 5},
		{Name: "llcInfo", Kind: KindLLC, Step: 1, Substep: 5},

		// 1.6 NIGP commodity codes
		{Name: "nigpCodes", Kind: KindStringSlice, Step: 1, Substep: 6},
		{Name: "naicsCodes", Kind: KindNAICS, Step: 1, Substep: 6},

		// 1.7 Geographic marketing area
		{Name: "geographicMarketingAreas", Kind: KindStringSlice, Step: 1, Substep: 7},
		{Name: "acceptsChargeCards", Kind: KindBool, Step: 1, Substep: 7},

		// 1.8 FOIA exemption
		{Name: "isConfidential", Kind: KindBool, Step: 1, Substep: 8},
		{Name: "confidentialityReason", Kind: KindString, RequiredWhen: &Dependency{Field: "isConfidential", Equals: true}, Message: "Confidentiality reason is required", Step: 1, Substep: 8},
		{Name: "exemptionRequested", Kind: KindBool, Step: 1, Substep: 8},
		{Name: "exemptionReason", Kind: KindString, RequiredWhen: &Dependency{Field: "exemptionRequested", Equals: true}, Message: "Exemption reason is required", Step: 1, Substep: 8},

		// 4.2 Affidavit and debarment
		{Name: "affidavitAgreement", Kind: KindBool, Required: true, Message: "The affidavit must be agreed to", Step: 4, Substep: 2},
		{Name: "signatureName", Kind: KindString, Required: true, Message: "Signature name is required", Step: 4, Substep: 2},
		{Name: "signatureDate", Kind: KindString, Required: true, Message: "Signature date is required", Step: 4, Substep: 2},
		{Name: "signatureTitle", Kind: KindString, Required: true, Message: "Signature title is required", Step: 4, Substep: 2},
	}

	// DBE document categories, substeps 3-8 of step 2.
	for i, name := range DocumentFields[:6] {
		defs = append(defs, Definition{Name: name, Kind: KindStringSlice, Step: 2, Substep: 3 + i})
	}
	// SWaM document categories, substeps 2-6 of step 3.
	for i, name := range DocumentFields[6:] {
		defs = append(defs, Definition{Name: name, Kind: KindStringSlice, Step: 3, Substep: 2 + i})
	}
	return defs
}

var registryByName = func() map[string]Definition {
	m := make(map[string]Definition, len(Registry))
	for _, def := range Registry {
		m[def.Name] = def
	}
	return m
}()

// Lookup returns the definition for an internal field name.
func Lookup(name string) (Definition, bool) {
	def, ok := registryByName[name]
	return def, ok
}

// NormalizeDesignations enforces the exclusivity rule: the ESO designation
// cannot be combined with any other, so selecting it clears the rest.
func NormalizeDesignations(designations []string) []string {
	for _, d := range designations {
		if d == DesignationESO {
			return []string{DesignationESO}
		}
	}
	out := make([]string, 0, len(designations))
	seen := make(map[string]bool, len(designations))
	for _, d := range designations {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
