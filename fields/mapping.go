package fields

import (
	"certification-api/models"

	"gorm.io/datatypes"
)

// binding ties one internal field to one storage column, both directions.
// Every registered field appears in exactly one binding (enforced by test).
type binding struct {
	field   string
	column  string
	apply   func(app *models.Application, s Set)
	extract func(app *models.Application) any
}

func strBinding(field, column string, get func(*models.Application) *string) binding {
	return binding{
		field:  field,
		column: column,
		apply: func(app *models.Application, s Set) {
			*get(app) = s.String(field)
		},
		extract: func(app *models.Application) any {
			return *get(app)
		},
	}
}

// Yes/no answers are stored as booleans and rehydrated as "yes"/"no".
func yesNoBinding(field, column string, get func(*models.Application) *bool) binding {
	return binding{
		field:  field,
		column: column,
		apply: func(app *models.Application, s Set) {
			*get(app) = s.Yes(field)
		},
		extract: func(app *models.Application) any {
			if *get(app) {
				return "yes"
			}
			return "no"
		},
	}
}

func boolBinding(field, column string, get func(*models.Application) *bool) binding {
	return binding{
		field:  field,
		column: column,
		apply: func(app *models.Application, s Set) {
			*get(app) = s.Bool(field)
		},
		extract: func(app *models.Application) any {
			return *get(app)
		},
	}
}

func strSliceBinding(field, column string, get func(*models.Application) *datatypes.JSONSlice[string]) binding {
	return binding{
		field:  field,
		column: column,
		apply: func(app *models.Application, s Set) {
			*get(app) = datatypes.NewJSONSlice(s.Strings(field))
		},
		extract: func(app *models.Application) any {
			return []string(*get(app))
		},
	}
}

var bindings = buildBindings()

func buildBindings() []binding {
	b := []binding{
		strBinding("businessType", "business_type", func(a *models.Application) *string { return &a.BusinessType }),
		strBinding("legalName", "legal_name", func(a *models.Application) *string { return &a.LegalName }),
		strBinding("tradeName", "trade_name", func(a *models.Application) *string { return &a.TradeName }),
		yesNoBinding("hasEIN", "has_ein", func(a *models.Application) *bool { return &a.HasEIN }),
		strBinding("ein", "federal_ein", func(a *models.Application) *string { return &a.FederalEIN }),
		strBinding("ssn", "ssn", func(a *models.Application) *string { return &a.SSN }),
		strBinding("taxIdentificationType", "tax_identification_type", func(a *models.Application) *string { return &a.TaxIDType }),
		strBinding("taxIdentificationNumber", "tax_identification_number", func(a *models.Application) *string { return &a.TaxIDNumber }),
		yesNoBinding("isFranchise", "is_franchise", func(a *models.Application) *bool { return &a.IsFranchise }),
		yesNoBinding("isRegisteredWithEVA", "is_registered_eva", func(a *models.Application) *bool { return &a.RegisteredEVA }),
		yesNoBinding("isRegisteredWithVASCC", "is_registered_va_scc", func(a *models.Application) *bool { return &a.RegisteredSCC }),

		strBinding("physicalAddress", "physical_address", func(a *models.Application) *string { return &a.PhysicalAddress }),
		boolBinding("isMailingSameAsPhysical", "is_mailing_same_as_physical", func(a *models.Application) *bool { return &a.MailingSameAsPhysical }),
		strBinding("mailingAddress", "mailing_address", func(a *models.Application) *string { return &a.MailingAddress }),
		strBinding("city", "city", func(a *models.Application) *string { return &a.City }),
		strBinding("state", "state", func(a *models.Application) *string { return &a.State }),
		strBinding("zipCode", "zip_code", func(a *models.Application) *string { return &a.ZipCode }),
		strBinding("country", "country", func(a *models.Application) *string { return &a.Country }),

		strBinding("businessPhone", "business_phone", func(a *models.Application) *string { return &a.BusinessPhone }),
		strBinding("businessPhoneExt", "business_phone_ext", func(a *models.Application) *string { return &a.BusinessPhoneExt }),
		strBinding("businessFax", "business_fax", func(a *models.Application) *string { return &a.BusinessFax }),
		strBinding("businessEmail", "business_email", func(a *models.Application) *string { return &a.BusinessEmail }),
		strBinding("website", "website", func(a *models.Application) *string { return &a.Website }),
		strBinding("contactName", "contact_name", func(a *models.Application) *string { return &a.ContactName }),
		strBinding("contactTitle", "contact_title", func(a *models.Application) *string { return &a.ContactTitle }),
		yesNoBinding("receiveMarketingEmails", "receive_marketing_emails", func(a *models.Application) *bool { return &a.ReceiveMarketingEmails }),

		strBinding("numEmployees", "num_employees", func(a *models.Application) *string { return &a.NumEmployees }),
		strBinding("businessStartDate", "business_start_date", func(a *models.Application) *string { return &a.BusinessStartDate }),
		strBinding("fiscalYearEnd", "fiscal_year_end", func(a *models.Application) *string { return &a.FiscalYearEnd }),
		strBinding("businessEstablishmentYear", "business_establishment_year", func(a *models.Application) *string { return &a.BusinessEstablishmentYear }),
		strBinding("annualGrossReceipts", "annual_gross_receipts", func(a *models.Application) *string { return &a.AnnualGrossReceipts }),
		strBinding("ownershipStructure", "ownership_structure", func(a *models.Application) *string { return &a.OwnershipStructure }),
		boolBinding("doOwnersHave10PctOwnershipInOtherFirms", "owners_have_10pct_ownership_in_other_firms", func(a *models.Application) *bool { return &a.OwnersHaveOtherFirms }),
		boolBinding("acceptsChargeCards", "accepts_charge_cards", func(a *models.Application) *bool { return &a.AcceptsChargeCards }),

		boolBinding("isConfidential", "is_confidential", func(a *models.Application) *bool { return &a.IsConfidential }),
		strBinding("confidentialityReason", "confidentiality_reason", func(a *models.Application) *string { return &a.ConfidentialityReason }),
		boolBinding("exemptionRequested", "exemption_requested", func(a *models.Application) *bool { return &a.ExemptionRequested }),
		strBinding("exemptionReason", "exemption_reason", func(a *models.Application) *string { return &a.ExemptionReason }),
		boolBinding("affidavitAgreement", "affidavit_agreement", func(a *models.Application) *bool { return &a.AffidavitAgreement }),
		strBinding("signatureName", "signature_name", func(a *models.Application) *string { return &a.SignatureName }),
		strBinding("signatureDate", "signature_date", func(a *models.Application) *string { return &a.SignatureDate }),
		strBinding("signatureTitle", "signature_title", func(a *models.Application) *string { return &a.SignatureTitle }),

		{
			field:  "designations",
			column: "certification_type",
			apply: func(app *models.Application, s Set) {
				app.CertificationType = datatypes.NewJSONSlice(NormalizeDesignations(s.Strings("designations")))
			},
			extract: func(app *models.Application) any {
				return []string(app.CertificationType)
			},
		},
		strSliceBinding("nigpCodes", "nigp_codes", func(a *models.Application) *datatypes.JSONSlice[string] { return &a.NIGPCodes }),
		strSliceBinding("geographicMarketingAreas", "geographic_marketing_areas", func(a *models.Application) *datatypes.JSONSlice[string] { return &a.GeographicMarketingAreas }),
		{
			field:  "naicsCodes",
			column: "naics_codes",
			apply: func(app *models.Application, s Set) {
				app.NAICSCodes = datatypes.NewJSONSlice(s.NAICS("naicsCodes"))
			},
			extract: func(app *models.Application) any {
				return []models.NAICSCode(app.NAICSCodes)
			},
		},
		{
			field:  "owners",
			column: "owners",
			apply: func(app *models.Application, s Set) {
				app.Owners = datatypes.NewJSONSlice(s.Owners("owners"))
			},
			extract: func(app *models.Application) any {
				return []models.Owner(app.Owners)
			},
		},
		{
			field:  "contacts",
			column: "contacts",
			apply: func(app *models.Application, s Set) {
				app.Contacts = datatypes.NewJSONSlice(s.Contacts("contacts"))
			},
			extract: func(app *models.Application) any {
				return []models.Contact(app.Contacts)
			},
		},
		{
			field:  "affiliates",
			column: "affiliates",
			apply: func(app *models.Application, s Set) {
				app.Affiliates = datatypes.NewJSONSlice(s.Affiliates("affiliates"))
			},
			extract: func(app *models.Application) any {
				return []models.Affiliate(app.Affiliates)
			},
		},
		{
			field:  "annualReceipts",
			column: "annual_receipts",
			apply: func(app *models.Application, s Set) {
				app.AnnualReceipts = datatypes.NewJSONType(s.Receipts("annualReceipts"))
			},
			extract: func(app *models.Application) any {
				return app.AnnualReceipts.Data()
			},
		},
		{
			field:  "corporationInfo",
			column: "corporation_info",
			apply: func(app *models.Application, s Set) {
				v, _ := s["corporationInfo"].(models.CorporationInfo)
				app.CorporationInfo = datatypes.NewJSONType(v)
			},
			extract: func(app *models.Application) any {
				return app.CorporationInfo.Data()
			},
		},
		{
			field:  "llcInfo",
			column: "llc_info",
			apply: func(app *models.Application, s Set) {
				v, _ := s["llcInfo"].(models.LLCInfo)
				app.LLCInfo = datatypes.NewJSONType(v)
			},
			extract: func(app *models.Application) any {
				return app.LLCInfo.Data()
			},
		},
	}

	docColumns := []string{
		"general_submission_documents",
		"business_financial_documents",
		"personal_documents",
		"business_operational_documents",
		"corporate_organizational_documents",
		"additional_documents",
		"swam_business_formation_documents",
		"swam_tax_documents",
		"swam_employment_documents",
		"swam_personal_documents",
		"swam_additional_documents",
	}
	for i, name := range DocumentFields {
		b = append(b, strSliceBinding(name, docColumns[i], func(a *models.Application) *datatypes.JSONSlice[string] {
			return DocumentColumn(a, name)
		}))
	}
	return b
}

var bindingByField = func() map[string]binding {
	m := make(map[string]binding, len(bindings))
	for _, bd := range bindings {
		m[bd.field] = bd
	}
	return m
}()

// ColumnFor returns the storage column a field maps to.
func ColumnFor(field string) (string, bool) {
	bd, ok := bindingByField[field]
	if !ok {
		return "", false
	}
	return bd.column, true
}

// ApplyToRecord writes the fields present in s onto the record and returns
// the touched column names, so the upsert can restrict its assignment list
// and a partial save never blanks stored columns. The legacy business_name
// column shadows legalName and is written whenever legalName is.
func ApplyToRecord(s Set, app *models.Application) []string {
	columns := make([]string, 0, len(s))
	for _, bd := range bindings {
		if _, present := s[bd.field]; !present {
			continue
		}
		bd.apply(app, s)
		columns = append(columns, bd.column)
		if bd.field == "legalName" {
			app.BusinessName = s.String("legalName")
			columns = append(columns, "business_name")
		}
	}
	return columns
}

// FromRecord rehydrates the full field model from a stored record. Every
// field comes back populated (empty values included) so the form mounts
// with uniform defaults.
func FromRecord(app *models.Application) Set {
	s := NewSet()
	for _, bd := range bindings {
		s[bd.field] = bd.extract(app)
	}
	return s
}

// DocumentColumn returns the JSON array column backing a document slot,
// or nil for an unknown slot name.
func DocumentColumn(app *models.Application, slot string) *datatypes.JSONSlice[string] {
	switch slot {
	case "generalSubmissionDocuments":
		return &app.GeneralSubmissionDocuments
	case "businessFinancialDocuments":
		return &app.BusinessFinancialDocuments
	case "personalDocuments":
		return &app.PersonalDocuments
	case "businessOperationalDocuments":
		return &app.BusinessOperationalDocuments
	case "corporateOrganizationalDocuments":
		return &app.CorporateOrganizationalDocuments
	case "additionalDocuments":
		return &app.AdditionalDocuments
	case "swamBusinessFormationDocuments":
		return &app.SwamBusinessFormationDocuments
	case "swamTaxDocuments":
		return &app.SwamTaxDocuments
	case "swamEmploymentDocuments":
		return &app.SwamEmploymentDocuments
	case "swamPersonalDocuments":
		return &app.SwamPersonalDocuments
	case "swamAdditionalDocuments":
		return &app.SwamAdditionalDocuments
	}
	return nil
}
