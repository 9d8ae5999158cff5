package models

import (
	"time"

	"gorm.io/datatypes"
)

// Application statuses. A record stays draft until the applicant submits;
// every later transition is an explicit admin action.
const (
	StatusDraft          = "draft"
	StatusPending        = "pending"
	StatusApproved       = "approved"
	StatusRejected       = "rejected"
	StatusMoreInfoNeeded = "more_info_needed"
)

// ValidStatuses lists the statuses an admin may assign.
var ValidStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusMoreInfoNeeded}

// Owner is one entry in the ownership section. ID is client-minted and
// stable across edits so removing an owner does not re-key the others.
type Owner struct {
	ID                  string  `json:"id"`
	FullName            string  `json:"full_name"`
	Title               string  `json:"title"`
	OwnershipPercentage float64 `json:"ownership_percentage"`
	Ethnicity           string  `json:"ethnicity"`
	Gender              string  `json:"gender"`
	Address             string  `json:"address"`
	Email               string  `json:"email"`
}

type Contact struct {
	ID               string `json:"id"`
	ContactName      string `json:"contact_name"`
	ContactTitle     string `json:"contact_title"`
	BusinessPhone    string `json:"business_phone"`
	BusinessPhoneExt string `json:"business_phone_ext"`
	BusinessEmail    string `json:"business_email"`
}

type Affiliate struct {
	ID                   string  `json:"id"`
	OwnerName            string  `json:"owner_name"`
	Title                string  `json:"title"`
	OwnershipPercentage  float64 `json:"ownership_percentage"`
	BusinessRelationship string  `json:"business_relationship"`
	FirmName             string  `json:"firm_name"`
	EmployeeCount        int     `json:"employee_count"`
	Country              string  `json:"country"`
	Address              string  `json:"address"`
	ZipCode              string  `json:"zip_code"`
	City                 string  `json:"city"`
	State                string  `json:"state"`
}

type NAICSCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ReceiptYear struct {
	Amount string `json:"amount"`
	Year   string `json:"year"`
}

type AnnualReceipts struct {
	MostRecent    ReceiptYear `json:"most_recent"`
	TwoYearsAgo   ReceiptYear `json:"two_years_ago"`
	ThreeYearsAgo ReceiptYear `json:"three_years_ago"`
}

type CorporationInfo struct {
	StateOfIncorporation string `json:"state_of_incorporation"`
	DateOfIncorporation  string `json:"date_of_incorporation"`
	CorporationType      string `json:"corporation_type"`
}

type LLCInfo struct {
	StateOfFormation string `json:"state_of_formation"`
	DateOfFormation  string `json:"date_of_formation"`
	LLCType          string `json:"llc_type"`
}

// Application is the applications table: one row per tracking id, wide
// columns for the form fields, JSON columns for the array sections and
// the eleven document-path categories.
type Application struct {
	ApplicationID        uint       `gorm:"primaryKey;column:application_id" json:"application_id"`
	TrackingID           string     `gorm:"column:tracking_id;uniqueIndex;size:64" json:"tracking_id"`
	UserID               int        `gorm:"column:user_id;index" json:"user_id"`
	Status               string     `gorm:"column:status;default:draft" json:"status"`
	CompletionPercentage int        `gorm:"column:completion_percentage" json:"completion_percentage"`
	SubmittedAt          *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt             time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt             time.Time  `gorm:"column:update_at" json:"update_at"`

	// Business identity
	BusinessName  string `gorm:"column:business_name" json:"business_name"`
	BusinessType  string `gorm:"column:business_type" json:"business_type"`
	LegalName     string `gorm:"column:legal_name" json:"legal_name"`
	TradeName     string `gorm:"column:trade_name" json:"trade_name"`
	HasEIN        bool   `gorm:"column:has_ein" json:"has_ein"`
	FederalEIN    string `gorm:"column:federal_ein" json:"federal_ein"`
	SSN           string `gorm:"column:ssn" json:"-"`
	TaxIDType     string `gorm:"column:tax_identification_type" json:"tax_identification_type"`
	TaxIDNumber   string `gorm:"column:tax_identification_number" json:"-"`
	IsFranchise   bool   `gorm:"column:is_franchise" json:"is_franchise"`
	RegisteredEVA bool   `gorm:"column:is_registered_eva" json:"is_registered_eva"`
	RegisteredSCC bool   `gorm:"column:is_registered_va_scc" json:"is_registered_va_scc"`

	// Address
	PhysicalAddress        string `gorm:"column:physical_address" json:"physical_address"`
	MailingSameAsPhysical  bool   `gorm:"column:is_mailing_same_as_physical" json:"is_mailing_same_as_physical"`
	MailingAddress         string `gorm:"column:mailing_address" json:"mailing_address"`
	City                   string `gorm:"column:city" json:"city"`
	State                  string `gorm:"column:state" json:"state"`
	ZipCode                string `gorm:"column:zip_code" json:"zip_code"`
	Country                string `gorm:"column:country" json:"country"`

	// Primary contact
	BusinessPhone          string `gorm:"column:business_phone" json:"business_phone"`
	BusinessPhoneExt       string `gorm:"column:business_phone_ext" json:"business_phone_ext"`
	BusinessFax            string `gorm:"column:business_fax" json:"business_fax"`
	BusinessEmail          string `gorm:"column:business_email" json:"business_email"`
	Website                string `gorm:"column:website" json:"website"`
	ContactName            string `gorm:"column:contact_name" json:"contact_name"`
	ContactTitle           string `gorm:"column:contact_title" json:"contact_title"`
	ReceiveMarketingEmails bool   `gorm:"column:receive_marketing_emails" json:"receive_marketing_emails"`

	// Business profile
	NumEmployees              string `gorm:"column:num_employees" json:"num_employees"`
	BusinessStartDate         string `gorm:"column:business_start_date" json:"business_start_date"`
	FiscalYearEnd             string `gorm:"column:fiscal_year_end" json:"fiscal_year_end"`
	BusinessEstablishmentYear string `gorm:"column:business_establishment_year" json:"business_establishment_year"`
	AnnualGrossReceipts       string `gorm:"column:annual_gross_receipts" json:"annual_gross_receipts"`
	OwnershipStructure        string `gorm:"column:ownership_structure" json:"ownership_structure"`
	OwnersHaveOtherFirms      bool   `gorm:"column:owners_have_10pct_ownership_in_other_firms" json:"owners_have_10pct_ownership_in_other_firms"`
	AcceptsChargeCards        bool   `gorm:"column:accepts_charge_cards" json:"accepts_charge_cards"`

	// FOIA / affidavit
	IsConfidential        bool   `gorm:"column:is_confidential" json:"is_confidential"`
	ConfidentialityReason string `gorm:"column:confidentiality_reason" json:"confidentiality_reason"`
	ExemptionRequested    bool   `gorm:"column:exemption_requested" json:"exemption_requested"`
	ExemptionReason       string `gorm:"column:exemption_reason" json:"exemption_reason"`
	AffidavitAgreement    bool   `gorm:"column:affidavit_agreement" json:"affidavit_agreement"`
	SignatureName         string `gorm:"column:signature_name" json:"signature_name"`
	SignatureDate         string `gorm:"column:signature_date" json:"signature_date"`
	SignatureTitle        string `gorm:"column:signature_title" json:"signature_title"`

	// Array sections
	CertificationType        datatypes.JSONSlice[string]    `gorm:"column:certification_type" json:"certification_type"`
	NIGPCodes                datatypes.JSONSlice[string]    `gorm:"column:nigp_codes" json:"nigp_codes"`
	NAICSCodes               datatypes.JSONSlice[NAICSCode] `gorm:"column:naics_codes" json:"naics_codes"`
	GeographicMarketingAreas datatypes.JSONSlice[string]    `gorm:"column:geographic_marketing_areas" json:"geographic_marketing_areas"`
	Owners                   datatypes.JSONSlice[Owner]     `gorm:"column:owners" json:"owners"`
	Contacts                 datatypes.JSONSlice[Contact]   `gorm:"column:contacts" json:"contacts"`
	Affiliates               datatypes.JSONSlice[Affiliate] `gorm:"column:affiliates" json:"affiliates"`

	AnnualReceipts  datatypes.JSONType[AnnualReceipts]  `gorm:"column:annual_receipts" json:"annual_receipts"`
	CorporationInfo datatypes.JSONType[CorporationInfo] `gorm:"column:corporation_info" json:"corporation_info"`
	LLCInfo         datatypes.JSONType[LLCInfo]         `gorm:"column:llc_info" json:"llc_info"`

	// Document path arrays, one per category
	GeneralSubmissionDocuments       datatypes.JSONSlice[string] `gorm:"column:general_submission_documents" json:"general_submission_documents"`
	BusinessFinancialDocuments       datatypes.JSONSlice[string] `gorm:"column:business_financial_documents" json:"business_financial_documents"`
	PersonalDocuments                datatypes.JSONSlice[string] `gorm:"column:personal_documents" json:"personal_documents"`
	BusinessOperationalDocuments     datatypes.JSONSlice[string] `gorm:"column:business_operational_documents" json:"business_operational_documents"`
	CorporateOrganizationalDocuments datatypes.JSONSlice[string] `gorm:"column:corporate_organizational_documents" json:"corporate_organizational_documents"`
	AdditionalDocuments              datatypes.JSONSlice[string] `gorm:"column:additional_documents" json:"additional_documents"`
	SwamBusinessFormationDocuments   datatypes.JSONSlice[string] `gorm:"column:swam_business_formation_documents" json:"swam_business_formation_documents"`
	SwamTaxDocuments                 datatypes.JSONSlice[string] `gorm:"column:swam_tax_documents" json:"swam_tax_documents"`
	SwamEmploymentDocuments          datatypes.JSONSlice[string] `gorm:"column:swam_employment_documents" json:"swam_employment_documents"`
	SwamPersonalDocuments            datatypes.JSONSlice[string] `gorm:"column:swam_personal_documents" json:"swam_personal_documents"`
	SwamAdditionalDocuments          datatypes.JSONSlice[string] `gorm:"column:swam_additional_documents" json:"swam_additional_documents"`
}

func (Application) TableName() string {
	return "applications"
}

// IsDraft reports whether the record is still mutable by the autosave path.
func (a *Application) IsDraft() bool {
	return a.Status == "" || a.Status == StatusDraft
}
