package wizard

// Guidance is the contextual help shown beside one wizard screen. Content
// lives here as data keyed by position; the state machine never reads it.
type Guidance struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Bullets     []string          `json:"bullets,omitempty"`
	FieldHelp   map[string]string `json:"field_help,omitempty"`
	Links       []GuidanceLink    `json:"links,omitempty"`
}

type GuidanceLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type position struct {
	Step    int
	Substep int
}

// GuidanceFor returns the help record for a position.
func GuidanceFor(mainStep, subStep int) (Guidance, bool) {
	g, ok := guidance[position{mainStep, subStep}]
	return g, ok
}

var guidance = map[position]Guidance{
	{1, 1}: {
		Title:       "Welcome to the Certification Process!",
		Description: "We're here to guide you through each step of your certification application.",
		Bullets: []string{
			"Select the certifications that match your business profile",
			"Provide accurate business structure information",
			"Get real-time guidance throughout the process",
		},
		FieldHelp: map[string]string{
			"designations": "Choose all applicable certifications for your business. Note that ESO cannot be combined with other designations.",
			"businessType": "Select the legal structure that best describes your business.",
		},
		Links: []GuidanceLink{
			{Text: "Certification Types Explained", URL: "/resources/certification-types"},
			{Text: "Business Structure Guide", URL: "/resources/business-structures"},
		},
	},
	{1, 2}: {
		Title:       "Let's Get Your Business Details",
		Description: "This information helps us understand your business better.",
		Bullets: []string{
			"Provide your official business information",
			"Share your business address and contact details",
			"Indicate your registration status with state entities",
		},
		FieldHelp: map[string]string{
			"legalName":       "Provide your official legal business name as registered.",
			"tradeName":       "Any trade or DBA name your business operates under.",
			"physicalAddress": "Your physical business address; a mailing address can differ.",
			"contacts":        "The primary contact person for this application, plus any alternates.",
		},
		Links: []GuidanceLink{
			{Text: "Business Registration Guide", URL: "/resources/business-registration"},
		},
	},
	{1, 3}: {
		Title:       "Tax Information",
		Description: "Let's gather important tax-related details about your business.",
		Bullets: []string{
			"Enter tax identification details securely",
			"Report gross receipts for the last three years",
		},
		FieldHelp: map[string]string{
			"hasEIN":         "Answer yes if your business has a Federal Employer Identification Number.",
			"ein":            "Your nine-digit EIN, formatted XX-XXXXXXX.",
			"ssn":            "Only needed when no EIN exists and you identify by SSN.",
			"annualReceipts": "Gross receipts for the most recent three fiscal years.",
		},
		Links: []GuidanceLink{
			{Text: "EIN vs SSN for Businesses", URL: "/resources/tax-identification"},
		},
	},
	{1, 4}: {
		Title:       "Ownership Information",
		Description: "Let's gather details about your business ownership structure.",
		Bullets: []string{
			"List every owner and their ownership percentage",
			"Report affiliates where owners hold 10% or more of another firm",
		},
		FieldHelp: map[string]string{
			"owners":     "Each owner's name, title, demographics, and share. Percentages should total 100.",
			"affiliates": "Other firms in which any listed owner holds at least a 10% stake.",
		},
	},
	{1, 5}: {
		Title:       "Corporation, LLC, or LLP Details",
		Description: "Let's gather specific information about your business entity.",
		FieldHelp: map[string]string{
			"corporationInfo": "State and date of incorporation plus the corporation type.",
			"llcInfo":         "State and date of formation plus the LLC type.",
		},
	},
	{1, 6}: {
		Title:       "NIGP Commodity Codes",
		Description: "Let's identify the products or services your business offers.",
		Bullets: []string{
			"Pick the NIGP codes buyers use to find vendors like you",
			"Add the 6-digit NAICS codes that describe your industry",
		},
		Links: []GuidanceLink{
			{Text: "NIGP Code Lookup", URL: "/resources/nigp-codes"},
		},
	},
	{1, 7}: {
		Title:       "Geographic Marketing Area",
		Description: "Let's define the areas where your business operates.",
		FieldHelp: map[string]string{
			"geographicMarketingAreas": "Counties, cities, or statewide regions where you market your services.",
		},
	},
	{1, 8}: {
		Title:       "FOIA Exemption",
		Description: "Understand your rights regarding information disclosure.",
		FieldHelp: map[string]string{
			"isConfidential":     "Request that trade-secret portions of your application stay confidential.",
			"exemptionRequested": "Request a FOIA exemption for specific submitted records.",
		},
		Links: []GuidanceLink{
			{Text: "FOIA Basics", URL: "/resources/foia"},
		},
	},

	{2, 1}: {
		Title:       "DBE Required Documents - Getting Started",
		Description: "Let's begin gathering the necessary documents for your DBE certification.",
		Bullets: []string{
			"All documents are uploaded digitally over an encrypted connection",
			"Each file must be smaller than 50MB",
		},
	},
	{2, 2}: {
		Title:       "DBE Checklist",
		Description: "Review the checklist so you know every document the DBE program expects.",
	},
	{2, 3}: {
		Title:       "General Submission Documents",
		Description: "Upload the general submission documents for your DBE application.",
	},
	{2, 4}: {
		Title:       "Business Financial Documents",
		Description: "Upload business tax returns and financial statements.",
	},
	{2, 5}: {
		Title:       "Personal Documents",
		Description: "Upload personal financial statements and tax returns for each owner.",
	},
	{2, 6}: {
		Title:       "Business Operational Documents",
		Description: "Upload licenses, permits, and operational agreements.",
	},
	{2, 7}: {
		Title:       "Corporate/Organizational Documents",
		Description: "Upload articles, bylaws, operating agreements, and stock records.",
	},
	{2, 8}: {
		Title:       "Additional Documents",
		Description: "Upload anything else that supports your DBE application.",
	},

	{3, 1}: {
		Title:       "SWaM Documents - Getting Started",
		Description: "Let's gather the documents for your SWaM certification.",
		Bullets: []string{
			"Each file must be smaller than 50MB",
			"Uploads are saved immediately and survive a reload",
		},
	},
	{3, 2}: {
		Title:       "Business Formation Documents",
		Description: "Upload formation records for your business entity.",
	},
	{3, 3}: {
		Title:       "Tax Documents",
		Description: "Upload federal tax returns for the most recent year.",
	},
	{3, 4}: {
		Title:       "Employment Documents",
		Description: "Upload your most recent quarterly employment report.",
	},
	{3, 5}: {
		Title:       "Personal Documents",
		Description: "Upload personal identification for each qualifying owner.",
	},
	{3, 6}: {
		Title:       "Additional Documents",
		Description: "Upload anything else that supports your SWaM application.",
	},

	{4, 1}: {
		Title:       "Review Application",
		Description: "Check every section before you sign; you can jump back to any completed screen.",
	},
	{4, 2}: {
		Title:       "Affidavit and Debarment Form",
		Description: "Certify that the information provided is true and complete.",
		FieldHelp: map[string]string{
			"affidavitAgreement": "Signing falsely is grounds for denial or revocation of certification.",
		},
	},
	{4, 3}: {
		Title:       "Final Submission",
		Description: "Submit your application for review. After this point the form is locked.",
	},

	{5, 1}: {
		Title:       "Confirmation Details",
		Description: "Your application has been received. Keep your tracking ID for your records.",
	},
	{5, 2}: {
		Title:       "Next Steps",
		Description: "Reviews typically take 30-60 days. Watch your notifications for status changes.",
	},
}
