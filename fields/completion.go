package fields

import "math"

// RequiredFields is the fixed list of fields the completion estimator
// counts. A field is complete when present and non-empty; see Set.IsEmpty.
var RequiredFields = []string{
	"designations",
	"businessType",
	"legalName",
	"physicalAddress",
	"city",
	"state",
	"zipCode",
	"businessPhone",
	"businessEmail",
	"contactName",
	"contactTitle",
	"taxIdentificationNumber",
	"businessEstablishmentYear",
	"annualReceipts",
	"contacts",
	"affiliates",
}

// EstimateCompletion returns a 0-100 progress figure: the share of
// RequiredFields and DocumentFields that hold data. Deliberately coarse -
// presence only, every entry weighted the same regardless of section size.
// Recomputed on every save; never stored authoritatively.
func EstimateCompletion(s Set) int {
	total := len(RequiredFields) + len(DocumentFields)
	done := 0
	for _, name := range RequiredFields {
		if !s.IsEmpty(name) {
			done++
		}
	}
	for _, name := range DocumentFields {
		if len(s.Strings(name)) > 0 {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
