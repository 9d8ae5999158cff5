package fields

import (
	"fmt"
)

// FieldError is one validation failure, surfaced inline next to the field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the whole field model against the registry. Used before
// final submission; navigation gating uses ValidateStep instead.
func Validate(s Set) []FieldError {
	var errs []FieldError
	for _, def := range Registry {
		errs = append(errs, validateField(s, def)...)
	}
	errs = append(errs, validateContacts(s)...)
	errs = append(errs, validateOwners(s)...)
	return errs
}

// ValidateStep checks only the fields that live on the given substep, so a
// required-field violation blocks forward navigation on that screen alone.
func ValidateStep(s Set, step, substep int) []FieldError {
	var errs []FieldError
	for _, def := range Registry {
		if def.Step != step || def.Substep != substep {
			continue
		}
		errs = append(errs, validateField(s, def)...)
		switch def.Name {
		case "contacts":
			errs = append(errs, validateContacts(s)...)
		case "owners":
			errs = append(errs, validateOwners(s)...)
		}
	}
	return errs
}

func validateField(s Set, def Definition) []FieldError {
	required := def.Required
	if def.RequiredWhen != nil {
		dep := def.RequiredWhen
		switch want := dep.Equals.(type) {
		case string:
			required = s.String(dep.Field) == want
		case bool:
			required = s.Bool(dep.Field) == want
		}
	}

	if s.IsEmpty(def.Name) {
		if required {
			msg := def.Message
			if msg == "" {
				msg = "This field is required"
			}
			return []FieldError{{Field: def.Name, Message: msg}}
		}
		return nil
	}

	var errs []FieldError
	if def.Pattern != nil {
		if v := s.String(def.Name); v != "" && !def.Pattern.MatchString(v) {
			msg := def.Message
			if msg == "" {
				msg = "Invalid format"
			}
			errs = append(errs, FieldError{Field: def.Name, Message: msg})
		}
	}

	switch def.Name {
	case "affidavitAgreement":
		if !s.Bool(def.Name) {
			errs = append(errs, FieldError{Field: def.Name, Message: def.Message})
		}
	case "naicsCodes":
		for i, code := range s.NAICS(def.Name) {
			if len(code.Code) != 6 || !allDigits(code.Code) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("naicsCodes[%d].code", i),
					Message: "NAICS code must be a 6-digit number",
				})
			}
		}
	}
	return errs
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// The first contact is always fully required. Later contacts are optional
// until any of their sub-fields is filled, at which point the element's
// required sub-fields all apply.
func validateContacts(s Set) []FieldError {
	var errs []FieldError
	for i, c := range s.Contacts("contacts") {
		partial := c.ContactName != "" || c.ContactTitle != "" ||
			c.BusinessPhone != "" || c.BusinessPhoneExt != "" || c.BusinessEmail != ""
		if i > 0 && !partial {
			continue
		}
		if c.ContactName == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("contacts[%d].contactName", i), Message: "Contact name is required"})
		}
		if c.ContactTitle == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("contacts[%d].contactTitle", i), Message: "Contact title is required"})
		}
		if c.BusinessPhone == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("contacts[%d].businessPhone", i), Message: "Phone number is required"})
		}
		if c.BusinessEmail == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("contacts[%d].businessEmail", i), Message: "Email is required"})
		} else if !emailPattern.MatchString(c.BusinessEmail) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("contacts[%d].businessEmail", i), Message: "Valid email is required"})
		}
	}
	return errs
}

// Same cascading rule as contacts.
func validateOwners(s Set) []FieldError {
	var errs []FieldError
	for i, o := range s.Owners("owners") {
		partial := o.FullName != "" || o.Title != "" || o.Address != "" ||
			o.Ethnicity != "" || o.Gender != "" || o.Email != "" || o.OwnershipPercentage != 0
		if i > 0 && !partial {
			continue
		}
		if o.FullName == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("owners[%d].fullName", i), Message: "Owner name is required"})
		}
		if o.Title == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("owners[%d].title", i), Message: "Owner title is required"})
		}
		if o.OwnershipPercentage < 0 || o.OwnershipPercentage > 100 {
			errs = append(errs, FieldError{Field: fmt.Sprintf("owners[%d].ownershipPercentage", i), Message: "Ownership must be between 0 and 100"})
		}
		if o.Email != "" && !emailPattern.MatchString(o.Email) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("owners[%d].email", i), Message: "Valid email is required"})
		}
	}
	return errs
}
