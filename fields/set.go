// Package fields is the canonical registry of application form fields:
// their types, validation rules, the bidirectional mapping onto the
// applications table, and the completion estimator. Every component that
// reads or writes form data goes through this package.
package fields

import (
	"encoding/json"
	"fmt"

	"certification-api/models"
)

// Set is the in-memory field model: internal field name to typed value.
// A field absent from the map was never touched; present fields always
// hold the concrete type the registry declares for them.
type Set map[string]any

// NewSet returns a Set with every registered field at its default:
// empty string, false, or an empty slice. Optional fields default to
// empty values rather than being absent so emptiness checks are uniform.
func NewSet() Set {
	s := make(Set, len(Registry))
	for _, def := range Registry {
		s[def.Name] = def.zeroValue()
	}
	return s
}

func (d Definition) zeroValue() any {
	switch d.Kind {
	case KindString, KindYesNo:
		return ""
	case KindBool:
		return false
	case KindStringSlice:
		return []string{}
	case KindOwners:
		return []models.Owner{}
	case KindContacts:
		return []models.Contact{}
	case KindAffiliates:
		return []models.Affiliate{}
	case KindNAICS:
		return []models.NAICSCode{}
	case KindReceipts:
		return models.AnnualReceipts{}
	case KindCorporation:
		return models.CorporationInfo{}
	case KindLLC:
		return models.LLCInfo{}
	}
	return nil
}

func (s Set) String(name string) string {
	v, _ := s[name].(string)
	return v
}

func (s Set) Bool(name string) bool {
	v, _ := s[name].(bool)
	return v
}

// Yes reports whether a yes/no field is set to "yes".
func (s Set) Yes(name string) bool {
	return s.String(name) == "yes"
}

func (s Set) Strings(name string) []string {
	v, _ := s[name].([]string)
	return v
}

func (s Set) Owners(name string) []models.Owner {
	v, _ := s[name].([]models.Owner)
	return v
}

func (s Set) Contacts(name string) []models.Contact {
	v, _ := s[name].([]models.Contact)
	return v
}

func (s Set) Affiliates(name string) []models.Affiliate {
	v, _ := s[name].([]models.Affiliate)
	return v
}

func (s Set) NAICS(name string) []models.NAICSCode {
	v, _ := s[name].([]models.NAICSCode)
	return v
}

func (s Set) Receipts(name string) models.AnnualReceipts {
	v, _ := s[name].(models.AnnualReceipts)
	return v
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether a field holds no user data: empty string for
// string kinds, zero length for slice kinds, zero most-recent amount for
// annual receipts, all-blank sub-fields for the entity detail objects.
// Booleans are never empty; false is a real answer.
func (s Set) IsEmpty(name string) bool {
	def, ok := Lookup(name)
	if !ok {
		return true
	}
	v, present := s[name]
	if !present || v == nil {
		return true
	}
	switch def.Kind {
	case KindString, KindYesNo:
		return v.(string) == ""
	case KindBool:
		return false
	case KindStringSlice:
		return len(v.([]string)) == 0
	case KindOwners:
		return len(v.([]models.Owner)) == 0
	case KindContacts:
		return len(v.([]models.Contact)) == 0
	case KindAffiliates:
		return len(v.([]models.Affiliate)) == 0
	case KindNAICS:
		return len(v.([]models.NAICSCode)) == 0
	case KindReceipts:
		return v.(models.AnnualReceipts).MostRecent.Amount == ""
	case KindCorporation:
		return v.(models.CorporationInfo) == (models.CorporationInfo{})
	case KindLLC:
		return v.(models.LLCInfo) == (models.LLCInfo{})
	}
	return true
}

// StripBlanks returns a copy without nil values or empty strings, so a
// partial save never overwrites stored values with blanks. Empty arrays
// survive: clearing out the last entry of a section is real user intent.
func (s Set) StripBlanks() Set {
	out := make(Set, len(s))
	for name, v := range s {
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok && str == "" {
			continue
		}
		out[name] = v
	}
	return out
}

// UnmarshalJSON decodes a client snapshot, using the registry to pick each
// field's concrete type. Unknown field names are dropped rather than
// rejected, which keeps old clients harmless after schema additions.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Set, len(raw))
	for name, msg := range raw {
		def, ok := Lookup(name)
		if !ok {
			continue
		}
		if string(msg) == "null" {
			continue
		}
		v, err := def.decode(msg)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = v
	}
	*s = out
	return nil
}

func (d Definition) decode(msg json.RawMessage) (any, error) {
	switch d.Kind {
	case KindString, KindYesNo:
		var v string
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindBool:
		var v bool
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindStringSlice:
		v := []string{}
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindOwners:
		v := []models.Owner{}
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindContacts:
		v := []models.Contact{}
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindAffiliates:
		v := []models.Affiliate{}
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindNAICS:
		v := []models.NAICSCode{}
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindReceipts:
		var v models.AnnualReceipts
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindCorporation:
		var v models.CorporationInfo
		err := json.Unmarshal(msg, &v)
		return v, err
	case KindLLC:
		var v models.LLCInfo
		err := json.Unmarshal(msg, &v)
		return v, err
	}
	return nil, fmt.Errorf("unsupported kind %d", d.Kind)
}
