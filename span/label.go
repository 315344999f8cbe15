package span

import (
	"fmt"
	"strings"
)

// Label classifies the entity type of a detected span.
type Label string

const (
	// LabelPerson marks a person name.
	LabelPerson Label = "PERSON"

	// LabelLocation marks a geographic location (city, state, address, ...).
	LabelLocation Label = "LOCATION"

	// LabelOrganization marks an organization, institution, or facility.
	LabelOrganization Label = "ORGANIZATION"

	// LabelSpelledName marks a name spelled out letter by letter (e.g. "J-O-H-N").
	LabelSpelledName Label = "SPELLED_NAME"

	// LabelID marks an identification number, typically a letter prefix and digits.
	LabelID Label = "ID"

	// LabelDate marks a calendar date, year, or other date expression.
	LabelDate Label = "DATE"

	// LabelTime marks a time of day.
	LabelTime Label = "TIME"

	// LabelHeight marks a person's height.
	LabelHeight Label = "HEIGHT"

	// LabelAge marks a person's age.
	LabelAge Label = "AGE"

	// LabelEmail marks an email address.
	LabelEmail Label = "EMAIL_ADDRESS"

	// LabelURL marks a web address.
	LabelURL Label = "URL"

	// LabelNRP marks a nationality, religious, or political affiliation.
	LabelNRP Label = "NRP"

	// LabelSpelledOutItem marks a spelled-out word that is not a name
	// (e.g. "B, as in boy").
	LabelSpelledOutItem Label = "SPELLED_OUT_ITEM"

	// LabelPhoneNumber marks a phone number.
	LabelPhoneNumber Label = "PHONE_NUMBER"
)

// Annotator-native labels that are normalized before entering the core.
const (
	rawCardinal = "CARDINAL"
	rawGPE      = "GPE"
)

// IsValid returns true if the label is part of the fixed vocabulary.
func (l Label) IsValid() bool {
	switch l {
	case LabelPerson,
		LabelLocation,
		LabelOrganization,
		LabelSpelledName,
		LabelID,
		LabelDate,
		LabelTime,
		LabelHeight,
		LabelAge,
		LabelEmail,
		LabelURL,
		LabelNRP,
		LabelSpelledOutItem,
		LabelPhoneNumber:
		return true
	default:
		return false
	}
}

// String returns the string representation of the label.
func (l Label) String() string {
	return string(l)
}

// ParseLabel parses a string into a Label, ignoring case. Annotator-native
// labels that have a defined mapping (CARDINAL, GPE) are normalized into the
// core vocabulary. Returns an error for anything outside the vocabulary.
func ParseLabel(s string) (Label, error) {
	s = strings.ToUpper(s)
	switch s {
	case rawCardinal:
		return LabelAge, nil
	case rawGPE:
		return LabelLocation, nil
	}
	label := Label(s)
	if !label.IsValid() {
		return "", fmt.Errorf("invalid label: %s", s)
	}
	return label, nil
}

// AllLabels returns all valid labels.
func AllLabels() []Label {
	return []Label{
		LabelPerson,
		LabelLocation,
		LabelOrganization,
		LabelSpelledName,
		LabelID,
		LabelDate,
		LabelTime,
		LabelHeight,
		LabelAge,
		LabelEmail,
		LabelURL,
		LabelNRP,
		LabelSpelledOutItem,
		LabelPhoneNumber,
	}
}
