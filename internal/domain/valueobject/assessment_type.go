package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// AssessmentType – immutable value object
// ---------------------------------------------------------------------------

// AssessmentType identifies what kind of investment target is being assessed.
type AssessmentType struct {
	value string
}

const (
	assessmentTypePartner  = "PARTNER"
	assessmentTypeScheme   = "SCHEME"
	assessmentTypeCombined = "COMBINED"
)

var (
	AssessmentTypePartner  = AssessmentType{value: assessmentTypePartner}
	AssessmentTypeScheme   = AssessmentType{value: assessmentTypeScheme}
	AssessmentTypeCombined = AssessmentType{value: assessmentTypeCombined}
)

var validAssessmentTypes = map[string]AssessmentType{
	assessmentTypePartner:  AssessmentTypePartner,
	assessmentTypeScheme:   AssessmentTypeScheme,
	assessmentTypeCombined: AssessmentTypeCombined,
}

// NewAssessmentType creates an AssessmentType from a raw string.
func NewAssessmentType(s string) (AssessmentType, error) {
	v, ok := validAssessmentTypes[s]
	if !ok {
		return AssessmentType{}, fmt.Errorf("invalid assessment type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the type.
func (t AssessmentType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t AssessmentType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t AssessmentType) Equal(other AssessmentType) bool { return t.value == other.value }
