package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// DecisionBand – immutable value object
// ---------------------------------------------------------------------------

// DecisionBand is the categorical investment recommendation derived from an
// assessment's aggregate score percentage.
type DecisionBand struct {
	value string
}

const (
	decisionBandPremiumPriority = "PREMIUM_PRIORITY"
	decisionBandAcceptable      = "ACCEPTABLE"
	decisionBandReject          = "REJECT"
	decisionBandUnset           = "UNSET"
)

var (
	DecisionBandPremiumPriority = DecisionBand{value: decisionBandPremiumPriority}
	DecisionBandAcceptable      = DecisionBand{value: decisionBandAcceptable}
	DecisionBandReject          = DecisionBand{value: decisionBandReject}
	// DecisionBandUnset marks an assessment with no scored metrics yet.
	DecisionBandUnset = DecisionBand{value: decisionBandUnset}
)

var validDecisionBands = map[string]DecisionBand{
	decisionBandPremiumPriority: DecisionBandPremiumPriority,
	decisionBandAcceptable:      DecisionBandAcceptable,
	decisionBandReject:          DecisionBandReject,
	decisionBandUnset:           DecisionBandUnset,
}

// NewDecisionBand creates a DecisionBand from a raw string.
func NewDecisionBand(s string) (DecisionBand, error) {
	v, ok := validDecisionBands[s]
	if !ok {
		return DecisionBand{}, fmt.Errorf("invalid decision band: %q", s)
	}
	return v, nil
}

// String returns the string representation of the band.
func (b DecisionBand) String() string { return b.value }

// IsZero returns true if the band has not been initialised.
func (b DecisionBand) IsZero() bool { return b.value == "" }

// Equal returns true when both bands carry the same value.
func (b DecisionBand) Equal(other DecisionBand) bool { return b.value == other.value }

// IsPositive reports whether the band indicates proceeding with the target.
func (b DecisionBand) IsPositive() bool {
	return b.value == decisionBandPremiumPriority || b.value == decisionBandAcceptable
}
