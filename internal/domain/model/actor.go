package model

// Actor identifies the person performing an operation. Attribution fields on
// aggregates (assessor, approver, decision maker) store Actor values.
type Actor struct {
	ID   string
	Name string
}

// IsZero returns true when no actor was supplied.
func (a Actor) IsZero() bool { return a.ID == "" }
