package adform

// CheckedState mirrors a tri-state checkbox.
type CheckedState int

const (
	Unchecked CheckedState = iota
	Checked
	Indeterminate
)

// ParseCheckedState maps a posted checkbox value to a state. Browsers send
// "on" for a checked box and omit unchecked ones.
func ParseCheckedState(v string) CheckedState {
	switch v {
	case "on", "true", "checked":
		return Checked
	case "indeterminate", "mixed":
		return Indeterminate
	default:
		return Unchecked
	}
}

// Bool collapses the state: only Checked is true.
func (s CheckedState) Bool() bool {
	return s == Checked
}

func (s CheckedState) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}
