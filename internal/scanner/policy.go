package scanner

// SeparatorPolicy tells ReadDouble whether a digit run after '.' or ','
// may be a thousands group rather than a fraction. Resolving a locale to a
// policy is the caller's business.
type SeparatorPolicy uint8

const (
	// PolicyInvariant never groups: the first separator starts the fraction.
	PolicyInvariant SeparatorPolicy = iota
	// PolicyGrouping treats a run of exactly three digits as a group.
	PolicyGrouping
)

// groupLen is the only run length taken for a thousands group.
const groupLen = 3

// IsGroup reports whether a digit run of length n continues the integer part.
func (p SeparatorPolicy) IsGroup(n int) bool {
	return p == PolicyGrouping && n == groupLen
}

// String returns the string representation of SeparatorPolicy.
func (p SeparatorPolicy) String() string {
	switch p {
	case PolicyInvariant:
		return "invariant"
	case PolicyGrouping:
		return "grouping"
	default:
		return "unknown"
	}
}
