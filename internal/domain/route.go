package domain

// NotAvailable is rendered in place of any value missing from a directions response.
const NotAvailable = "N/A"

// Represents a single maneuver within a route segment.
// Values are kept as the literal text the upstream returned so that
// rendering reproduces them exactly.
type Step struct {
	Instruction string
	Distance    string
}

// Represents the portion of a route between two waypoints.
// HasSteps distinguishes a response without a steps list from one with an
// empty list.
type Segment struct {
	Duration string
	Distance string
	Steps    []Step
	HasSteps bool
}
