package model

// Direction is the outcome of a swipe.
type Direction string

const (
	// DirectionNone means no decision, used for the live drag hint inside the dead zone.
	DirectionNone Direction = ""
	// DirectionLeft passes on an item.
	DirectionLeft Direction = "left"
	// DirectionRight likes an item.
	DirectionRight Direction = "right"
)

// IsDecision reports whether d commits an item to one of the decision lists.
func (d Direction) IsDecision() bool {
	return d == DirectionLeft || d == DirectionRight
}

// String returns a human readable label.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "pass"
	case DirectionRight:
		return "like"
	default:
		return "none"
	}
}
