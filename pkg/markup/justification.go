package markup

import "strings"

// Justification is the horizontal placement of text within a width.
type Justification int

const (
	None Justification = iota
	Left
	Center
	Right
)

func (j Justification) String() string {
	switch j {
	case None:
		return "none"
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseJustification reads a justification name, ignoring case and
// surrounding blanks. Unknown names are Left.
func ParseJustification(s string) Justification {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None
	case "center", "centre":
		return Center
	case "right":
		return Right
	default:
		return Left
	}
}
