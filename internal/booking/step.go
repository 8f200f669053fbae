package booking

import "fmt"

// Step is a wizard screen
type Step int

const (
	SelectingService Step = iota + 1
	SelectingDateTime
	EnteringDetails
	ReviewingSummary
)

// Steps lists every wizard step in order
var Steps = []Step{SelectingService, SelectingDateTime, EnteringDetails, ReviewingSummary}

func (s Step) String() string {
	switch s {
	case SelectingService:
		return "service"
	case SelectingDateTime:
		return "date_time"
	case EnteringDetails:
		return "details"
	case ReviewingSummary:
		return "summary"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title is the heading shown for the step
func (s Step) Title() string {
	switch s {
	case SelectingService:
		return "Pick Your Glow-Up Service"
	case SelectingDateTime:
		return "Select Date"
	case EnteringDetails:
		return "Details & Payment"
	case ReviewingSummary:
		return "Almost there!"
	default:
		return ""
	}
}
