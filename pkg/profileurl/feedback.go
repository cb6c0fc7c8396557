package profileurl

// Indicator is the real-time state shown next to a link field.
type Indicator int

const (
	Neutral Indicator = iota
	Positive
	Negative
)

// Border colors applied for each indicator.
const (
	ColorNeutral  = "#e0e0e0"
	ColorPositive = "#4CAF50"
	ColorNegative = "#f44336"
)

// Feedback maps the current value of a link field to an indicator: empty is
// neutral, valid is positive, anything else negative.
func Feedback(s Service, value string) Indicator {
	switch {
	case value == "":
		return Neutral
	case IsValid(s, value):
		return Positive
	default:
		return Negative
	}
}

// BorderColor returns the color the field border takes for the indicator.
func (i Indicator) BorderColor() string {
	switch i {
	case Positive:
		return ColorPositive
	case Negative:
		return ColorNegative
	default:
		return ColorNeutral
	}
}

func (i Indicator) String() string {
	switch i {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}
