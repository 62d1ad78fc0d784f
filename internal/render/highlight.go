package render

import (
	"fmt"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeveritySevere:
		return "severe"
	case SeverityWarning:
		return "warning"
	default:
		return "normal"
	}
}

func (s Severity) color() string {
	switch s {
	case SeveritySevere:
		return colorRed
	case SeverityWarning:
		return colorYellow
	default:
		return colorGreen
	}
}

// Classify rates value against max. Inverted metrics (age, poop) get worse
// as they grow; the others get worse as they shrink. Thresholds are a tenth
// and a half of max, without integer truncation.
func Classify(value, max int, inverted bool) Severity {
	v, m := float64(value), float64(max)

	if inverted {
		switch {
		case v >= m-m/10:
			return SeveritySevere
		case v >= m-m/2:
			return SeverityWarning
		}
		return SeverityNormal
	}

	switch {
	case v <= m/10:
		return SeveritySevere
	case v <= m/2:
		return SeverityWarning
	}
	return SeverityNormal
}

// Highlight formats value as "value/max" in the colour of its severity.
func Highlight(value, max int, inverted bool) string {
	return colorize(Classify(value, max, inverted).color(), fmt.Sprintf("%d/%d", value, max))
}

func colorize(color, text string) string {
	return color + text + colorReset
}
