package health

const (
	ColorRed        = "#dc0451"
	ColorGreen      = "#3e8f2f"
	ColorYellow     = "#fbd300"
	ColorYellowDark = "#e5a000"
	ColorGrey       = "#888888"
)

// TimelinessColor maps a delay category to its display color. The dark yellow
// variant keeps "late" readable against a white background. Unclassified
// observations render grey and the zero value falls back to the caller's
// default color.
func TimelinessColor(delayType DelayType, readableOnWhite bool, defaultColor string) string {
	switch delayType {
	case DelayTypeEarly:
		return ColorRed
	case DelayTypeOnTime:
		return ColorGreen
	case DelayTypeLate:
		if readableOnWhite {
			return ColorYellowDark
		}
		return ColorYellow
	case DelayTypeUnsigned:
		return ColorGrey
	default:
		return defaultColor
	}
}
