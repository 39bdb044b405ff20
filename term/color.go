package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

// AccentANSI is the ANSI-256 code of the app accent (spinners, selected
// rows). Kept as a string for lipgloss.Color.
const AccentANSI = "205"

var (
	ColorHiGreen   color.Attribute
	ColorHiMagenta color.Attribute
	ColorHiRed     color.Attribute
	ColorHiYellow  color.Attribute
	ColorHiCyan    color.Attribute
	ColorHiBlue    color.Attribute
)

func init() {
	// bright attributes wash out on light backgrounds
	if IsDarkBg {
		ColorHiGreen = color.FgHiGreen
		ColorHiMagenta = color.FgHiMagenta
		ColorHiRed = color.FgHiRed
		ColorHiYellow = color.FgHiYellow
		ColorHiCyan = color.FgHiCyan
		ColorHiBlue = color.FgHiBlue
	} else {
		ColorHiGreen = color.FgGreen
		ColorHiMagenta = color.FgMagenta
		ColorHiRed = color.FgRed
		ColorHiYellow = color.FgYellow
		ColorHiCyan = color.FgCyan
		ColorHiBlue = color.FgBlue
	}
}
