package core

// Color is the foreground of a screen cell. ColorDefault leaves the
// terminal's own colour in place.
type Color uint8

// Palette shared by the sketches.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorGray
	ColorBrightCyan
	ColorBrightYellow
	ColorBrightWhite
)

var ansiCodes = [...]string{
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorGray:         "245",
	ColorBrightCyan:   "14",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
}

// ANSI returns the 256-colour code of c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
