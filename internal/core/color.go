package core

// Color is the foreground of a screen cell, one of the racer's palette.
type Color uint8

// Palette. Sprite presets pick the car, road and obstacle colors from it.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ansiCodes holds the ANSI 256-color code of every palette entry.
var ansiCodes = [...]string{
	ColorDefault:     "",
	ColorRed:         "1",
	ColorGreen:       "2",
	ColorYellow:      "3",
	ColorBlue:        "4",
	ColorWhite:       "7",
	ColorBrightRed:   "9",
	ColorBrightBlue:  "12",
	ColorBrightWhite: "15",
	ColorOrange:      "208",
	ColorGray:        "245",
}

// ANSI returns the terminal color code, or empty for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
