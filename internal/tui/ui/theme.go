package ui

import "github.com/gdamore/tcell/v2"

// Theme holds the color palette for the TUI. Two palettes exist, matching the
// light/dark preference toggled in settings.
type Theme struct {
	Name string

	BgColor           tcell.Color
	FgColor           tcell.Color
	DimFgColor        tcell.Color
	BorderColor       tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	UnreadColor       tcell.Color
	PinColor          tcell.Color
	ReadTickColor     tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DarkTheme returns the default dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:              "dark",
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorCadetBlue,
		DimFgColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorTeal,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorAqua,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorOrange,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorAqua,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		NumericKeyColor:   tcell.ColorFuchsia,
		TitleColor:        tcell.ColorMediumSpringGreen,
		CounterColor:      tcell.ColorPapayaWhip,
		UnreadColor:       tcell.ColorMediumSpringGreen,
		PinColor:          tcell.ColorOrange,
		ReadTickColor:     tcell.ColorDeepSkyBlue,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorTeal,
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:              "light",
		BgColor:           tcell.ColorWhite,
		FgColor:           tcell.ColorDarkSlateGray,
		DimFgColor:        tcell.ColorDarkGray,
		BorderColor:       tcell.ColorDarkCyan,
		TableHeaderFg:     tcell.ColorBlack,
		TableHeaderBg:     tcell.ColorWhite,
		TableCursorFg:     tcell.ColorWhite,
		TableCursorBg:     tcell.ColorDarkCyan,
		CrumbActiveFg:     tcell.ColorWhite,
		CrumbActiveBg:     tcell.ColorDarkOrange,
		CrumbInactiveFg:   tcell.ColorWhite,
		CrumbInactiveBg:   tcell.ColorDarkCyan,
		MenuKeyColor:      tcell.ColorMediumBlue,
		NumericKeyColor:   tcell.ColorPurple,
		TitleColor:        tcell.ColorSeaGreen,
		CounterColor:      tcell.ColorSaddleBrown,
		UnreadColor:       tcell.ColorSeaGreen,
		PinColor:          tcell.ColorDarkOrange,
		ReadTickColor:     tcell.ColorRoyalBlue,
		FlashInfoColor:    tcell.ColorDarkGoldenrod,
		FlashWarnColor:    tcell.ColorDarkOrange,
		FlashErrColor:     tcell.ColorFireBrick,
		PromptBorderColor: tcell.ColorDarkCyan,
	}
}

// ByName maps a preference name to a palette, defaulting to dark.
func ByName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
