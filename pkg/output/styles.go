package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Interface colours, ANSI 16-colour indices so they follow the terminal theme.
var (
	ColorWarn  = lipgloss.Color("9") // light red, used for every warning
	ColorMuted = lipgloss.Color("8")
	ColorWhite = lipgloss.Color("15")
	ColorGray  = lipgloss.Color("7")
)

// NamedColor is a palette entry.
type NamedColor struct {
	Name  string
	Color lipgloss.Color
}

// Palette holds the colours a rendered template may be printed in.
var Palette = []NamedColor{
	{Name: "light_blue", Color: lipgloss.Color("12")},
	{Name: "light_magenta", Color: lipgloss.Color("13")},
	{Name: "light_red", Color: lipgloss.Color("9")},
	{Name: "light_yellow", Color: lipgloss.Color("11")},
	{Name: "light_green", Color: lipgloss.Color("10")},
	{Name: "cyan", Color: lipgloss.Color("6")},
}

// PaletteColor looks up a palette entry by name.
func PaletteColor(name string) (NamedColor, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	return NamedColor{}, false
}

// logStyles returns charmbracelet/log styles matching the palette.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("12")).
		Bold(true)

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("11")).
		Bold(true)

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(ColorWarn).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(ColorMuted)

	// Messages themselves are warnings meant for the user; keep them red.
	styles.Message = lipgloss.NewStyle().Foreground(ColorWarn)

	styles.Key = lipgloss.NewStyle().Foreground(ColorWarn).Faint(true)
	styles.Value = lipgloss.NewStyle().Foreground(ColorGray)

	return styles
}
