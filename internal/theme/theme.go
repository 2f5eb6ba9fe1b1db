// Package theme defines the prompt color palette and its on-disk TOML
// representation.
//
// Colors are drawn from the 16-entry ANSI palette (8 base colors plus
// bright variants). Color names are case-insensitive; an unrecognized
// name resolves to the documented fallback (white) instead of failing,
// so a partially wrong theme file still produces a usable prompt.
package theme

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Color is one entry of the 16-color ANSI terminal palette.
type Color struct {
	// Name is the canonical lower-case color name, e.g. "brightgreen".
	Name string
	// ANSI is the palette index lipgloss uses for rendering.
	ANSI lipgloss.Color
}

// The full supported palette.
var (
	Black         = Color{Name: "black", ANSI: lipgloss.Color("0")}
	Red           = Color{Name: "red", ANSI: lipgloss.Color("1")}
	Green         = Color{Name: "green", ANSI: lipgloss.Color("2")}
	Yellow        = Color{Name: "yellow", ANSI: lipgloss.Color("3")}
	Blue          = Color{Name: "blue", ANSI: lipgloss.Color("4")}
	Magenta       = Color{Name: "magenta", ANSI: lipgloss.Color("5")}
	Cyan          = Color{Name: "cyan", ANSI: lipgloss.Color("6")}
	White         = Color{Name: "white", ANSI: lipgloss.Color("7")}
	BrightBlack   = Color{Name: "brightblack", ANSI: lipgloss.Color("8")}
	BrightRed     = Color{Name: "brightred", ANSI: lipgloss.Color("9")}
	BrightGreen   = Color{Name: "brightgreen", ANSI: lipgloss.Color("10")}
	BrightYellow  = Color{Name: "brightyellow", ANSI: lipgloss.Color("11")}
	BrightBlue    = Color{Name: "brightblue", ANSI: lipgloss.Color("12")}
	BrightMagenta = Color{Name: "brightmagenta", ANSI: lipgloss.Color("13")}
	BrightCyan    = Color{Name: "brightcyan", ANSI: lipgloss.Color("14")}
	BrightWhite   = Color{Name: "brightwhite", ANSI: lipgloss.Color("15")}
)

// Fallback is the color an unrecognized name resolves to.
var Fallback = White

var palette = map[string]Color{
	Black.Name:         Black,
	Red.Name:           Red,
	Green.Name:         Green,
	Yellow.Name:        Yellow,
	Blue.Name:          Blue,
	Magenta.Name:       Magenta,
	Cyan.Name:          Cyan,
	White.Name:         White,
	BrightBlack.Name:   BrightBlack,
	BrightRed.Name:     BrightRed,
	BrightGreen.Name:   BrightGreen,
	BrightYellow.Name:  BrightYellow,
	BrightBlue.Name:    BrightBlue,
	BrightMagenta.Name: BrightMagenta,
	BrightCyan.Name:    BrightCyan,
	BrightWhite.Name:   BrightWhite,
}

// ParseColor resolves a color name to a palette entry. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown names
// resolve to Fallback rather than an error.
func ParseColor(name string) Color {
	if c, ok := palette[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return Fallback
}

// ColorNames returns the sorted list of recognized color names.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Theme holds one color per prompt segment. Theme is a plain value:
// copying it snapshots all four segments at once, which is what makes
// the prompt's atomic theme swap possible.
type Theme struct {
	Shell  Color
	Path   Color
	Time   Color
	Symbol Color
}

// Default returns the built-in palette used when no theme file exists.
func Default() Theme {
	return Theme{
		Shell:  BrightGreen,
		Path:   BrightBlue,
		Time:   BrightYellow,
		Symbol: BrightMagenta,
	}
}

// noColor disables styling globally when set (non-TTY output or
// --no-color). Segments then render as plain text in the same order.
var noColor atomic.Bool

// SetNoColor toggles styling for the whole process.
func SetNoColor(disabled bool) {
	noColor.Store(disabled)
}

func paint(c Color, text string) string {
	if noColor.Load() {
		return text
	}
	return lipgloss.NewStyle().Foreground(c.ANSI).Render(text)
}

// ApplyShell styles text with the shell-label color.
func (t Theme) ApplyShell(text string) string { return paint(t.Shell, text) }

// ApplyPath styles text with the path color.
func (t Theme) ApplyPath(text string) string { return paint(t.Path, text) }

// ApplyTime styles text with the time color.
func (t Theme) ApplyTime(text string) string { return paint(t.Time, text) }

// ApplySymbol styles text with the symbol color.
func (t Theme) ApplySymbol(text string) string { return paint(t.Symbol, text) }
