// Package palette defines the fixed set of checklist colors and how they
// render in a terminal.
package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Color is one of the twelve named checklist colors.
type Color struct {
	Name  string
	Value string
	// Hex drives lipgloss styling in the TUI.
	Hex string
	// Attr drives fatih/color styling in plain printers.
	Attr color.Attribute
}

// Default is used when the server sends no color or an unrecognized one.
const Default = "yellow"

var colors = []Color{
	{Name: "Yellow", Value: "yellow", Hex: "#fef08a", Attr: color.FgYellow},
	{Name: "Blue", Value: "blue", Hex: "#bfdbfe", Attr: color.FgBlue},
	{Name: "Green", Value: "green", Hex: "#bbf7d0", Attr: color.FgGreen},
	{Name: "Pink", Value: "pink", Hex: "#fbcfe8", Attr: color.FgHiMagenta},
	{Name: "Purple", Value: "purple", Hex: "#e9d5ff", Attr: color.FgMagenta},
	{Name: "Orange", Value: "orange", Hex: "#fed7aa", Attr: color.FgHiYellow},
	{Name: "Red", Value: "red", Hex: "#fecaca", Attr: color.FgRed},
	{Name: "Gray", Value: "gray", Hex: "#e5e7eb", Attr: color.FgWhite},
	{Name: "Teal", Value: "teal", Hex: "#99f6e4", Attr: color.FgCyan},
	{Name: "Indigo", Value: "indigo", Hex: "#c7d2fe", Attr: color.FgHiBlue},
	{Name: "Lime", Value: "lime", Hex: "#d9f99d", Attr: color.FgHiGreen},
	{Name: "Cyan", Value: "cyan", Hex: "#a5f3fc", Attr: color.FgHiCyan},
}

// All returns the palette in display order.
func All() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// Valid reports whether value names a palette color.
func Valid(value string) bool {
	for _, c := range colors {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Normalize maps any server-provided color onto the palette, falling back
// to the default for absent or unrecognized values.
func Normalize(value string) string {
	if Valid(value) {
		return value
	}
	return Default
}

// Lookup returns the palette entry for value, defaulting like Normalize.
func Lookup(value string) Color {
	for _, c := range colors {
		if c.Value == value {
			return c
		}
	}
	return Lookup(Default)
}

// Sprint renders text in the color using fatih/color.
func Sprint(value, text string) string {
	return color.New(Lookup(value).Attr).Sprint(text)
}

// Swatch renders the solid color block used on dashboard cards.
func Swatch(value string) string {
	return color.New(Lookup(value).Attr).Sprint("■")
}

// Style returns a lipgloss style for TUI rendering.
func Style(value string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Lookup(value).Hex))
}
