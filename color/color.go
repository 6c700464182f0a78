// Package color provides the terminal colors used by mcuc output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mcuc-cli/mcuc/argb"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiPurple = New("13")
)

// Of converts an ARGB color to a true-color terminal color.
func Of(c argb.ARGB) lipgloss.Color {
	return New(c.Hex())
}

// Ink returns black or white, whichever reads better on bg.
func Ink(bg argb.ARGB) lipgloss.Color {
	if argb.ContrastRatio(bg, argb.White) > argb.ContrastRatio(bg, argb.Black) {
		return Of(argb.White)
	}
	return Of(argb.Black)
}
