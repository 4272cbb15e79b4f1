// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal styling shared by the product browser and the
// list command.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // titles, focus
	ColorTealPrimary = lipgloss.Color("#20B9B4") // category headers
	ColorTealDeep    = lipgloss.Color("#16858E") // borders
	ColorSlate       = lipgloss.Color("#2C4A54") // muted text
	ColorError       = lipgloss.Color("#E74C3C") // out of stock, errors
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Focused lipgloss.Style

	// Table
	ColumnHeading lipgloss.Style
	Category      lipgloss.Style
	OutOfStock    lipgloss.Style
	Price         lipgloss.Style

	// Search bar and checkbox frame
	Box lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Muted:   lipgloss.NewStyle().Foreground(ColorSlate),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Focused: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),

	ColumnHeading: lipgloss.NewStyle().Bold(true).Underline(true),
	Category:      lipgloss.NewStyle().Bold(true).Foreground(ColorTealPrimary),
	OutOfStock:    lipgloss.NewStyle().Foreground(ColorError),
	Price:         lipgloss.NewStyle(),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),
}

// Icon is a single-glyph status marker.
type Icon string

const (
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconChecked Icon = "x"
)

// Render returns the icon with its style applied.
func (i Icon) Render() string {
	switch i {
	case IconError:
		return Styles.Error.Render(string(i))
	case IconArrow:
		return Styles.Focused.Render(string(i))
	default:
		return string(i)
	}
}

// Checkbox renders "[x] label" or "[ ] label".
func Checkbox(checked bool, label string) string {
	mark := " "
	if checked {
		mark = string(IconChecked)
	}
	return fmt.Sprintf("[%s] %s", mark, label)
}

// Error writes a styled error line to w.
func Error(w io.Writer, text string) {
	fmt.Fprintf(w, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
}
