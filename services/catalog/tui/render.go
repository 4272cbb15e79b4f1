// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tui

import (
	"strings"

	"github.com/AleutianAI/productfilter/pkg/ux"
	"github.com/AleutianAI/productfilter/services/catalog"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameHeading  = "Name"
	priceHeading = "Price"
	columnGap    = "  "
)

// =============================================================================
// Table Rendering
// =============================================================================

// RenderTable renders rows as a two-column Name/Price table.
//
// # Description
//
// The heading line is always present. Category rows span both columns.
// Names of unstocked products use ux.Styles.OutOfStock. Each line ends with
// a newline; an empty rows slice renders the heading only.
func RenderTable(rows []catalog.Row) string {
	width := lipgloss.Width(nameHeading)
	for _, r := range rows {
		if r.Kind == catalog.RowProduct {
			width = max(width, lipgloss.Width(r.Product.Name))
		}
	}

	var b strings.Builder

	b.WriteString(ux.Styles.ColumnHeading.Render(nameHeading))
	b.WriteString(pad(nameHeading, width))
	b.WriteString(columnGap)
	b.WriteString(ux.Styles.ColumnHeading.Render(priceHeading))
	b.WriteString("\n")

	for _, r := range rows {
		switch r.Kind {
		case catalog.RowCategory:
			b.WriteString(ux.Styles.Category.Render(r.Category))
		case catalog.RowProduct:
			b.WriteString(renderName(r.Product))
			b.WriteString(pad(r.Product.Name, width))
			b.WriteString(columnGap)
			b.WriteString(ux.Styles.Price.Render(r.Product.Price))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderName(p catalog.Product) string {
	if p.Stocked {
		return p.Name
	}
	return ux.Styles.OutOfStock.Render(p.Name)
}

// pad returns the spaces needed to widen text to width cells.
func pad(text string, width int) string {
	n := width - lipgloss.Width(text)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// =============================================================================
// Search Bar Rendering
// =============================================================================

func (m Model) renderSearchBar() string {
	return ux.Styles.Box.Render(m.search.View() + "\n" + m.renderCheckbox())
}

func (m Model) renderCheckbox() string {
	box := ux.Checkbox(m.criteria.InStockOnly, StockOnlyLabel)
	if m.focus == FocusStockOnly {
		return ux.IconArrow.Render() + " " + ux.Styles.Focused.Render(box)
	}
	return "  " + box
}

func renderFooter() string {
	keys := []string{"[Tab] Switch input", "[Space] Toggle stock filter", "[Esc] Quit"}
	return ux.Styles.Muted.Render(strings.Join(keys, "  "))
}
