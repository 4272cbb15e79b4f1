// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tui provides the interactive product browser.
//
// # Description
//
// The browser is a bubbletea model with a search box, an "in stock only"
// checkbox and the product table. It owns the filter criteria and re-derives
// the table rows from the full product list whenever either input changes.
//
// # Thread Safety
//
// Model is used from the bubbletea event loop only. Do not share it across
// goroutines.
package tui

import (
	"strings"

	"github.com/AleutianAI/productfilter/pkg/logging"
	"github.com/AleutianAI/productfilter/pkg/ux"
	"github.com/AleutianAI/productfilter/services/catalog"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// StockOnlyLabel is the checkbox label.
const StockOnlyLabel = "Only show products in stock"

// =============================================================================
// Focus
// =============================================================================

// Focus identifies the input that receives key presses.
type Focus int

const (
	// FocusSearch sends keys to the search box.
	FocusSearch Focus = iota

	// FocusStockOnly lets space/enter toggle the checkbox.
	FocusStockOnly
)

func (f Focus) next() Focus {
	if f == FocusSearch {
		return FocusStockOnly
	}
	return FocusSearch
}

// =============================================================================
// Config
// =============================================================================

// Config configures the browser widgets.
type Config struct {
	// Placeholder is shown in the empty search box.
	Placeholder string

	// CharLimit caps the search text length (0 = unlimited).
	CharLimit int

	// Width is the visible width of the search box.
	Width int
}

// DefaultConfig returns the stock widget settings.
func DefaultConfig() Config {
	return Config{
		Placeholder: "Search...",
		CharLimit:   256,
		Width:       40,
	}
}

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for the product browser.
type Model struct {
	config   Config
	products []catalog.Product
	criteria catalog.Criteria
	rows     []catalog.Row

	search textinput.Model
	focus  Focus

	logger   *logging.Logger
	quitting bool
}

// New creates a browser over products.
//
// # Inputs
//
//   - products: The full product list. Not modified.
//   - initial: Starting criteria; the zero value shows everything.
//   - config: Widget settings.
//   - logger: Receives criteria changes at Debug level. May be nil.
//
// # Outputs
//
//   - Model: Ready for tea.NewProgram, with rows already derived.
func New(products []catalog.Product, initial catalog.Criteria, config Config, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Nop()
	}

	ti := textinput.New()
	ti.Placeholder = config.Placeholder
	ti.CharLimit = config.CharLimit
	ti.Width = config.Width
	ti.Prompt = "> "
	ti.SetValue(initial.SearchText)
	ti.Focus()

	// The box enforces CharLimit; criteria follow what it actually holds.
	initial.SearchText = ti.Value()

	m := Model{
		config:   config,
		products: products,
		criteria: initial,
		search:   ti,
		focus:    FocusSearch,
		logger:   logger,
	}
	m.derive()
	return m
}

// Criteria returns the current filter criteria.
func (m Model) Criteria() catalog.Criteria {
	return m.criteria
}

// Rows returns the rows derived from the current criteria.
func (m Model) Rows() []catalog.Row {
	return m.rows
}

// Focus returns the focused input.
func (m Model) Focus() Focus {
	return m.focus
}

// SetSearchText replaces the search text and re-derives the rows.
//
// Text longer than Config.CharLimit is truncated by the search box, and the
// criteria always hold the box's value.
func (m *Model) SetSearchText(text string) {
	if m.search.Value() != text {
		m.search.SetValue(text)
	}
	m.criteria.SearchText = m.search.Value()
	m.derive()
}

// SetInStockOnly replaces the stock-only flag and re-derives the rows.
func (m *Model) SetInStockOnly(flag bool) {
	m.criteria.InStockOnly = flag
	m.derive()
}

func (m *Model) derive() {
	m.rows = catalog.Filter(m.products, m.criteria)
	m.logger.Debug("criteria changed",
		"search_text_len", len(m.criteria.SearchText),
		"in_stock_only", m.criteria.InStockOnly,
		"rows", len(m.rows),
	)
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "shift+tab":
		m.setFocus(m.focus.next())
		return m, nil
	}

	if m.focus == FocusStockOnly {
		switch keyMsg.String() {
		case " ", "enter", "x":
			m.SetInStockOnly(!m.criteria.InStockOnly)
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.SetSearchText(after)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(ux.Styles.Title.Render("Products"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n\n")
	b.WriteString(RenderTable(m.rows))
	b.WriteString("\n")
	b.WriteString(renderFooter())

	return b.String()
}
