// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// Criteria
// =============================================================================

// Criteria is the user's current filter input.
//
// The zero value matches every product.
type Criteria struct {
	// SearchText is matched as a case-insensitive substring of the name.
	SearchText string `json:"search_text"`

	// InStockOnly restricts results to stocked products.
	InStockOnly bool `json:"in_stock_only"`
}

// Matches reports whether p passes both predicates.
//
// Both operands are lowercased before the substring test. No trimming or
// other normalization is applied, so " apple" does not match "Apple".
func (c Criteria) Matches(p Product) bool {
	if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.SearchText)) {
		return false
	}
	if c.InStockOnly && !p.Stocked {
		return false
	}
	return true
}

// =============================================================================
// Rows
// =============================================================================

// RowKind distinguishes header rows from product rows.
type RowKind int

const (
	// RowCategory is a category header spanning the table.
	RowCategory RowKind = iota

	// RowProduct is a single product line.
	RowProduct
)

// String returns "category", "product" or "unknown".
func (k RowKind) String() string {
	switch k {
	case RowCategory:
		return "category"
	case RowProduct:
		return "product"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Row is one line of the derived table.
//
// Category is set for RowCategory rows; Product is set for RowProduct rows.
type Row struct {
	Kind     RowKind
	Category string
	Product  Product
}

// CategoryRow builds a header row.
func CategoryRow(category string) Row {
	return Row{Kind: RowCategory, Category: category}
}

// ProductRow builds a product row.
func ProductRow(p Product) Row {
	return Row{Kind: RowProduct, Product: p}
}

type rowJSON struct {
	Kind     RowKind  `json:"kind"`
	Category string   `json:"category,omitempty"`
	Product  *Product `json:"product,omitempty"`
}

// MarshalJSON emits only the field relevant to the row's kind.
func (r Row) MarshalJSON() ([]byte, error) {
	out := rowJSON{Kind: r.Kind}
	if r.Kind == RowCategory {
		out.Category = r.Category
	} else {
		p := r.Product
		out.Product = &p
	}
	return json.Marshal(out)
}

// =============================================================================
// Filter
// =============================================================================

// Filter derives the table rows for products under c.
//
// # Description
//
// Single pass in input order. A category header is emitted before the first
// surviving product of each contiguous run of one category, so a category
// that reappears after another one gets a second header. Products are never
// sorted or regrouped.
//
// # Inputs
//
//   - products: The full product list. Not modified or retained.
//   - c: Filter criteria.
//
// # Outputs
//
//   - []Row: Headers and product rows. Empty when nothing matches.
func Filter(products []Product, c Criteria) []Row {
	var rows []Row
	// nil means no header emitted yet; "" is a valid category.
	var lastCategory *string

	for i := range products {
		p := products[i]
		if !c.Matches(p) {
			continue
		}
		if lastCategory == nil || *lastCategory != p.Category {
			rows = append(rows, CategoryRow(p.Category))
			category := p.Category
			lastCategory = &category
		}
		rows = append(rows, ProductRow(p))
	}
	return rows
}

// ProductRows returns the products in rows, in order, skipping headers.
func ProductRows(rows []Row) []Product {
	var out []Product
	for _, r := range rows {
		if r.Kind == RowProduct {
			out = append(out, r.Product)
		}
	}
	return out
}

// Categories returns the header labels in rows, in emitted order.
func Categories(rows []Row) []string {
	var out []string
	for _, r := range rows {
		if r.Kind == RowCategory {
			out = append(out, r.Category)
		}
	}
	return out
}
