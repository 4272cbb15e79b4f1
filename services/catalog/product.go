// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the product catalog and the filter that turns it
// into grouped table rows.
//
// # Description
//
// The catalog is a fixed, ordered list of products compiled into the binary.
// Filter derives the rows shown by the browser: category headers interleaved
// with matching products, in catalog order.
//
// # Thread Safety
//
// Everything in this package is either immutable or a pure function and is
// safe for concurrent use.
package catalog

// Product is one catalog entry.
type Product struct {
	// Category groups products in the table. Not unique.
	Category string `json:"category"`

	// Name is displayed and searched. Unique within the catalog.
	Name string `json:"name"`

	// Stocked reports whether the product is available.
	Stocked bool `json:"stocked"`

	// Price is a display label such as "$1". It is never parsed.
	Price string `json:"price"`
}

var products = [...]Product{
	{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
	{Category: "Fruits", Price: "$1", Stocked: true, Name: "Dragonfruit"},
	{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
	{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Spinach"},
	{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
	{Category: "Vegetables", Price: "$1", Stocked: true, Name: "Peas"},
}

// Products returns the catalog in display order.
//
// # Outputs
//
//   - []Product: A fresh copy on every call. Mutating it does not affect
//     the catalog.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products[:])
	return out
}
