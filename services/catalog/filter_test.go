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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

// =============================================================================
// Golden scenarios over the built-in catalog
// =============================================================================

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		criteria   Criteria
		categories []string
		products   []string
	}{
		{
			name:       "no criteria",
			criteria:   Criteria{},
			categories: []string{"Fruits", "Vegetables"},
			products:   []string{"Apple", "Dragonfruit", "Passionfruit", "Spinach", "Pumpkin", "Peas"},
		},
		{
			name:       "search p",
			criteria:   Criteria{SearchText: "p"},
			categories: []string{"Fruits", "Vegetables"},
			products:   []string{"Apple", "Passionfruit", "Spinach", "Pumpkin", "Peas"},
		},
		{
			name:       "in stock only",
			criteria:   Criteria{InStockOnly: true},
			categories: []string{"Fruits", "Vegetables"},
			products:   []string{"Apple", "Dragonfruit", "Spinach", "Peas"},
		},
		{
			name:     "no match",
			criteria: Criteria{SearchText: "zzz"},
		},
		{
			name:     "no match in stock",
			criteria: Criteria{SearchText: "zzz", InStockOnly: true},
		},
		{
			name:       "upper case search",
			criteria:   Criteria{SearchText: "FRUIT"},
			categories: []string{"Fruits"},
			products:   []string{"Dragonfruit", "Passionfruit"},
		},
		{
			name:       "both predicates",
			criteria:   Criteria{SearchText: "fruit", InStockOnly: true},
			categories: []string{"Fruits"},
			products:   []string{"Dragonfruit"},
		},
		{
			name:       "only vegetables survive",
			criteria:   Criteria{SearchText: "pea"},
			categories: []string{"Vegetables"},
			products:   []string{"Peas"},
		},
		{
			name:     "whitespace is not trimmed",
			criteria: Criteria{SearchText: " apple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Filter(Products(), tt.criteria)

			if diff := cmp.Diff(tt.categories, Categories(rows), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.products, names(ProductRows(rows)), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("products mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_NoMatchIsEmpty(t *testing.T) {
	assert.Empty(t, Filter(Products(), Criteria{SearchText: "zzz"}))
	assert.Empty(t, Filter(Products(), Criteria{SearchText: "zzz", InStockOnly: true}))
}

func TestFilter_FullRowSequence(t *testing.T) {
	p := Products()
	want := []Row{
		CategoryRow("Fruits"),
		ProductRow(p[0]),
		ProductRow(p[1]),
		CategoryRow("Vegetables"),
		ProductRow(p[3]),
		ProductRow(p[5]),
	}

	got := Filter(p, Criteria{InStockOnly: true})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Grouping edge cases
// =============================================================================

// TestFilter_NonContiguousCategoryRepeatsHeader verifies headers follow runs,
// not distinct categories.
func TestFilter_NonContiguousCategoryRepeatsHeader(t *testing.T) {
	products := []Product{
		{Category: "A", Name: "a1", Stocked: true, Price: "$1"},
		{Category: "B", Name: "b1", Stocked: true, Price: "$1"},
		{Category: "A", Name: "a2", Stocked: true, Price: "$1"},
	}

	rows := Filter(products, Criteria{})

	want := []Row{
		CategoryRow("A"),
		ProductRow(products[0]),
		CategoryRow("B"),
		ProductRow(products[1]),
		CategoryRow("A"),
		ProductRow(products[2]),
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestFilter_FilteredGapMergesRun verifies that removing the middle category
// leaves one contiguous run and one header.
func TestFilter_FilteredGapMergesRun(t *testing.T) {
	products := []Product{
		{Category: "A", Name: "keep1", Stocked: true},
		{Category: "B", Name: "drop", Stocked: false},
		{Category: "A", Name: "keep2", Stocked: true},
	}

	rows := Filter(products, Criteria{InStockOnly: true})

	assert.Equal(t, []string{"A"}, Categories(rows))
	assert.Equal(t, []string{"keep1", "keep2"}, names(ProductRows(rows)))
}

func TestFilter_EmptyCategoryGetsHeader(t *testing.T) {
	products := []Product{
		{Category: "", Name: "loose", Stocked: true},
		{Category: "", Name: "loose2", Stocked: true},
	}

	rows := Filter(products, Criteria{})

	require.Len(t, rows, 3)
	assert.Equal(t, CategoryRow(""), rows[0])
	assert.Equal(t, RowProduct, rows[1].Kind)
	assert.Equal(t, RowProduct, rows[2].Kind)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{}))
	assert.Empty(t, Filter([]Product{}, Criteria{SearchText: "x", InStockOnly: true}))
}

// =============================================================================
// Properties
// =============================================================================

var propertyCriteria = []Criteria{
	{},
	{InStockOnly: true},
	{SearchText: "p"},
	{SearchText: "P", InStockOnly: true},
	{SearchText: "an"},
	{SearchText: "fruit"},
	{SearchText: "zzz"},
	{SearchText: "a", InStockOnly: true},
}

var propertyProducts = [][]Product{
	Products(),
	{
		{Category: "A", Name: "Alpha", Stocked: true},
		{Category: "B", Name: "beta", Stocked: false},
		{Category: "A", Name: "GAMMA", Stocked: true},
		{Category: "A", Name: "apple pie", Stocked: false},
		{Category: "C", Name: "Panda", Stocked: true},
	},
}

// TestFilter_ProductRowsAreOrderedSubsequence checks rows never reorder or
// duplicate products.
func TestFilter_ProductRowsAreOrderedSubsequence(t *testing.T) {
	for _, products := range propertyProducts {
		for _, c := range propertyCriteria {
			got := ProductRows(Filter(products, c))

			j := 0
			for _, p := range got {
				for j < len(products) && products[j] != p {
					j++
				}
				require.Less(t, j, len(products), "product %q out of order for %+v", p.Name, c)
				j++
			}
		}
	}
}

// TestFilter_SurvivorsSatisfyPredicates checks every row passes both tests and
// every omitted product fails one.
func TestFilter_SurvivorsSatisfyPredicates(t *testing.T) {
	for _, products := range propertyProducts {
		for _, c := range propertyCriteria {
			got := ProductRows(Filter(products, c))
			kept := make(map[string]bool, len(got))
			for _, p := range got {
				kept[p.Name] = true
				assert.Contains(t, strings.ToLower(p.Name), strings.ToLower(c.SearchText))
				assert.True(t, !c.InStockOnly || p.Stocked, "%q is unstocked", p.Name)
			}
			for _, p := range products {
				assert.Equal(t, c.Matches(p), kept[p.Name], "product %q criteria %+v", p.Name, c)
			}
		}
	}
}

// TestFilter_OneHeaderPerRun checks a header precedes each run and only runs.
func TestFilter_OneHeaderPerRun(t *testing.T) {
	for _, products := range propertyProducts {
		for _, c := range propertyCriteria {
			rows := Filter(products, c)
			if len(rows) == 0 {
				continue
			}
			require.Equal(t, RowCategory, rows[0].Kind)

			current := rows[0].Category
			for i := 1; i < len(rows); i++ {
				r := rows[i]
				if r.Kind == RowCategory {
					assert.Equal(t, RowProduct, rows[i-1].Kind, "adjacent headers at %d", i)
					assert.NotEqual(t, current, r.Category, "redundant header at %d", i)
					current = r.Category
					continue
				}
				assert.Equal(t, current, r.Product.Category)
			}
			assert.Equal(t, RowProduct, rows[len(rows)-1].Kind)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	products := Products()
	for _, c := range propertyCriteria {
		first := Filter(products, c)
		second := Filter(products, c)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("criteria %+v not idempotent (-first +second):\n%s", c, diff)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := Products()
	before := Products()

	_ = Filter(products, Criteria{SearchText: "a", InStockOnly: true})

	assert.Equal(t, before, products)
}

// =============================================================================
// Criteria / Row helpers
// =============================================================================

func TestCriteria_Matches(t *testing.T) {
	apple := Product{Category: "Fruits", Name: "Apple", Stocked: true, Price: "$1"}
	pumpkin := Product{Category: "Vegetables", Name: "Pumpkin", Stocked: false, Price: "$4"}

	assert.True(t, Criteria{}.Matches(apple))
	assert.True(t, Criteria{}.Matches(pumpkin))
	assert.True(t, Criteria{SearchText: "PPL"}.Matches(apple))
	assert.False(t, Criteria{SearchText: "apples"}.Matches(apple))
	assert.False(t, Criteria{InStockOnly: true}.Matches(pumpkin))
	assert.True(t, Criteria{SearchText: "kin", InStockOnly: false}.Matches(pumpkin))
}

func TestRowKind_String(t *testing.T) {
	assert.Equal(t, "category", RowCategory.String())
	assert.Equal(t, "product", RowProduct.String())
	assert.Equal(t, "unknown", RowKind(42).String())
}

func TestRow_MarshalJSON(t *testing.T) {
	rows := Filter(Products(), Criteria{SearchText: "peas"})

	data, err := json.Marshal(rows)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"kind":"category","category":"Vegetables"},
		{"kind":"product","product":{"category":"Vegetables","name":"Peas","stocked":true,"price":"$1"}}
	]`, string(data))
}
