// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x] In stock", Checkbox(true, "In stock"))
	assert.Equal(t, "[ ] In stock", Checkbox(false, "In stock"))
}

func TestIcon_Render(t *testing.T) {
	assert.Contains(t, IconError.Render(), string(IconError))
	assert.Contains(t, IconArrow.Render(), string(IconArrow))
	assert.Equal(t, "x", IconChecked.Render())
}

func TestError_WritesLine(t *testing.T) {
	var buf bytes.Buffer

	Error(&buf, "config invalid")

	assert.Contains(t, buf.String(), "config invalid")
	assert.Contains(t, buf.String(), string(IconError))
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
