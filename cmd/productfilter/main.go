// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command productfilter browses the product catalog.
//
// Usage:
//
//	productfilter                       # interactive browser on a terminal
//	productfilter browse --in-stock     # browser, starting with stock filter on
//	productfilter list --search p       # print the filtered table once
//	productfilter list --json           # machine-readable rows
package main

import (
	"os"

	"github.com/AleutianAI/productfilter/pkg/ux"
)

func main() {
	cmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	if err := cmd.Execute(); err != nil {
		ux.Error(os.Stderr, err.Error())
		os.Exit(1)
	}
}
