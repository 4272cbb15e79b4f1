// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the on-disk productfilter configuration.
//
// Filter criteria are deliberately absent: they live only as long as a
// browser session.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`

	// Dir enables JSON file logging when set. Supports ~.
	Dir string `yaml:"dir"`

	// JSON formats stderr logs as JSON.
	JSON bool `yaml:"json"`
}

type UIConfig struct {
	Placeholder string `yaml:"placeholder" validate:"max=80"`
	CharLimit   int    `yaml:"char_limit" validate:"gte=0,lte=4096"`
	Width       int    `yaml:"width" validate:"gte=10,lte=200"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Placeholder: "Search...",
			CharLimit:   256,
			Width:       40,
		},
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
