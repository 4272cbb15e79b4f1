// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AleutianAI/productfilter/cmd/productfilter/config"
	"github.com/AleutianAI/productfilter/pkg/logging"
	"github.com/AleutianAI/productfilter/services/catalog"
	"github.com/AleutianAI/productfilter/services/catalog/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app carries the command dependencies that tests replace.
type app struct {
	out    io.Writer
	errOut io.Writer

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal func() bool

	// runProgram runs the browser until the user quits.
	runProgram func(m tui.Model) error

	// flags
	configPath string
	logLevel   string
	search     string
	inStock    bool
	jsonOutput bool
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		out:    out,
		errOut: errOut,
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	a.runProgram = func(m tui.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(a.out)).Run()
		return err
	}
	return a
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "productfilter",
		Short:         "Browse the product catalog",
		Long:          `Search the product catalog by name and hide out-of-stock items. Runs the interactive browser on a terminal and prints the table otherwise.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.isTerminal() {
				return a.runBrowse()
			}
			return a.runList()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Start the interactive product browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse()
		},
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered product table once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&a.jsonOutput, "json", false, "Print rows as JSON instead of a table (list output only)")
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.productfilter/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	flags.StringVarP(&a.search, "search", "s", "", "Initial search text, matched case-insensitively against names")
	flags.BoolVar(&a.inStock, "in-stock", false, "Only show products in stock")

	rootCmd.AddCommand(browseCmd, listCmd)
	return rootCmd
}

func (a *app) criteria() catalog.Criteria {
	return catalog.Criteria{SearchText: a.search, InStockOnly: a.inStock}
}

// setup loads the config and builds a logger for service.
//
// quiet mutes console logging so the browser's screen is not overwritten.
// create writes the default config file when none exists; otherwise a
// missing default file falls back to built-in defaults.
func (a *app) setup(service string, quiet, create bool) (config.Config, *logging.Logger, error) {
	var (
		cfg config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
	} else {
		var path string
		path, err = config.DefaultPath()
		if err == nil {
			if create {
				cfg, _, err = config.LoadOrCreate(path)
			} else {
				cfg, err = config.LoadOrDefault(path)
			}
		}
	}
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	levelName := cfg.Logging.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return cfg, nil, fmt.Errorf("log level: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: service,
		JSON:    cfg.Logging.JSON,
		Quiet:   quiet,
		Output:  a.errOut,
	})
	return cfg, logger, nil
}

func (a *app) runBrowse() error {
	cfg, logger, err := a.setup("browse", true, true)
	if err != nil {
		return err
	}
	defer logger.Close()

	sessionLogger := logger.With("session_id", uuid.NewString())
	model := tui.New(catalog.Products(), a.criteria(), tui.Config{
		Placeholder: cfg.UI.Placeholder,
		CharLimit:   cfg.UI.CharLimit,
		Width:       cfg.UI.Width,
	}, sessionLogger)

	sessionLogger.Info("browser started")
	if err := a.runProgram(model); err != nil {
		sessionLogger.Error("browser failed", "error", err.Error())
		return fmt.Errorf("run browser: %w", err)
	}
	sessionLogger.Info("browser closed")
	return nil
}

func (a *app) runList() error {
	_, logger, err := a.setup("list", false, false)
	if err != nil {
		return err
	}
	defer logger.Close()

	rows := catalog.Filter(catalog.Products(), a.criteria())
	logger.Debug("rows derived",
		"search_text_len", len(a.search),
		"in_stock_only", a.inStock,
		"rows", len(rows),
	)

	if a.jsonOutput {
		if rows == nil {
			rows = []catalog.Row{}
		}
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode rows: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(a.out, tui.RenderTable(rows)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
