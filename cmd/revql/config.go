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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig holds optional defaults from the user's config file.
//
// Pointer fields distinguish "unset" from an explicit false.
type fileConfig struct {
	ShowRelay *bool    `yaml:"show-relay"`
	NoColor   *bool    `yaml:"no-color"`
	Timeout   string   `yaml:"timeout"`
	Headers   []string `yaml:"headers"`
}

// configPath returns the config file location, honoring XDG_CONFIG_HOME.
func configPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "revql", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "revql", "config.yaml")
}

// applyConfigDefaults fills flag values from the config file for flags
// the user did not set on the command line. Flags always win.
//
// A missing config file is not an error; an unreadable or malformed one
// is reported on stderr and otherwise ignored, since the command line
// alone is sufficient to run.
func applyConfigDefaults(cmd *cobra.Command) {
	path := configPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: cannot read %s: %v\n", path, err)
		}
		return
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot parse %s: %v\n", path, err)
		return
	}

	flags := cmd.Flags()
	if cfg.ShowRelay != nil && !flags.Changed("show-relay") {
		flagShowRelay = *cfg.ShowRelay
	}
	if cfg.NoColor != nil && !flags.Changed("no-color") {
		flagNoColor = *cfg.NoColor
	}
	if cfg.Timeout != "" && !flags.Changed("timeout") {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid timeout in %s: %v\n", path, err)
		} else {
			flagTimeout = d
		}
	}
	if len(cfg.Headers) > 0 && !flags.Changed("header") {
		flagHeaders = cfg.Headers
	}
}
