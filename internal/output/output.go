// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output resolves the per-command output format flags.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format is a supported output mode.
type Format string

const (
	OutputTable Format = "table"
	OutputJSON  Format = "json"
	OutputYAML  Format = "yaml"
	OutputQuiet Format = "quiet"
)

// OutputOptions carries the raw flag values and the resolved format.
type OutputOptions struct {
	Format string
	Quiet  bool

	resolved Format
}

// AddOutputFlags registers --output and --quiet on a command.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def Format) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", string(def), "Output format (table, json, yaml)")
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false, "Suppress progress output")
}

// Resolve validates the flag values. Quiet mode overrides the format.
func (o *OutputOptions) Resolve() error {
	if o.Quiet {
		o.resolved = OutputQuiet
		return nil
	}
	switch Format(o.Format) {
	case OutputTable, OutputJSON, OutputYAML:
		o.resolved = Format(o.Format)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json, or yaml)", o.Format)
	}
}

// Is reports whether the resolved format matches f.
func (o OutputOptions) Is(f Format) bool {
	return o.resolved == f
}

// Emit encodes v to w in the resolved structured format.
func (o OutputOptions) Emit(w io.Writer, v any) error {
	switch o.resolved {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
