// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the released version string, overridable at build time with
// -ldflags "-X github.com/yourorg/buildpost/internal/cmd.Version=...".
var Version = "0.1.1"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show buildpost version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "buildpost v%s\n", Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Turn your git commits into social media posts using AI")
		},
	}
}
