// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yourorg/buildpost/internal/config"
)

// newPlatformsCmd creates the platforms command group.
func newPlatformsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Manage platform profiles",
	}

	cmd.AddCommand(newPlatformsListCmd(cfg))
	return cmd
}

func newPlatformsListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Display Name", "Max Length", "Hashtags"})
			for _, platform := range store.Platforms() {
				table.Append([]string{
					platform.Name,
					platform.DisplayName,
					strconv.Itoa(platform.MaxLength),
					strings.Join(platform.Hashtags, ", "),
				})
			}
			table.Render()
			return nil
		},
	}
}
