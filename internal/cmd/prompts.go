// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yourorg/buildpost/internal/config"
	"github.com/yourorg/buildpost/internal/prompt"
)

// newPromptsCmd creates the prompts command group.
func newPromptsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage prompt templates",
	}

	cmd.AddCommand(
		newPromptsListCmd(cfg),
		newPromptsEditCmd(cfg),
	)

	return cmd
}

func newPromptsListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available prompt templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Display Name", "Description"})
			for _, tmpl := range store.Templates() {
				table.Append([]string{tmpl.Name, tmpl.DisplayName, tmpl.Description})
			}
			table.Render()
			return nil
		},
	}
}

func newPromptsEditCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the prompts file in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.EnsurePromptsFile(prompt.DefaultDefinitions())
			if err != nil {
				return err
			}

			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = "nano"
			}

			edit := exec.Command(editor, path)
			edit.Stdin = os.Stdin
			edit.Stdout = os.Stdout
			edit.Stderr = os.Stderr
			if err := edit.Run(); err != nil {
				return fmt.Errorf("could not open editor %q: %w (edit manually: %s)", editor, err, path)
			}
			return nil
		},
	}
}

// loadStore builds the template store from the user's prompts file,
// creating it from the built-in defaults on first use.
func loadStore(cfg *config.Config) (*prompt.Store, error) {
	path, err := cfg.EnsurePromptsFile(prompt.DefaultDefinitions())
	if err != nil {
		return nil, err
	}
	return prompt.Load(path)
}
