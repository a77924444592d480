// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourorg/buildpost/internal/backend"
	"github.com/yourorg/buildpost/internal/config"
	"github.com/yourorg/buildpost/internal/errors"
	"github.com/yourorg/buildpost/internal/prompt"
)

// newConfigCmd creates the config command group.
func newConfigCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage buildpost configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(cfg),
		newConfigSetKeyCmd(cfg),
		newConfigSetProviderCmd(cfg),
		newConfigResetCmd(cfg),
		newConfigInitCmd(cfg),
	)

	return cmd
}

func newConfigShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := cfg.Show()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newConfigSetKeyCmd(cfg *config.Config) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "set-key <api-key>",
		Short: "Store an API key for an LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			target := provider
			if target == "" {
				target = cfg.API.Provider
			}
			info, ok := backend.Lookup(target)
			if !ok {
				return errors.Newf(errors.ErrCodeProviderUnknown,
					"unsupported provider %q", target)
			}

			if !backend.ValidateKey(target, key) {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"Warning: API key format looks unusual for provider %q\n", target)
			}

			cfg.SetAPIKey(target, key)
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key saved for %s\n", info.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Provider to associate with this key")
	return cmd
}

func newConfigSetProviderCmd(cfg *config.Config) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "set-provider <provider>",
		Short: "Switch the active LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			info, ok := backend.Lookup(provider)
			if !ok {
				return errors.Newf(errors.ErrCodeProviderUnknown,
					"unsupported provider %q (supported: openai, groq, ollama)", provider)
			}

			cfg.API.Provider = provider
			if model != "" {
				cfg.SetModel(provider, model)
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Active provider set to %s (%s)\n", info.DisplayName, provider)
			if model != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Default model updated to %q\n", model)
			}
			if info.RequiresKey && cfg.APIKey(provider) == "" {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Reminder: configure an API key for %s:\n  buildpost config set-key --provider %s YOUR_KEY\n  or set %s\n",
					info.DisplayName, provider, info.EnvVar)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Default model name for this provider")
	return cmd
}

func newConfigResetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults")
			return nil
		},
	}
}

func newConfigInitCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration and prompts files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Save(); err != nil {
				return err
			}
			promptsPath, err := cfg.EnsurePromptsFile(prompt.DefaultDefinitions())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration initialized")
			fmt.Fprintf(cmd.OutOrStdout(), "Config directory: %s\n", cfg.Dir())
			fmt.Fprintf(cmd.OutOrStdout(), "Prompts file: %s\n", promptsPath)
			return nil
		},
	}
}
