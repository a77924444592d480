// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/buildpost/internal/config"
)

// NewRootCmd creates the root command for buildpost. Running it with no
// subcommand executes the post pipeline against HEAD.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "buildpost",
		Short: "Turn git commits into social media posts using AI",
		Long: `Turn your git commits into short, platform-tailored social media
posts. buildpost resolves a commit, renders its details into a style-specific
prompt, sends the prompt to a configurable LLM provider, and formats the
generated text for the target platform.

Prompt styles and platform profiles live in ~/.buildpost/prompts.yaml and
can be edited freely; provider keys and defaults live in
~/.buildpost/config.yaml.`,
		Example: `  # Post about the latest commit using the defaults
  buildpost

  # A professional LinkedIn post about a specific commit
  buildpost --commit abc1234 --style professional --platform linkedin

  # One post per commit in a range
  buildpost --range HEAD~5..HEAD

  # Structured output for scripting
  buildpost --output json --no-copy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addPostFlags(root, cfg)

	root.AddCommand(
		newConfigCmd(cfg),
		newPromptsCmd(cfg),
		newPlatformsCmd(cfg),
		newVersionCmd(),
	)

	return root
}
