// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yourorg/buildpost/internal/backend"
	"github.com/yourorg/buildpost/internal/commit"
	"github.com/yourorg/buildpost/internal/config"
	"github.com/yourorg/buildpost/internal/errors"
	"github.com/yourorg/buildpost/internal/gitrepo"
	"github.com/yourorg/buildpost/internal/logging"
	"github.com/yourorg/buildpost/internal/output"
	"github.com/yourorg/buildpost/internal/post"
	"github.com/yourorg/buildpost/internal/prompt"
)

// addPostFlags wires the pipeline flags and RunE onto the root command.
func addPostFlags(root *cobra.Command, cfg *config.Config) {
	var (
		commitRef  string
		rangeExpr  string
		style      string
		platform   string
		noHashtags bool
		noCopy     bool
		provider   string
		apiKey     string
		model      string
		outputOpts output.OutputOptions
	)

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := outputOpts.Resolve(); err != nil {
			return err
		}

		// Build effective settings with flag overrides
		run := runSettings{
			CommitRef:       commitRef,
			RangeExpr:       rangeExpr,
			Style:           cfg.Defaults.PromptStyle,
			Platform:        cfg.Defaults.Platform,
			Provider:        cfg.API.Provider,
			APIKey:          apiKey,
			Model:           model,
			Temperature:     cfg.Generation.Temperature,
			MaxTokens:       cfg.Generation.MaxTokens,
			IncludeHashtags: !noHashtags && cfg.IncludeHashtags(),
			CopyToClipboard: !noCopy && cfg.CopyToClipboard(),
		}
		if style != "" {
			run.Style = style
		}
		if platform != "" {
			run.Platform = platform
		}
		if provider != "" {
			run.Provider = provider
		}
		if run.APIKey == "" {
			run.APIKey = cfg.APIKey(run.Provider)
		}
		if run.Model == "" {
			run.Model = cfg.Model(run.Provider)
		}

		return runPost(cmd, cfg, run, outputOpts)
	}

	root.Flags().StringVarP(&commitRef, "commit", "c", "", "Specific commit reference to use (default: HEAD)")
	root.Flags().StringVarP(&rangeExpr, "range", "r", "", "Commit range, e.g. HEAD~5..HEAD (one post per commit)")
	root.Flags().StringVarP(&style, "style", "s", "", "Prompt style (casual, professional, ...)")
	root.Flags().StringVarP(&platform, "platform", "p", "", "Target platform (twitter, linkedin, ...)")
	root.Flags().BoolVar(&noHashtags, "no-hashtags", false, "Exclude hashtags")
	root.Flags().BoolVar(&noCopy, "no-copy", false, "Do not copy the post to the clipboard")
	root.Flags().StringVar(&provider, "provider", "", "LLM provider (openai, groq, ollama)")
	root.Flags().StringVar(&apiKey, "api-key", "", "LLM API key (overrides config)")
	root.Flags().StringVar(&model, "model", "", "Model to use")
	outputOpts.AddOutputFlags(root, output.OutputTable)
}

// runSettings is the fully resolved input to one pipeline run. Every value
// arrives here explicitly; the pipeline reads no ambient state.
type runSettings struct {
	CommitRef       string
	RangeExpr       string
	Style           string
	Platform        string
	Provider        string
	APIKey          string
	Model           string
	Temperature     float32
	MaxTokens       int
	IncludeHashtags bool
	CopyToClipboard bool
}

// postResult is the structured form of one generated post.
type postResult struct {
	Commit     string `json:"commit" yaml:"commit"`
	Style      string `json:"style" yaml:"style"`
	Platform   string `json:"platform" yaml:"platform"`
	Post       string `json:"post" yaml:"post"`
	Characters int    `json:"characters" yaml:"characters"`
	MaxLength  int    `json:"max_length" yaml:"max_length"`
	OverLimit  bool   `json:"over_limit" yaml:"over_limit"`
}

// runPost executes the pipeline: resolve -> render -> generate -> format.
func runPost(cmd *cobra.Command, cfg *config.Config, run runSettings, out output.OutputOptions) error {
	structured := out.Is(output.OutputJSON) || out.Is(output.OutputYAML)
	log := logging.New("info", out.Is(output.OutputQuiet) || structured)

	repo, err := gitrepo.Open(".")
	if err != nil {
		return err
	}

	records, err := resolveRecords(repo, run)
	if err != nil {
		return err
	}

	promptsPath, err := cfg.EnsurePromptsFile(prompt.DefaultDefinitions())
	if err != nil {
		return err
	}
	store, err := prompt.Load(promptsPath)
	if err != nil {
		return err
	}

	gen, err := backend.New(backend.Options{
		Provider: run.Provider,
		APIKey:   run.APIKey,
		Model:    run.Model,
	})
	if err != nil {
		return err
	}

	var results []postResult
	for i, record := range records {
		if len(records) > 1 {
			log.Infof("[%d/%d] processing %s", i+1, len(records), record.ShortHash)
		}
		log.Infof("commit %s: %s (%d files changed)", record.ShortHash, firstLine(record.Message), len(record.ChangedFiles))

		rendered, err := store.Render(run.Style, record.FieldMap())
		if err != nil {
			if errors.HasCode(err, errors.ErrCodeTemplateNotFound) {
				printAvailableStyles(cmd.ErrOrStderr(), store)
			}
			return err
		}

		log.Infof("generating post with %s (%s)...", run.Provider, run.Model)
		text, err := gen.Generate(cmd.Context(), rendered.System, rendered.User, run.MaxTokens, run.Temperature)
		if err != nil {
			return err
		}

		formatted := post.Format(store, text, run.Platform, run.IncludeHashtags)
		if formatted.UsedFallback {
			log.Warnf("unknown platform %q, using generic format", run.Platform)
		}

		results = append(results, postResult{
			Commit:     record.Hash,
			Style:      run.Style,
			Platform:   run.Platform,
			Post:       formatted.Text,
			Characters: formatted.CharCount,
			MaxLength:  formatted.MaxLength,
			OverLimit:  formatted.OverLimit(),
		})

		if !structured {
			displayPost(cmd.OutOrStdout(), record, formatted, run.Style)
		}

		if run.CopyToClipboard && i == len(records)-1 {
			if err := clipboard.WriteAll(formatted.Text); err != nil {
				log.Warnf("could not copy to clipboard: %v", err)
			} else {
				log.Info("copied to clipboard")
			}
		}
	}

	if structured {
		payload := any(results)
		if len(results) == 1 {
			payload = results[0]
		}
		if err := out.Emit(cmd.OutOrStdout(), payload); err != nil {
			return errors.NewCLIError(fmt.Sprintf("failed to encode output: %v", err)).
				WithHint("Try --output table instead")
		}
	}

	return nil
}

// resolveRecords turns the commit/range flags into one or more records.
// Range mode runs the pipeline once per commit; a single reference or HEAD
// yields exactly one.
func resolveRecords(repo *gitrepo.Repository, run runSettings) ([]commit.Record, error) {
	switch {
	case run.RangeExpr != "":
		raws, err := repo.ResolveRange(run.RangeExpr)
		if err != nil {
			return nil, err
		}
		if len(raws) == 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidReference, "no commits found in range %q", run.RangeExpr)
		}
		records := make([]commit.Record, 0, len(raws))
		for _, raw := range raws {
			records = append(records, commit.NewRecord(raw))
		}
		return records, nil
	case run.CommitRef != "":
		raw, err := repo.Resolve(run.CommitRef)
		if err != nil {
			return nil, err
		}
		return []commit.Record{commit.NewRecord(raw)}, nil
	default:
		raw, err := repo.Head()
		if err != nil {
			return nil, err
		}
		return []commit.Record{commit.NewRecord(raw)}, nil
	}
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	withinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// displayPost renders the generated post and its character budget.
func displayPost(w io.Writer, record commit.Record, formatted post.Post, style string) {
	title := fmt.Sprintf("Generated Post (%s | %s | %s)", formatted.Platform, style, record.ShortHash)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, panelStyle.Render(formatted.Text))

	count := fmt.Sprintf("Characters: %d/%d", formatted.CharCount, formatted.MaxLength)
	if formatted.OverLimit() {
		fmt.Fprintln(w, overStyle.Render(count+" (over the limit)"))
	} else {
		fmt.Fprintln(w, withinStyle.Render(count))
	}
	fmt.Fprintln(w)
}

func printAvailableStyles(w io.Writer, store *prompt.Store) {
	fmt.Fprintln(w, "Available prompts:")
	for _, tmpl := range store.Templates() {
		fmt.Fprintf(w, "  - %s: %s\n", tmpl.Name, tmpl.Description)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
