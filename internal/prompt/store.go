// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package prompt loads prompt templates and platform profiles from a YAML
// definition document and renders commit fields into them.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourorg/buildpost/internal/errors"
)

// defaultMaxHashtags caps hashtag injection when the definition document
// does not set config.max_hashtags.
const defaultMaxHashtags = 3

// Template is one named prompt style.
type Template struct {
	Name        string `yaml:"-"`
	DisplayName string `yaml:"name"`
	Description string `yaml:"description"`
	System      string `yaml:"system"`
	User        string `yaml:"template"`
}

// Platform is one named platform profile.
type Platform struct {
	Name        string   `yaml:"-"`
	DisplayName string   `yaml:"name"`
	MaxLength   int      `yaml:"max_length"`
	Hashtags    []string `yaml:"default_hashtags"`

	// ThreadThreshold is recognized so documents carrying it still parse;
	// thread splitting itself is not implemented.
	ThreadThreshold int `yaml:"thread_threshold"`
}

// settings mirrors the document's config block.
type settings struct {
	DefaultPrompt   string `yaml:"default_prompt"`
	DefaultPlatform string `yaml:"default_platform"`
	IncludeHashtags *bool  `yaml:"include_hashtags"`
	MaxHashtags     int    `yaml:"max_hashtags"`
}

// Store holds the loaded templates and platform profiles. It is built once
// per invocation and read-only afterwards; edits to the definition file are
// picked up on the next run.
type Store struct {
	templates      []Template
	templateByName map[string]Template
	platforms      []Platform
	platformByName map[string]Platform
	config         settings
}

// Load reads the definition document at path and builds a Store.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "read prompts file").
			WithHint("Run 'buildpost config init' to create the default prompts file")
	}
	return Parse(raw)
}

// Parse builds a Store from a YAML definition document. Definition order of
// templates and platforms is preserved.
func Parse(raw []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "parse prompts file")
	}

	store := &Store{
		templateByName: make(map[string]Template),
		platformByName: make(map[string]Platform),
	}

	if len(doc.Content) == 0 {
		return store, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCodeConfig, "prompts file must be a YAML mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "prompts":
			if err := store.parseTemplates(value); err != nil {
				return nil, err
			}
		case "platforms":
			if err := store.parsePlatforms(value); err != nil {
				return nil, err
			}
		case "config":
			if err := value.Decode(&store.config); err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeConfig, "parse config block")
			}
		}
	}

	return store, nil
}

func (s *Store) parseTemplates(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New(errors.ErrCodeConfig, "prompts block must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var tmpl Template
		if err := node.Content[i+1].Decode(&tmpl); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfig, fmt.Sprintf("parse prompt %q", name))
		}
		tmpl.Name = name
		if tmpl.DisplayName == "" {
			tmpl.DisplayName = name
		}
		tmpl.System = strings.TrimSpace(tmpl.System)
		tmpl.User = strings.TrimSpace(tmpl.User)
		s.templates = append(s.templates, tmpl)
		s.templateByName[name] = tmpl
	}
	return nil
}

func (s *Store) parsePlatforms(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New(errors.ErrCodeConfig, "platforms block must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var platform Platform
		if err := node.Content[i+1].Decode(&platform); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfig, fmt.Sprintf("parse platform %q", name))
		}
		platform.Name = name
		if platform.DisplayName == "" {
			platform.DisplayName = name
		}
		s.platforms = append(s.platforms, platform)
		s.platformByName[name] = platform
	}
	return nil
}

// Templates lists all templates in definition order.
func (s *Store) Templates() []Template {
	return s.templates
}

// Platforms lists all platform profiles in definition order.
func (s *Store) Platforms() []Platform {
	return s.platforms
}

// Template looks up a prompt style by name. An unknown name fails with a
// not-found error that lists the available styles; an empty store fails
// with a distinct message.
func (s *Store) Template(name string) (Template, error) {
	tmpl, ok := s.templateByName[name]
	if !ok {
		if len(s.templates) == 0 {
			return Template{}, errors.New(errors.ErrCodeTemplateNotFound, "no prompt templates are defined").
				WithHint("Run 'buildpost config init' to restore the default prompts file")
		}
		return Template{}, errors.Newf(errors.ErrCodeTemplateNotFound,
			"prompt %q not found (available: %s)", name, strings.Join(s.templateNames(), ", "))
	}
	return tmpl, nil
}

// Platform looks up a platform profile by name.
func (s *Store) Platform(name string) (Platform, error) {
	platform, ok := s.platformByName[name]
	if !ok {
		if len(s.platforms) == 0 {
			return Platform{}, errors.New(errors.ErrCodePlatformNotFound, "no platforms are defined")
		}
		return Platform{}, errors.Newf(errors.ErrCodePlatformNotFound,
			"platform %q not found (available: %s)", name, strings.Join(s.platformNames(), ", "))
	}
	return platform, nil
}

// PlatformHashtags returns the hashtag list for a platform, or nil when the
// platform is unknown.
func (s *Store) PlatformHashtags(name string) []string {
	platform, err := s.Platform(name)
	if err != nil {
		return nil
	}
	return platform.Hashtags
}

// MaxHashtags is the global cap on injected hashtags.
func (s *Store) MaxHashtags() int {
	if s.config.MaxHashtags > 0 {
		return s.config.MaxHashtags
	}
	return defaultMaxHashtags
}

// DefaultPrompt is the style used when the caller names none.
func (s *Store) DefaultPrompt() string {
	if s.config.DefaultPrompt != "" {
		return s.config.DefaultPrompt
	}
	return "casual"
}

// DefaultPlatform is the platform used when the caller names none.
func (s *Store) DefaultPlatform() string {
	if s.config.DefaultPlatform != "" {
		return s.config.DefaultPlatform
	}
	return "twitter"
}

// IncludeHashtags reports whether hashtags are injected by default.
func (s *Store) IncludeHashtags() bool {
	if s.config.IncludeHashtags == nil {
		return true
	}
	return *s.config.IncludeHashtags
}

func (s *Store) templateNames() []string {
	names := make([]string, 0, len(s.templates))
	for _, t := range s.templates {
		names = append(names, t.Name)
	}
	return names
}

func (s *Store) platformNames() []string {
	names := make([]string, 0, len(s.platforms))
	for _, p := range s.platforms {
		names = append(names, p.Name)
	}
	return names
}
