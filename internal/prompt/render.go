// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package prompt

import (
	"regexp"
	"strings"

	"github.com/yourorg/buildpost/internal/errors"
)

// placeholderPattern matches named substitution points like {short_hash}.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Rendered is a prompt pair with every placeholder resolved.
type Rendered struct {
	Style  string
	System string
	User   string
}

// Render looks up the named style and substitutes fields into both its
// system and user text. Every placeholder must resolve; a single unknown
// name fails the whole render, so partial output is never returned.
func (s *Store) Render(styleName string, fields map[string]string) (Rendered, error) {
	tmpl, err := s.Template(styleName)
	if err != nil {
		return Rendered{}, err
	}

	system, err := substitute(tmpl.System, fields)
	if err != nil {
		return Rendered{}, err
	}
	user, err := substitute(tmpl.User, fields)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{Style: tmpl.Name, System: system, User: user}, nil
}

func substitute(text string, fields map[string]string) (string, error) {
	var missing string
	result := placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.Trim(match, "{}")
		value, ok := fields[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", errors.Newf(errors.ErrCodeMissingPlaceholder,
			"template references unknown field {%s}", missing).
			WithHint("Check the template against the documented field names")
	}
	return result, nil
}
