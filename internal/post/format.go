// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package post maps generated text into a platform profile.
package post

import (
	"strings"

	"github.com/yourorg/buildpost/internal/prompt"
)

// genericMaxLength is the character budget used when the requested
// platform has no profile.
const genericMaxLength = 500

// Post is the final formatted text plus the length report for the caller.
// The text is never truncated here; exceeding MaxLength is reported, and
// any truncation policy belongs to the display layer.
type Post struct {
	Text         string
	Platform     string
	CharCount    int
	MaxLength    int
	Hashtags     []string
	UsedFallback bool
}

// OverLimit reports whether the post exceeds the platform's budget.
func (p Post) OverLimit() bool {
	return p.CharCount > p.MaxLength
}

// Format applies the named platform's profile to generated text. An unknown
// platform degrades to a generic profile (max length 500, no hashtags) and
// sets UsedFallback so the caller can warn. When hashtags are requested,
// the platform's list is cut to the store's global cap, in defined order,
// and appended after a blank line.
func Format(store *prompt.Store, text, platformName string, includeHashtags bool) Post {
	result := Post{Text: text, Platform: platformName, MaxLength: genericMaxLength}

	profile, err := store.Platform(platformName)
	if err != nil {
		result.UsedFallback = true
		result.CharCount = len([]rune(result.Text))
		return result
	}

	if profile.MaxLength > 0 {
		result.MaxLength = profile.MaxLength
	}

	if includeHashtags {
		tags := store.PlatformHashtags(platformName)
		if limit := store.MaxHashtags(); len(tags) > limit {
			tags = tags[:limit]
		}
		if len(tags) > 0 {
			formatted := make([]string, 0, len(tags))
			for _, tag := range tags {
				if !strings.HasPrefix(tag, "#") {
					tag = "#" + tag
				}
				formatted = append(formatted, tag)
			}
			result.Hashtags = formatted
			result.Text = text + "\n\n" + strings.Join(formatted, " ")
		}
	}

	result.CharCount = len([]rune(result.Text))
	return result
}
