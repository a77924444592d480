// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/buildpost/internal/errors"
)

func testFields() map[string]string {
	return map[string]string{
		"short_hash":     "abc1234",
		"commit_message": "Fix bug",
		"author":         "Jane Doe <jane@example.com>",
	}
}

func TestRender(t *testing.T) {
	store := mustParse(t, testDefinitions)

	rendered, err := store.Render("casual", testFields())
	require.NoError(t, err)

	assert.Equal(t, "casual", rendered.Style)
	assert.Equal(t, "You are a friendly developer.", rendered.System)
	assert.Equal(t, "Commit abc1234: Fix bug", rendered.User)
}

func TestRenderIsIdempotent(t *testing.T) {
	store := mustParse(t, testDefinitions)

	first, err := store.Render("casual", testFields())
	require.NoError(t, err)
	second, err := store.Render("casual", testFields())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderUnknownStyle(t *testing.T) {
	store := mustParse(t, testDefinitions)

	_, err := store.Render("snarky", testFields())
	assert.True(t, errors.HasCode(err, errors.ErrCodeTemplateNotFound))
}

func TestRenderMissingPlaceholder(t *testing.T) {
	store := mustParse(t, `
prompts:
  broken:
    system: Plain system text.
    template: "Commit {short_hash} touched {mystery_field}"
`)

	_, err := store.Render("broken", testFields())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingPlaceholder))
	assert.Contains(t, err.Error(), "mystery_field")
}

func TestRenderSubstitutesSystemText(t *testing.T) {
	store := mustParse(t, `
prompts:
  signed:
    system: "Write as {author}."
    template: "About {commit_message}"
`)

	rendered, err := store.Render("signed", testFields())
	require.NoError(t, err)
	assert.Equal(t, "Write as Jane Doe <jane@example.com>.", rendered.System)
}

func TestRenderMissingPlaceholderInSystemText(t *testing.T) {
	store := mustParse(t, `
prompts:
  broken:
    system: "Tone: {tone}"
    template: "About {commit_message}"
`)

	_, err := store.Render("broken", testFields())
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingPlaceholder))
}

func TestRenderTextWithoutPlaceholders(t *testing.T) {
	store := mustParse(t, `
prompts:
  static:
    system: No placeholders here.
    template: Still none.
`)

	rendered, err := store.Render("static", nil)
	require.NoError(t, err)
	assert.Equal(t, "No placeholders here.", rendered.System)
	assert.Equal(t, "Still none.", rendered.User)
}
