// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		insertions int
		deletions  int
		want       string
	}{
		{
			name:       "mixed extensions with insertions and deletions",
			files:      []string{"a.py", "b.py", "c.md"},
			insertions: 10,
			deletions:  2,
			want:       "3 files changed | types: .py (2), .md (1) | +10 -2",
		},
		{
			name: "empty change set",
			want: "0 files changed",
		},
		{
			name:  "single file uses singular",
			files: []string{"main.go"},
			want:  "1 file changed | types: .go (1)",
		},
		{
			name:      "deletions only",
			files:     []string{"old.txt"},
			deletions: 5,
			want:      "1 file changed | types: .txt (1) | -5",
		},
		{
			name:       "insertions only",
			files:      []string{"new.txt"},
			insertions: 7,
			want:       "1 file changed | types: .txt (1) | +7",
		},
		{
			name:  "no extension bucket",
			files: []string{"Makefile", "LICENSE"},
			want:  "2 files changed | types: no extension (2)",
		},
		{
			name:  "extension only considers the basename",
			files: []string{"pkg.v2/binary"},
			want:  "1 file changed | types: no extension (1)",
		},
		{
			name:  "ties keep first-seen order",
			files: []string{"a.go", "b.py", "c.go", "d.py"},
			want:  "2 files changed | types: .go (2), .py (2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.files, tt.insertions, tt.deletions))
		})
	}
}

func TestSummarizeCapsTypeBuckets(t *testing.T) {
	files := []string{"a.go", "b.py", "c.md", "d.rs", "e.ts"}
	got := Summarize(files, 0, 0)

	assert.Contains(t, got, "5 files changed")
	assert.Contains(t, got, "types: ")

	typesClause := strings.Split(got, " | ")[1]
	assert.Len(t, strings.Split(typesClause, ", "), 3)
}

func TestSummarizeTypesClauseOnlyWithFiles(t *testing.T) {
	assert.NotContains(t, Summarize(nil, 3, 4), "types:")
	assert.Contains(t, Summarize([]string{"x.c"}, 0, 0), "types:")
}
