// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package commit turns raw version-control data into the immutable record
// the prompt pipeline renders from.
package commit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the fixed format used for the record's timestamp.
const dateLayout = "2006-01-02 15:04:05"

// PathChange is one file entry from a diff against the first parent.
// Before is the pre-change path, After the post-change path; either may be
// empty for added or deleted files.
type PathChange struct {
	Before string
	After  string
}

// RawCommit is the provider-neutral shape of a resolved commit.
type RawCommit struct {
	Hash        string
	Message     string
	AuthorName  string
	AuthorEmail string
	When        time.Time
	ParentCount int

	// ParentDiffs holds the path diffs against the first parent; empty for
	// a root commit.
	ParentDiffs []PathChange

	// StatPaths holds the paths from the commit's own file statistics, in
	// provider order. Used for root commits, which have nothing to diff
	// against.
	StatPaths []string

	Insertions int
	Deletions  int
}

// Record is an immutable view of a single commit plus its derived change
// summary. Construct it with NewRecord and treat it as read-only.
type Record struct {
	Hash          string
	ShortHash     string
	Message       string
	Author        string
	Date          string
	ChangedFiles  []string
	Insertions    int
	Deletions     int
	ChangeSummary string
}

// NewRecord normalizes a raw commit into a Record.
//
// For a commit with at least one parent the changed files come from the
// first-parent diff, each entry contributing its before-path or, when that
// is absent, its after-path. A root commit falls back to the paths in its
// own file statistics.
func NewRecord(raw RawCommit) Record {
	var files []string
	if raw.ParentCount > 0 {
		files = make([]string, 0, len(raw.ParentDiffs))
		for _, change := range raw.ParentDiffs {
			if change.Before != "" {
				files = append(files, change.Before)
			} else if change.After != "" {
				files = append(files, change.After)
			}
		}
	} else {
		files = append(files, raw.StatPaths...)
	}

	shortHash := raw.Hash
	if len(shortHash) > 7 {
		shortHash = shortHash[:7]
	}

	return Record{
		Hash:          raw.Hash,
		ShortHash:     shortHash,
		Message:       strings.TrimSpace(raw.Message),
		Author:        fmt.Sprintf("%s <%s>", raw.AuthorName, raw.AuthorEmail),
		Date:          raw.When.Format(dateLayout),
		ChangedFiles:  files,
		Insertions:    raw.Insertions,
		Deletions:     raw.Deletions,
		ChangeSummary: Summarize(files, raw.Insertions, raw.Deletions),
	}
}

// FieldMap returns the closed set of placeholder fields a template may
// reference. Renderers must resolve placeholders against exactly this map,
// never against the struct by reflection.
func (r Record) FieldMap() map[string]string {
	filesChanged := "No files"
	if len(r.ChangedFiles) > 0 {
		filesChanged = strings.Join(r.ChangedFiles, ", ")
	}

	return map[string]string{
		"commit_hash":    r.Hash,
		"short_hash":     r.ShortHash,
		"commit_message": r.Message,
		"author":         r.Author,
		"date":           r.Date,
		"files_changed":  filesChanged,
		"diff_summary":   r.ChangeSummary,
		"insertions":     strconv.Itoa(r.Insertions),
		"deletions":      strconv.Itoa(r.Deletions),
		"files_count":    strconv.Itoa(len(r.ChangedFiles)),
	}
}
