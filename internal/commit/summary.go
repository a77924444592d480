// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package commit

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// maxSummaryTypes caps how many extension buckets the summary lists.
const maxSummaryTypes = 3

// noExtension is the bucket for paths without a file extension.
const noExtension = "no extension"

// Summarize builds a one-line, human-readable description of a change set,
// e.g. "3 files changed | types: .py (2), .md (1) | +10 -2".
//
// Extension buckets are ranked by descending count; ties keep the order in
// which the extension was first seen. Only the top three buckets are shown.
func Summarize(files []string, insertions, deletions int) string {
	var parts []string

	if len(files) == 1 {
		parts = append(parts, "1 file changed")
	} else {
		parts = append(parts, fmt.Sprintf("%d files changed", len(files)))
	}

	if clause := typesClause(files); clause != "" {
		parts = append(parts, clause)
	}

	if clause := linesClause(insertions, deletions); clause != "" {
		parts = append(parts, clause)
	}

	return strings.Join(parts, " | ")
}

func typesClause(files []string) string {
	if len(files) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for _, path := range files {
		ext := filepath.Ext(path)
		if ext == "" {
			ext = noExtension
		}
		if _, seen := counts[ext]; !seen {
			order = append(order, ext)
		}
		counts[ext]++
	}

	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxSummaryTypes {
		order = order[:maxSummaryTypes]
	}

	rendered := make([]string, 0, len(order))
	for _, ext := range order {
		rendered = append(rendered, fmt.Sprintf("%s (%d)", ext, counts[ext]))
	}
	return "types: " + strings.Join(rendered, ", ")
}

func linesClause(insertions, deletions int) string {
	var changes []string
	if insertions > 0 {
		changes = append(changes, fmt.Sprintf("+%d", insertions))
	}
	if deletions > 0 {
		changes = append(changes, fmt.Sprintf("-%d", deletions))
	}
	return strings.Join(changes, " ")
}
