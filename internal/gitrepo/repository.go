// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package gitrepo resolves commit references against a local repository and
// exposes them in the provider-neutral shape the pipeline consumes.
package gitrepo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/yourorg/buildpost/internal/commit"
	"github.com/yourorg/buildpost/internal/errors"
)

// rangeWalkLimit bounds how far ResolveRange walks before concluding the
// endpoints are unrelated.
const rangeWalkLimit = 10000

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing path, searching parent directories
// for the repository root the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidRepository,
			fmt.Sprintf("%q is not a git repository", path)).
			WithHint("Run buildpost from within a git repository")
	}
	return &Repository{repo: repo}, nil
}

// New wraps an already-opened go-git repository. Used by tests.
func New(repo *git.Repository) *Repository {
	return &Repository{repo: repo}
}

// Head returns the commit at the current HEAD.
func (r *Repository) Head() (commit.RawCommit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference, "resolve HEAD")
	}
	c, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference, "load HEAD commit")
	}
	return r.rawCommit(c)
}

// Resolve resolves a reference (hash, branch, tag) to exactly one commit.
func (r *Repository) Resolve(ref string) (commit.RawCommit, error) {
	c, err := r.commitForRef(ref)
	if err != nil {
		return commit.RawCommit{}, err
	}
	return r.rawCommit(c)
}

// ResolveRange resolves an "a..b" expression to the ordered commits
// reachable from b back to, but not including, a. Newest first, matching
// git log.
func (r *Repository) ResolveRange(expr string) ([]commit.RawCommit, error) {
	fromRef, toRef, ok := strings.Cut(expr, "..")
	if !ok || fromRef == "" || toRef == "" || strings.HasPrefix(toRef, ".") {
		return nil, errors.Newf(errors.ErrCodeInvalidReference,
			"invalid range %q", expr).
			WithHint("Use the form <from>..<to>, e.g. HEAD~5..HEAD")
	}

	from, err := r.commitForRef(fromRef)
	if err != nil {
		return nil, err
	}
	to, err := r.commitForRef(toRef)
	if err != nil {
		return nil, err
	}

	var raws []commit.RawCommit
	current := to
	for steps := 0; steps < rangeWalkLimit; steps++ {
		if current.Hash == from.Hash {
			return raws, nil
		}
		raw, err := r.rawCommit(current)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)

		if current.NumParents() == 0 {
			break
		}
		current, err = current.Parent(0)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidReference, "walk range history")
		}
	}
	return nil, errors.Newf(errors.ErrCodeInvalidReference,
		"range %q: %s is not a first-parent ancestor of %s", expr, fromRef, toRef)
}

func (r *Repository) commitForRef(ref string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidReference,
			fmt.Sprintf("invalid commit reference %q", ref)).
			WithHint("Provide a valid commit hash, branch, or tag")
	}
	c, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidReference,
			fmt.Sprintf("reference %q does not point at a commit", ref))
	}
	return c, nil
}

// rawCommit extracts metadata, first-parent path diffs, and aggregate line
// statistics from a commit object.
func (r *Repository) rawCommit(c *object.Commit) (commit.RawCommit, error) {
	raw := commit.RawCommit{
		Hash:        c.Hash.String(),
		Message:     c.Message,
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		When:        c.Author.When,
		ParentCount: c.NumParents(),
	}

	stats, err := c.Stats()
	if err != nil {
		return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference,
			fmt.Sprintf("compute stats for %s", c.Hash))
	}
	for _, stat := range stats {
		raw.StatPaths = append(raw.StatPaths, stat.Name)
		raw.Insertions += stat.Addition
		raw.Deletions += stat.Deletion
	}

	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference,
				fmt.Sprintf("load parent of %s", c.Hash))
		}
		parentTree, err := parent.Tree()
		if err != nil {
			return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference, "load parent tree")
		}
		tree, err := c.Tree()
		if err != nil {
			return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference, "load commit tree")
		}
		changes, err := object.DiffTree(parentTree, tree)
		if err != nil {
			return commit.RawCommit{}, errors.Wrap(err, errors.ErrCodeInvalidReference, "diff against parent")
		}
		for _, change := range changes {
			raw.ParentDiffs = append(raw.ParentDiffs, commit.PathChange{
				Before: change.From.Name,
				After:  change.To.Name,
			})
		}
	}

	return raw, nil
}
