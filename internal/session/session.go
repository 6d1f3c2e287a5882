// Package session holds the state of one renaming session: the selected
// folder, its cached file list and the last computed plan.
//
// A Session is not safe for concurrent use. Front ends own it from their
// event loop.
package session

import (
	"fmt"
	"log/slog"
	"slices"

	"PrefixRenUtil/internal/logging"
	"PrefixRenUtil/internal/planner"
	"PrefixRenUtil/internal/scanner"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session sequences folder scans, previews and applies.
type Session struct {
	scanner *scanner.Scanner
	applier *planner.Applier
	logger  *slog.Logger

	folder  string
	entries []string
	plan    planner.Plan
}

// New returns an empty session.
func New(scan *scanner.Scanner, apply *planner.Applier, opts ...Option) *Session {
	s := &Session{scanner: scan, applier: apply}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDiscard(s.logger).With("component", "session")
	return s
}

// Folder returns the selected folder, or "" if none was selected yet.
func (s *Session) Folder() string { return s.folder }

// Entries returns a copy of the cached file list.
func (s *Session) Entries() []string { return slices.Clone(s.entries) }

// Plan returns a copy of the current plan.
func (s *Session) Plan() planner.Plan { return slices.Clone(s.plan) }

// SelectFolder scans path and makes it the current folder. An empty path
// is a cancelled selection and changes nothing. If the scan fails the
// previous folder stays selected.
func (s *Session) SelectFolder(path string) error {
	if path == "" {
		return nil
	}

	entries, err := s.scanner.Scan(path)
	if err != nil {
		return fmt.Errorf("select folder: %w", err)
	}

	s.folder = path
	s.entries = entries
	s.plan = nil
	s.logger.Info("folder selected", "folder", path, "files", len(entries))
	return nil
}

// Refresh re-scans the current folder. The plan is discarded.
func (s *Session) Refresh() error {
	if s.folder == "" {
		return nil
	}

	entries, err := s.scanner.Scan(s.folder)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	s.entries = entries
	s.plan = nil
	return nil
}

// Preview computes the plan for p from the cached file list and keeps it
// as the current plan. On a validation error the current plan is cleared.
func (s *Session) Preview(p planner.Params) (planner.Plan, error) {
	plan, err := planner.Build(s.entries, p)
	if err != nil {
		s.plan = nil
		return nil, err
	}

	s.plan = plan
	s.logger.Debug("preview computed",
		"old_prefix", p.OldPrefix,
		"new_prefix", p.NewPrefix,
		"separator", p.Separator,
		"entries", len(plan),
	)
	return slices.Clone(plan), nil
}

// Apply renames the files of the current plan, then re-scans the folder
// and clears the plan. With no plan it does nothing. Per-entry failures are
// reported in the result; the returned error is only set when the re-scan
// fails.
func (s *Session) Apply() (planner.Result, error) {
	if len(s.plan) == 0 {
		return planner.Result{}, nil
	}

	res := s.applier.Apply(s.folder, s.plan)
	s.plan = nil

	if err := s.Refresh(); err != nil {
		return res, err
	}
	return res, nil
}
