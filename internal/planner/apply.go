package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"

	"PrefixRenUtil/internal/apperr"
	"PrefixRenUtil/internal/logging"
)

// Status is the outcome of a single plan entry.
type Status string

const (
	StatusRenamed Status = "renamed"
	StatusSkipped Status = "skip"
	StatusFailed  Status = "error"
)

// Outcome records what Apply did with one entry.
type Outcome struct {
	Entry
	Status Status
	Reason string
	Err    error
}

// Result collects the outcomes of an Apply call in plan order.
type Result struct {
	Items []Outcome
}

func (r Result) count(s Status) int {
	n := 0
	for _, it := range r.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

// Renamed returns how many entries were renamed.
func (r Result) Renamed() int { return r.count(StatusRenamed) }

// Skipped returns how many entries were skipped because the target existed.
func (r Result) Skipped() int { return r.count(StatusSkipped) }

// Failed returns how many entries could not be renamed.
func (r Result) Failed() int { return r.count(StatusFailed) }

// Failures returns the failed outcomes.
func (r Result) Failures() []Outcome {
	var out []Outcome
	for _, it := range r.Items {
		if it.Status == StatusFailed {
			out = append(out, it)
		}
	}
	return out
}

// Err joins the errors of all failed entries, or returns nil.
func (r Result) Err() error {
	var errs []error
	for _, it := range r.Failures() {
		errs = append(errs, it.Err)
	}
	return errors.Join(errs...)
}

// Option configures an Applier.
type Option func(*Applier)

// WithLogger sets the logger used for per-entry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Applier) { a.logger = l }
}

// Applier performs the renames of a plan inside one folder.
type Applier struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// NewApplier returns an Applier backed by fsys.
func NewApplier(fsys billy.Filesystem, opts ...Option) *Applier {
	a := &Applier{fs: fsys}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.OrDiscard(a.logger).With("component", "applier")
	return a
}

// Apply renames each entry of plan inside dir, in order. An entry whose
// target already exists is skipped. A failing entry is recorded and the
// remaining entries are still processed.
func (a *Applier) Apply(dir string, plan Plan) Result {
	if len(plan) == 0 {
		return Result{}
	}

	res := Result{Items: make([]Outcome, 0, len(plan))}
	for _, e := range plan {
		res.Items = append(res.Items, a.applyOne(dir, e))
	}

	a.logger.Info("apply complete",
		"dir", dir,
		"renamed", res.Renamed(),
		"skipped", res.Skipped(),
		"failed", res.Failed(),
	)
	return res
}

func (a *Applier) applyOne(dir string, e Entry) Outcome {
	out := Outcome{Entry: e}

	if reason := invalidNameReason(e.Proposed); reason != "" {
		out.Status = StatusFailed
		out.Reason = "invalid: " + reason
		out.Err = apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("%s → %q: %s", e.Original, e.Proposed, reason))
		a.logger.Warn("invalid target name", "original", e.Original, "proposed", e.Proposed, "reason", reason)
		return out
	}

	src := a.fs.Join(dir, e.Original)
	dst := a.fs.Join(dir, e.Proposed)

	exists, err := a.exists(dst)
	if err != nil {
		out.Status = StatusFailed
		out.Reason = err.Error()
		out.Err = err
		a.logger.Warn("stat failed", "path", dst, "error", err)
		return out
	}
	if exists {
		out.Status = StatusSkipped
		out.Reason = "conflict: target exists on disk"
		a.logger.Debug("target exists, skipping", "original", e.Original, "proposed", e.Proposed)
		return out
	}

	if err := a.fs.Rename(src, dst); err != nil {
		err = apperr.FromFS("rename", src, err)
		out.Status = StatusFailed
		out.Reason = err.Error()
		out.Err = err
		a.logger.Warn("rename failed", "original", e.Original, "proposed", e.Proposed, "error", err)
		return out
	}

	out.Status = StatusRenamed
	a.logger.Debug("renamed", "original", e.Original, "proposed", e.Proposed)
	return out
}

func (a *Applier) exists(path string) (bool, error) {
	_, err := a.fs.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, apperr.FromFS("stat", path, err)
	}
}

// invalidNameReason explains why name cannot be a rename target inside the
// folder, or returns "" if it can. Empty, "." and ".." resolve to existing
// directories and are left to the existence check.
func invalidNameReason(name string) string {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return "path separator in name"
	}
	return ""
}
