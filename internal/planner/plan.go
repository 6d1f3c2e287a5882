// Package planner computes prefix rename plans and applies them.
package planner

import (
	"strings"

	"PrefixRenUtil/internal/apperr"
)

// ErrEmptyPrefix is returned by Build when no old prefix was given.
var ErrEmptyPrefix = apperr.New(apperr.CodeInvalidInput, "old prefix is required")

// Params are the user inputs of a preview.
type Params struct {
	OldPrefix string
	NewPrefix string
	Separator string
}

// Validate reports whether a plan can be computed from p.
func (p Params) Validate() error {
	if p.OldPrefix == "" {
		return ErrEmptyPrefix
	}
	return nil
}

// Entry pairs a file with the name it will be renamed to.
type Entry struct {
	Original string
	Proposed string
}

// Plan is an ordered list of renames.
type Plan []Entry

// Originals returns the original names in plan order.
func (p Plan) Originals() []string {
	out := make([]string, len(p))
	for i, e := range p {
		out[i] = e.Original
	}
	return out
}

// ProposedName returns NewPrefix + Separator + the part of name after
// OldPrefix. ok is false when name does not start with OldPrefix.
// The match is literal and case-sensitive.
func ProposedName(name string, p Params) (proposed string, ok bool) {
	rest, ok := strings.CutPrefix(name, p.OldPrefix)
	if !ok {
		return "", false
	}
	return p.NewPrefix + p.Separator + rest, true
}

// Build returns the plan for files under p, keeping the order of files.
// Names that do not start with the old prefix are left out.
func Build(files []string, p Params) (Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	plan := make(Plan, 0, len(files))
	for _, name := range files {
		if proposed, ok := ProposedName(name, p); ok {
			plan = append(plan, Entry{Original: name, Proposed: proposed})
		}
	}
	return plan, nil
}
