// Package report writes the outcome of an apply as CSV.
package report

import (
	"encoding/csv"
	"io"
	"path/filepath"

	"PrefixRenUtil/internal/planner"
)

// Header is the first CSV record.
var Header = []string{"old_path", "new_path", "old_name", "new_name", "status", "reason"}

// Write writes one record per outcome of r, with paths joined to dir.
func Write(w io.Writer, dir string, r planner.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, it := range r.Items {
		rec := []string{
			filepath.Join(dir, it.Original),
			filepath.Join(dir, it.Proposed),
			it.Original,
			it.Proposed,
			string(it.Status),
			it.Reason,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DefaultFileName is the suggested name for a report saved at the given
// timestamp, formatted like 20060102_150405.
func DefaultFileName(stamp string) string {
	return "rename_report_" + stamp + ".csv"
}
