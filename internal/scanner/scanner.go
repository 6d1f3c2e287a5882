// Package scanner lists the plain files directly inside a folder.
package scanner

import (
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"

	"PrefixRenUtil/internal/apperr"
	"PrefixRenUtil/internal/logging"
)

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// Scanner reads folder listings from a billy filesystem.
type Scanner struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// New returns a Scanner backed by fsys.
func New(fsys billy.Filesystem, opts ...Option) *Scanner {
	s := &Scanner{fs: fsys}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDiscard(s.logger).With("component", "scanner")
	return s
}

// Scan returns the names of the regular files directly inside dir, in the
// order the filesystem lists them. Directories and special files are
// skipped; a symlink counts when it resolves to a regular file.
func (s *Scanner) Scan(dir string) ([]string, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Warn("scan failed", "dir", dir, "error", err)
		return nil, apperr.FromFS("scan", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if s.isFile(dir, fi) {
			names = append(names, fi.Name())
		}
	}

	s.logger.Debug("scanned folder", "dir", dir, "entries", len(infos), "files", len(names))
	return names, nil
}

func (s *Scanner) isFile(dir string, fi os.FileInfo) bool {
	mode := fi.Mode()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}

	target, err := s.fs.Stat(s.fs.Join(dir, fi.Name()))
	if err != nil {
		// dangling link
		return false
	}
	return target.Mode().IsRegular()
}
