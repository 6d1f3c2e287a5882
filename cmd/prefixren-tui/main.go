// Command prefixren-tui is the terminal front end of the batch prefix
// renamer. It takes an optional start directory for the folder picker.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5/osfs"

	"PrefixRenUtil/internal/config"
	"PrefixRenUtil/internal/logging"
	"PrefixRenUtil/internal/planner"
	"PrefixRenUtil/internal/scanner"
	"PrefixRenUtil/internal/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()

	logger := logging.Discard()
	if dir, err := os.UserCacheDir(); err == nil {
		l, closer, err := logging.OpenFile(filepath.Join(dir, "prefixren", cfg.LogFileName), cfg.LogLevel)
		if err == nil {
			defer closer.Close()
			logger = l
		}
	}

	start, err := startDir(args)
	if err != nil {
		return err
	}

	// the front ends pass absolute paths, so the filesystem is rooted at /
	fsys := osfs.New("/")
	sess := session.New(
		scanner.New(fsys, scanner.WithLogger(logger)),
		planner.NewApplier(fsys, planner.WithLogger(logger)),
		session.WithLogger(logger),
	)

	p := tea.NewProgram(newModel(cfg, sess, logger, start), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func startDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return filepath.Abs(args[0])
	}
	return os.Getwd()
}
