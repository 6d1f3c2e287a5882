package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/go-git/go-billy/v5/osfs"

	"PrefixRenUtil/internal/apperr"
	"PrefixRenUtil/internal/config"
	"PrefixRenUtil/internal/logging"
	"PrefixRenUtil/internal/planner"
	"PrefixRenUtil/internal/report"
	"PrefixRenUtil/internal/scanner"
	"PrefixRenUtil/internal/session"
)

/* -------------------- UI State -------------------- */

type renamerUI struct {
	win    fyne.Window
	cfg    *config.Config
	sess   *session.Session
	logger *slog.Logger

	folderLabel *widget.Label
	oldPrefix   *widget.Entry
	newPrefix   *widget.Entry
	separator   *widget.Entry

	selectFolderBtn *widget.Button
	refreshBtn      *widget.Button
	previewBtn      *widget.Button
	applyBtn        *widget.Button
	reportBtn       *widget.Button

	table *widget.Table
	rows  planner.Plan

	// last apply, kept for "Save report…"
	lastFolder string
	lastResult planner.Result
}

func main() {
	cfg := config.Default()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	a := app.NewWithID(cfg.AppID)
	w := a.NewWindow(cfg.Title)
	w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	w.SetFixedSize(true)

	// the front ends pass absolute paths, so the filesystem is rooted at /
	fsys := osfs.New("/")
	sess := session.New(
		scanner.New(fsys, scanner.WithLogger(logger)),
		planner.NewApplier(fsys, planner.WithLogger(logger)),
		session.WithLogger(logger),
	)

	ui := newRenamerUI(w, cfg, sess, logger)
	w.SetContent(ui.content())
	w.ShowAndRun()
}

func newRenamerUI(w fyne.Window, cfg *config.Config, sess *session.Session, logger *slog.Logger) *renamerUI {
	u := &renamerUI{
		win:    w,
		cfg:    cfg,
		sess:   sess,
		logger: logging.OrDiscard(logger).With("component", "gui"),
	}

	u.folderLabel = widget.NewLabel("No folder selected")
	u.folderLabel.Truncation = fyne.TextTruncateEllipsis

	u.oldPrefix = widget.NewEntry()
	u.oldPrefix.SetPlaceHolder("e.g. img_")
	u.newPrefix = widget.NewEntry()
	u.newPrefix.SetPlaceHolder("e.g. photo")
	u.separator = widget.NewEntry()
	u.separator.SetPlaceHolder("e.g. -")

	u.selectFolderBtn = widget.NewButton("Select Folder", u.selectFolder)
	u.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), u.refresh)
	u.previewBtn = widget.NewButton("Preview", u.preview)
	u.applyBtn = widget.NewButtonWithIcon("Apply Rename", theme.ConfirmIcon(), u.apply)
	u.reportBtn = widget.NewButtonWithIcon("Save report…", theme.DocumentSaveIcon(), u.saveReport)
	u.reportBtn.Disable()

	u.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(u.rows), 2 },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(u.cellText(id))
		},
	)
	u.table.ShowHeaderColumn = false
	u.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	u.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		o.(*widget.Label).SetText(headerText(id.Col))
	}
	u.table.SetColumnWidth(0, cfg.ColumnWidth)
	u.table.SetColumnWidth(1, cfg.ColumnWidth)

	return u
}

/* -------------------- Layout -------------------- */

func (u *renamerUI) content() fyne.CanvasObject {
	top := container.NewBorder(nil, nil,
		container.NewHBox(u.selectFolderBtn, u.refreshBtn),
		nil,
		u.folderLabel,
	)

	opts := container.NewGridWithColumns(4,
		widget.NewLabel("Old Prefix:"), u.oldPrefix,
		widget.NewLabel("New Prefix:"), u.newPrefix,
		widget.NewLabel("Separator:"), u.separator,
		widget.NewLabel(""), u.previewBtn,
	)

	bottom := container.NewBorder(nil, nil, u.reportBtn, u.applyBtn)

	return container.NewBorder(
		container.NewVBox(top, widget.NewSeparator(), opts, widget.NewSeparator()),
		bottom,
		nil, nil,
		u.table,
	)
}

func headerText(col int) string {
	switch col {
	case 0:
		return "Original Name"
	case 1:
		return "New Name"
	}
	return ""
}

func (u *renamerUI) cellText(id widget.TableCellID) string {
	if id.Row < 0 || id.Row >= len(u.rows) {
		return ""
	}
	e := u.rows[id.Row]
	if id.Col == 0 {
		return e.Original
	}
	return e.Proposed
}

func (u *renamerUI) setRows(plan planner.Plan) {
	u.rows = plan
	u.table.Refresh()
}

/* -------------------- Actions -------------------- */

func (u *renamerUI) selectFolder() {
	dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, u.win)
			return
		}
		if uri == nil {
			// cancelled
			return
		}
		u.loadFolder(uri.Path())
	}, u.win).Show()
}

func (u *renamerUI) loadFolder(path string) {
	if err := u.sess.SelectFolder(path); err != nil {
		u.logger.Warn("folder selection failed", "folder", path, "error", err)
		dialog.ShowError(err, u.win)
		return
	}
	u.folderLabel.SetText(u.sess.Folder())
	u.setRows(nil)
}

func (u *renamerUI) refresh() {
	if u.sess.Folder() == "" {
		return
	}
	if err := u.sess.Refresh(); err != nil {
		dialog.ShowError(err, u.win)
		return
	}
	u.setRows(nil)
}

func (u *renamerUI) params() planner.Params {
	return planner.Params{
		OldPrefix: u.oldPrefix.Text,
		NewPrefix: u.newPrefix.Text,
		Separator: u.separator.Text,
	}
}

func (u *renamerUI) preview() {
	u.setRows(nil)

	plan, err := u.sess.Preview(u.params())
	if err != nil {
		if apperr.HasCode(err, apperr.CodeInvalidInput) {
			dialog.ShowInformation("Warning", "Old prefix is required", u.win)
			return
		}
		dialog.ShowError(err, u.win)
		return
	}
	u.setRows(plan)
}

func (u *renamerUI) apply() {
	if len(u.sess.Plan()) == 0 {
		return
	}

	folder := u.sess.Folder()
	res, err := u.sess.Apply()
	u.lastFolder, u.lastResult = folder, res
	if len(res.Items) > 0 {
		u.reportBtn.Enable()
	}
	u.setRows(nil)

	dialog.ShowInformation("Done", buildResultMessage(res), u.win)
	if err != nil {
		dialog.ShowError(err, u.win)
	}
}

func (u *renamerUI) saveReport() {
	if len(u.lastResult.Items) == 0 {
		return
	}

	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.win)
			return
		}
		if uc == nil {
			return
		}
		defer uc.Close()

		if err := report.Write(uc, u.lastFolder, u.lastResult); err != nil {
			dialog.ShowError(err, u.win)
			return
		}
		u.logger.Info("report saved", "path", uc.URI().Path())
	}, u.win)
	d.SetFileName(report.DefaultFileName(time.Now().Format("20060102_150405")))
	d.Show()
}

/* -------------------- Messages -------------------- */

const maxListedFailures = 20

func buildResultMessage(res planner.Result) string {
	failures := res.Failures()
	if len(failures) == 0 {
		return "Files renamed successfully"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Renamed: %d\nFailed: %d\n\n", res.Renamed(), len(failures)))
	for _, it := range firstN(failures, maxListedFailures) {
		b.WriteString(fmt.Sprintf(" - %s → %s: %s\n", it.Original, it.Proposed, it.Reason))
	}
	if len(failures) > maxListedFailures {
		b.WriteString(fmt.Sprintf(" ... and %d more\n", len(failures)-maxListedFailures))
	}
	return b.String()
}

func firstN[T any](in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
