package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"PrefixRenUtil/internal/apperr"
	"PrefixRenUtil/internal/config"
	"PrefixRenUtil/internal/logging"
	"PrefixRenUtil/internal/planner"
	"PrefixRenUtil/internal/session"
)

type mode int

const (
	modePick mode = iota
	modeEdit
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

const (
	fieldOld = iota
	fieldNew
	fieldSep
	fieldCount
)

const columnWidth = 36

var ui = struct {
	title  lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	base   lipgloss.Style
	info   lipgloss.Style
	warn   lipgloss.Style
	danger lipgloss.Style
}{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 1),
	label:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	base:   lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
	info:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	danger: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

type model struct {
	cfg    *config.Config
	sess   *session.Session
	logger *slog.Logger

	mode   mode
	picker filepicker.Model
	inputs [fieldCount]textinput.Model
	focus  int
	table  table.Model
	keys   keyMap
	help   help.Model

	status     string
	statusKind statusKind
}

func newModel(cfg *config.Config, sess *session.Session, logger *slog.Logger, startDir string) model {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = cfg.TableHeight
	fp.CurrentDirectory = startDir

	var inputs [fieldCount]textinput.Model
	for i, f := range []struct{ prompt, placeholder string }{
		{"Old Prefix: ", "img_"},
		{"New Prefix: ", "photo"},
		{"Separator:  ", "-"},
	} {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.PromptStyle = ui.label
		ti.Placeholder = f.placeholder
		ti.CharLimit = 255
		inputs[i] = ti
	}
	inputs[fieldOld].Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Original Name", Width: columnWidth},
			{Title: "New Name", Width: columnWidth},
		}),
		table.WithHeight(cfg.TableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return model{
		cfg:    cfg,
		sess:   sess,
		logger: logging.OrDiscard(logger).With("component", "tui"),
		mode:   modePick,
		picker: fp,
		inputs: inputs,
		table:  t,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
		return m, tea.Quit
	}
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = ws.Width
	}

	if m.mode == modePick {
		return m.updatePicker(msg)
	}
	return m.updateEdit(msg)
}

func (m model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			// cancelling keeps whatever was selected before
			if m.sess.Folder() != "" {
				m.mode = modeEdit
			}
			return m, nil
		case key.Matches(k, m.keys.UseDir):
			m.loadFolder(m.picker.CurrentDirectory)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.loadFolder(path)
	}
	return m, cmd
}

func (m model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Open):
			m.mode = modePick
			if f := m.sess.Folder(); f != "" {
				m.picker.CurrentDirectory = f
			}
			return m, m.picker.Init()
		case key.Matches(k, m.keys.Next):
			return m, m.focusField(m.focus + 1)
		case key.Matches(k, m.keys.Prev):
			return m, m.focusField(m.focus - 1)
		case key.Matches(k, m.keys.Preview):
			m.preview()
			return m, nil
		case key.Matches(k, m.keys.Apply):
			m.apply()
			return m, nil
		case key.Matches(k, m.keys.Refresh):
			m.refresh()
			return m, nil
		case key.Matches(k, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(k, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m *model) setStatus(kind statusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

func (m *model) params() planner.Params {
	return planner.Params{
		OldPrefix: m.inputs[fieldOld].Value(),
		NewPrefix: m.inputs[fieldNew].Value(),
		Separator: m.inputs[fieldSep].Value(),
	}
}

func (m *model) loadFolder(path string) {
	if err := m.sess.SelectFolder(path); err != nil {
		m.logger.Warn("folder selection failed", "folder", path, "error", err)
		m.setStatus(statusError, "%v", err)
		return
	}
	m.mode = modeEdit
	m.table.SetRows(nil)
	m.setStatus(statusInfo, "%d files in %s", len(m.sess.Entries()), path)
}

func (m *model) refresh() {
	if err := m.sess.Refresh(); err != nil {
		m.setStatus(statusError, "%v", err)
		return
	}
	m.table.SetRows(nil)
	m.setStatus(statusInfo, "%d files in %s", len(m.sess.Entries()), m.sess.Folder())
}

func (m *model) preview() {
	m.table.SetRows(nil)

	plan, err := m.sess.Preview(m.params())
	if err != nil {
		if apperr.HasCode(err, apperr.CodeInvalidInput) {
			m.setStatus(statusWarn, "Old prefix is required")
			return
		}
		m.setStatus(statusError, "%v", err)
		return
	}

	rows := make([]table.Row, 0, len(plan))
	for _, e := range plan {
		rows = append(rows, table.Row{e.Original, e.Proposed})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	m.setStatus(statusInfo, "Preview: %d file(s) to rename. Press ctrl+s to apply.", len(plan))
}

func (m *model) apply() {
	if len(m.sess.Plan()) == 0 {
		return
	}

	res, err := m.sess.Apply()
	m.table.SetRows(nil)

	switch {
	case err != nil:
		m.setStatus(statusError, "Done, but rescanning failed: %v", err)
	case res.Failed() > 0:
		m.setStatus(statusWarn, "Done. Renamed %d, failed %d: %v", res.Renamed(), res.Failed(), res.Err())
	default:
		m.setStatus(statusInfo, "Files renamed successfully")
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(ui.title.Render(m.cfg.Title))
	b.WriteString("\n\n")

	if m.mode == modePick {
		b.WriteString(ui.label.Render("Select Folder") + " " + ui.muted.Render(m.picker.CurrentDirectory))
		b.WriteString("\n\n")
		b.WriteString(m.picker.View())
	} else {
		folder := m.sess.Folder()
		b.WriteString(ui.label.Render("Folder") + " " + folder)
		b.WriteString("\n\n")
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(ui.base.Render(m.table.View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.statusStyle().Render(m.status))
		b.WriteString("\n")
	}

	keys := m.keys.editHelp()
	if m.mode == modePick {
		keys = m.keys.pickHelp()
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case statusWarn:
		return ui.warn
	case statusError:
		return ui.danger
	}
	return ui.info
}
