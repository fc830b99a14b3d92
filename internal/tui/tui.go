// Package tui is the interactive template tuner behind "wintitle tune".
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wintitle/internal/config"
	"wintitle/internal/pathdisplay"
	"wintitle/internal/title"
	"wintitle/internal/tui/state"
	"wintitle/internal/tui/util"
	"wintitle/internal/tui/widgets/diff"
	"wintitle/internal/tui/widgets/editor"
	"wintitle/internal/tui/widgets/helpoverlay"
	"wintitle/internal/tui/widgets/statusbar"
	"wintitle/internal/tui/widgets/tagchips"
)

// Options seeds the tuner.
type Options struct {
	Settings     config.Settings
	SettingsPath string
	// Sample is previewed; Window supplies its folders/project.
	Sample  title.Document
	Window  title.Window
	HomeDir string
	NoColor bool
}

// Result reports what happened in the session.
type Result struct {
	Template string
	Saved    bool
}

// Run shows the tuner until the user quits.
func Run(opts Options) (Result, error) {
	m := newModel(opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return Result{}, err
	}
	return Result{Template: m.input.Value(), Saved: m.saved}, nil
}

// ===== Model =====

type model struct {
	opts     Options
	settings config.Settings
	input    textinput.Model
	ui       state.UIState
	saved    bool

	// swapped in tests
	copyText func(string) error
	save     func(path string, s config.Settings) error
}

func newModel(opts Options) model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "{path}{is_dirty}{has_project}"
	in.SetValue(opts.Settings.Template)
	in.CharLimit = 512

	return model{
		opts:     opts,
		settings: opts.Settings,
		input:    in,
		ui: state.UIState{
			Dirty:      opts.Sample.Dirty,
			HasProject: title.Project(&opts.Window) != "",
			PathMode:   opts.Settings.Mode(),
			MinCol:     20,
		},
		copyText: clipboard.WriteAll,
		save:     config.Save,
	}
}

func (m *model) Init() tea.Cmd { return nil }

// current returns the settings as edited in this session.
func (m *model) current() config.Settings {
	s := m.settings
	s.Template = m.input.Value()
	s.PathDisplay = string(m.ui.PathMode)
	return s
}

// titles previews the sample document under the current settings.
func (m *model) titles() title.Titles {
	doc := m.opts.Sample
	doc.Dirty = m.ui.Dirty
	var w *title.Window
	if m.ui.HasProject {
		win := m.opts.Window
		w = &win
	}
	return title.Compute(doc, w, m.current(), m.opts.HomeDir)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width)
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if m.ui.Mode == state.INSERT {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.input.Blur()
				m.ui = state.ToggleMode(m.ui)
				m.ui.Edited = m.input.Value() != m.settings.Template
				return m, nil
			case tea.KeyCtrlC:
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.ui.Edited = m.input.Value() != m.settings.Template
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "i":
			m.ui = state.ToggleMode(m.ui)
			return m, m.input.Focus()
		case "d":
			m.ui = state.ToggleDirty(m.ui)
		case "p":
			m.ui = state.ToggleProject(m.ui)
		case "m":
			m.ui = state.CyclePathMode(m.ui)
		case "v":
			m.ui = state.ToggleView(m.ui)
			if m.ui.Width > 0 {
				m.ui = state.Resize(m.ui, m.ui.Width)
			}
		case "?":
			m.ui = state.ToggleHelp(m.ui)
		case "y":
			if err := m.copyText(m.titles().Desired); err != nil {
				m.ui.Notice = "! copy failed: " + err.Error()
			} else {
				m.ui.Notice = "copied custom title"
			}
		case "s":
			m.saveSettings()
		}
	}
	return m, nil
}

func (m *model) saveSettings() {
	if m.opts.SettingsPath == "" {
		m.ui.Notice = "! no settings path"
		return
	}
	s := m.current()
	if err := m.save(m.opts.SettingsPath, s); err != nil {
		m.ui.Notice = "! save failed: " + err.Error()
		return
	}
	m.settings = s
	m.saved = true
	m.ui.Edited = false
	m.ui.Notice = "saved " + m.opts.SettingsPath
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	if m.ui.ShowHelp {
		return helpoverlay.NewHelpOverlay().View(m.ui)
	}
	t := m.titles()
	official, desired := util.DefaultPalette().TitleStyles()
	desired = desired.Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("wintitle tune") + "  " + faintStyle.Render(m.sampleLabel()) + "\n\n")
	b.WriteString(editor.NewEditor().View(m.ui, m.input.View()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Editor: %s\n", official.Render(t.Official))
	fmt.Fprintf(&b, "Custom: %s\n", desired.Render(t.Desired))
	b.WriteString(tagchips.View(util.ComputeTags(m.input.Value(), t.Desired, m.ui), m.opts.NoColor) + "\n\n")
	b.WriteString(diff.NewDiffView(m.opts.NoColor).View(m.ui, t.Official, t.Desired))
	b.WriteString("\n" + faintStyle.Render(statusbar.NewStatusBar().View(m.ui)) + "\n")
	b.WriteString(faintStyle.Render("i: edit  d: dirty  p: project  m: path  v: view  y: copy  s: save  ?: help  q: quit") + "\n")
	return b.String()
}

func (m *model) sampleLabel() string {
	name := m.opts.Sample.FileName
	if m.opts.Sample.Name != "" {
		name = m.opts.Sample.Name
	}
	if name == "" {
		name = m.settings.UntitledLabel()
	}
	return pathdisplay.Resolve(name, "", pathdisplay.Full, m.opts.HomeDir, name)
}
