package tui

import (
	"fmt"
	"strings"

	"portfolio-term/internal/logger"
	"portfolio-term/internal/term"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Options 描述启动终端界面所需的依赖。
type Options struct {
	Prompt      term.Prompt
	Interpreter *term.Interpreter
	Inline      bool
	Mouse       bool
	Log         *logger.LogEntry
	// Clipboard 为空时使用系统剪贴板。
	Clipboard func(string) error
}

// Model is the Bubble Tea model hosting one term.Session.
type Model struct {
	session   *term.Session
	input     textinput.Model
	viewport  transcriptViewport
	help      help.Model
	keys      keyMap
	prompt    term.Prompt
	log       *logger.LogEntry
	sessionID string
	copy      copyFunc
	status    string
	width     int
	height    int
	dirty     bool
}

func New(opts Options) *Model {
	prompt := opts.Prompt
	if prompt == (term.Prompt{}) {
		prompt = term.DefaultPrompt
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 80
	ti.Focus()

	sessionID := uuid.NewString()
	log := opts.Log
	if log == nil {
		log = logger.Named("tui")
	}
	log = log.WithField("session", sessionID)

	cp := copyFunc(opts.Clipboard)
	if cp == nil {
		cp = systemClipboard
	}

	m := &Model{
		session:   term.NewSession(opts.Interpreter),
		input:     ti,
		viewport:  newTranscriptViewport(80, 20),
		help:      help.New(),
		keys:      defaultKeyMap(),
		prompt:    prompt,
		log:       log,
		sessionID: sessionID,
		copy:      cp,
		width:     80,
		height:    24,
		dirty:     true,
	}
	m.log.Info("session started")
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.viewport.ScrollDown(3)
		default:
			// 点击终端任意位置都把焦点交还输入框。
			if msg.Action == tea.MouseActionPress {
				cmds = append(cmds, m.focus())
			}
		}
		return m.finish(cmds...)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("session closed")
			return m, tea.Quit
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.PageUp()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.PageDown()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Blur):
			m.input.Blur()
			return m.finish(cmds...)
		}
		if !m.input.Focused() {
			cmds = append(cmds, m.focus())
		}
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Prev):
			if m.session.RecallPrevious() {
				m.syncInput()
				m.log.WithField("cursor", m.session.Cursor()).Debug("recall previous")
			}
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Next):
			m.session.RecallNext()
			m.syncInput()
			m.log.WithField("cursor", m.session.Cursor()).Debug("recall next")
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Complete):
			m.completeInput()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Copy):
			m.copyLast()
			return m.finish(cmds...)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Input() {
		m.session.SetInput(m.input.Value())
		m.status = ""
	}
	cmds = append(cmds, cmd)
	return m.finish(cmds...)
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	if m.dirty {
		m.viewport.SetLines(renderTranscript(m.prompt, m.session.Transcript(), m.viewport.Width))
		m.dirty = false
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	line := renderPrompt(m.prompt) + " " + m.input.View()
	footer := hintStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), line, footer)
}

func (m *Model) submit() {
	raw := m.session.Input()
	res, ok := m.session.Submit()
	if !ok {
		return
	}
	m.input.SetValue("")
	m.status = ""
	m.dirty = true
	if res.Action == term.ActionClear {
		m.viewport.GotoTop()
	} else {
		m.viewport.GotoBottom()
	}
	m.log.WithFields(logger.Fields{
		"cmd":    raw,
		"action": res.Action.String(),
		"known":  m.session.Interpreter().Known(raw),
	}).Info("submit")
}

func (m *Model) syncInput() {
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

func (m *Model) completeInput() {
	res := complete(m.session.Input(), m.session.Interpreter().Names())
	if res.Value != m.session.Input() {
		m.session.SetInput(res.Value)
		m.syncInput()
	}
	switch len(res.Candidates) {
	case 0:
		m.status = "no matching command"
	case 1:
		m.status = ""
	default:
		m.status = strings.Join(res.Candidates, "  ")
	}
}

func (m *Model) copyLast() {
	entries := m.session.Transcript()
	for i := len(entries) - 1; i >= 0; i-- {
		text := entries[i].Description
		if text == "" {
			continue
		}
		if err := m.copy(text); err != nil {
			m.log.Warnf("clipboard write failed: %v", err)
			m.status = fmt.Sprintf("clipboard: %v", err)
			return
		}
		m.status = "copied: " + text
		return
	}
	m.status = "nothing to copy"
}

func (m *Model) focus() tea.Cmd {
	if m.input.Focused() {
		return nil
	}
	return m.input.Focus()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	viewHeight := height - 2 // input line + footer
	if viewHeight < 1 {
		viewHeight = 1
	}
	m.viewport.Resize(width, viewHeight)
	inputWidth := width - lipgloss.Width(renderPrompt(m.prompt)) - 2
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.Width = inputWidth
	m.help.Width = width
	m.dirty = true
}

// Transcript returns a copy of the transcript shown on screen.
func (m *Model) Transcript() []term.Entry {
	return m.session.Transcript()
}

// History returns the submitted commands, oldest first.
func (m *Model) History() []string {
	return m.session.History()
}

func (m *Model) SessionID() string {
	return m.sessionID
}
