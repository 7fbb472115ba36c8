package tui

import (
	"errors"

	"portfolio-term/internal/term"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 退出时的状态。
type Result struct {
	Transcript []term.Entry
	History    []string
	SessionID  string
}

// Run 封装 Bubble Tea 入口，返回最终的 UI 结果。
func Run(opts Options) (Result, error) {
	programOptions := []tea.ProgramOption{}
	if !opts.Inline {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	if opts.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{
		Transcript: tuiModel.Transcript(),
		History:    tuiModel.History(),
		SessionID:  tuiModel.SessionID(),
	}, nil
}
