package tui

import (
	"strings"

	"portfolio-term/internal/term"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	userHostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7A85")).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Padding(0, 1)
)

func renderPrompt(p term.Prompt) string {
	return userHostStyle.Render(p.User+"@"+p.Host) + ":" + dirStyle.Render(p.Dir) + "$"
}

// renderEntry 渲染一条记录：提示符加命令一行，响应换行显示，末尾留一空行。
func renderEntry(p term.Prompt, e term.Entry, width int) []string {
	prefix := renderPrompt(p) + " "
	prefixWidth := runewidth.StringWidth(p.String()) + 1

	lines := []string{}
	nameWidth := width - prefixWidth
	if nameWidth < 1 {
		nameWidth = width
	}
	indent := strings.Repeat(" ", prefixWidth)
	for i, line := range wrapText(e.Name, nameWidth) {
		if i == 0 {
			lines = append(lines, prefix+line)
			continue
		}
		lines = append(lines, indent+line)
	}
	lines = append(lines, wrapText(e.Description, width)...)
	lines = append(lines, "")
	return lines
}

func renderTranscript(p term.Prompt, entries []term.Entry, width int) []string {
	lines := []string{}
	for _, e := range entries {
		lines = append(lines, renderEntry(p, e, width)...)
	}
	return lines
}
