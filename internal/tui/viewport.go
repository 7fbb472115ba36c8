package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// transcriptViewport 包装 bubbles viewport：内容不变时跳过重排，位于底部时跟随新行。
type transcriptViewport struct {
	viewport.Model
	lastLines []string
}

func newTranscriptViewport(width, height int) transcriptViewport {
	return transcriptViewport{Model: viewport.New(width, height)}
}

// Resize 更新宽高；宽度变化时丢弃缓存以便重新换行。
func (v *transcriptViewport) Resize(width, height int) {
	if v.Width != width {
		v.lastLines = nil
	}
	v.Width = width
	v.Height = height
}

// SetLines 更新内容，之前停在底部时保持贴底。
func (v *transcriptViewport) SetLines(lines []string) {
	if v.lastLines != nil && slices.Equal(lines, v.lastLines) {
		return
	}
	stickToBottom := v.AtBottom()
	v.lastLines = append([]string{}, lines...)
	v.SetContent(strings.Join(lines, "\n"))
	if stickToBottom {
		v.GotoBottom()
	}
}
