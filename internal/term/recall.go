package term

// Recall 负责已提交命令的上下箭头回溯状态。
// cursor == len(entries) 表示不在浏览历史（哨兵位置）。
type Recall struct {
	entries []string
	cursor  int
}

// Add 追加一条原始命令并把游标复位到哨兵。
func (r *Recall) Add(raw string) {
	r.entries = append(r.entries, raw)
	r.cursor = len(r.entries)
}

// Prev 向更早的记录移动。日志为空或已在最早一条时不做任何事。
func (r *Recall) Prev() (string, bool) {
	if len(r.entries) == 0 || r.cursor <= 0 {
		return "", false
	}
	if r.cursor > len(r.entries) {
		r.cursor = len(r.entries)
	}
	r.cursor--
	return r.entries[r.cursor], true
}

// Next 向更新的记录移动；到达最后一条之后回到哨兵，返回空串让调用方清空输入。
func (r *Recall) Next() string {
	if r.cursor >= 0 && r.cursor < len(r.entries)-1 {
		r.cursor++
		return r.entries[r.cursor]
	}
	r.cursor = len(r.entries)
	return ""
}

// ResetBrowsing 把游标放回哨兵，日志保持不变。
func (r *Recall) ResetBrowsing() {
	r.cursor = len(r.entries)
}

// Browsing reports whether the cursor points at a recalled entry.
func (r *Recall) Browsing() bool {
	return r.cursor < len(r.entries)
}

func (r *Recall) Cursor() int {
	return r.cursor
}

func (r *Recall) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the log, oldest first.
func (r *Recall) Entries() []string {
	return append([]string(nil), r.entries...)
}
