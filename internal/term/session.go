package term

import "strings"

// Session is one mounted terminal: transcript, recall log and the input line.
// It is not safe for concurrent use; every transition runs inside a single
// input event.
type Session struct {
	interp     *Interpreter
	transcript []Entry
	recall     Recall
	input      string
}

// NewSession returns a session seeded with the greeting. A nil interpreter
// selects the default command table.
func NewSession(interp *Interpreter) *Session {
	if interp == nil {
		interp = NewInterpreter()
	}
	return &Session{
		interp:     interp,
		transcript: []Entry{Greeting},
	}
}

// Interpreter returns the command table backing the session.
func (s *Session) Interpreter() *Interpreter {
	return s.interp
}

// SetInput replaces the input line. The recall cursor is left where it is so
// an edited recalled line can still be navigated away from.
func (s *Session) SetInput(text string) {
	s.input = text
}

func (s *Session) Input() string {
	return s.input
}

// Submit interprets the current input. Blank input is ignored and reported
// as false with nothing changed. clear wipes the transcript and is not
// recorded in the recall log.
func (s *Session) Submit() (Result, bool) {
	raw := s.input
	if strings.TrimSpace(raw) == "" {
		return Result{}, false
	}
	res := s.interp.Interpret(raw)
	switch res.Action {
	case ActionClear:
		s.transcript = []Entry{}
		s.recall.ResetBrowsing()
	default:
		s.transcript = append(s.transcript, res.Entry)
		s.recall.Add(raw)
	}
	s.input = ""
	return res, true
}

// RecallPrevious loads the next older command into the input line.
func (s *Session) RecallPrevious() bool {
	text, ok := s.recall.Prev()
	if !ok {
		return false
	}
	s.input = text
	return true
}

// RecallNext loads the next newer command, or clears the input once the
// cursor walks past the newest one.
func (s *Session) RecallNext() {
	s.input = s.recall.Next()
}

// Transcript returns a copy of the transcript, oldest first.
func (s *Session) Transcript() []Entry {
	return append([]Entry{}, s.transcript...)
}

// History returns a copy of the recall log.
func (s *Session) History() []string {
	return s.recall.Entries()
}

// Cursor returns the recall cursor; it equals len(History()) when idle.
func (s *Session) Cursor() int {
	return s.recall.Cursor()
}

// Browsing reports whether the input currently holds a recalled command.
func (s *Session) Browsing() bool {
	return s.recall.Browsing()
}
