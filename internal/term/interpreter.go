package term

import (
	"sort"
	"time"
)

// DateLayout renders timestamps for the date command.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// NotFound is the description produced for unrecognised input.
const NotFound = "Command not found"

// Action tells the session how to apply an interpreted command.
type Action int

const (
	ActionAppend Action = iota
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Result is the outcome of interpreting one line.
type Result struct {
	Entry  Entry
	Action Action
}

// Handler produces the description for a recognised command.
type Handler func(now time.Time) string

// Static returns a handler that always answers text.
func Static(text string) Handler {
	return func(time.Time) string { return text }
}

// Interpreter maps a whole input line to a transcript entry.
// Lookup is exact and case-sensitive; the line is never tokenised.
type Interpreter struct {
	handlers map[string]Handler
	clear    map[string]struct{}
	clock    func() time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock overrides the time source used by the date command.
func WithClock(clock func() time.Time) Option {
	return func(in *Interpreter) {
		if clock != nil {
			in.clock = clock
		}
	}
}

// WithCommand registers or replaces a command.
func WithCommand(name string, h Handler) Option {
	return func(in *Interpreter) {
		if h == nil {
			return
		}
		delete(in.clear, name)
		in.handlers[name] = h
	}
}

// NewInterpreter builds the portfolio command table.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		handlers: map[string]Handler{
			"whoami":   Static("Arulmozhikumar"),
			"about":    Static("Associate Software Engineer @Presidio"),
			"projects": Static("Fullstack Developer"),
			"skills":   Static("JavaScript, TypeScript, React, Node.js, PostgreSQL, Git, HTML, CSS"),
			"web":      Static("https://www.arulmozhikumar.online"),
			"help":     Static("Available commands: whoami, about, projects, date, clear, help, web"),
			// youtube has no content yet; it prints a blank response line.
			"youtube": Static(""),
			"date": func(now time.Time) string {
				return now.Format(DateLayout)
			},
		},
		clear: map[string]struct{}{"clear": {}},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Interpret resolves raw against the command table. Unknown input is not an
// error: it yields a NotFound entry named after the verbatim input.
func (in *Interpreter) Interpret(raw string) Result {
	if _, ok := in.clear[raw]; ok {
		return Result{Entry: Entry{Name: raw}, Action: ActionClear}
	}
	h, ok := in.handlers[raw]
	if !ok {
		return Result{Entry: Entry{Name: raw, Description: NotFound}, Action: ActionAppend}
	}
	return Result{Entry: Entry{Name: raw, Description: h(in.clock())}, Action: ActionAppend}
}

// Known reports whether name is a recognised command.
func (in *Interpreter) Known(name string) bool {
	if _, ok := in.clear[name]; ok {
		return true
	}
	_, ok := in.handlers[name]
	return ok
}

// Names returns every recognised command, sorted.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(in.handlers)+len(in.clear))
	for name := range in.handlers {
		names = append(names, name)
	}
	for name := range in.clear {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
