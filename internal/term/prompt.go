package term

import (
	"fmt"
	"io"
)

// Prompt is the user@host:dir$ marker printed before every command line.
type Prompt struct {
	User string
	Host string
	Dir  string
}

// DefaultPrompt renders as arul@portfolio:~$.
var DefaultPrompt = Prompt{User: "arul", Host: "portfolio", Dir: "~"}

func (p Prompt) String() string {
	return fmt.Sprintf("%s@%s:%s$", p.User, p.Host, p.Dir)
}

// WriteTranscript prints entries as plain text: the prompt line followed by
// the response line.
func WriteTranscript(w io.Writer, p Prompt, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %s\n%s\n", p, e.Name, e.Description); err != nil {
			return err
		}
	}
	return nil
}
