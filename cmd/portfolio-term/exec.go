package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"portfolio-term/internal/config"
	"portfolio-term/internal/logger"
	"portfolio-term/internal/term"

	"github.com/google/uuid"
)

type execArgs struct {
	greeting bool
	final    bool
	commands []string
}

func parseExecArgs(args []string, stderr io.Writer) (execArgs, error) {
	fs := flag.NewFlagSet("portfolio-term exec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var out execArgs
	fs.BoolVar(&out.greeting, "greeting", true, "Print the greeting before the first command")
	fs.BoolVar(&out.final, "final", false, "Print only the final transcript (honours clear)")
	if err := fs.Parse(args); err != nil {
		return execArgs{}, err
	}
	out.commands = fs.Args()
	return out, nil
}

// execMain runs commands from args, or one per stdin line, through a single
// session and prints the transcript as plain text.
func execMain(cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseExecArgs(args, stderr)
	if err != nil {
		return 2
	}
	log := logger.Named("exec").WithField("session", uuid.NewString())
	prompt := promptFromConfig(cfg)
	session := term.NewSession(term.NewInterpreter())

	if opts.greeting && !opts.final {
		if err := term.WriteTranscript(stdout, prompt, session.Transcript()); err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
	}

	cleared := false
	run := func(line string) error {
		session.SetInput(line)
		res, ok := session.Submit()
		if !ok {
			return nil
		}
		log.WithFields(logger.Fields{"cmd": line, "action": res.Action.String()}).Debug("submit")
		if res.Action == term.ActionClear {
			cleared = true
		}
		if opts.final || res.Action != term.ActionAppend {
			return nil
		}
		return term.WriteTranscript(stdout, prompt, []term.Entry{res.Entry})
	}

	if len(opts.commands) > 0 {
		for _, c := range opts.commands {
			if err := run(c); err != nil {
				fmt.Fprintf(stderr, "write: %v\n", err)
				return 1
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if err := run(strings.TrimRight(scanner.Text(), "\r")); err != nil {
				fmt.Fprintf(stderr, "write: %v\n", err)
				return 1
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "read stdin: %v\n", err)
			return 1
		}
	}

	if opts.final {
		entries := session.Transcript()
		if !opts.greeting && !cleared && len(entries) > 0 {
			entries = entries[1:]
		}
		if err := term.WriteTranscript(stdout, prompt, entries); err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
	}
	return 0
}
