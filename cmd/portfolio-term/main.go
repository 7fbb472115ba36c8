package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"portfolio-term/internal/config"
	"portfolio-term/internal/logger"
	"portfolio-term/internal/term"
	"portfolio-term/internal/tui"
)

func main() {
	logger.Configure()

	root, rest, err := parseRootArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	cfg, err := config.Load(root.configPath)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)
	if root.inline {
		cfg.UI.Inline = true
	}
	if root.logPath != "" {
		cfg.Log.Path = root.logPath
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		logger.Warnf("ignoring log level: %v", err)
	}

	if len(rest) > 0 {
		switch rest[0] {
		case "exec":
			os.Exit(execMain(cfg, rest[1:], os.Stdin, os.Stdout, os.Stderr))
		case "completion":
			os.Exit(completionMain(rest[1:], os.Stdout, os.Stderr))
		case "config":
			os.Exit(configMain(cfg, rest[1:], os.Stdout, os.Stderr))
		}
	}
	runInteractive(cfg)
}

func runInteractive(cfg config.Config) {
	// TUI 占用终端，日志必须写到文件；打不开时直接丢弃。
	if logFile, _, err := logger.SetupFile(cfg.Log.Path); err != nil {
		logger.Discard()
	} else {
		defer logFile.Close()
	}

	res, err := tui.Run(tui.Options{
		Prompt:      promptFromConfig(cfg),
		Interpreter: term.NewInterpreter(),
		Inline:      cfg.UI.Inline,
		Mouse:       cfg.UI.Mouse,
		Log:         logger.Named("tui"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "program exit: %v\n", err)
		os.Exit(1)
	}
	logger.Infof("session %s ended after %d commands", res.SessionID, len(res.History))
}

func promptFromConfig(cfg config.Config) term.Prompt {
	p := term.DefaultPrompt
	if cfg.Prompt.User != "" {
		p.User = cfg.Prompt.User
	}
	if cfg.Prompt.Host != "" {
		p.Host = cfg.Prompt.Host
	}
	if cfg.Prompt.Dir != "" {
		p.Dir = cfg.Prompt.Dir
	}
	return p
}
