package main

import (
	"flag"
	"io"
)

type rootArgs struct {
	configPath string
	overrides  []string
	inline     bool
	logPath    string
}

func parseRootArgs(args []string, stderr io.Writer) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("portfolio-term", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var root rootArgs
	var overrides stringSlice
	fs.StringVar(&root.configPath, "config", "", "Path to config.toml (default ~/.portfolio-term/config.toml)")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	fs.BoolVar(&root.inline, "inline", false, "Render in the normal screen buffer instead of the alternate screen")
	fs.StringVar(&root.logPath, "log", "", "Log file path (overrides log.path)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	root.overrides = append([]string{}, overrides...)
	return root, fs.Args(), nil
}
