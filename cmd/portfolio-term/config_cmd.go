package main

import (
	"fmt"
	"io"

	"portfolio-term/internal/config"

	"github.com/pelletier/go-toml/v2"
)

// configMain handles `config init [path]` and `config show`.
func configMain(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: portfolio-term config init [path] | show")
		return 2
	}
	switch args[0] {
	case "init":
		path := cfg.Source
		if len(args) > 1 {
			path = args[1]
		}
		if err := config.Save(path, config.Default()); err != nil {
			fmt.Fprintf(stderr, "write config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return 0
	case "show":
		data, err := toml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "encode config: %v\n", err)
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown config action: %s\n", args[0])
		return 2
	}
}
