package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Unknown keys and malformed pairs are ignored.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "prompt.user":
			cfg.Prompt.User = val
		case "prompt.host":
			cfg.Prompt.Host = val
		case "prompt.dir":
			cfg.Prompt.Dir = val
		case "log.path":
			cfg.Log.Path = val
		case "log.level":
			cfg.Log.Level = val
		case "ui.inline":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.UI.Inline = b
			}
		case "ui.mouse":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.UI.Mouse = b
			}
		}
	}
	return cfg
}
