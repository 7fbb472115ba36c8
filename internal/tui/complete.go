package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// completion is the outcome of a tab press.
type completion struct {
	Value      string
	Candidates []string
}

// complete ranks names against input. A single match replaces the input;
// several matches extend it to their common prefix when that is longer.
func complete(input string, names []string) completion {
	if input == "" {
		return completion{Value: input, Candidates: append([]string(nil), names...)}
	}
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return completion{Value: input}
	}
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.Str)
	}
	if len(candidates) == 1 {
		return completion{Value: candidates[0], Candidates: candidates}
	}
	prefix := commonPrefix(candidates)
	if len(prefix) > len(input) && strings.HasPrefix(prefix, input) {
		return completion{Value: prefix, Candidates: candidates}
	}
	return completion{Value: input, Candidates: candidates}
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
