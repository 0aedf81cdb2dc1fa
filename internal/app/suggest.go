package app

import "github.com/sahilm/fuzzy"

// MaxSuggestions bounds the number of nearest versions offered for an unknown version.
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions candidates closest to version, best first.
func Suggest(version string, candidates []string) []string {
	if version == "" || len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(version, candidates)
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
