// Package triage decides whether a message signals a crisis and, if not,
// which topic it is about. Classification is lexical: lowercase substring
// matching against fixed phrase lists, no NLU.
package triage

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicons holds the phrase lists the pipeline matches against. Loaded once
// at startup and treated as read-only afterwards.
type Lexicons struct {
	Crisis []string `yaml:"crisis"`
	Stress []string `yaml:"stress"`
	Sleep  []string `yaml:"sleep"`
}

// DefaultLexicons returns the built-in bilingual phrase lists.
func DefaultLexicons() Lexicons {
	return Lexicons{
		Crisis: []string{
			"tự tử", "muốn chết", "không muốn sống", "tự làm hại",
			"đau khổ quá", "chết", "kết thúc tất cả", "không còn hy vọng",
			"suicide", "kill myself", "end it all", "no hope",
		},
		Stress: []string{
			"căng thẳng", "áp lực", "stress", "lo lắng", "bức bối",
			"lo âu", "bồn chồn", "khó chịu", "mệt mỏi", "kiệt sức",
		},
		Sleep: []string{
			"mất ngủ", "khó ngủ", "ngủ không ngon", "thức giấc",
			"ngủ", "giấc ngủ", "buồn ngủ", "ngáy", "ác mộng",
		},
	}
}

// LoadLexicons reads phrase lists from a YAML file. Lists missing from the
// file keep their built-in defaults. An empty path returns the defaults.
func LoadLexicons(path string) (Lexicons, error) {
	lex := DefaultLexicons()
	if path == "" {
		return lex, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return lex, err
	}
	var override Lexicons
	if err := yaml.Unmarshal(data, &override); err != nil {
		return lex, err
	}
	if len(override.Crisis) > 0 {
		lex.Crisis = override.Crisis
	}
	if len(override.Stress) > 0 {
		lex.Stress = override.Stress
	}
	if len(override.Sleep) > 0 {
		lex.Sleep = override.Sleep
	}
	return lex, nil
}

// ContainsAny reports whether the message contains any lexicon phrase as a
// case-insensitive substring. Stops at the first hit.
func ContainsAny(message string, lexicon []string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range lexicon {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// countMatches counts distinct lexicon phrases present in the lowered
// message. A phrase counts at most once however often it recurs.
func countMatches(lower string, lexicon []string) int {
	count := 0
	for _, phrase := range lexicon {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}
