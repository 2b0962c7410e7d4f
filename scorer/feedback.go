package scorer

import (
	"strings"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go/scoring"

	"github.com/pivotal-cf/cred-wordlist/wordset"
)

const (
	strongScore       = 3
	recommendedLength = 12

	// shorter context tokens match too much to be worth reporting
	minContextTokenLen = 3
)

var patternAdvice = map[string]struct {
	warning    string
	suggestion string
}{
	"dictionary": {"This is similar to a commonly used password", "Avoid common words and predictable substitutions like '@' for 'a'"},
	"spatial":    {"Straight rows of keys are easy to guess", "Use a longer keyboard pattern with more turns"},
	"repeat":     {"Repeats like \"aaa\" are easy to guess", "Avoid repeated words and characters"},
	"sequence":   {"Sequences like abc or 6543 are easy to guess", "Avoid sequences"},
	"date":       {"Dates are often easy to guess", "Avoid dates and years that are associated with you"},
}

func feedbackFor(password string, contextTokens []string, match scoring.MinEntropyMatch) Feedback {
	var warning string
	suggestions := wordset.New(0)

	if containsContextToken(password, contextTokens) {
		warning = "Contains personal information such as a name or date"
		suggestions.Add("Avoid names, dates and other details connected to you")
	}

	for _, m := range match.MatchSequence {
		advice, ok := patternAdvice[m.Pattern]
		if !ok {
			continue
		}

		if warning == "" {
			warning = advice.warning
		}
		suggestions.Add(advice.suggestion)
	}

	if match.Score < strongScore {
		suggestions.Add("Add another word or two. Uncommon words are better")
	}

	if utf8.RuneCountInString(password) < recommendedLength {
		suggestions.Add("Use a longer password")
	}

	if match.Score >= strongScore && warning == "" {
		return Feedback{Suggestions: []string{}}
	}

	return Feedback{
		Warning:     warning,
		Suggestions: suggestions.Slice(),
	}
}

func containsContextToken(password string, contextTokens []string) bool {
	lowered := strings.ToLower(password)

	for _, token := range contextTokens {
		if utf8.RuneCountInString(token) < minContextTokenLen {
			continue
		}

		if strings.Contains(lowered, strings.ToLower(token)) {
			return true
		}
	}

	return false
}
