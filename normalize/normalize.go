package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/pivotal-cf/cred-wordlist/wordset"
)

// Normalize turns raw field input into base tokens: trimmed, stripped of all
// whitespace, NFC-composed and unique in first-seen order. Case is left alone.
func Normalize(raw RawInputSet) []string {
	tokens := wordset.New(0)

	for _, e := range raw.entries {
		fragments := e.values
		if !e.isList {
			fragments = splitDelimited(e.delimited)
		}

		for _, fragment := range fragments {
			if token := clean(fragment); token != "" {
				tokens.Add(token)
			}
		}
	}

	return tokens.Slice()
}

func splitDelimited(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
}

func clean(fragment string) string {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return ""
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)

	return norm.NFC.String(stripped)
}
