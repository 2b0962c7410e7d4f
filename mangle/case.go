package mangle

import (
	"strings"
	"unicode"

	"github.com/pivotal-cf/cred-wordlist/wordset"
)

// CaseVariants returns the lower, upper and capitalized forms of word, plus
// the two forms that only flip its first rune when word is longer than one
// rune. Repeats are dropped.
func CaseVariants(word string) []string {
	runes := []rune(word)
	variants := wordset.New(5)

	variants.Add(strings.ToLower(word))
	variants.Add(strings.ToUpper(word))
	variants.Add(capitalize(runes))

	if len(runes) > 1 {
		rest := string(runes[1:])
		variants.Add(string(unicode.ToUpper(runes[0])) + rest)
		variants.Add(string(unicode.ToLower(runes[0])) + rest)
	}

	return variants.Slice()
}

func capitalize(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}

	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
