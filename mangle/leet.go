package mangle

import (
	"strings"

	"github.com/pivotal-cf/cred-wordlist/wordset"
)

const DefaultMaxLeetVariants = 100

// Variants walks the product of every position's candidates ([original] +
// substitutes) with the last position varying fastest, and stops as soon as
// maxVariants distinct strings have been produced. The product is never
// enumerated past that point.
func (m LeetMap) Variants(word string, maxVariants int) []string {
	if maxVariants <= 0 {
		return nil
	}

	var candidates [][]rune
	for _, r := range strings.ToLower(word) {
		candidates = append(candidates, append([]rune{r}, m[r]...))
	}

	results := wordset.New(0)
	indexes := make([]int, len(candidates))
	combo := make([]rune, len(candidates))

	for {
		for i, idx := range indexes {
			combo[i] = candidates[i][idx]
		}

		results.Add(string(combo))
		if results.Len() >= maxVariants {
			break
		}

		position := len(indexes) - 1
		for position >= 0 {
			indexes[position]++
			if indexes[position] < len(candidates[position]) {
				break
			}

			indexes[position] = 0
			position--
		}

		if position < 0 {
			break
		}
	}

	return results.Slice()
}
