package mangle

// LeetMap maps a lowercase letter to its substitutes, in the order they are
// tried.
type LeetMap map[rune][]rune

// Affixes are added to every variant in a single pass.
type Affixes struct {
	Prefixes []string
	Suffixes []string
}

type Rules struct {
	Leet    LeetMap
	Affixes Affixes
}

// DefaultLeetMap returns a fresh copy on every call so callers can never
// mutate a shared table.
func DefaultLeetMap() LeetMap {
	return LeetMap{
		'a': []rune("4@"),
		'b': []rune("8"),
		'e': []rune("3"),
		'i': []rune("1!"),
		'l': []rune("1|"),
		'o': []rune("0"),
		's': []rune("5$"),
		't': []rune("7"),
	}
}

func DefaultAffixes() Affixes {
	return Affixes{
		Prefixes: []string{"", "!", "@", "123"},
		Suffixes: []string{"!", "@", "#", "123", "2020", "2021", "2022", "2023", "2024"},
	}
}

func DefaultRules() Rules {
	return Rules{
		Leet:    DefaultLeetMap(),
		Affixes: DefaultAffixes(),
	}
}
