package mangle

import "github.com/pivotal-cf/cred-wordlist/wordset"

// Apply grows variants with v+suffix and prefix+v for every member present
// when it is called. Forms added during the pass are not affixed again.
func (a Affixes) Apply(variants *wordset.Set) {
	for _, v := range variants.Slice() {
		for _, suffix := range a.Suffixes {
			variants.Add(v + suffix)
		}

		for _, prefix := range a.Prefixes {
			variants.Add(prefix + v)
		}
	}
}
