package mangle_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-wordlist/mangle"
)

func collect(seq func(func(string) bool)) []string {
	var out []string
	seq(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

var _ = Describe("AppendYears", func() {
	It("yields year forms before the plain word", func() {
		words := collect(mangle.AppendYears([]string{"ann"}, mangle.YearWindow{End: 2024, Size: 2}))

		Expect(words).To(Equal([]string{"ann2024", "ann24", "ann2023", "ann23", "ann"}))
	})

	It("exhausts every word against every year before any passthrough", func() {
		words := collect(mangle.AppendYears([]string{"a", "b"}, mangle.YearWindow{End: 2024, Size: 1}))

		Expect(words).To(Equal([]string{"a2024", "a24", "b2024", "b24", "a", "b"}))
	})

	It("stops generating when the consumer stops", func() {
		var taken []string
		for word := range mangle.AppendYears([]string{"a", "b", "c"}, mangle.YearWindow{End: 2024, Size: 6}) {
			taken = append(taken, word)
			if len(taken) == 3 {
				break
			}
		}

		Expect(taken).To(Equal([]string{"a2024", "a24", "a2023"}))
	})

	It("is unaffected by later changes to the input slice", func() {
		input := []string{"a"}
		seq := mangle.AppendYears(input, mangle.YearWindow{End: 2000, Size: 1})
		input[0] = "z"

		Expect(collect(seq)).To(Equal([]string{"a2000", "a00", "a"}))
	})

	It("yields only passthrough words for an empty window", func() {
		Expect(collect(mangle.AppendYears([]string{"a"}, mangle.YearWindow{End: 2024}))).To(Equal([]string{"a"}))
	})

	It("has no years for a negative window", func() {
		Expect(mangle.YearWindow{End: 2024, Size: -2}.Years()).To(BeEmpty())
	})

	Describe("CurrentYearWindow", func() {
		It("covers the six years ending now", func() {
			window := mangle.CurrentYearWindow(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))

			Expect(window).To(Equal(mangle.YearWindow{End: 2026, Size: 6}))
			Expect(window.Years()).To(HaveLen(6))
			Expect(window.Years()[5]).To(Equal([2]string{"2021", "21"}))
		})
	})
})
