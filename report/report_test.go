package report_test

import (
	"bytes"
	"encoding/json"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-wordlist/report"
	"github.com/pivotal-cf/cred-wordlist/scorer"
	"github.com/pivotal-cf/cred-wordlist/scorer/scorerfakes"
)

var _ = Describe("Analyze", func() {
	var (
		logger     *lagertest.TestLogger
		fakeScorer *scorerfakes.FakeScorer
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("report")
		fakeScorer = &scorerfakes.FakeScorer{}
		fakeScorer.ScoreReturns(scorer.Result{
			Score:            1,
			Guesses:          12345,
			CrackTimeDisplay: "instant",
			Feedback: scorer.Feedback{
				Warning:     "Contains personal information such as a name or date",
				Suggestions: []string{"Use a longer password"},
			},
		})
	})

	It("scores the password with the base tokens as context", func() {
		report.Analyze(logger, fakeScorer, "Max2024!", []string{"Max", "2024"}, false)

		Expect(fakeScorer.ScoreCallCount()).To(Equal(1))
		_, password, context := fakeScorer.ScoreArgsForCall(0)
		Expect(password).To(Equal("Max2024!"))
		Expect(context).To(Equal([]string{"Max", "2024"}))
	})

	It("masks the password by default", func() {
		analysis := report.Analyze(logger, fakeScorer, "Mäx2024!", nil, false)

		Expect(analysis.Password).To(Equal("********"))
		Expect(analysis.Score).To(Equal(1))
		Expect(analysis.Guesses).To(Equal(12345.0))
		Expect(analysis.CrackTimeDisplay).To(Equal("instant"))
	})

	It("shows the password when asked to", func() {
		analysis := report.Analyze(logger, fakeScorer, "Max2024!", nil, true)

		Expect(analysis.Password).To(Equal("Max2024!"))
	})
})

var _ = Describe("Encoder", func() {
	var (
		buffer   *bytes.Buffer
		analysis report.Analysis
	)

	BeforeEach(func() {
		buffer = &bytes.Buffer{}
		analysis = report.Analysis{
			Password: "****",
			Score:    2,
			Guesses:  123456789.5,
		}
	})

	It("writes the analysis as JSON with empty feedback rendered explicitly", func() {
		Expect(report.NewEncoder(buffer, report.Format{}).Encode(analysis)).To(Succeed())

		Expect(buffer.String()).To(MatchJSON(`{
			"password": "****",
			"score": 2,
			"guesses": 123456789.5,
			"crack_time_display": "",
			"feedback": {"warning": "", "suggestions": []}
		}`))
	})

	It("rounds guesses to the configured number of digits", func() {
		Expect(report.NewEncoder(buffer, report.Format{GuessDigits: 3}).Encode(analysis)).To(Succeed())

		var decoded map[string]interface{}
		Expect(json.Unmarshal(buffer.Bytes(), &decoded)).To(Succeed())
		Expect(decoded["guesses"]).To(Equal(1.23e+08))
	})

	It("indents only when the format says so", func() {
		Expect(report.NewEncoder(buffer, report.DefaultFormat()).Encode(analysis)).To(Succeed())
		Expect(buffer.String()).To(ContainSubstring("\n  \"score\": 2"))

		compact := &bytes.Buffer{}
		Expect(report.NewEncoder(compact, report.Format{}).Encode(analysis)).To(Succeed())
		Expect(compact.String()).NotTo(ContainSubstring("\n  "))
	})

	It("keeps the zero result encodable", func() {
		Expect(report.NewEncoder(buffer, report.DefaultFormat()).Encode(report.Analysis{})).To(Succeed())
		Expect(buffer.String()).To(ContainSubstring(`"guesses": 0`))
	})
})
