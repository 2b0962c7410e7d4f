package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-wordlist/scorer"
)

// Format configures one encoder. Nothing here touches package-level encoding
// state, so two encoders with different formats can run side by side.
type Format struct {
	Indent string

	// GuessDigits is the number of significant digits kept for guess
	// estimates. Zero keeps the shortest exact representation.
	GuessDigits int
}

func DefaultFormat() Format {
	return Format{Indent: "  "}
}

type Analysis struct {
	Password         string
	Score            int
	Guesses          float64
	CrackTimeDisplay string
	Feedback         scorer.Feedback
}

// Analyze scores password against the base tokens. Unless showPassword is
// set the password is masked in the result.
func Analyze(logger lager.Logger, s scorer.Scorer, password string, contextTokens []string, showPassword bool) Analysis {
	logger = logger.Session("analyze")
	logger.Debug("starting")
	defer logger.Debug("done")

	result := s.Score(logger, password, contextTokens)

	shown := password
	if !showPassword {
		shown = strings.Repeat("*", utf8.RuneCountInString(password))
	}

	return Analysis{
		Password:         shown,
		Score:            result.Score,
		Guesses:          result.Guesses,
		CrackTimeDisplay: result.CrackTimeDisplay,
		Feedback:         result.Feedback,
	}
}

type Encoder struct {
	w      io.Writer
	format Format
}

func NewEncoder(w io.Writer, format Format) *Encoder {
	return &Encoder{w: w, format: format}
}

type analysisJSON struct {
	Password         string       `json:"password"`
	Score            int          `json:"score"`
	Guesses          json.Number  `json:"guesses"`
	CrackTimeDisplay string       `json:"crack_time_display"`
	Feedback         feedbackJSON `json:"feedback"`
}

type feedbackJSON struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

func (e *Encoder) Encode(analysis Analysis) error {
	suggestions := analysis.Feedback.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	encoder := json.NewEncoder(e.w)
	encoder.SetIndent("", e.format.Indent)

	return encoder.Encode(analysisJSON{
		Password:         analysis.Password,
		Score:            analysis.Score,
		Guesses:          e.formatGuesses(analysis.Guesses),
		CrackTimeDisplay: analysis.CrackTimeDisplay,
		Feedback: feedbackJSON{
			Warning:     analysis.Feedback.Warning,
			Suggestions: suggestions,
		},
	})
}

func (e *Encoder) formatGuesses(guesses float64) json.Number {
	switch {
	case math.IsNaN(guesses) || guesses < 0:
		guesses = 0
	case math.IsInf(guesses, 1):
		guesses = math.MaxFloat64
	}

	precision := -1
	if e.format.GuessDigits > 0 {
		precision = e.format.GuessDigits
	}

	return json.Number(strconv.FormatFloat(guesses, 'g', precision, 64))
}
