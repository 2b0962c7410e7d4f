// Package scorer estimates password strength with zxcvbn, seeded with the
// personal tokens the wordlist was generated from.
package scorer

import (
	"fmt"
	"math"

	"code.cloudfoundry.org/lager"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/scoring"
)

// zxcvbn slows down sharply on long input, so only a prefix is checked.
const maxCheckedPassLen = 50

type Feedback struct {
	Warning     string
	Suggestions []string
}

// Result is the zero value when scoring failed.
type Result struct {
	Score            int
	Guesses          float64
	CrackTimeDisplay string
	Feedback         Feedback
}

//go:generate counterfeiter . Scorer

type Scorer interface {
	Score(logger lager.Logger, password string, contextTokens []string) Result
}

type strengthFunc func(password string, userInputs []string) scoring.MinEntropyMatch

type zxcvbnScorer struct {
	strength strengthFunc
}

func NewZxcvbnScorer() Scorer {
	return &zxcvbnScorer{
		strength: func(password string, userInputs []string) scoring.MinEntropyMatch {
			return zxcvbn.PasswordStrength(password, userInputs)
		},
	}
}

func (s *zxcvbnScorer) Score(logger lager.Logger, password string, contextTokens []string) Result {
	logger = logger.Session("score", lager.Data{"context-tokens": len(contextTokens)})
	logger.Debug("starting")
	defer logger.Debug("done")

	match, err := s.measure(truncate(password), contextTokens)
	if err != nil {
		logger.Error("failed", err)
		return Result{}
	}

	return Result{
		Score:            match.Score,
		Guesses:          math.Pow(2, match.Entropy),
		CrackTimeDisplay: match.CrackTimeDisplay,
		Feedback:         feedbackFor(password, contextTokens, match),
	}
}

func (s *zxcvbnScorer) measure(password string, userInputs []string) (match scoring.MinEntropyMatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strength estimation panicked: %v", r)
		}
	}()

	return s.strength(password, userInputs), nil
}

func truncate(password string) string {
	runes := []rune(password)
	if len(runes) > maxCheckedPassLen {
		return string(runes[:maxCheckedPassLen])
	}
	return password
}
