package expand

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"
	"golang.org/x/sync/errgroup"

	"github.com/pivotal-cf/cred-wordlist/mangle"
	"github.com/pivotal-cf/cred-wordlist/metrics"
	"github.com/pivotal-cf/cred-wordlist/wordset"
)

const (
	DefaultPerBase = 100
	DefaultLeetCap = 40
)

// Config bounds an expansion run. Every cap is taken literally, so a zero
// PerBase keeps only the bare tokens and a zero LeetCap disables leet forms.
// A zero Limit means the final list is not truncated and a zero EndYear
// means the current year.
type Config struct {
	PerBase    int
	Limit      int
	LeetCap    int
	YearWindow int
	EndYear    int
	Workers    int
}

func DefaultConfig() Config {
	return Config{
		PerBase:    DefaultPerBase,
		LeetCap:    DefaultLeetCap,
		YearWindow: mangle.DefaultYearWindow,
		Workers:    1,
	}
}

func (c Config) window(now time.Time) mangle.YearWindow {
	window := mangle.CurrentYearWindow(now)
	window.Size = c.YearWindow

	if c.EndYear != 0 {
		window.End = c.EndYear
	}

	return window
}

//go:generate counterfeiter . Expander

type Expander interface {
	Expand(context.Context, lager.Logger, []string) ([]string, error)
}

type expander struct {
	rules  mangle.Rules
	config Config
	now    func() time.Time

	baseTokens metrics.Counter
	generated  metrics.Counter
	timer      metrics.Timer
}

func NewExpander(rules mangle.Rules, config Config, emitter metrics.Emitter) Expander {
	return &expander{
		rules:      rules,
		config:     config,
		now:        time.Now,
		baseTokens: emitter.Counter("base-tokens"),
		generated:  emitter.Counter("words-generated"),
		timer:      emitter.Timer("expand"),
	}
}

func NewDefaultExpander() Expander {
	return NewExpander(mangle.DefaultRules(), DefaultConfig(), metrics.NewNullEmitter())
}

// Expand runs every base token through the mangling stages and returns the
// final wordlist. Uniqueness is decided only here: the first occurrence of a
// word in token order wins.
func (e *expander) Expand(ctx context.Context, logger lager.Logger, tokens []string) ([]string, error) {
	config := e.config
	if config.Workers < 1 {
		config.Workers = 1
	}
	window := config.window(e.now())

	logger = logger.Session("expand", lager.Data{
		"base-tokens": len(tokens),
		"per-base":    config.PerBase,
		"limit":       config.Limit,
		"end-year":    window.End,
		"workers":     config.Workers,
	})
	logger.Debug("starting")

	var (
		words []string
		err   error
	)
	e.timer.Time(logger, func() {
		var batches [][]string
		batches, err = e.expandAll(ctx, config, window, tokens)
		if err != nil {
			return
		}

		final := wordset.New(0)
		for _, batch := range batches {
			e.baseTokens.Inc(logger)
			final.AddAll(batch...)
		}
		words = final.Slice()
	})
	if err != nil {
		logger.Error("failed", err)
		return nil, fmt.Errorf("expanding base tokens: %w", err)
	}

	if config.Limit > 0 && len(words) > config.Limit {
		words = words[:config.Limit]
	}

	e.generated.IncN(logger, len(words))

	logger.Debug("done", lager.Data{"words": len(words)})
	return words, nil
}

func (e *expander) expandAll(ctx context.Context, config Config, window mangle.YearWindow, tokens []string) ([][]string, error) {
	batches := make([][]string, len(tokens))

	if config.Workers == 1 {
		for i, token := range tokens {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			batches[i] = e.expandToken(config, window, token)
		}
		return batches, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(config.Workers)

	for i, token := range tokens {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			batches[i] = e.expandToken(config, window, token)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return batches, nil
}

func (e *expander) expandToken(config Config, window mangle.YearWindow, token string) []string {
	variants := wordset.Of(mangle.CaseVariants(token)...)
	variants.AddAll(e.rules.Leet.Variants(token, config.LeetCap)...)
	e.rules.Affixes.Apply(variants)

	batch := make([]string, 0, max(config.PerBase, 0)+1)
	for word := range mangle.AppendYears(variants.Slice(), window) {
		if len(batch) >= config.PerBase {
			break
		}
		batch = append(batch, word)
	}

	return append(batch, token)
}
