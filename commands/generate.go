package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"

	"github.com/pivotal-cf/cred-wordlist/cmdflag"
	"github.com/pivotal-cf/cred-wordlist/config"
	"github.com/pivotal-cf/cred-wordlist/expand"
	"github.com/pivotal-cf/cred-wordlist/metrics"
	"github.com/pivotal-cf/cred-wordlist/normalize"
	"github.com/pivotal-cf/cred-wordlist/report"
	"github.com/pivotal-cf/cred-wordlist/scorer"
	"github.com/pivotal-cf/cred-wordlist/sink"
)

type GenerateCommand struct {
	ConfigFile   cmdflag.FileFlag `long:"config-file" description:"path to a YAML config file; its values override flags" value-name:"PATH"`
	Password     string           `long:"password" description:"password to analyze against the generated base tokens" env:"CRED_WORDLIST_PASSWORD" value-name:"PASSWORD"`
	ShowPassword bool             `long:"show-password" description:"allow the analyzed password to be shown in output"`
	Debug        bool             `long:"debug" description:"enables debug logging"`

	config.GenerateConfig
}

func (command *GenerateCommand) Execute(args []string) error {
	cfg, err := command.loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(command.Debug).Session("generate", lager.Data{
		"run-id": uuid.NewString(),
	})

	raw, err := cfg.RawInput()
	if err != nil {
		return err
	}

	tokens := normalize.Normalize(raw)
	logger.Info("normalized", lager.Data{"base-tokens": len(tokens)})

	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "No personal tokens supplied, the wordlist will be empty.")
	}

	expander := expand.NewExpander(cfg.MangleRules(), cfg.ExpandConfig(), metrics.NewEmitter())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	words, err := expander.Expand(ctx, logger, tokens)
	if err != nil {
		return err
	}

	count, err := sink.WriteWordlist(logger, cfg.Output, words)
	if err != nil {
		return err
	}

	logger.Info("exported", lager.Data{"words": count, "output": cfg.Output})
	fmt.Println(green("[OK]"), fmt.Sprintf("Exported %d words to %s", count, cfg.Output))

	if cfg.Bundle {
		bundle, err := sink.Bundle(logger, cfg.Output)
		if err != nil {
			return err
		}

		fmt.Println(green("[OK]"), "Bundled wordlist into", bundle)
	}

	if command.Password != "" {
		analysis := report.Analyze(logger, scorer.NewZxcvbnScorer(), command.Password, tokens, command.ShowPassword)

		fmt.Println("Password analysis:")
		return report.NewEncoder(os.Stdout, report.DefaultFormat()).Encode(analysis)
	}

	return nil
}

func (command *GenerateCommand) loadConfig() (*config.GenerateConfig, error) {
	cfg := command.GenerateConfig

	if command.ConfigFile != "" {
		bs, err := os.ReadFile(command.ConfigFile.Path())
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		fileConfig, err := config.LoadGenerateConfig(bs)
		if err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}

		cfg.Merge(fileConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
