package commands

import (
	"os"

	"github.com/pivotal-cf/cred-wordlist/config"
	"github.com/pivotal-cf/cred-wordlist/normalize"
	"github.com/pivotal-cf/cred-wordlist/report"
	"github.com/pivotal-cf/cred-wordlist/scorer"
)

type AnalyzeCommand struct {
	Password     string `short:"p" long:"password" description:"password to analyze" env:"CRED_WORDLIST_PASSWORD" value-name:"PASSWORD" required:"true"`
	ShowPassword bool   `long:"show-password" description:"allow the password to be shown in output"`
	Compact      bool   `long:"compact" description:"print the analysis on a single line"`
	GuessDigits  int    `long:"guess-digits" description:"significant digits kept for the guess estimate (0 = all)" value-name:"N"`
	Debug        bool   `long:"debug" description:"enables debug logging"`

	config.InputConfig `group:"Input Options"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	logger := newLogger(command.Debug).Session("analyze-command")

	raw, err := command.RawInput()
	if err != nil {
		return err
	}

	tokens := normalize.Normalize(raw)
	analysis := report.Analyze(logger, scorer.NewZxcvbnScorer(), command.Password, tokens, command.ShowPassword)

	format := report.DefaultFormat()
	if command.Compact {
		format.Indent = ""
	}
	format.GuessDigits = command.GuessDigits

	return report.NewEncoder(os.Stdout, format).Encode(analysis)
}
