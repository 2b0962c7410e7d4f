package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/cred-wordlist/cmdflag"
	"github.com/pivotal-cf/cred-wordlist/expand"
	"github.com/pivotal-cf/cred-wordlist/mangle"
	"github.com/pivotal-cf/cred-wordlist/normalize"
)

// WordsFileField is the input field filled from --words-file.
const WordsFileField = "words-file"

func LoadGenerateConfig(bs []byte) (*GenerateConfig, error) {
	c := &GenerateConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type InputConfig struct {
	Names     string           `long:"names" description:"comma-separated names" value-name:"NAMES" yaml:"names"`
	Dates     string           `long:"dates" description:"comma-separated dates (years or full dates)" value-name:"DATES" yaml:"dates"`
	Pets      string           `long:"pets" description:"comma-separated pet names" value-name:"PETS" yaml:"pets"`
	Companies string           `long:"companies" description:"comma-separated company or organization names" value-name:"COMPANIES" yaml:"companies"`
	Extra     string           `long:"extra" description:"comma-separated extra words" value-name:"WORDS" yaml:"extra"`
	WordsFile cmdflag.FileFlag `long:"words-file" description:"file with one extra word per line" value-name:"PATH" yaml:"words_file"`
}

type GenerateConfig struct {
	InputConfig `group:"Input Options" yaml:",inline"`

	Output string `short:"o" long:"output" description:"wordlist destination" default:"wordlist.txt" value-name:"PATH" yaml:"output"`
	Bundle bool   `long:"bundle" description:"also write the wordlist as <output>.tgz" yaml:"bundle"`

	Expansion struct {
		PerBase    int `long:"per-base" description:"max expansions kept per base token" default:"100" value-name:"N" yaml:"per_base"`
		Limit      int `long:"limit" description:"max total words (0 = unlimited)" default:"0" value-name:"N" yaml:"limit"`
		LeetCap    int `long:"leet-cap" description:"max leet variants per base token" default:"40" value-name:"N" yaml:"leet_cap"`
		YearWindow int `long:"year-window" description:"number of recent years to append" default:"6" value-name:"N" yaml:"year_window"`
		EndYear    int `long:"end-year" description:"last year appended (default: current year)" value-name:"YEAR" yaml:"end_year"`
		Workers    int `long:"workers" description:"base tokens expanded in parallel" default:"1" value-name:"N" yaml:"workers"`
	} `group:"Expansion Options" yaml:"expansion"`

	Rules struct {
		Prefixes []string          `yaml:"prefixes"`
		Suffixes []string          `yaml:"suffixes"`
		Leet     map[string]string `yaml:"leet"`
	} `no-flag:"true" yaml:"rules"`
}

func (c *GenerateConfig) Validate() error {
	var result *multierror.Error

	if c.Output == "" {
		result = multierror.Append(result, errors.New("no output path specified"))
	}

	for _, option := range []struct {
		name  string
		value int
	}{
		{"per-base", c.Expansion.PerBase},
		{"limit", c.Expansion.Limit},
		{"leet-cap", c.Expansion.LeetCap},
		{"year-window", c.Expansion.YearWindow},
		{"end-year", c.Expansion.EndYear},
		{"workers", c.Expansion.Workers},
	} {
		if option.value < 0 {
			result = multierror.Append(result, fmt.Errorf("%s must not be negative (got %d)", option.name, option.value))
		}
	}

	letters := make([]string, 0, len(c.Rules.Leet))
	for letter := range c.Rules.Leet {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	for _, letter := range letters {
		substitutes := c.Rules.Leet[letter]
		r, size := utf8.DecodeRuneInString(letter)
		if size != len(letter) || !unicode.IsLower(r) {
			result = multierror.Append(result, fmt.Errorf("leet key %q must be a single lowercase letter", letter))
		}

		if substitutes == "" {
			result = multierror.Append(result, fmt.Errorf("leet key %q has no substitutes", letter))
		}
	}

	return result.ErrorOrNil()
}

// Merge overlays the values set in other, typically a loaded config file,
// onto c.
func (c *GenerateConfig) Merge(other *GenerateConfig) {
	merge(reflect.ValueOf(c).Elem(), reflect.ValueOf(other).Elem())
}

// RawInput collects the personal fields in declaration order, followed by the
// lines of the words file when one is configured.
func (c *InputConfig) RawInput() (normalize.RawInputSet, error) {
	var raw normalize.RawInputSet

	raw.SetDelimited(normalize.Names, c.Names)
	raw.SetDelimited(normalize.Dates, c.Dates)
	raw.SetDelimited(normalize.Pets, c.Pets)
	raw.SetDelimited(normalize.Companies, c.Companies)
	raw.SetDelimited(normalize.Extra, c.Extra)

	if c.WordsFile != "" {
		words, err := readLines(c.WordsFile.Path())
		if err != nil {
			return raw, fmt.Errorf("reading words file: %w", err)
		}

		raw.SetValues(WordsFileField, words...)
	}

	return raw, nil
}

// MangleRules starts from the default rules and replaces every list or map
// the config sets.
func (c *GenerateConfig) MangleRules() mangle.Rules {
	rules := mangle.DefaultRules()

	if c.Rules.Prefixes != nil {
		rules.Affixes.Prefixes = c.Rules.Prefixes
	}

	if c.Rules.Suffixes != nil {
		rules.Affixes.Suffixes = c.Rules.Suffixes
	}

	if len(c.Rules.Leet) > 0 {
		rules.Leet = mangle.LeetMap{}
		for letter, substitutes := range c.Rules.Leet {
			r, _ := utf8.DecodeRuneInString(letter)
			rules.Leet[r] = []rune(substitutes)
		}
	}

	return rules
}

func (c *GenerateConfig) ExpandConfig() expand.Config {
	return expand.Config{
		PerBase:    c.Expansion.PerBase,
		Limit:      c.Expansion.Limit,
		LeetCap:    c.Expansion.LeetCap,
		YearWindow: c.Expansion.YearWindow,
		EndYear:    c.Expansion.EndYear,
		Workers:    c.Expansion.Workers,
	}
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
