package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/cred-wordlist/commands"
)

func main() {
	parser := flags.NewParser(&commands.CredWordlist, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, ansi.Color("[FAILED]", "red+b"), err)
		os.Exit(1)
	}
}
