package commands

import (
	"os"

	"code.cloudfoundry.org/lager"
)

// Logs go to stderr so that stdout only carries the command's own output.
func newLogger(debug bool) lager.Logger {
	logger := lager.NewLogger("cred-wordlist")

	if debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	return logger
}
