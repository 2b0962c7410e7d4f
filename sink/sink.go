package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/lager"
)

// WriteWordlist replaces the file at path with one word per line, creating
// any missing parent directories, and returns the number of lines written.
func WriteWordlist(logger lager.Logger, path string, words []string) (int, error) {
	logger = logger.Session("write-wordlist", lager.Data{"path": path})
	logger.Debug("starting")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("failed-to-create-directory", err)
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		logger.Error("failed-to-create-file", err)
		return 0, fmt.Errorf("creating wordlist: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	var count int
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			logger.Error("failed-to-write", err, lager.Data{"written": count})
			return count, fmt.Errorf("writing wordlist: %w", err)
		}
		count++
	}

	if err := w.Flush(); err != nil {
		logger.Error("failed-to-flush", err)
		return count, fmt.Errorf("writing wordlist: %w", err)
	}

	if err := file.Close(); err != nil {
		logger.Error("failed-to-close", err)
		return count, fmt.Errorf("closing wordlist: %w", err)
	}

	logger.Debug("done", lager.Data{"lines": count})
	return count, nil
}

// Bundle compresses the wordlist at path into path+".tgz" and returns the
// bundle's path.
func Bundle(logger lager.Logger, path string) (string, error) {
	dest := path + ".tgz"

	logger = logger.Session("bundle", lager.Data{"path": path, "bundle": dest})
	logger.Debug("starting")

	if err := compressor.NewTgz().Compress(path, dest); err != nil {
		logger.Error("failed", err)
		return "", fmt.Errorf("bundling wordlist: %w", err)
	}

	logger.Debug("done")
	return dest, nil
}
