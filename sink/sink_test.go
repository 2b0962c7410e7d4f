package sink_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/cred-wordlist/sink"
)

var _ = Describe("Sink", func() {
	var (
		logger *lagertest.TestLogger
		tmpDir string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("sink")

		var err error
		tmpDir, err = os.MkdirTemp("", "sink")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	Describe("WriteWordlist", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(tmpDir, "wordlist.txt")
		})

		It("writes one newline-terminated word per line", func() {
			count, err := sink.WriteWordlist(logger, path, []string{"max", "Mäx2024", "m@x!"})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))

			contents, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal("max\nMäx2024\nm@x!\n"))
		})

		It("creates missing parent directories", func() {
			path = filepath.Join(tmpDir, "a", "b", "wordlist.txt")

			_, err := sink.WriteWordlist(logger, path, []string{"max"})
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeAnExistingFile())
		})

		It("overwrites existing content", func() {
			Expect(os.WriteFile(path, []byte("old\nand\nlonger\ncontent\n"), 0644)).To(Succeed())

			_, err := sink.WriteWordlist(logger, path, []string{"new"})
			Expect(err).NotTo(HaveOccurred())

			contents, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal("new\n"))
		})

		It("writes an empty file for an empty wordlist", func() {
			count, err := sink.WriteWordlist(logger, path, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))

			contents, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(contents).To(BeEmpty())
		})

		It("returns an error when the destination cannot be created", func() {
			blocker := filepath.Join(tmpDir, "blocker")
			Expect(os.WriteFile(blocker, nil, 0644)).To(Succeed())

			_, err := sink.WriteWordlist(logger, filepath.Join(blocker, "wordlist.txt"), []string{"max"})
			Expect(err).To(MatchError(ContainSubstring("creating output directory")))
			Expect(logger).To(gbytes.Say("failed-to-create-directory"))
		})
	})

	Describe("Bundle", func() {
		It("writes a tgz that extracts back to the wordlist", func() {
			path := filepath.Join(tmpDir, "wordlist.txt")
			_, err := sink.WriteWordlist(logger, path, []string{"max", "rex"})
			Expect(err).NotTo(HaveOccurred())

			bundle, err := sink.Bundle(logger, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle).To(Equal(path + ".tgz"))

			outDir := filepath.Join(tmpDir, "out")
			Expect(extractor.NewTgz().Extract(bundle, outDir)).To(Succeed())

			contents, err := os.ReadFile(filepath.Join(outDir, "wordlist.txt"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal("max\nrex\n"))
		})

		It("returns an error when the wordlist is missing", func() {
			_, err := sink.Bundle(logger, filepath.Join(tmpDir, "missing.txt"))
			Expect(err).To(HaveOccurred())
		})
	})
})
