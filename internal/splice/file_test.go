package splice_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/splice"
)

const routesFile = `import { Express } from 'express';

export function registerEbayRoutes(app: Express) {
}
`

var _ = Describe("Splicing the aggregator file", func() {
	var (
		path string
		opts splice.Options
		frag splice.Fragments
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "ebay-routes.ts")
		Expect(os.WriteFile(path, []byte(routesFile), 0o640)).To(Succeed())

		opts = splice.Options{Anchors: splice.DefaultAnchors()}
		frag = splice.Fragments{
			Series:        "blaze",
			StartPhase:    1001,
			EndPhase:      1002,
			Imports:       "import xRouter from './x';\nimport yRouter from './y';\n",
			Registrations: "  app.use('/api/x', xRouter);\n  app.use('/api/y', yRouter);\n",
		}
	})

	read := func() string {
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	for _, mode := range []config.SpliceMode{config.SpliceAnchored, config.SpliceStructured} {
		Context("in "+string(mode)+" mode", func() {
			var fn splice.Func

			BeforeEach(func() {
				var err error
				fn, err = splice.ForMode(mode)
				Expect(err).NotTo(HaveOccurred())
			})

			It("adds both blocks under the series banner", func() {
				res, err := splice.File(path, fn, frag, opts)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Changed()).To(BeTrue())

				content := read()
				Expect(strings.Count(content, "// Phase 1001-1002 (Blaze series)")).To(Equal(2))
				Expect(content).To(ContainSubstring("import yRouter from './y';\n\nexport function registerEbayRoutes"))
				Expect(content).To(HaveSuffix("  app.use('/api/y', yRouter);\n}\n"))
			})

			It("keeps the file mode", func() {
				_, err := splice.File(path, fn, frag, opts)
				Expect(err).NotTo(HaveOccurred())

				info, err := os.Stat(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o640)))
			})

			It("does not change the file a second time", func() {
				_, err := splice.File(path, fn, frag, opts)
				Expect(err).NotTo(HaveOccurred())
				once := read()

				_, _ = splice.File(path, fn, frag, opts)
				Expect(read()).To(Equal(once))
			})
		})
	}

	It("leaves the file untouched when the entry anchor is missing", func() {
		Expect(os.WriteFile(path, []byte("export const x = {};\n"), 0o640)).To(Succeed())

		_, err := splice.File(path, splice.Anchored, frag, opts)
		Expect(err).To(MatchError(splice.ErrAnchorNotFound))
		Expect(read()).To(Equal("export const x = {};\n"))
	})

	It("reports a missing aggregator as an I/O error", func() {
		_, err := splice.File(filepath.Join(filepath.Dir(path), "missing.ts"), splice.Anchored, frag, opts)
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("splices consecutive series in order", func() {
		_, err := splice.File(path, splice.Anchored, frag, opts)
		Expect(err).NotTo(HaveOccurred())

		next := splice.Fragments{
			Series:        "storm",
			StartPhase:    1003,
			EndPhase:      1003,
			Imports:       "import zRouter from './z';\n",
			Registrations: "  app.use('/api/z', zRouter);\n",
		}
		_, err = splice.File(path, splice.Anchored, next, opts)
		Expect(err).NotTo(HaveOccurred())

		content := read()
		Expect(strings.Index(content, "(Blaze series)\nimport")).To(BeNumerically("<", strings.Index(content, "(Storm series)\nimport")))
		Expect(strings.LastIndex(content, "(Blaze series)")).To(BeNumerically("<", strings.LastIndex(content, "(Storm series)")))
	})
})
