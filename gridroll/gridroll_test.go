package gridroll

import (
	"bytes"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aocgo/aoc2025"
)

const sample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

func mustParse(s string) aoc.Grid[bool] {
	g, err := Parse(strings.Split(s, "\n"))
	Expect(err).ToNot(HaveOccurred())
	return g
}

func rolls(g aoc.Grid[bool]) int {
	n := 0
	g.ForEach(func(_ aoc.Pt, roll bool) {
		if roll {
			n++
		}
	})
	return n
}

var _ = Describe("Gridroll", func() {
	Context("with the sample map", func() {
		var g aoc.Grid[bool]

		BeforeEach(func() {
			g = mustParse(sample)
		})

		It("should parse every row", func() {
			Expect(g.Size()).To(Equal(aoc.Pt{X: 10, Y: 10}))
			Expect(rolls(g)).To(Equal(71))
		})

		It("should count reachable rolls without changing the map", func() {
			before := g.Hash()
			Expect(Accessible(g)).To(Equal(13))
			Expect(g.Hash()).To(Equal(before))
		})

		It("should remove rolls until none are reachable", func() {
			Expect(Remove(g)).To(Equal(43))
			Expect(Accessible(g)).To(Equal(0))
			Expect(rolls(g)).To(Equal(71 - 43))
		})

		It("should remove the same rolls incrementally", func() {
			g2 := g.Clone()
			Expect(RemoveIncremental(g2)).To(Equal(43))
			Remove(g)
			Expect(g2.Hash()).To(Equal(g.Hash()))
		})
	})

	Context("with small maps", func() {
		It("should remove nothing from an empty map", func() {
			g := mustParse("...\n...\n")
			Expect(Remove(g)).To(Equal(0))
			Expect(RemoveIncremental(g)).To(Equal(0))
			Expect(Remove(aoc.Grid[bool]{})).To(Equal(0))
		})

		It("should remove an isolated roll in the first pass", func() {
			g := mustParse("...\n.@.\n...\n")
			Expect(Accessible(g)).To(Equal(1))
			Expect(Remove(g)).To(Equal(1))
		})

		It("should not count cells beyond the edge", func() {
			// Each corner of a full 3x3 block has only three neighbours.
			g := mustParse("@@@\n@@@\n@@@\n")
			Expect(Accessible(g)).To(Equal(4))
			Expect(Remove(g.Clone())).To(Equal(9))
			Expect(RemoveIncremental(g)).To(Equal(9))
		})

		It("should stop when the rest stays crowded", func() {
			// Once the corners of a full 5x5 block go, every remaining
			// roll still has at least four neighbours.
			g := mustParse("@@@@@\n@@@@@\n@@@@@\n@@@@@\n@@@@@\n")
			Expect(Remove(g.Clone())).To(Equal(4))
			Expect(RemoveIncremental(g)).To(Equal(4))
			Expect(rolls(g)).To(Equal(21))
		})

		It("should never remove more rolls than there are", func() {
			g := mustParse(sample)
			total := rolls(g)
			Expect(RemoveIncremental(g)).To(BeNumerically("<=", total))
		})
	})

	Context("with bad input", func() {
		It("should reject unknown cells", func() {
			_, err := Parse([]string{"..@", ".x."})
			Expect(aoc.IsParseError(err)).To(BeTrue())
		})

		It("should reject ragged rows", func() {
			_, err := Parse([]string{"..@", ".."})
			Expect(aoc.IsParseError(err)).To(BeTrue())
		})
	})

	Context("when logging", func() {
		var (
			buf  *bytes.Buffer
			prev *slog.Logger
		)

		BeforeEach(func() {
			buf = new(bytes.Buffer)
			prev = slog.Default()
		})

		AfterEach(func() {
			slog.SetDefault(prev)
		})

		use := func(level slog.Level) {
			slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})))
		}

		It("should report the fixpoint with the grid hash at debug level", func() {
			use(slog.LevelDebug)
			g := mustParse(sample)
			Expect(Remove(g)).To(Equal(43))
			Expect(buf.String()).To(ContainSubstring("gridroll: fixpoint"))
			Expect(buf.String()).To(ContainSubstring("hash="))
		})

		It("should log nothing above debug level", func() {
			use(slog.LevelInfo)
			Expect(Remove(mustParse(sample))).To(Equal(43))
			Expect(buf.Len()).To(BeZero())
		})
	})
})
