package wordsplit

import (
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

const moonText = "That is one small step for [a] man, one giant leap for mankind."

var moonWords = []string{"That", "is", "one", "small", "step", "for", "a", "man", "one", "giant", "leap", "for", "mankind"}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"separators only", "   ", []string{}},
		{"moon", moonText, moonWords},
		{"symbols", "List,of,words|separated;by:different---symbols!!!", []string{"List", "of", "words", "separated", "by", "different", "symbols"}},
		{"multi space", "  Example  of   some  non  formated  text", []string{"Example", "of", "some", "non", "formated", "text"}},
		{"single word", "BigSingleWord" + strings.Repeat(" ", 97), []string{"BigSingleWord"}},
		{"digits", "r2d2 c3po", []string{"r", "d", "c", "po"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, leaf := range []int{1, 2, 3, 7, 1000} {
				got := Split(tt.text, LeafSize(leaf), Parallelism(4))
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got, "leaf size %d", leaf)
			}
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestSplit_BigSingleWordOneCharacterLeaves(t *testing.T) {
	var root *Node
	words := Split("BigSingleWord", LeafSize(1), Plan(func(n *Node) { root = n }))

	assert.Equal(t, []string{"BigSingleWord"}, words)
	require.NotNil(t, root)
	assert.Len(t, root.Leaves(), len("BigSingleWord"))
}

func TestSplit_BoundaryInsideWord(t *testing.T) {
	text := "giant leap for mankind"
	cut := strings.Index(text, "mankind") + 3

	// leaves [0,cut-1] and [cut,len-1] when the whole text halves at cut
	padded := text + strings.Repeat(".", 2*cut-len(text))
	left, right := Range{0, len([]rune(padded)) - 1}.halve()
	require.Equal(t, cut-1, left.End)
	require.Equal(t, cut, right.Begin)

	words := Split(padded, LeafSize(cut))
	assert.Equal(t, []string{"giant", "leap", "for", "mankind"}, words)
}

func TestSplit_SingleLeafNoMerge(t *testing.T) {
	var root *Node
	Split(moonText, Plan(func(n *Node) { root = n }))

	require.NotNil(t, root)
	assert.True(t, root.Leaf())
	assert.Equal(t, Range{0, len(moonText) - 1}, root.Range)
}

func TestSplit_EmptyHasNoPlan(t *testing.T) {
	called := false
	Split("", Plan(func(*Node) { called = true }))
	assert.False(t, called)
}

func TestSplitter_Shared(t *testing.T) {
	s := New(LeafSize(5), Parallelism(3))
	text := strings.Repeat(moonText+" ", 20)
	want := Sequential(text)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			assert.Equal(t, want, s.Split(text))
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSplitter_Verbose(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	Split(moonText, LeafSize(8), Parallelism(2), Verbose(), Logger(zap.New(core)))
	assert.NotZero(t, logs.FilterMessageSnippet("Split enter").Len())
	assert.NotZero(t, logs.FilterMessageSnippet("Split exit").Len())

	core, logs = observer.New(zapcore.DebugLevel)
	Split(moonText, LeafSize(8), Logger(zap.New(core)))
	assert.Zero(t, logs.Len())
}

func TestOpts_Threshold(t *testing.T) {
	tests := []struct {
		name string
		opt  []Opt
		n    int
		want int
	}{
		{"min leaf wins", []Opt{Parallelism(4)}, 2000, DefaultMinLeafSize - 1},
		{"parallelism wins", []Opt{Parallelism(4)}, 40000, 9999},
		{"custom min leaf", []Opt{Parallelism(2), MinLeafSize(10)}, 100, 49},
		{"fixed leaf", []Opt{Parallelism(2), LeafSize(1)}, 100, 0},
		{"ignored values", []Opt{Parallelism(1), MinLeafSize(0), LeafSize(-1)}, 5000, 4999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts
			opts.apply(tt.opt)
			assert.Equal(t, tt.want, opts.threshold(tt.n))
		})
	}
}

func TestOpts_Defaults(t *testing.T) {
	opts := defaultOpts
	opts.apply(nil)
	assert.Positive(t, opts.parallelism)
	assert.NotNil(t, opts.logger)
}

var textGen = rapid.StringOf(rapid.RuneFrom([]rune("abcXYZ żЖ ,.-!1\t\n")))

func TestSplit_MatchesSequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen.Draw(t, "text")
		leaf := rapid.IntRange(1, 64).Draw(t, "leaf")
		par := rapid.IntRange(1, 8).Draw(t, "parallelism")

		assert.Equal(t, Sequential(text), Split(text, LeafSize(leaf), Parallelism(par)))
	})
}

func TestSplit_ThresholdInvariance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := textGen.Draw(t, "text")
		n := len([]rune(text))

		want := Split(text, LeafSize(max(n, 1)))
		for leaf := 1; leaf <= n; leaf++ {
			assert.Equal(t, want, Split(text, LeafSize(leaf), Parallelism(4)), "leaf size %d", leaf)
		}
	})
}

func TestMerge_Associative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("ab, ")), 2, 40, -1).Draw(t, "text")
		buf := []rune(text)

		cuts := rapid.SliceOfDistinct(rapid.IntRange(1, len(buf)-1), rapid.ID[int]).Draw(t, "cuts")
		sort.Ints(cuts)

		leaves := func() []Tokens {
			var out []Tokens
			begin := 0
			for _, c := range append(slices.Clone(cuts), len(buf)) {
				out = append(out, tokenizeLeaf(buf, Range{begin, c - 1}))
				begin = c
			}
			return out
		}

		ls := leaves()
		leftFold := ls[0]
		for _, l := range ls[1:] {
			leftFold = merge(leftFold, l)
		}

		ls = leaves()
		rightFold := ls[len(ls)-1]
		for i := len(ls) - 2; i >= 0; i-- {
			rightFold = merge(ls[i], rightFold)
		}

		want := Sequential(text)
		assert.Equal(t, want, leftFold.close().Words())
		assert.Equal(t, want, rightFold.close().Words())
	})
}
