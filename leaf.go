package wordsplit

import (
	"fmt"
	"strings"
)

// Range is an inclusive interval of buffer indices assigned to one task.
type Range struct {
	Begin int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Begin, r.End)
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.End - r.Begin + 1
}

// halve splits the range into two non-overlapping halves covering it.
func (r Range) halve() (Range, Range) {
	gap := (r.End - r.Begin) / 2
	return Range{r.Begin, r.Begin + gap}, Range{r.Begin + gap + 1, r.End}
}

// check panics if the range is not a valid interval over a buffer of size n.
// A bad range is a scheduler bug, never an input condition.
func (r Range) check(n int) {
	if r.Begin > r.End || r.Begin < 0 || r.End >= n {
		panic(fmt.Errorf("%w: %s over %d characters", ErrBadRange, r, n))
	}
}

// tokenizeLeaf scans buf[r.Begin..r.End] once and returns its words in order.
// The first token is open-left when buf[r.Begin] is alphabetic, the last
// token is open-right when buf[r.End] is alphabetic.
func tokenizeLeaf(buf []rune, r Range) Tokens {
	r.check(len(buf))

	var (
		tokens Tokens
		sb     strings.Builder
		open   Open
	)

	if IsAlphabetic(buf[r.Begin]) {
		open = OpenLeft
	}

	for i := r.Begin; i <= r.End; i++ {
		c := buf[i]
		if IsAlphabetic(c) {
			sb.WriteRune(c)
			continue
		}
		if sb.Len() > 0 {
			tokens = append(tokens, Token{Text: sb.String(), Open: open})
			sb.Reset()
		}
		open = 0
	}

	if sb.Len() > 0 {
		// the run reaches buf[r.End]
		tokens = append(tokens, Token{Text: sb.String(), Open: open | OpenRight})
	}

	return tokens
}
