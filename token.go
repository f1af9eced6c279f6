package wordsplit

import "unicode"

// Open marks a token whose text may continue into a neighboring range.
type Open uint8

const (
	// OpenLeft means the token touches the first character of its range.
	OpenLeft Open = 1 << iota
	// OpenRight means the token touches the last character of its range.
	OpenRight
)

func (o Open) String() string {
	switch o {
	case 0:
		return "closed"
	case OpenLeft:
		return "open-left"
	case OpenRight:
		return "open-right"
	default:
		return "open-both"
	}
}

// Token is a run of alphabetic characters found in one range.
type Token struct {
	Text string
	Open Open
}

func (t Token) openLeft() bool {
	return t.Open&OpenLeft != 0
}

func (t Token) openRight() bool {
	return t.Open&OpenRight != 0
}

// Tokens is an ordered sequence of tokens produced by one range.
type Tokens []Token

// Words returns the token texts in order.
func (ts Tokens) Words() []string {
	words := make([]string, 0, len(ts))
	for _, t := range ts {
		words = append(words, t.Text)
	}
	return words
}

// close clears residual open markers on the edges of the sequence.
func (ts Tokens) close() Tokens {
	if len(ts) == 0 {
		return ts
	}
	ts[0].Open &^= OpenLeft
	ts[len(ts)-1].Open &^= OpenRight
	return ts
}

// IsAlphabetic reports whether r is a word character: a letter, a letter number,
// or any other alphabetic rune.
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}
