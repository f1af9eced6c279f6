package wordsplit

import "strings"

// Sequential returns the words of text with a single left-to-right scan
// on the calling goroutine. It yields the same words as [Split].
func Sequential(text string) []string {
	words := []string{}
	var sb strings.Builder

	for _, c := range text {
		if IsAlphabetic(c) {
			sb.WriteRune(c)
		} else if sb.Len() > 0 {
			words = append(words, sb.String())
			sb.Reset()
		}
	}

	if sb.Len() > 0 {
		words = append(words, sb.String())
	}

	return words
}
