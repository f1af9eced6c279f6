package wordsplit

// merge combines the tokens of two adjacent ranges, left then right.
// A word cut by the boundary between them arrives as an open-right token
// on the left and an open-left token on the right, and is stitched back.
// Both inputs are consumed.
func merge(left, right Tokens) Tokens {
	switch {
	case len(left) == 0 && len(right) == 0:
		return left
	case len(left) == 0:
		right[0].Open &^= OpenLeft
		return right
	case len(right) == 0:
		left[len(left)-1].Open &^= OpenRight
		return left
	}

	last := &left[len(left)-1]
	first := right[0]

	switch {
	case last.openRight() && first.openLeft():
		last.Text += first.Text
		last.Open = last.Open&OpenLeft | first.Open&OpenRight
		return append(left, right[1:]...)
	case last.openRight():
		last.Open &^= OpenRight
	case first.openLeft():
		right[0].Open &^= OpenLeft
	}

	return append(left, right...)
}
