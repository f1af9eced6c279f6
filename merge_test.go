package wordsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		left  Tokens
		right Tokens
		want  Tokens
	}{
		{
			name: "both empty",
			want: nil,
		},
		{
			name:  "left empty clears open left",
			right: Tokens{{Text: "kind", Open: OpenLeft | OpenRight}},
			want:  Tokens{{Text: "kind", Open: OpenRight}},
		},
		{
			name: "right empty clears open right",
			left: Tokens{{Text: "man", Open: OpenLeft | OpenRight}},
			want: Tokens{{Text: "man", Open: OpenLeft}},
		},
		{
			name:  "stitch",
			left:  Tokens{{Text: "one"}, {Text: "man", Open: OpenRight}},
			right: Tokens{{Text: "kind", Open: OpenLeft}, {Text: "leap"}},
			want:  Tokens{{Text: "one"}, {Text: "mankind"}, {Text: "leap"}},
		},
		{
			name:  "stitch keeps outer markers",
			left:  Tokens{{Text: "ma", Open: OpenLeft | OpenRight}},
			right: Tokens{{Text: "nki", Open: OpenLeft | OpenRight}},
			want:  Tokens{{Text: "manki", Open: OpenLeft | OpenRight}},
		},
		{
			name:  "separator starts right",
			left:  Tokens{{Text: "man", Open: OpenRight}},
			right: Tokens{{Text: "one"}},
			want:  Tokens{{Text: "man"}, {Text: "one"}},
		},
		{
			name:  "separator ends left",
			left:  Tokens{{Text: "man"}},
			right: Tokens{{Text: "one", Open: OpenLeft}},
			want:  Tokens{{Text: "man"}, {Text: "one"}},
		},
		{
			name:  "closed",
			left:  Tokens{{Text: "a", Open: OpenLeft}},
			right: Tokens{{Text: "b", Open: OpenRight}},
			want:  Tokens{{Text: "a", Open: OpenLeft}, {Text: "b", Open: OpenRight}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, merge(tt.left, tt.right))
		})
	}
}

func TestTokens_Close(t *testing.T) {
	assert.Empty(t, Tokens{}.close())
	assert.Nil(t, Tokens(nil).close())

	ts := Tokens{{Text: "a", Open: OpenLeft | OpenRight}}
	assert.Equal(t, Tokens{{Text: "a"}}, ts.close())

	ts = Tokens{{Text: "a", Open: OpenLeft}, {Text: "b"}, {Text: "c", Open: OpenRight}}
	assert.Equal(t, Tokens{{Text: "a"}, {Text: "b"}, {Text: "c"}}, ts.close())
}

func TestOpen_String(t *testing.T) {
	assert.Equal(t, "closed", Open(0).String())
	assert.Equal(t, "open-left", OpenLeft.String())
	assert.Equal(t, "open-right", OpenRight.String())
	assert.Equal(t, "open-both", (OpenLeft | OpenRight).String())
}
