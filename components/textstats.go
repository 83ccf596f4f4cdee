package components

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
)

// TextStats summarizes a piece of generated text
type TextStats struct {
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Characters int `json:"characters"`
}

// Stats returns word, sentence and user-perceived character counts of text
func Stats(text string) TextStats {
	p := []byte(text)
	return TextStats{
		Words:      CountWords(text),
		Sentences:  countNonBlank(sentences.SegmentAll(p)),
		Characters: len(graphemes.SegmentAll(p)),
	}
}

// CountWords counts the word segments of text, skipping whitespace and punctuation
func CountWords(text string) int {
	var n int
	for _, seg := range words.SegmentAll([]byte(text)) {
		if isWord(seg) {
			n++
		}
	}
	return n
}

func isWord(seg []byte) bool {
	for len(seg) > 0 {
		r, size := utf8.DecodeRune(seg)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		seg = seg[size:]
	}
	return false
}

func countNonBlank(segs [][]byte) int {
	var n int
	for _, seg := range segs {
		for _, r := range string(seg) {
			if !unicode.IsSpace(r) {
				n++
				break
			}
		}
	}
	return n
}
