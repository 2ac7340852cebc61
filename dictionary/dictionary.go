// SPDX-License-Identifier: MIT
// Package dictionary supplies the ordered word lists a ladder is built from.
//
// Three sources are available:
//
//   - Embedded: the built-in four-letter list compiled into the binary.
//   - LoadFile: a newline-separated word file (blank and '#' lines ignored).
//   - System:   the host's word list (/usr/share/dict/words and friends).
//
// Every source lower-cases words and preserves a deterministic order, which
// fixes neighbor order in the word graph and therefore which of several
// equally short ladders is returned.
package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Source names accepted by Open besides a file path.
const (
	SourceEmbedded = "embedded"
	SourceSystem   = "system"
)

// EmbeddedLength is the word length of the built-in list.
const EmbeddedLength = 4

var (
	// ErrEmpty is returned when a source yields no words.
	ErrEmpty = errors.New("dictionary: no words")

	// ErrMixedLength is returned when words of different lengths are mixed.
	ErrMixedLength = errors.New("dictionary: words differ in length")

	// ErrNoSystemDictionary is returned when no system word list is found.
	ErrNoSystemDictionary = errors.New("dictionary: system word list not found")
)

//go:embed words4.txt
var embedded string

// Embedded returns the built-in four-letter dictionary in file order.
func Embedded() []string {
	words, _ := parse(strings.NewReader(embedded))
	return words
}

// Open resolves a source name: SourceEmbedded, SourceSystem, or a file path.
// length filters the system list and is ignored for the other sources;
// a length <= 0 means the embedded word length.
func Open(source string, length int) ([]string, error) {
	switch source {
	case "", SourceEmbedded:
		return Embedded(), nil
	case SourceSystem:
		if length <= 0 {
			length = EmbeddedLength
		}
		return System(length)
	default:
		return LoadFile(source)
	}
}

// WordLength validates that words is non-empty and uniform and returns the
// common length in runes.
func WordLength(words []string) (int, error) {
	if len(words) == 0 {
		return 0, ErrEmpty
	}
	n := utf8.RuneCountInString(words[0])
	for _, w := range words[1:] {
		if m := utf8.RuneCountInString(w); m != n {
			return 0, fmt.Errorf("%w: %q has %d letters, %q has %d", ErrMixedLength, words[0], n, w, m)
		}
	}
	return n, nil
}

// FilterLength keeps the words with exactly n runes, preserving order.
func FilterLength(words []string, n int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) == n {
			out = append(out, w)
		}
	}
	return out
}
