// SPDX-License-Identifier: MIT

package dictionary

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	sysdict "github.com/jbowens/dictionary"
)

// System loads the host word list and keeps the purely alphabetic words of
// the given length, lower-cased and sorted.
func System(length int) ([]string, error) {
	d, err := sysdict.Default()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSystemDictionary, err)
	}
	return FromSource(d, length)
}

// FromSource extracts a ladder dictionary from any jbowens/dictionary source.
// The source's iteration order is unspecified, so the result is sorted.
func FromSource(d sysdict.Interface, length int) ([]string, error) {
	filtered := sysdict.Filter(d, func(w string) bool {
		return utf8.RuneCountInString(w) == length && isAlpha(w)
	})

	seen := make(map[string]struct{})
	words := make([]string, 0, len(filtered.Words()))
	for _, w := range filtered.Words() {
		w = strings.ToLower(w)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w of length %d in system word list", ErrEmpty, length)
	}
	sort.Strings(words)
	return words, nil
}

func isAlpha(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}
