// Package render formats a word ladder for the terminal.
//
// Letters that already match the stop word at the same position are
// highlighted, words are joined with " -> ", and output ends at the stop word.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator joins consecutive ladder words.
const Separator = " -> "

var matchStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("2")). // Green
	Bold(true)

// Options controls styling.
type Options struct {
	// Color enables highlighting of letters matching the stop word.
	Color bool
}

// Path writes path followed by a newline.
func Path(w io.Writer, path []string, stop string, opts Options) error {
	_, err := fmt.Fprintln(w, Format(path, stop, opts))
	return err
}

// Format renders path as a single line without a trailing newline.
func Format(path []string, stop string, opts Options) string {
	stopRunes := []rune(stop)
	var b strings.Builder
	for i, word := range path {
		if i > 0 {
			b.WriteString(Separator)
		}
		for j, r := range []rune(word) {
			if opts.Color && j < len(stopRunes) && r == stopRunes[j] {
				b.WriteString(matchStyle.Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		if word == stop {
			break
		}
	}
	return b.String()
}

// Report is the machine-readable form of a solved ladder.
type Report struct {
	Start string   `json:"start"`
	Stop  string   `json:"stop"`
	Steps int      `json:"steps"`
	Path  []string `json:"path"`
}

// JSON writes path as an indented Report.
func JSON(w io.Writer, path []string) error {
	r := Report{Path: path}
	if len(path) > 0 {
		r.Start = path[0]
		r.Stop = path[len(path)-1]
		r.Steps = len(path) - 1
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
