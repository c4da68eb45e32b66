// Package diff renders line diffs between two texts.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified returns a unified diff of a against b, or "" when they are equal.
// Output longer than 10,000 lines ends with a truncation marker.
func Unified(a, b []byte, aLabel, bLabel string) string {
	if bytes.Equal(a, b) {
		return ""
	}

	dmp := diffmatchpatch.New()
	aChars, bChars, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", aLabel)
	fmt.Fprintf(&buf, "+++ %s\n", bLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(a), countLines(b))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

// Changed counts the deleted and inserted lines between a and b.
func Changed(a, b []byte) (deleted, inserted int) {
	dmp := diffmatchpatch.New()
	aChars, bChars, lines := dmp.DiffLinesToChars(string(a), string(b))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			deleted += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			inserted += len(splitLines(d.Text))
		}
	}
	return deleted, inserted
}

// splitLines splits text into lines, dropping the empty tail after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func countLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, []byte("\n"))
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}
