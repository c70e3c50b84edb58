// Package annotate interleaves fixed explanatory comments with source lines.
package annotate

import (
	"strings"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

// headerLines is the number of lines Annotate writes before the source.
const headerLines = 3

// Line is one line of the input, in input order.
type Line struct {
	Index   int
	Raw     string
	Trimmed string
}

// Lines splits text on "\n", keeping blank lines. The empty string yields a
// single empty line.
func Lines(text string) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Index: i, Raw: p, Trimmed: strings.TrimSpace(p)}
	}
	return lines
}

// Header returns the preamble Annotate writes for l.
func Header(l lang.Label) string {
	leader := l.CommentLeader()
	return leader + " Code analyzed as " + l.String() + " code\n" +
		leader + " Here's what this code does:\n\n"
}

// Annotate returns text with a header and a comment after every line that
// matches a construct. The last line is written without a trailing newline
// and is never classified.
func Annotate(text string, l lang.Label) string {
	leader := l.CommentLeader()
	lines := Lines(text)

	var sb strings.Builder
	sb.Grow(len(text) + 64*len(lines))
	sb.WriteString(Header(l))

	last := len(lines) - 1
	for _, line := range lines[:last] {
		sb.WriteString(line.Raw)
		sb.WriteByte('\n')
		if kind := Classify(line.Trimmed, l); kind != None {
			sb.WriteString(commentLine(leader, kind))
		}
	}
	sb.WriteString(lines[last].Raw)
	return sb.String()
}

func commentLine(leader string, k Kind) string {
	return leader + " " + k.Sentence() + "\n"
}

// Counts holds how many lines were annotated with each construct kind.
type Counts map[Kind]int

// Total returns the number of annotated lines.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Stats classifies every line Annotate would classify and counts the kinds.
func Stats(text string, l lang.Label) Counts {
	counts := make(Counts)
	lines := Lines(text)
	for _, line := range lines[:len(lines)-1] {
		if kind := Classify(line.Trimmed, l); kind != None {
			counts[kind]++
		}
	}
	return counts
}
