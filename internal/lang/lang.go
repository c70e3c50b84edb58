// Package lang provides coarse, substring-based source language classification.
package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Label is the coarse language assigned to a block of source text.
type Label string

// Supported labels.
const (
	JavaScript Label = "JavaScript"
	Python     Label = "Python"
	Java       Label = "Java"
	Cpp        Label = "C++"
	Unknown    Label = "Unknown"
)

// ErrUnknownLabel is returned by ParseLabel for unrecognised names.
var ErrUnknownLabel = errors.New("unknown language")

// marker pairs a label with the substrings that select it.
type marker struct {
	label   Label
	needles []string
}

// catalog is evaluated in order; the first label with any needle present wins.
// JavaScript comes first, so mixed JavaScript/Python text is always JavaScript.
var catalog = []marker{
	{label: JavaScript, needles: []string{"function", "const", "let"}},
	{label: Python, needles: []string{"def ", "import ", "class "}},
	{label: Java, needles: []string{"public class", "public static void main"}},
	{label: Cpp, needles: []string{"#include", "std::"}},
}

// Classify returns the label for text. It never fails; text that matches no
// marker, including the empty string, is Unknown.
func Classify(text string) Label {
	for _, m := range catalog {
		if ContainsAny(text, m.needles...) {
			return m.label
		}
	}
	return Unknown
}

// CommentLeader returns the token that starts a line comment for l.
func (l Label) CommentLeader() string {
	if l == Python {
		return "#"
	}
	return "//"
}

// String implements fmt.Stringer.
func (l Label) String() string {
	return string(l)
}

// Labels returns every label in classification order, followed by Unknown.
func Labels() []Label {
	labels := make([]Label, 0, len(catalog)+1)
	for _, m := range catalog {
		labels = append(labels, m.label)
	}
	return append(labels, Unknown)
}

// aliases maps lower-cased names accepted by ParseLabel.
var aliases = map[string]Label{
	"javascript": JavaScript,
	"js":         JavaScript,
	"python":     Python,
	"py":         Python,
	"java":       Java,
	"c++":        Cpp,
	"cpp":        Cpp,
	"unknown":    Unknown,
}

// ParseLabel resolves a user-supplied language name, case-insensitively.
func ParseLabel(s string) (Label, error) {
	l, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
	return l, nil
}

// ContainsAny reports whether s contains at least one of the substrings.
func ContainsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
