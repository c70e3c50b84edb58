package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

const jsExample = `function sortArray(arr) {
  // Implementation of quick sort
  if (arr.length <= 1) {
    return arr;
  }

  const pivot = arr[0];
  const left = [];
  const right = [];

  for (let i = 1; i < arr.length; i++) {
    if (arr[i] < pivot) {
      left.push(arr[i]);
    } else {
      right.push(arr[i]);
    }
  }

  return [...sortArray(left), pivot, ...sortArray(right)];
}

// Example usage
const unsortedArray = [5, 3, 7, 6, 2, 9];
console.log(sortArray(unsortedArray));`

const pyExample = `def calculate_factorial(n):
    """Calculate the factorial of a number."""
    if n == 0 or n == 1:
        return 1
    else:
        return n * calculate_factorial(n-1)

# Calculate factorial of 5
result = calculate_factorial(5)
print(f"The factorial of 5 is {result}")`

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		l    lang.Label
		want Kind
	}{
		{"function foo(a) {", lang.JavaScript, FunctionDef},
		{"start() {", lang.JavaScript, FunctionDef},
		{"const f = (x) => x * 2;", lang.JavaScript, FunctionDef},
		{"handler = function(e) {", lang.Unknown, FunctionDef},
		{"def run(self):", lang.Python, FunctionDef},
		{"public int add(int a, int b) {", lang.Java, FunctionDef},
		{"int main()", lang.Cpp, FunctionDef},
		{"for (let i = 0; i < n; i++) {", lang.JavaScript, Loop},
		{"while x > 0:", lang.Python, Loop},
		{"items.forEach(fn);", lang.JavaScript, Loop},
		{"xs.map(f);", lang.JavaScript, Loop},
		{"if (a) {", lang.JavaScript, Conditional},
		{"} else {", lang.JavaScript, Conditional},
		{"switch (x) {", lang.JavaScript, Conditional},
		{"case 1:", lang.Java, Conditional},
		{"? a : b", lang.JavaScript, Conditional},
		{"x = a ? b : c;", lang.JavaScript, Conditional},
		{"class Animal:", lang.Python, ClassDef},
		{"import os", lang.Python, Import},
		{"from typing import List", lang.Python, Import},
		{"const fs = require('fs');", lang.JavaScript, Import},
		{"import java.util.List;", lang.Java, Import},
		{"#include <vector>", lang.Cpp, Import},
		{"try {", lang.Java, ErrorHandling},
		{"try:", lang.Python, None},
		{"} catch (e) {", lang.JavaScript, ErrorHandling},
		{"except ValueError:", lang.Python, ErrorHandling},
		{"except:", lang.Python, None},
		{"raise ValueError('bad')", lang.Python, ErrorHandling},
		{"return x;", lang.JavaScript, None},
		{"", lang.JavaScript, None},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.line, tt.l), "line %q as %s", tt.line, tt.l)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// A loop header inside a function definition line is reported as a function.
	assert.Equal(t, FunctionDef, Classify("function f() { for (x of y) {} }", lang.JavaScript))
	// Loop precedes conditional.
	assert.Equal(t, Loop, Classify("while (x) if (y) z();", lang.JavaScript))
	// "#include" is only an import for C++.
	assert.Equal(t, None, Classify("#include <x>", lang.Python))
}

func TestAnnotate_Empty(t *testing.T) {
	got := Annotate("", lang.Unknown)
	assert.Equal(t, "// Code analyzed as Unknown code\n// Here's what this code does:\n\n", got)
}

func TestAnnotate_PythonLeader(t *testing.T) {
	got := Annotate("def foo():\n    pass", lang.Python)
	want := "# Code analyzed as Python code\n" +
		"# Here's what this code does:\n\n" +
		"def foo():\n" +
		"# This function organizes code for reuse\n" +
		"    pass"
	assert.Equal(t, want, got)
}

func TestAnnotate_LastLineNeverAnnotated(t *testing.T) {
	got := Annotate("x = 1\nfor (;;) {", lang.JavaScript)
	assert.True(t, strings.HasSuffix(got, "for (;;) {"), "got %q", got)
	assert.NotContains(t, got, Loop.Sentence())

	single := Annotate("for (let i=0;i<3;i++) { console.log(i); }", lang.JavaScript)
	assert.Equal(t, Header(lang.JavaScript)+"for (let i=0;i<3;i++) { console.log(i); }", single)
}

func TestAnnotate_TrailingNewline(t *testing.T) {
	got := Annotate("if x:\n", lang.Python)
	assert.Equal(t, Header(lang.Python)+"if x:\n# "+Conditional.Sentence()+"\n", got)
}

func TestAnnotate_PreservesEveryLine(t *testing.T) {
	for _, tc := range []struct {
		text string
		l    lang.Label
	}{
		{jsExample, lang.JavaScript},
		{pyExample, lang.Python},
		{"\n\n\n", lang.Unknown},
	} {
		got := Annotate(tc.text, tc.l)
		leader := tc.l.CommentLeader()
		synthesized := 0
		for _, line := range strings.Split(got, "\n") {
			for _, k := range Kinds() {
				if line == leader+" "+k.Sentence() {
					synthesized++
				}
			}
		}
		outLines := len(strings.Split(got, "\n"))
		inLines := len(strings.Split(tc.text, "\n"))
		assert.Equal(t, inLines, outLines-headerLines-synthesized)
	}
}

func TestAnnotate_JavaScriptExample(t *testing.T) {
	got := Annotate(jsExample, lang.JavaScript)
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 6)
	assert.Equal(t, "function sortArray(arr) {", lines[3])
	assert.Equal(t, "// "+FunctionDef.Sentence(), lines[4])
	// The source comment line is not a construct.
	assert.Equal(t, "  // Implementation of quick sort", lines[5])
	assert.Equal(t, "  if (arr.length <= 1) {", lines[6])
	assert.Equal(t, "// "+Conditional.Sentence(), lines[7])

	counts := Stats(jsExample, lang.JavaScript)
	assert.Equal(t, 1, counts[Loop])
	assert.Equal(t, 3, counts[Conditional])
}

func TestStrip_RoundTrip(t *testing.T) {
	inputs := []struct {
		text string
		l    lang.Label
	}{
		{"", lang.Unknown},
		{jsExample, lang.JavaScript},
		{pyExample, lang.Python},
		{"if x:\n", lang.Python},
		{"\n\nfor y in z:\n  pass\n", lang.Python},
		// A source line that looks exactly like a synthesized comment.
		{"x = 1\n// This loop repeats operations on multiple items\ny = 2", lang.JavaScript},
	}
	for _, in := range inputs {
		assert.Equal(t, in.text, Strip(Annotate(in.text, in.l), in.l))
	}
}

func TestStrip_WithoutHeaderUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", Strip("plain text", lang.JavaScript))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "error_handling", ErrorHandling.String())
	assert.Equal(t, "none", Kind(99).String())
	assert.Empty(t, None.Sentence())
}

func TestDetectHeader(t *testing.T) {
	for _, l := range lang.Labels() {
		got, ok := DetectHeader(Annotate("x", l))
		assert.True(t, ok, l)
		assert.Equal(t, l, got)
	}

	_, ok := DetectHeader("plain source")
	assert.False(t, ok)
}
