package annotate

import (
	"regexp"
	"strings"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

// Kind tags the construct a single line was recognised as.
type Kind int

// Construct kinds, in the order they are tested.
const (
	None Kind = iota
	FunctionDef
	Loop
	Conditional
	ClassDef
	Import
	ErrorHandling
)

var kindNames = map[Kind]string{
	None:          "none",
	FunctionDef:   "function",
	Loop:          "loop",
	Conditional:   "conditional",
	ClassDef:      "class",
	Import:        "import",
	ErrorHandling: "error_handling",
}

var sentences = map[Kind]string{
	FunctionDef:   "This function organizes code for reuse",
	Loop:          "This loop repeats operations on multiple items",
	Conditional:   "This condition controls which code runs based on different situations",
	ClassDef:      "This class defines a blueprint for creating objects",
	Import:        "This imports external code to use in this file",
	ErrorHandling: "This handles errors that might occur",
}

// String returns a stable snake_case name for k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}

// Sentence returns the fixed explanation emitted for k, or "" for None.
func (k Kind) Sentence() string {
	return sentences[k]
}

// Kinds returns every construct kind in match order, excluding None.
func Kinds() []Kind {
	kinds := make([]Kind, len(constructs))
	for i, c := range constructs {
		kinds[i] = c.kind
	}
	return kinds
}

var (
	jsEmptyCall  = regexp.MustCompile(`\w+\s*\(\s*\)\s*\{`)
	jsAssignFunc = regexp.MustCompile(`^\s*\w+\s*=\s*function`)
	typedMethod  = regexp.MustCompile(`\w+\s+\w+\s*\([^)]*\)\s*(\{|$)`)
)

// construct pairs a kind with the predicate that selects it.
type construct struct {
	kind  Kind
	match func(line string, l lang.Label) bool
}

// constructs is evaluated first-match-wins against a trimmed line.
var constructs = []construct{
	{kind: FunctionDef, match: isFunctionDef},
	{kind: Loop, match: func(line string, _ lang.Label) bool {
		return lang.ContainsAny(line, "for ", "while ", "forEach", ".map(", ".reduce(", ".filter(")
	}},
	{kind: Conditional, match: func(line string, _ lang.Label) bool {
		return lang.ContainsAny(line, "if ", "else ", "switch ", "case ", " ? ") ||
			strings.HasPrefix(line, "?")
	}},
	{kind: ClassDef, match: func(line string, _ lang.Label) bool {
		return strings.Contains(line, "class ")
	}},
	{kind: Import, match: isImport},
	{kind: ErrorHandling, match: func(line string, _ lang.Label) bool {
		return lang.ContainsAny(line, "try ", "catch ", "except ", "finally ", "throw ", "throws ", "raise ")
	}},
}

func isFunctionDef(line string, l lang.Label) bool {
	switch l {
	case lang.JavaScript, lang.Unknown:
		return strings.Contains(line, "function ") ||
			jsEmptyCall.MatchString(line) ||
			strings.Contains(line, "=>") ||
			jsAssignFunc.MatchString(line)
	case lang.Python:
		return strings.Contains(line, "def ")
	case lang.Java, lang.Cpp:
		return typedMethod.MatchString(line)
	}
	return false
}

func isImport(line string, l lang.Label) bool {
	switch l {
	case lang.JavaScript, lang.Unknown:
		return lang.ContainsAny(line, "import ", "require(")
	case lang.Python:
		return lang.ContainsAny(line, "import ", "from ")
	case lang.Java:
		return strings.Contains(line, "import ")
	case lang.Cpp:
		return strings.Contains(line, "#include")
	}
	return false
}

// Classify returns the first construct kind whose predicate matches the
// trimmed line, or None.
func Classify(trimmed string, l lang.Label) Kind {
	for _, c := range constructs {
		if c.match(trimmed, l) {
			return c.kind
		}
	}
	return None
}
