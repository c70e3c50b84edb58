package suggest

import (
	"strings"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

var (
	commentMarkers  = []string{"//", "/*", "#"}
	loopMarkers     = []string{"for", "while"}
	functionMarkers = []string{"function", "def ", "void "}
	errorMarkers    = []string{"try", "catch", "except", "finally", "throw", "throws", "raise"}
	pendingMarkers  = []string{"TODO", "FIXME"}
)

var jsDebugCalls = []string{"console.log", "console.debug", "console.info", "console.warn", "console.error", "alert("}

// debugCalls lists debug-output markers per language. Unknown text is
// treated as JavaScript.
var debugCalls = map[lang.Label][]string{
	lang.JavaScript: jsDebugCalls,
	lang.Unknown:    jsDebugCalls,
	lang.Python:     {"print(", "logging.", "logger.", "pdb."},
	lang.Java:       {"System.out.print", "System.err.print", "logger.", "Log."},
	lang.Cpp:        {"cout", "printf", "std::cerr", "std::cout"},
}

// catalog is the fixed, ordered rule set. Slots never change.
var catalog = []Rule{
	{
		Slot:     1,
		Category: CategoryDocumentation,
		Message:  "Add descriptive comments to explain the purpose of key functions and complex logic",
		Applies:  MissingComments,
	},
	{
		Slot:     2,
		Category: CategoryDebugging,
		Message:  "Consider removing or disabling debug print statements before production deployment",
		Applies:  DebugStatements,
	},
	{
		Slot:     3,
		Category: CategoryRobustness,
		Message:  "Add error handling around critical operations, especially within loops",
		Applies:  UnguardedLoops,
	},
	{
		Slot:     4,
		Category: CategoryStructure,
		Message:  "Consider breaking complex functions into smaller, more focused ones for better readability",
		Applies:  Always,
	},
	{
		Slot:     5,
		Category: CategoryNaming,
		Message:  "Use meaningful variable names that clearly indicate their purpose",
		Applies:  Always,
	},
	{
		Slot:     6,
		Category: CategoryMaintenance,
		Message:  "Address TODO and FIXME comments before finalizing the code",
		Applies:  PendingMarkers,
	},
	{
		Slot:     7,
		Category: CategoryIdiom,
		Message:  "Consider using strict equality (===) instead of loose equality (==) in JavaScript",
		Applies:  LooseEquality,
	},
	{
		Slot:     8,
		Category: CategoryDocumentation,
		Message:  "Consider adding docstrings to functions to document their purpose and parameters",
		Applies:  MissingDocstrings,
	},
}

// Rules returns a copy of the rule catalog in slot order.
func Rules() []Rule {
	rules := make([]Rule, len(catalog))
	copy(rules, catalog)
	return rules
}

// MissingComments fires when the text has no comment marker at all.
func MissingComments(in *Input) bool {
	return !lang.ContainsAny(in.Text, commentMarkers...)
}

// DebugStatements fires when the text contains a debug-output call for its
// language.
func DebugStatements(in *Input) bool {
	return lang.ContainsAny(in.Text, debugCalls[in.Language]...)
}

// UnguardedLoops fires when the text loops but has no error-handling keyword
// anywhere.
func UnguardedLoops(in *Input) bool {
	return lang.ContainsAny(in.Text, loopMarkers...) && !lang.ContainsAny(in.Text, errorMarkers...)
}

// Always fires unconditionally.
func Always(*Input) bool {
	return true
}

// PendingMarkers fires on TODO or FIXME.
func PendingMarkers(in *Input) bool {
	return lang.ContainsAny(in.Text, pendingMarkers...)
}

// LooseEquality fires for JavaScript that never uses ===.
func LooseEquality(in *Input) bool {
	return in.Language == lang.JavaScript && !strings.Contains(in.Text, "===")
}

// MissingDocstrings fires for Python that defines functions but no
// constructor.
func MissingDocstrings(in *Input) bool {
	return in.Language == lang.Python &&
		lang.ContainsAny(in.Text, functionMarkers...) &&
		!strings.Contains(in.Text, "def __init__")
}
