// Package suggest provides the improvement suggestion engine and rule catalog.
package suggest

import "github.com/blackwell-systems/codecommenter/internal/lang"

// Suggestion categories.
const (
	CategoryDocumentation = "documentation"
	CategoryDebugging     = "debugging"
	CategoryRobustness    = "robustness"
	CategoryStructure     = "structure"
	CategoryNaming        = "naming"
	CategoryMaintenance   = "maintenance"
	CategoryIdiom         = "idiom"
)

// Suggestion is a single fired rule.
type Suggestion struct {
	// Slot is the rule's fixed position in the catalog, starting at 1.
	Slot     int    `json:"slot"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Input is the whole-text view every rule is evaluated against.
type Input struct {
	Text     string     `json:"text"`
	Language lang.Label `json:"language"`
}

// Rule pairs a fixed message with the predicate that fires it.
type Rule struct {
	Slot     int
	Category string
	Message  string
	Applies  func(in *Input) bool
}
