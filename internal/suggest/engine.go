package suggest

// Engine evaluates every rule against an Input and collects the ones that
// fire.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the built-in catalog.
func NewEngine() *Engine {
	return &Engine{rules: Rules()}
}

// Run returns the fired rules in slot order.
func (e *Engine) Run(in *Input) []Suggestion {
	var fired []Suggestion
	for _, rule := range e.rules {
		if rule.Applies(in) {
			fired = append(fired, Suggestion{
				Slot:     rule.Slot,
				Category: rule.Category,
				Message:  rule.Message,
			})
		}
	}
	return fired
}
