// Package analyzer assembles language classification, line annotation and
// suggestions into a single analysis result, and exposes it behind a
// cancellable asynchronous boundary.
package analyzer

import (
	"context"

	"github.com/blackwell-systems/codecommenter/internal/annotate"
	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

// Result is the outcome of one analysis. The caller owns it.
type Result struct {
	Language    lang.Label           `json:"language"`
	Comments    string               `json:"comments"`
	Suggestions string               `json:"suggestions"`
	Items       []suggest.Suggestion `json:"items"`
}

type options struct {
	numbering suggest.Numbering
	language  lang.Label
	delay     Delay
}

// Option customises an analysis.
type Option func(*options)

// WithNumbering selects how suggestions are numbered in the report.
func WithNumbering(n suggest.Numbering) Option {
	return func(o *options) { o.numbering = n }
}

// WithLanguage skips classification and annotates as l. The empty label
// restores automatic classification.
func WithLanguage(l lang.Label) Option {
	return func(o *options) { o.language = l }
}

// WithDelay sets the latency applied before an asynchronous result becomes
// available. It has no effect on Run.
func WithDelay(d Delay) Option {
	return func(o *options) {
		if d != nil {
			o.delay = d
		}
	}
}

func defaultOptions() options {
	return options{numbering: suggest.NumberingFixed, delay: NoDelay()}
}

func (o options) with(opts []Option) options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// engine holds only the read-only rule catalog and is shared by all calls.
var engine = suggest.NewEngine()

// Run classifies text once, then annotates it and generates suggestions
// using that label. It never fails.
func Run(text string, opts ...Option) Result {
	return run(text, defaultOptions().with(opts))
}

func run(text string, o options) Result {
	label := o.language
	if label == "" {
		label = lang.Classify(text)
	}
	items := engine.Run(&suggest.Input{Text: text, Language: label})
	return Result{
		Language:    label,
		Comments:    annotate.Annotate(text, label),
		Suggestions: suggest.Render(items, o.numbering),
		Items:       items,
	}
}

// Analyzer runs analyses behind an injectable delay.
type Analyzer struct {
	opts options
}

// New creates an Analyzer. Options given here apply to every call and can be
// overridden per call.
func New(opts ...Option) *Analyzer {
	return &Analyzer{opts: defaultOptions().with(opts)}
}

// Analyze waits for the configured delay and returns the result. The only
// error is ctx.Err() when the caller abandons the analysis first.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts ...Option) (Result, error) {
	o := a.opts.with(opts)
	if err := o.delay.Wait(ctx); err != nil {
		return Result{}, err
	}
	return run(text, o), nil
}
