// Package trace defines the step-generation model shared by the simulators,
// the player, and the presentation layer.
//
// A [Step] is one observable moment of an algorithm run: the source line
// being executed, a narration, a snapshot of named variables, the array
// positions to emphasise, and the console text printed so far. A [Trace] is
// the ordered list of Steps one simulator run produces.
//
// Steps are immutable. [NewStep] deep-copies everything it is given and
// every accessor returns a copy, so neither the simulator that built a Step
// nor a consumer reading it can change what an earlier Step shows.
package trace

import (
	"encoding/json"
	"slices"
)

// PlaceholderDescription is the narration of the step shown before any
// trace is loaded.
const PlaceholderDescription = "initializing"

// Step is one immutable snapshot of algorithm progress.
type Step struct {
	line        int
	description string
	vars        Vars
	highlights  []int
	output      string
}

// StepOption configures optional Step fields.
type StepOption func(*Step)

// WithHighlights marks array positions the presentation should emphasise.
func WithHighlights(indices ...int) StepOption {
	return func(s *Step) {
		s.highlights = slices.Clone(indices)
	}
}

// WithOutput sets the full console text produced up through this step.
func WithOutput(output string) StepOption {
	return func(s *Step) {
		s.output = output
	}
}

// NewStep builds a Step. The variables and highlights are copied, so later
// changes by the caller are never visible through the returned Step.
// No validation is performed.
func NewStep(line int, description string, vars Vars, opts ...StepOption) Step {
	s := Step{
		line:        line,
		description: description,
		vars:        vars.Clone(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.highlights == nil {
		s.highlights = []int{}
	}
	return s
}

// Placeholder returns the step a player reports while its trace is empty.
func Placeholder() Step {
	return Step{line: -1, description: PlaceholderDescription, highlights: []int{}}
}

// Line returns the 0-based source line index, or -1 for the placeholder.
func (s Step) Line() int { return s.line }

// Description returns the human-readable narration.
func (s Step) Description() string { return s.description }

// Vars returns a copy of the variable snapshot.
func (s Step) Vars() Vars { return s.vars.Clone() }

// Var returns one variable from the snapshot.
func (s Step) Var(name string) (Value, bool) { return s.vars.Get(name) }

// Highlights returns a copy of the highlighted indices.
func (s Step) Highlights() []int { return slices.Clone(s.highlights) }

// IsHighlighted reports whether index i is highlighted.
func (s Step) IsHighlighted(i int) bool { return slices.Contains(s.highlights, i) }

// Output returns the console text through this step, or "" if the step
// produced no output.
func (s Step) Output() string { return s.output }

// HasOutput reports whether the step carries console text.
func (s Step) HasOutput() bool { return s.output != "" }

// Equal reports whether two steps carry identical fields.
func (s Step) Equal(o Step) bool {
	return s.line == o.line &&
		s.description == o.description &&
		s.output == o.output &&
		slices.Equal(s.highlights, o.highlights) &&
		s.vars.Equal(o.vars)
}

type stepJSON struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
	Vars        Vars   `json:"vars"`
	Highlights  []int  `json:"highlights"`
	Output      string `json:"output,omitempty"`
}

// MarshalJSON encodes the step with its variables in declaration order.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepJSON{
		Line:        s.line,
		Description: s.description,
		Vars:        s.vars,
		Highlights:  s.Highlights(),
		Output:      s.output,
	})
}
