package trace

// Trace is the ordered sequence of Steps produced by one simulator run.
type Trace []Step

// Len returns the number of steps.
func (t Trace) Len() int { return len(t) }

// At returns the step at index i, or the placeholder when i is out of range.
func (t Trace) At(i int) Step {
	if i < 0 || i >= len(t) {
		return Placeholder()
	}
	return t[i]
}

// OutputAt returns the console text visible at index i: the output of the
// highest-indexed step at or before i that carries output. Outputs are
// cumulative, so the latest one wins rather than being concatenated.
func (t Trace) OutputAt(i int) string {
	if i >= len(t) {
		i = len(t) - 1
	}
	for ; i >= 0; i-- {
		if t[i].output != "" {
			return t[i].output
		}
	}
	return ""
}

// FinalOutput returns the console text at the end of the trace.
func (t Trace) FinalOutput() string {
	return t.OutputAt(len(t) - 1)
}

// Builder accumulates steps while a simulator replays an algorithm.
type Builder struct {
	steps Trace
}

// Add appends a step built from the given fields.
func (b *Builder) Add(line int, description string, vars Vars, opts ...StepOption) {
	b.steps = append(b.steps, NewStep(line, description, vars, opts...))
}

// Len returns the number of steps added so far.
func (b *Builder) Len() int { return len(b.steps) }

// Trace returns the accumulated steps.
func (b *Builder) Trace() Trace {
	return b.steps
}
