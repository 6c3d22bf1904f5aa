package algorithm

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

// DefaultQueueMaxIterations bounds the queue search.
const DefaultQueueMaxIterations = 1000

// Options tune how input is parsed and how far bounded searches may run.
// The zero value is usable.
type Options struct {
	// Strict rejects malformed tokens instead of dropping them.
	Strict bool
	// QueueMaxIterations bounds the queue search; zero means the default.
	QueueMaxIterations int
}

func (o Options) queueMaxIterations() int {
	if o.QueueMaxIterations <= 0 {
		return DefaultQueueMaxIterations
	}
	return o.QueueMaxIterations
}

func (o Options) parse(input string) ([]int64, error) {
	if o.Strict {
		return trace.ParseInputStrict(input)
	}
	return trace.ParseInput(input), nil
}

// Simulate parses input and replays the algorithm registered under id.
// It is pure: the same arguments always produce an identical trace. On any
// failure the returned trace is empty and err describes the problem; no
// failure is fatal.
func Simulate(id ID, input string, opts Options) (trace.Trace, error) {
	p, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return p.Simulate(input, opts)
}

// Simulate replays p over input.
func (p Problem) Simulate(input string, opts Options) (trace.Trace, error) {
	var nums []int64
	if p.TakesInput {
		var err error
		nums, err = opts.parse(input)
		if err != nil {
			return nil, errors.NewInputShapeError(string(p.ID), "integers separated by whitespace").WithCause(err)
		}
	}
	tr, err := p.simulate(nums, opts)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// joinInts renders nums space-separated, the way the programs print them.
func joinInts(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, " ")
}
