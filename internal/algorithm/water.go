package algorithm

import (
	"fmt"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

// maxWaterCandidates caps how many bottle weights a single input may ask
// the simulator to try.
const maxWaterCandidates = 10000

func simulateWater(nums []int64, _ Options) (trace.Trace, error) {
	if len(nums) < 3 {
		return nil, errors.NewInputShapeError(string(Water), "three integers Y k n").WithGot(len(nums))
	}
	y, k, n := nums[0], nums[1], nums[2]
	if k <= 0 {
		return nil, errors.NewInputShapeError(string(Water), "a positive bottle count k").
			WithGot(len(nums)).
			WithCause(errors.NewValidationError("must be positive").WithField("k").WithValue(k))
	}
	if n/k > maxWaterCandidates {
		return nil, errors.NewInputShapeError(string(Water), fmt.Sprintf("at most %d candidate weights (n/k)", maxWaterCandidates)).
			WithGot(len(nums)).
			WithCause(errors.NewValidationError("too many candidates").WithField("n").WithValue(n))
	}

	var (
		b       trace.Builder
		weights []int64
		found   bool
	)
	vars := trace.NewVars().Int("Y", y).Int("k", k).Int("n", n).List("possible_weights", weights)
	b.Add(1, fmt.Sprintf("read Y = %d, k = %d, n = %d", y, k, n), vars)

	vars = vars.Bool("found", false)
	b.Add(2, "nothing found yet", vars)

	for bw := int64(1); bw <= n/k; bw++ {
		total := bw * k
		vars = vars.Int("bw", bw).Int("total", total)
		b.Add(5, fmt.Sprintf("try bw = %d: total = %d x %d = %d", bw, bw, k, total), vars)

		consumed := total - y
		vars = vars.Int("consumed", consumed)
		b.Add(6, fmt.Sprintf("consumed = %d - %d = %d", total, y, consumed), vars)

		if total < y {
			b.Add(7, fmt.Sprintf("%d < 0, cannot happen", consumed), vars,
				trace.WithOutput(joinInts(weights)))
			continue
		}
		found = true
		weights = append(weights, consumed)
		vars = vars.Bool("found", true).List("possible_weights", weights)
		b.Add(8, fmt.Sprintf("%d >= 0, print it", consumed), vars,
			trace.WithHighlights(len(weights)-1),
			trace.WithOutput(joinInts(weights)))
	}

	if !found {
		b.Add(12, "no bottle weight works, print -1", vars, trace.WithOutput("-1"))
		return b.Trace(), nil
	}
	b.Add(12, "done", vars, trace.WithOutput(joinInts(weights)))
	return b.Trace(), nil
}
