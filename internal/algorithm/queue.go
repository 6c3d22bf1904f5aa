package algorithm

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

// Candidates in (queueQuietFrom, queueQuietTo] are checked without
// recording steps; one elision step stands in for all of them.
const (
	queueQuietFrom = 49
	queueQuietTo   = 290
	queueElideAt   = 56
)

func queueRemaindersHold(x int64) bool {
	return x%2 == 1 && x%3 == 1 && x%4 == 1 && x%5 == 1 && x%6 == 1
}

func simulateQueue(_ []int64, opts Options) (trace.Trace, error) {
	limit := opts.queueMaxIterations()

	var b trace.Builder
	x := int64(7)
	vars := trace.NewVars().Int("x", x)
	b.Add(0, "start from x = 7", vars)

	for iter := 0; iter < limit; iter++ {
		recorded := x <= queueQuietFrom || x > queueQuietTo
		cond := queueRemaindersHold(x)

		if recorded {
			vars = vars.Int("x", x).Bool("cond", cond)
			b.Add(3, fmt.Sprintf("does %d leave remainder 1 for 2..6?", x), vars)
		}

		if cond {
			if recorded {
				b.Add(6, fmt.Sprintf("yes, is %d a multiple of 7?", x), vars)
			}
			if x%7 == 0 {
				vars = vars.Int("x", x).Bool("cond", cond)
				b.Add(7, fmt.Sprintf("found the team size: %d", x), vars,
					trace.WithOutput(strconv.FormatInt(x, 10)))
				return b.Trace(), nil
			}
		} else if recorded {
			b.Add(11, "not satisfied, x += 7", vars)
		}

		if x == queueElideAt {
			vars = trace.NewVars().Text("x", "...")
			b.Add(11, "... intermediate checks omitted ...", vars)
		}
		x += 7
	}

	return nil, errors.NewSearchExhaustedError(string(Queue), limit).WithLastValue(x - 7)
}
