package algorithm

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

const target = 3

func simulateFindThree(nums []int64, _ Options) (trace.Trace, error) {
	if len(nums) < handSize {
		return nil, errors.NewInputShapeError(string(FindThree), "10 integers").WithGot(len(nums))
	}

	var b trace.Builder
	vars := trace.NewVars().Bool("found", false).Int("i", 1)
	b.Add(0, "found = false", vars)

	for idx, num := range nums[:handSize] {
		pos := idx + 1
		hl := trace.WithHighlights(idx)

		vars = vars.Int("i", int64(pos)).Int("num", num)
		b.Add(3, fmt.Sprintf("is number %d (%d) equal to 3?", pos, num), vars, hl)

		if num == target {
			vars = vars.Bool("found", true)
			b.Add(4, fmt.Sprintf("found 3 at position %d", pos), vars, hl,
				trace.WithOutput(strconv.Itoa(pos)))
			return b.Trace(), nil
		}
		b.Add(8, fmt.Sprintf("%d is not 3, keep looking", num), vars, hl)
	}

	b.Add(9, "no 3 in the input, print No", vars, trace.WithOutput("No"))
	return b.Trace(), nil
}
