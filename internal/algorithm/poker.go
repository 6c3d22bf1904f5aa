package algorithm

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

const (
	handSize  = 10
	bustAbove = 10
)

func simulatePoker(nums []int64, _ Options) (trace.Trace, error) {
	if len(nums) < handSize {
		return nil, errors.NewInputShapeError(string(Poker), "10 card values").WithGot(len(nums))
	}

	var (
		b   trace.Builder
		sum int64
	)
	vars := trace.NewVars().Int("sum", 0).Int("i", 0).Absent("card")
	b.Add(0, "start with an empty hand", vars)

	for i, card := range nums[:handSize] {
		hl := trace.WithHighlights(i)

		vars = vars.Int("i", int64(i)).Int("card", card)
		b.Add(2, fmt.Sprintf("draw card %d: %d", i+1, card), vars, hl)

		next := sum + card
		vars = vars.Int("nextSum", next)
		b.Add(4, fmt.Sprintf("%d + %d = %d", sum, card, next), vars, hl)

		// sum never exceeds bustAbove here, so this cannot overflow.
		if card > bustAbove-sum {
			b.Add(5, fmt.Sprintf("%d > %d, stop after %d cards", next, bustAbove, i), vars, hl,
				trace.WithOutput(strconv.Itoa(i)))
			return b.Trace(), nil
		}

		sum = next
		vars = vars.Int("sum", sum)
		b.Add(8, fmt.Sprintf("safe, sum = %d", sum), vars, hl)
	}

	b.Add(10, "all 10 cards taken without busting", vars, trace.WithOutput(strconv.Itoa(handSize)))
	return b.Trace(), nil
}

// firstTenCells renders the first ten input numbers, one cell each.
func firstTenCells(nums []int64) []string {
	nums = nums[:min(len(nums), handSize)]
	cells := make([]string, len(nums))
	for i, n := range nums {
		cells[i] = strconv.FormatInt(n, 10)
	}
	return cells
}
