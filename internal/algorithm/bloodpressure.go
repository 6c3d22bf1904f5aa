package algorithm

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

const (
	systolicMin  = 90
	systolicMax  = 140
	diastolicMin = 60
	diastolicMax = 90
)

func isNormalReading(sys, dia int64) bool {
	return sys >= systolicMin && sys <= systolicMax && dia >= diastolicMin && dia <= diastolicMax
}

func simulateBloodPressure(nums []int64, _ Options) (trace.Trace, error) {
	const expected = "a count n followed by n systolic/diastolic pairs"
	if len(nums) == 0 {
		return nil, errors.NewInputShapeError(string(BloodPressure), expected).WithGot(0)
	}
	// A negative count reads no pairs and reports 0.
	n := nums[0]
	if n > int64(len(nums)-1)/2 {
		return nil, errors.NewInputShapeError(string(BloodPressure), expected).WithGot(len(nums))
	}

	var (
		b                    trace.Builder
		maxHour, currentHour int64
	)
	vars := trace.NewVars().Int("n", n).Int("maxHour", 0).Int("currentHour", 0).Int("i", -1)
	b.Add(1, fmt.Sprintf("read n = %d, both runs start at 0", n), vars)

	for i := range n {
		sys, dia := nums[1+2*i], nums[2+2*i]
		hl := trace.WithHighlights(int(i))

		vars = vars.Int("i", i).Int("sys", sys).Int("dia", dia)
		b.Add(3, fmt.Sprintf("hour %d: %d/%d", i+1, sys, dia), vars, hl)

		normal := isNormalReading(sys, dia)
		vars = vars.Bool("isNormal", normal)
		if !normal {
			b.Add(5, fmt.Sprintf("%d/%d is out of range", sys, dia), vars, hl)
			currentHour = 0
			vars = vars.Int("currentHour", 0)
			b.Add(9, "run broken, currentHour = 0", vars, hl)
			continue
		}

		b.Add(5, fmt.Sprintf("%d/%d is normal", sys, dia), vars, hl)
		currentHour++
		vars = vars.Int("currentHour", currentHour)
		b.Add(6, fmt.Sprintf("currentHour = %d", currentHour), vars, hl)
		if currentHour > maxHour {
			maxHour = currentHour
			vars = vars.Int("maxHour", maxHour)
			b.Add(7, fmt.Sprintf("new longest run: maxHour = %d", maxHour), vars, hl)
		}
	}

	b.Add(12, fmt.Sprintf("print maxHour = %d", maxHour), vars,
		trace.WithOutput(strconv.FormatInt(maxHour, 10)))
	return b.Trace(), nil
}

// readingCells renders each complete systolic/diastolic pair as "sys/dia".
func readingCells(nums []int64) []string {
	if len(nums) == 0 {
		return nil
	}
	pairs := nums[1:]
	n := int(min(max(nums[0], 0), int64(len(pairs)/2)))
	cells := make([]string, n)
	for i := range n {
		cells[i] = fmt.Sprintf("%d/%d", pairs[2*i], pairs[2*i+1])
	}
	return cells
}
