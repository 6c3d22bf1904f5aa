// Package algorithm holds the catalog of textbook problems and the pure
// simulators that replay each one as a trace.Trace.
//
// Each simulator re-implements its algorithm's control flow directly and
// records a Step at every point worth showing: initialization, loop entry,
// each comparison, each tracked mutation, and the final output. The line
// index of every Step points into the problem's Source.
//
// Adding a problem means writing one simulate function and one entry in
// the registry in this file.
package algorithm

import (
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/errors"
	"github.com/Iron-Ham/stepthrough/internal/trace"
)

// ID identifies a problem in the catalog.
type ID string

const (
	Water         ID = "water"
	BloodPressure ID = "bloodpressure"
	Queue         ID = "queue"
	Poker         ID = "poker"
	FindThree     ID = "findthree"
)

// simulateFunc replays one algorithm over already-parsed input numbers.
type simulateFunc func(nums []int64, opts Options) (trace.Trace, error)

// Problem describes one catalog entry. Source is display-only annotated
// code; it is never parsed or executed.
type Problem struct {
	ID           ID
	Title        string
	Description  string
	DefaultInput string
	Source       string
	// TakesInput is false for problems with a fixed instance (queue).
	TakesInput bool

	simulate simulateFunc
	cells    func(nums []int64) []string
}

// SourceLines returns Source split into lines. Step line indices refer to
// positions in this slice.
func (p Problem) SourceLines() []string {
	return strings.Split(p.Source, "\n")
}

// Cells renders the input the way step highlights index it: one cell per
// reading or per card. It returns nil for problems whose highlights refer
// to a list variable instead (water) or that have no array at all (queue).
func (p Problem) Cells(input string) []string {
	if p.cells == nil {
		return nil
	}
	return p.cells(trace.ParseInput(input))
}

var registry = []Problem{
	{
		ID:    Water,
		Title: "Water on the Grassland",
		Description: "A truck leaves with k identical bottles of water weighing at most n kg in total " +
			"and arrives with Y kg left. How much water could have been used on the way?",
		DefaultInput: "10 6 40",
		TakesInput:   true,
		Source: `int Y, k, n;
cin >> Y >> k >> n;
bool found = false;
// try every bottle weight bw; the load is bw * k
for (int bw = 1; bw * k <= n; bw++) {
    int total = bw * k;        // weight at departure
    int consumed = total - Y;  // water used on the way
    if (consumed >= 0) {
        cout << consumed << " ";
        found = true;
    }
}
if (!found) cout << -1;`,
		simulate: simulateWater,
	},
	{
		ID:    BloodPressure,
		Title: "Normal Blood Pressure",
		Description: "Blood pressure is measured every hour. A reading is normal when systolic is " +
			"90-140 and diastolic is 60-90. Find the longest run of consecutive normal hours.",
		DefaultInput: "4\n100 80\n90 50\n120 60\n140 90",
		TakesInput:   true,
		Source: `int n; cin >> n;
int maxH = 0, currH = 0;  // longest run, current run
for (int i = 0; i < n; i++) {
    int s, d; cin >> s >> d;
    // normal: 90 <= s <= 140 and 60 <= d <= 90
    if (s >= 90 && s <= 140 && d >= 60 && d <= 90) {
        currH++;
        if (currH > maxH) maxH = currH;
    } else {
        currH = 0;  // run broken, start over
    }
}
cout << maxH;`,
		simulate: simulateBloodPressure,
		cells:    readingCells,
	},
	{
		ID:    Queue,
		Title: "Team Size",
		Description: "Lined up in rows of 2, 3, 4, 5 or 6 there is always one person left over; " +
			"in rows of 7 nobody is left over. What is the smallest possible team?",
		DefaultInput: "",
		TakesInput:   false,
		Source: `int x = 7;
while (true) {
    // remainder 1 when divided by 2, 3, 4, 5 and 6
    if (x%2==1 && x%3==1 &&
        x%4==1 && x%5==1 && x%6==1) {
        // x must also be a multiple of 7
        if (x%7==0) {
            cout << x;
            break;
        }
    }
    x += 7;  // only multiples of 7 can qualify
}`,
		simulate: simulateQueue,
	},
	{
		ID:    Poker,
		Title: "Card Game",
		Description: "Keep drawing cards; the hand may not total more than 10 or it busts. " +
			"Given 10 card values, after how many cards should you stop?",
		DefaultInput: "2 3 4 8 2 1 9 4 6 3",
		TakesInput:   true,
		Source: `int sum = 0;
for (int i = 0; i < 10; i++) {
    int card; cin >> card;
    // taking this card would push the hand over 10
    if (sum + card > 10) {
        cout << i;  // cards held before this one
        return 0;
    }
    sum += card;
}
cout << 10;`,
		simulate: simulatePoker,
		cells:    firstTenCells,
	},
	{
		ID:           FindThree,
		Title:        "Find the First 3",
		Description:  "Read 10 integers and print the position of the first 3, or No if there is none.",
		DefaultInput: "4 2 23 4 5 6 7 3 9 245",
		TakesInput:   true,
		Source: `bool found = false;
for (int i = 1; i <= 10; i++) {
    int num; cin >> num;
    if (num == 3) {
        cout << i;  // position of the first 3
        found = true;
        break;
    }
}
if (!found) cout << "No";`,
		simulate: simulateFindThree,
		cells:    firstTenCells,
	},
}

// Catalog returns every problem in display order.
func Catalog() []Problem {
	out := make([]Problem, len(registry))
	copy(out, registry)
	return out
}

// IDs returns every problem ID in display order.
func IDs() []ID {
	ids := make([]ID, len(registry))
	for i, p := range registry {
		ids[i] = p.ID
	}
	return ids
}

// Lookup returns the problem registered under id.
func Lookup(id ID) (Problem, error) {
	for _, p := range registry {
		if p.ID == id {
			return p, nil
		}
	}
	return Problem{}, errors.NewNotFoundError("algorithm", string(id)).WithCause(errors.ErrUnknownAlgorithm)
}

// Index returns the catalog position of id, or -1.
func Index(id ID) int {
	for i, p := range registry {
		if p.ID == id {
			return i
		}
	}
	return -1
}
