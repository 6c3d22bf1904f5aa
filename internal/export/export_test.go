package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Iron-Ham/stepthrough/internal/algorithm"
	"github.com/Iron-Ham/stepthrough/internal/trace"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func pokerDocument(t *testing.T) Document {
	t.Helper()
	p, err := algorithm.Lookup(algorithm.Poker)
	if err != nil {
		t.Fatal(err)
	}
	steps, err := p.Simulate(p.DefaultInput, algorithm.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return Document{
		Algorithm: string(p.ID),
		Input:     p.DefaultInput,
		Steps:     steps,
		Source:    p.SourceLines(),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestWrite_Text(t *testing.T) {
	doc := pokerDocument(t)

	var buf bytes.Buffer
	if err := Write(&buf, doc, FormatText, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"[1/13] line 0: start with an empty hand",
		"    | int sum = 0;",
		"    sum=0 i=0 card=null",
		"    highlight [3]",
		"    output: 3",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("text output missing line %q\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "output: 3\n") {
		t.Errorf("text output should end with the final output:\n%s", out)
	}
}

func TestWrite_TextWidth(t *testing.T) {
	doc := pokerDocument(t)

	var buf bytes.Buffer
	if err := Write(&buf, doc, FormatText, Options{Width: 20}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line %q is %d columns wide, want <= 20", line, w)
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	doc := pokerDocument(t)

	var buf bytes.Buffer
	if err := Write(&buf, doc, FormatJSON, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		Algorithm string `json:"algorithm"`
		Input     string `json:"input"`
		Output    string `json:"output"`
		Steps     []struct {
			Line        int             `json:"line"`
			Description string          `json:"description"`
			Vars        json.RawMessage `json:"vars"`
			Highlights  []int           `json:"highlights"`
			Output      string          `json:"output"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if got.Algorithm != "poker" || got.Output != "3" || got.Input != doc.Input {
		t.Errorf("header = %q/%q/%q", got.Algorithm, got.Input, got.Output)
	}
	if len(got.Steps) != doc.Steps.Len() {
		t.Fatalf("steps = %d, want %d", len(got.Steps), doc.Steps.Len())
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, got.Steps[0].Vars); err != nil {
		t.Fatal(err)
	}
	if want := `{"sum":0,"i":0,"card":null}`; compact.String() != want {
		t.Errorf("first step vars = %s, want %s", compact.String(), want)
	}
	if got.Steps[0].Highlights == nil {
		t.Error("highlights should encode as [] rather than null")
	}
}

func TestWrite_JSONEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Document{Algorithm: "water"}, FormatJSON, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"steps": []`) {
		t.Errorf("empty trace should encode as []:\n%s", buf.String())
	}
}

func TestWrite_YAML(t *testing.T) {
	steps := trace.Trace{
		trace.NewStep(1, "read input",
			trace.NewVars().Int("Y", 10).List("possible_weights", []int64{2, 8}).Absent("card").Text("x", "...").Bool("found", true),
			trace.WithHighlights(1), trace.WithOutput("2 8")),
	}

	var buf bytes.Buffer
	if err := Write(&buf, Document{Algorithm: "water", Input: "10 6 40", Steps: steps}, FormatYAML, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	var got struct {
		Algorithm string `yaml:"algorithm"`
		Output    string `yaml:"output"`
		Steps     []struct {
			Line       int       `yaml:"line"`
			Vars       yaml.Node `yaml:"vars"`
			Highlights []int     `yaml:"highlights"`
			Output     string    `yaml:"output"`
		} `yaml:"steps"`
	}
	if err := root.Decode(&got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Algorithm != "water" || got.Output != "2 8" || len(got.Steps) != 1 {
		t.Fatalf("decoded = %+v", got)
	}
	step := got.Steps[0]
	if step.Line != 1 || step.Output != "2 8" || !cmp.Equal(step.Highlights, []int{1}) {
		t.Errorf("step = %+v", step)
	}

	var keys []string
	for i := 0; i < len(step.Vars.Content); i += 2 {
		keys = append(keys, step.Vars.Content[i].Value)
	}
	if diff := cmp.Diff([]string{"Y", "possible_weights", "card", "x", "found"}, keys); diff != "" {
		t.Errorf("var order mismatch (-want +got):\n%s", diff)
	}

	var vars map[string]any
	if err := step.Vars.Decode(&vars); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"Y":                10,
		"possible_weights": []any{2, 8},
		"card":             nil,
		"x":                "...",
		"found":            true,
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
}
