// Package export renders a whole trace for non-interactive use: plain text
// for reading in a terminal, JSON and YAML for tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Iron-Ham/stepthrough/internal/trace"
	"github.com/Iron-Ham/stepthrough/internal/util"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: %s)", name, strings.Join(Formats(), ", "))
	}
}

// Document is one simulated run.
type Document struct {
	Algorithm string
	Input     string
	Steps     trace.Trace
	// Source is the annotated source split into lines. The text format
	// prints the pointed-at line under each step when it is set.
	Source []string
}

// Options tune the text format.
type Options struct {
	// Width truncates text lines to this many columns; zero disables.
	Width int
}

// Write encodes doc to w in format f.
func Write(w io.Writer, doc Document, f Format, opts Options) error {
	switch f {
	case FormatText:
		return writeText(w, doc, opts)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeText(w io.Writer, doc Document, opts Options) error {
	var sb strings.Builder
	line := func(format string, args ...any) {
		s := fmt.Sprintf(format, args...)
		if opts.Width > 0 {
			s = util.TruncateANSI(s, opts.Width)
		}
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	n := doc.Steps.Len()
	for i, step := range doc.Steps {
		line("[%d/%d] line %d: %s", i+1, n, step.Line(), step.Description())
		if src, ok := sourceLine(doc.Source, step.Line()); ok {
			line("    | %s", strings.TrimSpace(src))
		}
		if step.Vars().Len() > 0 {
			line("    %s", formatVars(step.Vars()))
		}
		if hl := step.Highlights(); len(hl) > 0 {
			line("    highlight %v", hl)
		}
		if step.HasOutput() {
			line("    output: %s", step.Output())
		}
	}
	line("output: %s", doc.Steps.FinalOutput())

	_, err := io.WriteString(w, sb.String())
	return err
}

func sourceLine(lines []string, i int) (string, bool) {
	if i < 0 || i >= len(lines) {
		return "", false
	}
	return lines[i], true
}

func formatVars(vars trace.Vars) string {
	parts := make([]string, 0, vars.Len())
	for name, v := range vars.All() {
		parts = append(parts, name+"="+v.String())
	}
	return strings.Join(parts, " ")
}

type jsonDocument struct {
	Algorithm string      `json:"algorithm"`
	Input     string      `json:"input"`
	Output    string      `json:"output"`
	Steps     trace.Trace `json:"steps"`
}

func writeJSON(w io.Writer, doc Document) error {
	steps := doc.Steps
	if steps == nil {
		steps = trace.Trace{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{
		Algorithm: doc.Algorithm,
		Input:     doc.Input,
		Output:    doc.Steps.FinalOutput(),
		Steps:     steps,
	})
}

// writeYAML builds the node tree by hand so variables keep the order the
// simulator declared them in.
func writeYAML(w io.Writer, doc Document) error {
	steps := &yaml.Node{Kind: yaml.SequenceNode}
	for _, step := range doc.Steps {
		steps.Content = append(steps.Content, stepNode(step))
	}

	root := mapping(
		"algorithm", str(doc.Algorithm),
		"input", str(doc.Input),
		"output", str(doc.Steps.FinalOutput()),
		"steps", steps,
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func stepNode(step trace.Step) *yaml.Node {
	vars := &yaml.Node{Kind: yaml.MappingNode}
	for name, v := range step.Vars().All() {
		vars.Content = append(vars.Content, str(name), valueNode(v))
	}

	highlights := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, i := range step.Highlights() {
		highlights.Content = append(highlights.Content, intNode(int64(i)))
	}

	kv := []any{
		"line", intNode(int64(step.Line())),
		"description", str(step.Description()),
		"vars", vars,
		"highlights", highlights,
	}
	if step.HasOutput() {
		kv = append(kv, "output", str(step.Output()))
	}
	return mapping(kv...)
}

func valueNode(v trace.Value) *yaml.Node {
	switch v.Kind() {
	case trace.KindInt:
		n, _ := v.AsInt()
		return intNode(n)
	case trace.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case trace.KindList:
		list, _ := v.AsList()
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, n := range list {
			seq.Content = append(seq.Content, intNode(n))
		}
		return seq
	case trace.KindText:
		return str(v.String())
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intNode(n int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n, 10)}
}

// mapping builds a mapping node from alternating string keys and nodes.
func mapping(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Content = append(m.Content, str(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return m
}
