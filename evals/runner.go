// Package evals provides an evaluation framework for MCP tool selection
// accuracy. Suites map natural language requests to the Google Ads tool that
// should answer them.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/olgasafonova/google-ads-mcp-server/tools"
)

// Suite file names inside an evals directory.
const (
	ToolSelectionFile  = "tool_selection.json"
	ConfusionPairsFile = "confusion_pairs.json"
)

// ToolSelectionTest represents a single tool selection evaluation case
type ToolSelectionTest struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Input        string   `json:"input"`
	ExpectedTool string   `json:"expected_tool"`
	NotTools     []string `json:"not_tools,omitempty"`
}

// ToolSelectionSuite contains all tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest represents a single disambiguation test
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair represents a pair of tools that are commonly confused
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// EvalMetrics contains aggregate metrics for an evaluation run
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics contains metrics per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

func newMetrics() *EvalMetrics {
	return &EvalMetrics{ByCategory: make(map[string]*CategoryMetrics)}
}

func (m *EvalMetrics) record(category string, passed bool, detail string) {
	c := m.ByCategory[category]
	if c == nil {
		c = &CategoryMetrics{}
		m.ByCategory[category] = c
	}
	m.TotalTests++
	c.Total++
	if passed {
		m.PassedTests++
		c.Passed++
		return
	}
	m.FailedTests++
	c.Failed++
	m.FailedDetails = append(m.FailedDetails, detail)
}

func (m *EvalMetrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

func loadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &v, nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	return loadJSON[ToolSelectionSuite](path)
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	return loadJSON[ConfusionPairSuite](path)
}

// LoadAllEvals loads both suites from dir.
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, error) {
	ts, err := LoadToolSelectionSuite(filepath.Join(dir, ToolSelectionFile))
	if err != nil {
		return nil, nil, fmt.Errorf("tool selection: %w", err)
	}
	cp, err := LoadConfusionPairSuite(filepath.Join(dir, ConfusionPairsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("confusion pairs: %w", err)
	}
	return ts, cp, nil
}

// CheckCoverage returns every tool name referenced by the suites that known
// does not recognize, sorted and without duplicates.
func CheckCoverage(ts *ToolSelectionSuite, cp *ConfusionPairSuite, known func(string) bool) []string {
	missing := make(map[string]bool)
	check := func(name string) {
		if name != "" && !known(name) {
			missing[name] = true
		}
	}
	if ts != nil {
		for _, t := range ts.Tests {
			check(t.ExpectedTool)
			for _, n := range t.NotTools {
				check(n)
			}
		}
	}
	if cp != nil {
		for _, p := range cp.Pairs {
			for _, n := range p.Tools {
				check(n)
			}
			for _, t := range p.Tests {
				check(t.Expected)
			}
		}
	}

	out := make([]string, 0, len(missing))
	for n := range missing {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ToolSelector is implemented by an LLM harness or a heuristic.
type ToolSelector interface {
	// SelectTool returns the tool name for a natural language input
	SelectTool(input string) (string, error)
}

// EvaluateToolSelection runs tool selection tests against a selector
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) *EvalMetrics {
	m := newMetrics()
	for _, test := range suite.Tests {
		actual, err := selector.SelectTool(test.Input)

		var errs []string
		if err != nil {
			errs = append(errs, fmt.Sprintf("selector error: %v", err))
		}
		if actual != test.ExpectedTool {
			errs = append(errs, fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actual))
		}
		for _, forbidden := range test.NotTools {
			if actual == forbidden {
				errs = append(errs, fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}

		m.record(test.Category, len(errs) == 0,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(errs, "; ")))
	}
	m.finish()
	return m
}

// EvaluateConfusionPairs runs disambiguation tests, using the pair ID as category.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) *EvalMetrics {
	m := newMetrics()
	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			actual, err := selector.SelectTool(test.Input)
			m.record(pair.ID, err == nil && actual == test.Expected,
				fmt.Sprintf("[%s] %s: expected %s, got %s (%s)", pair.ID, test.Input, test.Expected, actual, test.Reason))
		}
	}
	m.finish()
	return m
}

// KeywordSelector picks the tool whose name, title and USE WHEN triggers
// share the most words with the input. Ties go to the earlier tool.
type KeywordSelector struct {
	specs  []tools.ToolSpec
	tokens []map[string]bool
}

// NewKeywordSelector indexes specs for selection.
func NewKeywordSelector(specs []tools.ToolSpec) *KeywordSelector {
	ks := &KeywordSelector{specs: specs}
	for _, spec := range specs {
		text := strings.ReplaceAll(spec.Name, "_", " ") + " " + spec.Title + " " + useWhen(spec.Description)
		set := make(map[string]bool)
		for _, w := range words(text) {
			set[w] = true
		}
		ks.tokens = append(ks.tokens, set)
	}
	return ks
}

// SelectTool implements ToolSelector.
func (ks *KeywordSelector) SelectTool(input string) (string, error) {
	best, bestScore := -1, 0
	for i, set := range ks.tokens {
		score := 0
		for _, w := range words(input) {
			if set[w] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", fmt.Errorf("no tool matches %q", input)
	}
	return ks.specs[best].Name, nil
}

func useWhen(desc string) string {
	for _, line := range strings.Split(desc, "\n") {
		if strings.HasPrefix(line, "USE WHEN:") {
			return strings.TrimPrefix(line, "USE WHEN:")
		}
	}
	return ""
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "me": true, "i": true, "is": true,
	"are": true, "of": true, "to": true, "in": true, "on": true, "for": true, "and": true,
	"or": true, "this": true, "that": true, "what": true, "which": true, "show": true,
	"google": true, "ads": true, "x": true, "y": true, "do": true, "does": true, "how": true,
}

func words(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if !stopWords[f] {
			out = append(out, f)
		}
	}
	return out
}

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		cats := make([]string, 0, len(metrics.ByCategory))
		for cat := range metrics.ByCategory {
			cats = append(cats, cat)
		}
		sort.Strings(cats)

		b.WriteString("\nBy Category:\n")
		for _, cat := range cats {
			m := metrics.ByCategory[cat]
			if m.Total > 0 {
				fmt.Fprintf(&b, "  %-20s %d/%d (%.1f%%)\n", cat, m.Passed, m.Total, float64(m.Passed)/float64(m.Total)*100)
			}
		}
	}

	if len(metrics.FailedDetails) > 0 {
		b.WriteString("\nFailed Tests:\n")
		for _, d := range metrics.FailedDetails {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}

	return b.String()
}
