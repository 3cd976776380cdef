// Command evals runs MCP tool selection evaluations.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// Suites are checked against the tool registry and scored with the built-in
// keyword selector. For LLM evaluation, implement evals.ToolSelector.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/olgasafonova/google-ads-mcp-server/evals"
	"github.com/olgasafonova/google-ads-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to run: tool_selection, confusion_pairs, or all")
	verbose := flag.Bool("verbose", false, "List every test case")
	flag.Parse()

	fmt.Println("Google Ads MCP Server - Evaluation Framework")
	fmt.Println("============================================")

	ts, cp, err := evals.LoadAllEvals(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading evals: %v\n", err)
		os.Exit(1)
	}

	missing := evals.CheckCoverage(ts, cp, func(name string) bool {
		_, ok := tools.FindTool(name)
		return ok
	})
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Suites reference unknown tools: %v\n", missing)
		os.Exit(1)
	}

	selector := evals.NewKeywordSelector(tools.AllTools)

	switch *suite {
	case "tool_selection":
		runToolSelection(ts, selector, *verbose)
	case "confusion_pairs":
		runConfusionPairs(cp, selector, *verbose)
	case "all":
		runToolSelection(ts, selector, *verbose)
		runConfusionPairs(cp, selector, *verbose)
		printCoverage(ts, cp)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
}

func runToolSelection(suite *evals.ToolSelectionSuite, selector evals.ToolSelector, verbose bool) {
	if verbose {
		fmt.Println("\nTool Selection Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n    → %s\n", test.ID, test.Input, test.ExpectedTool)
		}
	}
	fmt.Print(evals.FormatMetrics(evals.EvaluateToolSelection(suite, selector), suite.Name))
}

func runConfusionPairs(suite *evals.ConfusionPairSuite, selector evals.ToolSelector, verbose bool) {
	if verbose {
		fmt.Println("\nConfusion Pairs:")
		for _, pair := range suite.Pairs {
			fmt.Printf("  %s: %v\n    Rule: %s\n", pair.ID, pair.Tools, pair.Disambiguation)
		}
	}
	fmt.Print(evals.FormatMetrics(evals.EvaluateConfusionPairs(suite, selector), suite.Name))
}

func printCoverage(ts *evals.ToolSelectionSuite, cp *evals.ConfusionPairSuite) {
	covered := make(map[string]bool)
	for _, test := range ts.Tests {
		covered[test.ExpectedTool] = true
	}
	for _, pair := range cp.Pairs {
		for _, name := range pair.Tools {
			covered[name] = true
		}
	}

	var untested []string
	for _, spec := range tools.AllTools {
		if !covered[spec.Name] {
			untested = append(untested, spec.Name)
		}
	}
	sort.Strings(untested)

	fmt.Printf("\nTool Coverage: %d/%d tools\n", len(tools.AllTools)-len(untested), len(tools.AllTools))
	for _, name := range untested {
		fmt.Printf("  ✗ %s\n", name)
	}
}
