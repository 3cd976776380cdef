package evals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olgasafonova/google-ads-mcp-server/tools"
)

// MockToolSelector implements ToolSelector for testing
type MockToolSelector struct {
	// Responses maps input strings to tool selections
	Responses map[string]string
	// DefaultTool is returned if input isn't in Responses
	DefaultTool string
}

func (m *MockToolSelector) SelectTool(input string) (string, error) {
	if tool, ok := m.Responses[input]; ok {
		return tool, nil
	}
	return m.DefaultTool, nil
}

// PerfectToolSelector returns the expected tool for each test
type PerfectToolSelector struct {
	suite *ToolSelectionSuite
}

func (p *PerfectToolSelector) SelectTool(input string) (string, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, nil
		}
	}
	return "", nil
}

func knownTool(name string) bool {
	_, ok := tools.FindTool(name)
	return ok
}

func TestShippedSuites(t *testing.T) {
	ts, cp, err := LoadAllEvals(".")
	if err != nil {
		t.Fatalf("LoadAllEvals failed: %v", err)
	}
	if ts.Name == "" || len(ts.Tests) == 0 {
		t.Fatal("tool selection suite is empty")
	}
	if len(cp.Pairs) == 0 {
		t.Fatal("confusion pair suite is empty")
	}

	if missing := CheckCoverage(ts, cp, knownTool); len(missing) > 0 {
		t.Errorf("suites reference unknown tools: %v", missing)
	}

	ids := make(map[string]bool)
	for _, test := range ts.Tests {
		if test.ID == "" || test.Input == "" {
			t.Errorf("test %+v missing id or input", test)
		}
		if ids[test.ID] {
			t.Errorf("duplicate test id %s", test.ID)
		}
		ids[test.ID] = true

		spec, _ := tools.FindTool(test.ExpectedTool)
		if spec.Category != test.Category {
			t.Errorf("[%s] category = %s, tool %s is in %s", test.ID, test.Category, spec.Name, spec.Category)
		}
	}
	for _, pair := range cp.Pairs {
		for _, test := range pair.Tests {
			found := false
			for _, name := range pair.Tools {
				if name == test.Expected {
					found = true
				}
			}
			if !found {
				t.Errorf("[%s] expected %s is not one of %v", pair.ID, test.Expected, pair.Tools)
			}
		}
	}
}

func TestShippedSuitesCoverEveryCategory(t *testing.T) {
	ts, err := LoadToolSelectionSuite(ToolSelectionFile)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, test := range ts.Tests {
		seen[test.Category] = true
	}
	for _, cat := range tools.Categories {
		if !seen[cat] {
			t.Errorf("no tool selection test for category %s", cat)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadToolSelectionSuite(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfusionPairSuite(bad)
	if err == nil || !strings.Contains(err.Error(), "parsing JSON") {
		t.Errorf("err = %v, want parsing error", err)
	}

	if _, _, err := LoadAllEvals(dir); err == nil {
		t.Error("LoadAllEvals should fail on an empty directory")
	}
}

func TestCheckCoverage(t *testing.T) {
	ts := &ToolSelectionSuite{Tests: []ToolSelectionTest{
		{ExpectedTool: "google_ads_list_campaigns", NotTools: []string{"google_ads_old_tool"}},
		{ExpectedTool: "google_ads_made_up"},
	}}
	cp := &ConfusionPairSuite{Pairs: []ConfusionPair{{
		Tools: []string{"google_ads_list_keywords", "google_ads_made_up"},
		Tests: []ConfusionPairTest{{Expected: "google_ads_list_keywords"}},
	}}}

	got := CheckCoverage(ts, cp, knownTool)
	want := []string{"google_ads_made_up", "google_ads_old_tool"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CheckCoverage mismatch (-want +got):\n%s", diff)
	}

	if got := CheckCoverage(nil, nil, knownTool); len(got) != 0 {
		t.Errorf("nil suites = %v, want none", got)
	}
}

func TestEvaluateToolSelection(t *testing.T) {
	suite := &ToolSelectionSuite{Tests: []ToolSelectionTest{
		{ID: "t1", Category: "campaigns", Input: "show campaigns", ExpectedTool: "google_ads_list_campaigns"},
		{ID: "t2", Category: "campaigns", Input: "pause it", ExpectedTool: "google_ads_update_campaign_status"},
		{ID: "t3", Category: "keywords", Input: "block free", ExpectedTool: "google_ads_add_negative_keywords",
			NotTools: []string{"google_ads_add_keywords"}},
	}}

	t.Run("perfect", func(t *testing.T) {
		m := EvaluateToolSelection(suite, &PerfectToolSelector{suite: suite})
		if m.Accuracy != 1.0 || m.FailedTests != 0 {
			t.Errorf("accuracy = %v, failed = %d", m.Accuracy, m.FailedTests)
		}
	})

	t.Run("mixed", func(t *testing.T) {
		sel := &MockToolSelector{
			Responses: map[string]string{
				"show campaigns": "google_ads_list_campaigns",
				"block free":     "google_ads_add_keywords",
			},
			DefaultTool: "google_ads_get_campaign",
		}
		m := EvaluateToolSelection(suite, sel)
		if m.TotalTests != 3 || m.PassedTests != 1 || m.FailedTests != 2 {
			t.Fatalf("got %d/%d passed, %d failed", m.PassedTests, m.TotalTests, m.FailedTests)
		}
		if c := m.ByCategory["campaigns"]; c.Passed != 1 || c.Failed != 1 {
			t.Errorf("campaigns = %+v", c)
		}
		joined := strings.Join(m.FailedDetails, "\n")
		if !strings.Contains(joined, "selected forbidden tool: google_ads_add_keywords") {
			t.Errorf("failure details missing forbidden tool:\n%s", joined)
		}
	})
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite := &ConfusionPairSuite{Pairs: []ConfusionPair{{
		ID:    "kw_vs_neg",
		Tools: []string{"google_ads_add_keywords", "google_ads_add_negative_keywords"},
		Tests: []ConfusionPairTest{
			{Input: "bid on shoes", Expected: "google_ads_add_keywords"},
			{Input: "block free", Expected: "google_ads_add_negative_keywords"},
		},
	}}}
	sel := &MockToolSelector{DefaultTool: "google_ads_add_keywords"}

	m := EvaluateConfusionPairs(suite, sel)
	if m.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", m.Accuracy)
	}
	if c := m.ByCategory["kw_vs_neg"]; c == nil || c.Total != 2 {
		t.Errorf("category = %+v", c)
	}
}

func TestKeywordSelector(t *testing.T) {
	specs := []tools.ToolSpec{
		{Name: "google_ads_list_campaigns", Title: "List Campaigns",
			Description: "Lists campaigns.\n\nUSE WHEN: User asks \"which campaigns are paused\"."},
		{Name: "google_ads_search_geo_targets", Title: "Search Geo Targets",
			Description: "Finds locations.\n\nUSE WHEN: User says \"find the ID for Berlin\"."},
	}
	ks := NewKeywordSelector(specs)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"Which campaigns are paused?", "google_ads_list_campaigns", false},
		{"find the location id for Berlin", "google_ads_search_geo_targets", false},
		{"the of and", "", true},
	}
	for _, tt := range tests {
		got, err := ks.SelectTool(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("SelectTool(%q) err = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("SelectTool(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKeywordSelectorOnRegistry(t *testing.T) {
	ks := NewKeywordSelector(tools.AllTools)
	got, err := ks.SelectTool("find the ID for Berlin")
	if err != nil {
		t.Fatalf("SelectTool failed: %v", err)
	}
	if _, ok := tools.FindTool(got); !ok {
		t.Errorf("selected unknown tool %q", got)
	}
}

func TestWords(t *testing.T) {
	got := words("Show my Google Ads campaigns, ad-group #42!")
	want := []string{"campaigns", "ad", "group", "42"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatMetrics(t *testing.T) {
	m := newMetrics()
	m.record("keywords", true, "")
	m.record("budgets", false, "[b1] raise budget: wrong tool")
	m.finish()

	out := FormatMetrics(m, "Tool Selection")
	for _, want := range []string{"=== Tool Selection ===", "Total: 2 tests", "Passed: 1 (50.0%)", "[b1] raise budget"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "budgets") > strings.Index(out, "keywords") {
		t.Errorf("categories not sorted:\n%s", out)
	}
}
