package gaql

import "testing"

func TestQuery_String(t *testing.T) {
	tests := []struct {
		name string
		q    *Query
		want string
	}{
		{
			name: "no filters",
			q:    Select("campaign.id", "campaign.name").From("campaign"),
			want: "SELECT campaign.id, campaign.name FROM campaign",
		},
		{
			name: "full",
			q: Select("search_term_view.search_term", "metrics.impressions").
				From("search_term_view").
				Where(DateRange("LAST_7_DAYS"), EqID("campaign.id", "123"), Gte("metrics.impressions", 10)).
				OrderBy("metrics.impressions", true).
				Limit(100),
			want: "SELECT search_term_view.search_term, metrics.impressions FROM search_term_view" +
				" WHERE segments.date DURING LAST_7_DAYS AND campaign.id = 123 AND metrics.impressions >= 10" +
				" ORDER BY metrics.impressions DESC LIMIT 100",
		},
		{
			name: "empty optional clauses are skipped",
			q: Select("ad_group.id").From("ad_group").
				Where(EqID("campaign.id", ""), In("ad_group.status", nil), Neq("ad_group.status", "REMOVED")),
			want: "SELECT ad_group.id FROM ad_group WHERE ad_group.status != 'REMOVED'",
		},
		{
			name: "ascending order",
			q:    Select("conversion_action.name").From("conversion_action").OrderBy("conversion_action.name", false),
			want: "SELECT conversion_action.name FROM conversion_action ORDER BY conversion_action.name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"HEADLINE":       `'HEADLINE'`,
		"it's":           `'it\'s'`,
		`back\slash`:     `'back\\slash'`,
		"x' OR '1'='1":   `'x\' OR \'1\'=\'1'`,
		"":               `''`,
		"multi word val": `'multi word val'`,
	}
	for in, want := range tests {
		if got := Quote(in); got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if got := ID("12345"); got != "12345" {
		t.Errorf("ID(12345) = %s", got)
	}
	if got := ID("1 OR 1=1"); got != `'1 OR 1=1'` {
		t.Errorf("ID injection not quoted: %s", got)
	}
}

func TestClauses(t *testing.T) {
	tests := []struct {
		name string
		c    Clause
		want Clause
	}{
		{"eq", Eq("asset.type", "TEXT"), "asset.type = 'TEXT'"},
		{"in", In("recommendation.type", []string{"KEYWORD", "CAMPAIGN_BUDGET"}), "recommendation.type IN ('KEYWORD', 'CAMPAIGN_BUDGET')"},
		{"in ids", InIDs("campaign.id", []string{"1", "2"}), "campaign.id IN (1, 2)"},
		{"bool true", Bool("ad_group_criterion.negative", true), "ad_group_criterion.negative = TRUE"},
		{"bool false", Bool("recommendation.dismissed", false), "recommendation.dismissed = FALSE"},
		{"default date range", DateRange(""), "segments.date DURING LAST_30_DAYS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c != tt.want {
				t.Errorf("got %q, want %q", tt.c, tt.want)
			}
		})
	}
}
