package ads

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
)

func TestListKeywords(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[
		{"adGroupCriterion":{"criterionId":"11","status":"ENABLED","keyword":{"text":"running shoes","matchType":"EXACT"},"cpcBidMicros":"1200000"},"adGroup":{"id":"7","name":"Running"}},
		{"adGroupCriterion":{"criterionId":"12","status":"PAUSED","keyword":{"text":"trail shoes","matchType":"BROAD"}},"adGroup":{"id":"7","name":"Running"}}
	]`))}

	out, err := NewService(fake, nil).ListKeywords(context.Background(), ListKeywordsArgs{CustomerID: testCID, AdGroupID: "7"})
	if err != nil {
		t.Fatalf("ListKeywords failed: %v", err)
	}
	want := "WHERE ad_group.id = 7 AND ad_group_criterion.type = 'KEYWORD' AND ad_group_criterion.status != 'REMOVED' ORDER BY ad_group_criterion.keyword.text ASC LIMIT 100"
	if !strings.HasSuffix(fake.queries[0], want) {
		t.Errorf("query = %s", fake.queries[0])
	}
	for _, s := range []string{
		"# Keywords for Ad Group: Running",
		"## ✅ 🎯 running shoes",
		"- **CPC Bid**: USD 1.20",
		"## ⏸️ 🌐 trail shoes",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestListKeywordsJSONNullBid(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[{"adGroupCriterion":{"criterionId":"12","status":"ENABLED","keyword":{"text":"trail shoes","matchType":"PHRASE"}},"adGroup":{"id":"7","name":"Running"}}]`))}

	out, err := NewService(fake, nil).ListKeywords(context.Background(), ListKeywordsArgs{
		CustomerID: testCID, AdGroupID: "7", ResponseFormat: "json",
	})
	if err != nil {
		t.Fatalf("ListKeywords failed: %v", err)
	}
	kw := decodeJSON(t, out)["keywords"].([]any)[0].(map[string]any)
	if v, ok := kw["cpc_bid_micros"]; !ok || v != nil {
		t.Errorf("cpc_bid_micros = %v (present %v), want null", v, ok)
	}
}

func TestRemoveKeywords(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).RemoveKeywords(context.Background(), RemoveKeywordsArgs{
		CustomerID: testCID, KeywordIDs: []string{"7~11", " 7~12 "},
	})
	if err != nil {
		t.Fatalf("RemoveKeywords failed: %v", err)
	}
	if len(fake.mutates) != 1 {
		t.Fatalf("mutates = %d, want 1", len(fake.mutates))
	}
	m := fake.mutates[0]
	if m.Service != "adGroupCriteria" || len(m.Ops) != 2 {
		t.Fatalf("service = %q, ops = %d", m.Service, len(m.Ops))
	}
	for i, want := range []string{
		"customers/1234567890/adGroupCriteria/7~11",
		"customers/1234567890/adGroupCriteria/7~12",
	} {
		if m.Ops[i].Remove != want || m.Ops[i].Create != nil {
			t.Errorf("op %d = %+v, want remove %s", i, m.Ops[i], want)
		}
	}
	if out != "✅ Removed 2 keyword(s) successfully." {
		t.Errorf("output = %q", out)
	}
}

func TestRemoveKeywordsRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"missing separator", []string{"711"}},
		{"non-numeric parent", []string{"abc~11"}},
		{"empty child", []string{"7~"}},
		{"empty list", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdapter{}
			_, err := NewService(fake, nil).RemoveKeywords(context.Background(), RemoveKeywordsArgs{
				CustomerID: testCID, KeywordIDs: tt.ids,
			})
			if !apperrors.IsValidation(err) {
				t.Fatalf("error = %v, want validation error", err)
			}
			if fake.calls != 0 {
				t.Errorf("remote calls = %d, want 0", fake.calls)
			}
		})
	}
}

func TestAddKeywordsRejectsBlankKeyword(t *testing.T) {
	fake := &fakeAdapter{}
	_, err := NewService(fake, nil).AddKeywords(context.Background(), AddKeywordsArgs{
		CustomerID: testCID, AdGroupID: "7", Keywords: []string{"running shoes", "  "},
	})
	if got := apperrors.Format(err); got != "Error: keywords must not contain empty values" {
		t.Errorf("Format = %q", got)
	}
	if fake.calls != 0 {
		t.Errorf("remote calls = %d, want 0", fake.calls)
	}
}
