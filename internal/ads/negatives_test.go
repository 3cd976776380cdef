package ads

import (
	"context"
	"strings"
	"testing"

	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
)

func TestAddNegativeKeywordsLevels(t *testing.T) {
	tests := []struct {
		name        string
		args        AddNegativeKeywordsArgs
		wantService string
		wantParent  string
		wantPath    string
		wantMatch   string
	}{
		{
			name:        "campaign level by default",
			args:        AddNegativeKeywordsArgs{CustomerID: testCID, CampaignID: "42", Keywords: []string{"free", " jobs "}},
			wantService: "campaignCriteria",
			wantParent:  "campaign",
			wantPath:    "customers/1234567890/campaigns/42",
			wantMatch:   "PHRASE",
		},
		{
			name:        "ad group level",
			args:        AddNegativeKeywordsArgs{CustomerID: testCID, AdGroupID: "77", Level: "AD_GROUP", MatchType: "EXACT", Keywords: []string{"free", "jobs"}},
			wantService: "adGroupCriteria",
			wantParent:  "adGroup",
			wantPath:    "customers/1234567890/adGroups/77",
			wantMatch:   "EXACT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdapter{}
			out, err := NewService(fake, nil).AddNegativeKeywords(context.Background(), tt.args)
			if err != nil {
				t.Fatalf("AddNegativeKeywords failed: %v", err)
			}
			m := fake.mutates[0]
			if m.Service != tt.wantService {
				t.Errorf("service = %q, want %q", m.Service, tt.wantService)
			}
			if len(m.Ops) != 2 {
				t.Fatalf("ops = %d, want 2", len(m.Ops))
			}
			create := m.Ops[1].Create.(map[string]any)
			if create[tt.wantParent] != tt.wantPath || create["negative"] != true {
				t.Errorf("create = %v", create)
			}
			kw := create["keyword"].(map[string]any)
			if kw["text"] != "jobs" || kw["matchType"] != tt.wantMatch {
				t.Errorf("keyword = %v", kw)
			}
			if !strings.HasPrefix(out, "✅ **Added 2 negative keywords successfully!**") {
				t.Errorf("output = %q", out)
			}
		})
	}
}

func TestAddNegativeKeywordsJSONNulls(t *testing.T) {
	out, err := NewService(&fakeAdapter{}, nil).AddNegativeKeywords(context.Background(), AddNegativeKeywordsArgs{
		CustomerID: testCID, CampaignID: "42", Keywords: []string{"free"}, ResponseFormat: "json",
	})
	if err != nil {
		t.Fatalf("AddNegativeKeywords failed: %v", err)
	}
	resp := decodeJSON(t, out)
	if v, ok := resp["ad_group_id"]; !ok || v != nil {
		t.Errorf("ad_group_id = %v (present %v), want null", v, ok)
	}
	if resp["campaign_id"] != "42" || resp["count"] != 1.0 {
		t.Errorf("resp = %v", resp)
	}
}

func TestListNegativeKeywords(t *testing.T) {
	t.Run("ad group filter skips campaign search", func(t *testing.T) {
		fake := &fakeAdapter{}
		out, err := NewService(fake, nil).ListNegativeKeywords(context.Background(), ListNegativeKeywordsArgs{
			CustomerID: testCID, AdGroupID: "77",
		})
		if err != nil {
			t.Fatalf("ListNegativeKeywords failed: %v", err)
		}
		if len(fake.queries) != 1 || !strings.Contains(fake.queries[0], "FROM ad_group_criterion") {
			t.Fatalf("queries = %v", fake.queries)
		}
		if !strings.Contains(fake.queries[0], "ad_group.id = 77") {
			t.Errorf("query = %s", fake.queries[0])
		}
		if !strings.Contains(out, "No negative keywords found.") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("both levels", func(t *testing.T) {
		fake := &fakeAdapter{}
		fake.search = func(_, q string) ([]googleads.Row, error) {
			if strings.Contains(q, "FROM campaign_criterion") {
				return decode(t, `[{"campaignCriterion":{"criterionId":"5","keyword":{"text":"free","matchType":"PHRASE"}},"campaign":{"id":"42","name":"Brand"}}]`), nil
			}
			return decode(t, `[{"adGroupCriterion":{"criterionId":"6","keyword":{"text":"cheap","matchType":"EXACT"}},"adGroup":{"id":"77","name":"Core"},"campaign":{"id":"42","name":"Brand"}}]`), nil
		}
		out, err := NewService(fake, nil).ListNegativeKeywords(context.Background(), ListNegativeKeywordsArgs{
			CustomerID: testCID, CampaignID: "42", ResponseFormat: "json",
		})
		if err != nil {
			t.Fatalf("ListNegativeKeywords failed: %v", err)
		}
		resp := decodeJSON(t, out)
		if resp["total"] != 2.0 {
			t.Errorf("total = %v", resp["total"])
		}
		campaignLevel := resp["campaign_level"].([]any)[0].(map[string]any)
		if _, ok := campaignLevel["ad_group_id"]; ok {
			t.Errorf("campaign-level record carries ad_group_id: %v", campaignLevel)
		}
		adGroupLevel := resp["ad_group_level"].([]any)[0].(map[string]any)
		if adGroupLevel["ad_group_name"] != "Core" || adGroupLevel["keyword"] != "cheap" {
			t.Errorf("ad group record = %v", adGroupLevel)
		}
	})
}

func TestRemoveNegativeKeywords(t *testing.T) {
	fake := &fakeAdapter{}
	_, err := NewService(fake, nil).RemoveNegativeKeywords(context.Background(), RemoveNegativeKeywordsArgs{
		CustomerID: testCID, Level: "AD_GROUP", AdGroupID: "77", CriterionIDs: []string{"6", "7"},
	})
	if err != nil {
		t.Fatalf("RemoveNegativeKeywords failed: %v", err)
	}
	m := fake.mutates[0]
	if m.Service != "adGroupCriteria" || m.Ops[1].Remove != "customers/1234567890/adGroupCriteria/77~7" {
		t.Errorf("mutate = %s %+v", m.Service, m.Ops)
	}
}
