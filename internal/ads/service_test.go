package ads

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
)

type mutateCall struct {
	CustomerID string
	Service    string
	Ops        []googleads.Operation
}

// fakeAdapter records every remote call. search and mutate default to
// returning nothing; mutate otherwise echoes one resource name per op.
type fakeAdapter struct {
	mu sync.Mutex

	search    func(customerID, query string) ([]googleads.Row, error)
	mutate    func(service string, ops []googleads.Operation) ([]string, error)
	customers []string
	suggest   []googleads.Row

	calls       int
	queries     []string
	mutates     []mutateCall
	suggestArgs []string
	applied     []string
	dismissed   []string
}

func (f *fakeAdapter) Search(_ context.Context, customerID, query string) ([]googleads.Row, error) {
	f.mu.Lock()
	f.calls++
	f.queries = append(f.queries, query)
	fn := f.search
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(customerID, query)
}

func (f *fakeAdapter) Mutate(_ context.Context, customerID, service string, ops []googleads.Operation) ([]string, error) {
	f.mu.Lock()
	f.calls++
	f.mutates = append(f.mutates, mutateCall{CustomerID: customerID, Service: service, Ops: ops})
	fn := f.mutate
	f.mu.Unlock()
	if fn != nil {
		return fn(service, ops)
	}
	names := make([]string, len(ops))
	for i := range ops {
		names[i] = "customers/1234567890/" + service + "/" + string(rune('1'+i))
	}
	return names, nil
}

func (f *fakeAdapter) ListAccessibleCustomers(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.customers, nil
}

func (f *fakeAdapter) SuggestGeoTargets(_ context.Context, locale, countryCode string, names []string) ([]googleads.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.suggestArgs = append([]string{locale, countryCode}, names...)
	return f.suggest, nil
}

func (f *fakeAdapter) ApplyRecommendation(_ context.Context, _ string, resourceName string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.applied = append(f.applied, resourceName)
	return []string{resourceName}, nil
}

func (f *fakeAdapter) DismissRecommendation(_ context.Context, _ string, resourceName string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.dismissed = append(f.dismissed, resourceName)
	return []string{resourceName}, nil
}

func decode(t *testing.T, js string) []googleads.Row {
	t.Helper()
	rows, err := googleads.DecodeRows([]byte(js))
	if err != nil {
		t.Fatalf("DecodeRows failed: %v", err)
	}
	return rows
}

func returning(rows []googleads.Row) func(string, string) ([]googleads.Row, error) {
	return func(string, string) ([]googleads.Row, error) { return rows, nil }
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	return m
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

const testCID = "1234567890"

func remoteFailure(msg string) error {
	return &apperrors.RemoteError{
		HTTPStatus: 400,
		Failures:   []apperrors.Failure{{Category: "mutateError", Message: msg}},
	}
}

func TestUnconfigured(t *testing.T) {
	cause := errors.New("Missing required environment variables: GOOGLE_ADS_DEVELOPER_TOKEN. Please configure credentials before using this tool.")
	svc := NewService(Unconfigured(cause), nil)

	_, err := svc.ListCampaigns(context.Background(), ListCampaignsArgs{CustomerID: testCID})
	if err == nil {
		t.Fatal("expected error from unconfigured adapter")
	}
	want := "Error: " + cause.Error()
	if got := apperrors.Format(err); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestValidationFailsBeforeRemoteCalls(t *testing.T) {
	tests := []struct {
		name string
		call func(*Service) error
	}{
		{"add_keywords empty", func(s *Service) error {
			_, err := s.AddKeywords(context.Background(), AddKeywordsArgs{CustomerID: testCID, AdGroupID: "1"})
			return err
		}},
		{"bad customer id", func(s *Service) error {
			_, err := s.ListCampaigns(context.Background(), ListCampaignsArgs{CustomerID: "123"})
			return err
		}},
		{"limit out of range", func(s *Service) error {
			_, err := s.ListCampaigns(context.Background(), ListCampaignsArgs{CustomerID: testCID, Limit: intPtr(101)})
			return err
		}},
		{"unknown status", func(s *Service) error {
			_, err := s.UpdateCampaignStatus(context.Background(), UpdateCampaignStatusArgs{CustomerID: testCID, CampaignID: "1", Status: "paused"})
			return err
		}},
		{"budget below minimum", func(s *Service) error {
			_, err := s.UpdateCampaignBudget(context.Background(), UpdateCampaignBudgetArgs{CustomerID: testCID, CampaignID: "1", NewBudgetMicros: 999_999})
			return err
		}},
		{"negative level without campaign", func(s *Service) error {
			_, err := s.AddNegativeKeywords(context.Background(), AddNegativeKeywordsArgs{CustomerID: testCID, Keywords: []string{"free"}})
			return err
		}},
		{"text assets without content", func(s *Service) error {
			_, err := s.CreateTextAssets(context.Background(), CreateTextAssetsArgs{CustomerID: testCID, AssetGroupID: "7"})
			return err
		}},
		{"asset group update without operations", func(s *Service) error {
			_, err := s.UpdateAssetGroupAssets(context.Background(), UpdateAssetGroupAssetsArgs{CustomerID: testCID, AssetGroupID: "7"})
			return err
		}},
		{"headline too long", func(s *Service) error {
			_, err := s.CreateTextAssets(context.Background(), CreateTextAssetsArgs{
				CustomerID: testCID, AssetGroupID: "7",
				Headlines: []string{strings.Repeat("x", 31)},
			})
			return err
		}},
		{"geo query too short", func(s *Service) error {
			_, err := s.SearchGeoTargets(context.Background(), SearchGeoTargetsArgs{CustomerID: testCID, Query: "R"})
			return err
		}},
		{"non-numeric id", func(s *Service) error {
			_, err := s.GetCampaign(context.Background(), GetCampaignArgs{CustomerID: testCID, CampaignID: "1 OR 1=1"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdapter{}
			err := tt.call(NewService(fake, nil))
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if fake.calls != 0 {
				t.Errorf("remote calls = %d, want 0", fake.calls)
			}
		})
	}
}

func TestRuleErrorsRenderWithCross(t *testing.T) {
	svc := NewService(&fakeAdapter{}, nil)
	_, err := svc.CreateTextAssets(context.Background(), CreateTextAssetsArgs{CustomerID: testCID, AssetGroupID: "7"})
	want := "❌ Error: You must provide at least one asset type (headlines, descriptions, long_headlines, or business_name)."
	if got := apperrors.Format(err); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	_, err = svc.AddNegativeKeywords(context.Background(), AddNegativeKeywordsArgs{
		CustomerID: testCID, Keywords: []string{"free"}, Level: "AD_GROUP",
	})
	if got := apperrors.Format(err); got != "❌ Error: ad_group_id is required when level is AD_GROUP" {
		t.Errorf("Format() = %q", got)
	}
}

func TestResourcePaths(t *testing.T) {
	if got := lastSegment("customers/1/campaigns/42"); got != "42" {
		t.Errorf("lastSegment = %q", got)
	}
	if got := criterionID("customers/1/adGroupCriteria/5~99"); got != "99" {
		t.Errorf("criterionID = %q", got)
	}
	if got := criterionID("customers/1/adGroupAds/7"); got != "7" {
		t.Errorf("criterionID without ~ = %q", got)
	}
	if got := resourcePath("1", "campaigns", "2"); got != "customers/1/campaigns/2" {
		t.Errorf("resourcePath = %q", got)
	}
	if got := presetLabel("LAST_7_DAYS"); got != "Last 7 Days" {
		t.Errorf("presetLabel = %q", got)
	}
}
