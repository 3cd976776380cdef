package ads

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
)

func TestListAccounts(t *testing.T) {
	defer goleak.VerifyNone(t)

	fake := &fakeAdapter{
		customers: []string{"customers/1111111111", "customers/2222222222", "customers/3333333333"},
	}
	fake.search = func(cid, _ string) ([]googleads.Row, error) {
		if cid == "2222222222" {
			return nil, remoteFailure("User doesn't have permission to access customer.")
		}
		return decode(t, fmt.Sprintf(`[{"customer":{"id":"%s","descriptiveName":"Account %s","currencyCode":"EUR","timeZone":"Europe/Rome","status":"ENABLED"}}]`, cid, cid[:1])), nil
	}

	out, err := NewService(fake, nil).ListAccounts(context.Background(), ListAccountsArgs{ResponseFormat: "json"})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	resp := decodeJSON(t, out)
	if resp["total"] != float64(2) {
		t.Fatalf("total = %v, want 2", resp["total"])
	}
	accounts := resp["accounts"].([]any)
	first := accounts[0].(map[string]any)
	second := accounts[1].(map[string]any)
	if first["id"] != "1111111111" || second["id"] != "3333333333" {
		t.Errorf("accounts out of order: %v, %v", first["id"], second["id"])
	}
	if first["resource_name"] != "customers/1111111111" {
		t.Errorf("resource_name = %v", first["resource_name"])
	}
}

func TestListAccountsFailsOnTransportError(t *testing.T) {
	defer goleak.VerifyNone(t)

	fake := &fakeAdapter{customers: []string{"customers/1111111111"}}
	fake.search = func(string, string) ([]googleads.Row, error) {
		return nil, errors.New("connection reset")
	}
	if _, err := NewService(fake, nil).ListAccounts(context.Background(), ListAccountsArgs{}); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestListAccountsEmpty(t *testing.T) {
	out, err := NewService(&fakeAdapter{}, nil).ListAccounts(context.Background(), ListAccountsArgs{})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if !strings.HasPrefix(out, "No accessible Google Ads accounts") {
		t.Errorf("unexpected output: %q", out)
	}
}

func campaignRows(t *testing.T, n int) []googleads.Row {
	t.Helper()
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"campaign":{"id":"%d","name":"Campaign %d","status":"ENABLED","advertisingChannelType":"SEARCH","biddingStrategyType":"MANUAL_CPC","startDate":"2024-01-01"},"campaignBudget":{"amountMicros":"25000000"}}`, 10-i, 10-i)
	}
	return decode(t, "["+strings.Join(items, ",")+"]")
}

func TestListCampaignsPagination(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		offset     int
		limit      int
		wantLimit  string
		wantCount  float64
		wantMore   bool
		wantOffset any
	}{
		{"first page with more", 2, 0, 2, "LIMIT 2", 2, true, float64(2)},
		{"second page with more", 4, 2, 2, "LIMIT 4", 2, true, float64(4)},
		{"last partial page", 3, 2, 2, "LIMIT 4", 1, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdapter{search: returning(campaignRows(t, tt.rows))}
			out, err := NewService(fake, nil).ListCampaigns(context.Background(), ListCampaignsArgs{
				CustomerID:     "123-456-7890",
				Offset:         intPtr(tt.offset),
				Limit:          intPtr(tt.limit),
				ResponseFormat: "json",
			})
			if err != nil {
				t.Fatalf("ListCampaigns failed: %v", err)
			}
			if !strings.HasSuffix(fake.queries[0], tt.wantLimit) {
				t.Errorf("query = %q, want suffix %q", fake.queries[0], tt.wantLimit)
			}
			resp := decodeJSON(t, out)
			if resp["count"] != tt.wantCount {
				t.Errorf("count = %v, want %v", resp["count"], tt.wantCount)
			}
			if resp["has_more"] != tt.wantMore {
				t.Errorf("has_more = %v, want %v", resp["has_more"], tt.wantMore)
			}
			if resp["next_offset"] != tt.wantOffset {
				t.Errorf("next_offset = %v, want %v", resp["next_offset"], tt.wantOffset)
			}
		})
	}
}

func TestListCampaignsOffsetSlicesRows(t *testing.T) {
	fake := &fakeAdapter{search: returning(campaignRows(t, 4))}
	out, err := NewService(fake, nil).ListCampaigns(context.Background(), ListCampaignsArgs{
		CustomerID: testCID,
		Offset:     intPtr(2),
		Limit:      intPtr(2),
	})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if strings.Contains(out, "Campaign 10 (10)") || !strings.Contains(out, "Campaign 8 (8)") {
		t.Errorf("offset not applied:\n%s", out)
	}
	if !strings.Contains(out, "USD 25.00") {
		t.Errorf("budget not rendered:\n%s", out)
	}
	if !strings.Contains(out, "*Use offset=4 to see more results*") {
		t.Errorf("missing pagination hint:\n%s", out)
	}
}

func TestListCampaignsOffsetBounds(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"negative", -1, "offset must be between 0 and 10000"},
		{"past ceiling", maxCampaignOffset + 1, "offset must be between 0 and 10000"},
		{"overflow", math.MaxInt, "offset must be between 0 and 10000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdapter{}
			_, err := NewService(fake, nil).ListCampaigns(context.Background(), ListCampaignsArgs{
				CustomerID: testCID,
				Offset:     intPtr(tt.offset),
			})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
			if fake.calls != 0 {
				t.Errorf("remote called %d times for an invalid offset", fake.calls)
			}
		})
	}

	fake := &fakeAdapter{}
	_, err := NewService(fake, nil).ListCampaigns(context.Background(), ListCampaignsArgs{
		CustomerID: testCID,
		Offset:     intPtr(maxCampaignOffset),
		Limit:      intPtr(100),
	})
	if err != nil {
		t.Fatalf("max offset rejected: %v", err)
	}
	if !strings.Contains(fake.queries[0], "LIMIT 10100") {
		t.Errorf("query should stay bounded: %s", fake.queries[0])
	}
}

func TestListCampaignsStatusFilter(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).ListCampaigns(context.Background(), ListCampaignsArgs{
		CustomerID:   testCID,
		StatusFilter: "PAUSED",
	})
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if !strings.Contains(fake.queries[0], "WHERE campaign.status = 'PAUSED'") {
		t.Errorf("query missing status filter: %s", fake.queries[0])
	}
	if out != "No campaigns found with status PAUSED" {
		t.Errorf("output = %q", out)
	}
}

func TestUpdateCampaignStatusPayload(t *testing.T) {
	fake := &fakeAdapter{}
	_, err := NewService(fake, nil).UpdateCampaignStatus(context.Background(), UpdateCampaignStatusArgs{
		CustomerID: testCID, CampaignID: "42", Status: "PAUSED",
	})
	if err != nil {
		t.Fatalf("UpdateCampaignStatus failed: %v", err)
	}
	if len(fake.mutates) != 1 {
		t.Fatalf("mutates = %d, want 1", len(fake.mutates))
	}
	m := fake.mutates[0]
	if m.Service != "campaigns" {
		t.Errorf("service = %q", m.Service)
	}
	op := m.Ops[0]
	if op.UpdateMask != "status" {
		t.Errorf("update mask = %q", op.UpdateMask)
	}
	upd := op.Update.(map[string]any)
	if upd["resourceName"] != "customers/1234567890/campaigns/42" || upd["status"] != "PAUSED" {
		t.Errorf("update = %v", upd)
	}
}

func TestCreateCampaignStartsPaused(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).CreateCampaign(context.Background(), CreateCampaignArgs{
		CustomerID:             testCID,
		CampaignName:           "Spring Sale",
		BudgetAmountMicros:     50_000_000,
		AdvertisingChannelType: "SEARCH",
	})
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if len(fake.mutates) != 2 {
		t.Fatalf("mutates = %d, want budget then campaign", len(fake.mutates))
	}

	budget := fake.mutates[0]
	if budget.Service != "campaignBudgets" {
		t.Errorf("first service = %q", budget.Service)
	}
	b := budget.Ops[0].Create.(map[string]any)
	if b["name"] != "Spring Sale Budget" || b["amountMicros"] != int64(50_000_000) || b["deliveryMethod"] != "STANDARD" {
		t.Errorf("budget = %v", b)
	}

	campaign := fake.mutates[1]
	if campaign.Service != "campaigns" {
		t.Errorf("second service = %q", campaign.Service)
	}
	c := campaign.Ops[0].Create.(map[string]any)
	if c["status"] != "PAUSED" {
		t.Errorf("status = %v, want PAUSED", c["status"])
	}
	if c["campaignBudget"] != "customers/1234567890/campaignBudgets/1" {
		t.Errorf("campaignBudget = %v", c["campaignBudget"])
	}
	if c["advertisingChannelType"] != "SEARCH" {
		t.Errorf("channel = %v", c["advertisingChannelType"])
	}
	if _, ok := c["manualCpc"]; !ok {
		t.Errorf("default bidding should be manualCpc: %v", c)
	}
	network := c["networkSettings"].(map[string]any)
	if network["targetGoogleSearch"] != true || network["targetContentNetwork"] != false {
		t.Errorf("networkSettings = %v", network)
	}

	for _, want := range []string{
		"✅ Campaign created successfully!",
		"**Campaign ID**: 1",
		"**Status**: PAUSED (enable it when ready)",
		"**Budget**: USD 50.00/day",
		"**Bidding**: MANUAL_CPC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCreateCampaignBudgetFailureSkipsCampaign(t *testing.T) {
	fake := &fakeAdapter{mutate: func(string, []googleads.Operation) ([]string, error) {
		return nil, remoteFailure("Budget amount is too small.")
	}}
	_, err := NewService(fake, nil).CreateCampaign(context.Background(), CreateCampaignArgs{
		CustomerID:             testCID,
		CampaignName:           "Spring Sale",
		BudgetAmountMicros:     1_000_000,
		AdvertisingChannelType: "SEARCH",
	})
	if err == nil {
		t.Fatal("expected budget failure")
	}
	if len(fake.mutates) != 1 {
		t.Errorf("mutates = %d, campaign must not be created without a budget", len(fake.mutates))
	}
}

func TestSetCampaignScheduleReplacesInOneBatch(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[
		{"campaignCriterion":{"criterionId":"301"}},
		{"campaignCriterion":{"criterionId":"302"}}
	]`))}

	out, err := NewService(fake, nil).SetCampaignSchedule(context.Background(), SetCampaignScheduleArgs{
		CustomerID:  testCID,
		CampaignID:  "42",
		Days:        []string{"MONDAY", "FRIDAY"},
		StartHour:   9,
		StartMinute: 30,
		EndHour:     17,
		EndMinute:   0,
	})
	if err != nil {
		t.Fatalf("SetCampaignSchedule failed: %v", err)
	}

	q := fake.queries[0]
	for _, want := range []string{"FROM campaign_criterion", "campaign.id = 42", "campaign_criterion.type = 'AD_SCHEDULE'"} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing %q: %s", want, q)
		}
	}

	if len(fake.mutates) != 1 {
		t.Fatalf("mutates = %d, want a single batch", len(fake.mutates))
	}
	m := fake.mutates[0]
	if m.Service != "campaignCriteria" || len(m.Ops) != 4 {
		t.Fatalf("service = %q, ops = %d", m.Service, len(m.Ops))
	}
	for i, want := range []string{
		"customers/1234567890/campaignCriteria/42~301",
		"customers/1234567890/campaignCriteria/42~302",
	} {
		if m.Ops[i].Remove != want {
			t.Errorf("op %d remove = %q, want %q", i, m.Ops[i].Remove, want)
		}
	}
	for i, day := range []string{"MONDAY", "FRIDAY"} {
		create := m.Ops[2+i].Create.(map[string]any)
		if create["campaign"] != "customers/1234567890/campaigns/42" || create["status"] != "ENABLED" {
			t.Errorf("op %d create = %v", 2+i, create)
		}
		sched := create["adSchedule"].(map[string]any)
		if sched["dayOfWeek"] != day || sched["startHour"] != 9 || sched["startMinute"] != "THIRTY" ||
			sched["endHour"] != 17 || sched["endMinute"] != "ZERO" {
			t.Errorf("op %d schedule = %v", 2+i, sched)
		}
	}

	for _, want := range []string{
		"**Active Days**: Monday, Friday",
		"**Active Hours**: 09:30 - 17:00",
		"Removed 2 existing schedule(s)",
		"Created 2 new schedule(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetCampaignScheduleRejectsOddMinutes(t *testing.T) {
	fake := &fakeAdapter{}
	_, err := NewService(fake, nil).SetCampaignSchedule(context.Background(), SetCampaignScheduleArgs{
		CustomerID: testCID, CampaignID: "42", Days: []string{"MONDAY"},
		StartHour: 9, StartMinute: 10, EndHour: 17,
	})
	if err == nil {
		t.Fatal("expected minute validation error")
	}
	if fake.calls != 0 {
		t.Errorf("remote calls = %d, want 0", fake.calls)
	}
}

func TestGetAccountInfo(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[{"customer":{"id":"1234567890","descriptiveName":"Acme","currencyCode":"EUR","timeZone":"Europe/Oslo","status":"ENABLED","manager":false,"testAccount":true,"autoTaggingEnabled":true,"hasPartnersBadge":false}}]`))}

	out, err := NewService(fake, nil).GetAccountInfo(context.Background(), GetAccountInfoArgs{CustomerID: "123-456-7890"})
	if err != nil {
		t.Fatalf("GetAccountInfo failed: %v", err)
	}
	if !strings.Contains(fake.queries[0], "FROM customer WHERE customer.id = 1234567890") {
		t.Errorf("query = %s", fake.queries[0])
	}
	for _, want := range []string{
		"# Account: Acme (1234567890)",
		"- **Currency**: EUR",
		"- **Manager Account**: No",
		"- **Test Account**: Yes",
		"- **Auto-tagging**: Enabled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGetAccountInfoNotFound(t *testing.T) {
	out, err := NewService(&fakeAdapter{}, nil).GetAccountInfo(context.Background(), GetAccountInfoArgs{CustomerID: testCID})
	if err != nil {
		t.Fatalf("GetAccountInfo failed: %v", err)
	}
	if out != "No account found with ID 1234567890" {
		t.Errorf("output = %q", out)
	}
}
