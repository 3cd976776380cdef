package ads

import (
	"context"
	"strings"
	"testing"

	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
)

func TestListAds(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[
		{"adGroupAd":{"status":"ENABLED","ad":{"id":"900","type":"RESPONSIVE_SEARCH_AD","finalUrls":["https://example.com/shoes"],"responsiveSearchAd":{
			"headlines":[{"text":"Run Faster"},{"text":"Light Shoes"},{"text":"Free Returns"},{"text":"Shop Now"}],
			"descriptions":[{"text":"Lightweight running shoes built for long distances and everyday training."}]}}},
		 "adGroup":{"id":"7","name":"Running"}}
	]`))}

	out, err := NewService(fake, nil).ListAds(context.Background(), ListAdsArgs{CustomerID: testCID, AdGroupID: "7"})
	if err != nil {
		t.Fatalf("ListAds failed: %v", err)
	}
	if !strings.HasSuffix(fake.queries[0], "FROM ad_group_ad WHERE ad_group.id = 7 LIMIT 50") {
		t.Errorf("query = %s", fake.queries[0])
	}
	for _, want := range []string{
		"# Ads for Ad Group: Running",
		"## ✅ Ad 900",
		"- **Headlines**: Run Faster, Light Shoes, Free Returns...",
		"- **URL**: https://example.com/shoes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListAdsJSON(t *testing.T) {
	fake := &fakeAdapter{search: returning(decode(t, `[{"adGroupAd":{"status":"PAUSED","ad":{"id":"901","type":"EXPANDED_TEXT_AD"}},"adGroup":{"id":"7","name":"Running"}}]`))}

	out, err := NewService(fake, nil).ListAds(context.Background(), ListAdsArgs{
		CustomerID: testCID, AdGroupID: "7", StatusFilter: "PAUSED", ResponseFormat: "json",
	})
	if err != nil {
		t.Fatalf("ListAds failed: %v", err)
	}
	if !strings.Contains(fake.queries[0], "ad_group_ad.status = 'PAUSED'") {
		t.Errorf("query = %s", fake.queries[0])
	}
	ad := decodeJSON(t, out)["ads"].([]any)[0].(map[string]any)
	if urls, ok := ad["final_urls"].([]any); !ok || len(urls) != 0 {
		t.Errorf("final_urls = %v, want empty list", ad["final_urls"])
	}
	if _, ok := ad["headlines"]; ok {
		t.Error("non-RSA ads should omit headlines")
	}
}

func TestCreateResponsiveSearchAdStartsPaused(t *testing.T) {
	fake := &fakeAdapter{mutate: func(string, []googleads.Operation) ([]string, error) {
		return []string{"customers/1234567890/adGroupAds/7~555"}, nil
	}}
	out, err := NewService(fake, nil).CreateResponsiveSearchAd(context.Background(), CreateResponsiveSearchAdArgs{
		CustomerID:   testCID,
		AdGroupID:    "7",
		Headlines:    []string{" Run Faster ", "Light Shoes", "Free Returns"},
		Descriptions: []string{"Lightweight running shoes.", "Free shipping on every order."},
		FinalURLs:    []string{"https://example.com/shoes"},
		Path1:        "running",
	})
	if err != nil {
		t.Fatalf("CreateResponsiveSearchAd failed: %v", err)
	}

	m := fake.mutates[0]
	if m.Service != "adGroupAds" {
		t.Errorf("service = %q", m.Service)
	}
	create := m.Ops[0].Create.(map[string]any)
	if create["status"] != "PAUSED" || create["adGroup"] != "customers/1234567890/adGroups/7" {
		t.Errorf("create = %v", create)
	}
	rsa := create["ad"].(map[string]any)["responsiveSearchAd"].(map[string]any)
	headlines := rsa["headlines"].([]map[string]any)
	if len(headlines) != 3 || headlines[0]["text"] != "Run Faster" {
		t.Errorf("headlines = %v", headlines)
	}
	if rsa["path1"] != "running" {
		t.Errorf("path1 = %v", rsa["path1"])
	}
	if _, ok := rsa["path2"]; ok {
		t.Error("empty path2 should be omitted")
	}

	for _, want := range []string{
		"**Ad ID**: 555",
		"**Status**: PAUSED (enable when ready)",
		"**Headlines**: 3 added",
		"**Descriptions**: 2 added",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUpdateAdStatusPayload(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).UpdateAdStatus(context.Background(), UpdateAdStatusArgs{
		CustomerID: testCID, AdGroupID: "7", AdID: "555", Status: "ENABLED",
	})
	if err != nil {
		t.Fatalf("UpdateAdStatus failed: %v", err)
	}
	m := fake.mutates[0]
	if m.Service != "adGroupAds" || m.Ops[0].UpdateMask != "status" {
		t.Errorf("service = %q, mask = %q", m.Service, m.Ops[0].UpdateMask)
	}
	upd := m.Ops[0].Update.(map[string]any)
	if upd["resourceName"] != "customers/1234567890/adGroupAds/7~555" || upd["status"] != "ENABLED" {
		t.Errorf("update = %v", upd)
	}
	if out != "✅ Ad 555 has been enabled successfully." {
		t.Errorf("output = %q", out)
	}
}
