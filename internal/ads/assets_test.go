package ads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
)

func assetRow(label, text string) string {
	return fmt.Sprintf(`{"assetGroupAsset":{"asset":"customers/1234567890/assets/1","fieldType":"HEADLINE","performanceLabel":"%s","policySummary":{"approvalStatus":"APPROVED","reviewStatus":"REVIEWED"}},"asset":{"type":"TEXT","textAsset":{"text":"%s"}},"assetGroup":{"id":"7","name":"Main"},"campaign":{"id":"42","name":"PMax"}}`, label, text)
}

func TestGetAssetPerformanceGrouping(t *testing.T) {
	var items []string
	items = append(items, assetRow("LOW", "low one"))
	items = append(items, assetRow("SOMETHING_NEW", "odd one"))
	for i := 0; i < 25; i++ {
		items = append(items, assetRow("BEST", fmt.Sprintf("best %d", i)))
	}
	items = append(items, assetRow("GOOD", "good one"))
	fake := &fakeAdapter{search: returning(decode(t, "["+strings.Join(items, ",")+"]"))}

	out, err := NewService(fake, nil).GetAssetPerformance(context.Background(), GetAssetPerformanceArgs{
		CustomerID: testCID, CampaignID: "42",
	})
	if err != nil {
		t.Fatalf("GetAssetPerformance failed: %v", err)
	}

	best := strings.Index(out, "## 🏆 BEST Performance")
	good := strings.Index(out, "## ✅ GOOD Performance")
	low := strings.Index(out, "## ⚠️ LOW Performance")
	odd := strings.Index(out, "## ❓ SOMETHING_NEW Performance")
	if best < 0 || good < 0 || low < 0 || odd < 0 {
		t.Fatalf("missing group heading:\n%s", out)
	}
	if best >= good || good >= low || low >= odd {
		t.Errorf("groups out of order: BEST=%d GOOD=%d LOW=%d other=%d", best, good, low, odd)
	}

	bestSection := out[best:good]
	if n := strings.Count(bestSection, "### TEXT - HEADLINE"); n != assetsPerLabel {
		t.Errorf("BEST entries shown = %d, want %d", n, assetsPerLabel)
	}
	if !strings.Contains(bestSection, "*... and 5 more*") {
		t.Errorf("BEST section should count the hidden assets:\n%s", bestSection)
	}
	if strings.Contains(out[good:], "more*") {
		t.Errorf("uncapped groups should not report hidden assets:\n%s", out[good:])
	}
	if !strings.Contains(out, "- **BEST**: 25 asset(s)") {
		t.Errorf("summary should count all assets:\n%s", out)
	}
	if !strings.Contains(fake.queries[0], "campaign.id = 42") {
		t.Errorf("query = %s", fake.queries[0])
	}
}

func TestCreateTextAssets(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).CreateTextAssets(context.Background(), CreateTextAssetsArgs{
		CustomerID:   testCID,
		AssetGroupID: "7",
		Headlines:    []string{"Fresh Pasta Daily", "Order Online"},
		BusinessName: "Pasta Co",
	})
	if err != nil {
		t.Fatalf("CreateTextAssets failed: %v", err)
	}

	if len(fake.mutates) != 2 {
		t.Fatalf("mutates = %d, want 2", len(fake.mutates))
	}
	if fake.mutates[0].Service != "assets" || fake.mutates[1].Service != "assetGroupAssets" {
		t.Errorf("services = %q, %q", fake.mutates[0].Service, fake.mutates[1].Service)
	}
	created := fake.mutates[0].Ops[0].Create.(map[string]any)
	if created["name"] != "HEADLINE_Fresh Pasta Daily" || created["type"] != "TEXT" {
		t.Errorf("asset create = %v", created)
	}
	link := fake.mutates[1].Ops[2].Create.(map[string]any)
	if link["fieldType"] != "BUSINESS_NAME" || link["assetGroup"] != "customers/1234567890/assetGroups/7" {
		t.Errorf("link create = %v", link)
	}
	if link["asset"] != "customers/1234567890/assets/3" {
		t.Errorf("link asset = %v", link["asset"])
	}

	for _, want := range []string{
		"**Total Assets Created**: 3",
		"### Headlines (2)",
		"- Order Online",
		"### Business Name\n- Pasta Co",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "### Descriptions") {
		t.Errorf("empty section rendered:\n%s", out)
	}
}

func TestCreateTextAssetsLinkFailure(t *testing.T) {
	fake := &fakeAdapter{}
	fake.mutate = func(service string, ops []googleads.Operation) ([]string, error) {
		if service == "assetGroupAssets" {
			return nil, remoteFailure("Asset group not found.")
		}
		return []string{"customers/1234567890/assets/91"}, nil
	}
	_, err := NewService(fake, nil).CreateTextAssets(context.Background(), CreateTextAssetsArgs{
		CustomerID: testCID, AssetGroupID: "7", Headlines: []string{"Only One"},
	})
	if !apperrors.IsRemote(err) {
		t.Fatalf("expected remote cause, got %v", err)
	}
	got := apperrors.Format(err)
	if !strings.Contains(got, "Asset group not found.") ||
		!strings.Contains(got, "Created 1 text asset(s) that were not linked to asset group 7: customers/1234567890/assets/91") {
		t.Errorf("Format() = %q", got)
	}
}

func TestRemoveAssetFromGroupExpandsKeys(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).RemoveAssetFromGroup(context.Background(), RemoveAssetFromGroupArgs{
		CustomerID: testCID,
		AssetGroupAssetIDs: []string{
			"7~91~HEADLINE",
			"customers/1234567890/assetGroupAssets/7~92~DESCRIPTION",
		},
	})
	if err != nil {
		t.Fatalf("RemoveAssetFromGroup failed: %v", err)
	}
	ops := fake.mutates[0].Ops
	if ops[0].Remove != "customers/1234567890/assetGroupAssets/7~91~HEADLINE" {
		t.Errorf("remove[0] = %q", ops[0].Remove)
	}
	if ops[1].Remove != "customers/1234567890/assetGroupAssets/7~92~DESCRIPTION" {
		t.Errorf("remove[1] = %q", ops[1].Remove)
	}
	if !strings.HasPrefix(out, "✅ **Removed 2 asset(s) from asset group successfully!**") {
		t.Errorf("output = %q", out)
	}
}

func TestUpdateAssetGroupAssetsRemoveFailsAfterAdd(t *testing.T) {
	fake := &fakeAdapter{}
	fake.mutate = func(service string, ops []googleads.Operation) ([]string, error) {
		switch {
		case service == "assets":
			return []string{"customers/1234567890/assets/91"}, nil
		case ops[0].Remove != "":
			return nil, remoteFailure("Resource was not found.")
		default:
			return []string{"customers/1234567890/assetGroupAssets/7~91~HEADLINE"}, nil
		}
	}

	_, err := NewService(fake, nil).UpdateAssetGroupAssets(context.Background(), UpdateAssetGroupAssetsArgs{
		CustomerID:               testCID,
		AssetGroupID:             "7",
		AddHeadlines:             []string{"New Headline"},
		RemoveAssetGroupAssetIDs: []string{"7~80~HEADLINE"},
	})
	var partial *apperrors.PartialError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialError, got %v", err)
	}
	if !strings.Contains(partial.Completed, "Added 1 asset(s) to asset group 7") ||
		!strings.Contains(partial.Completed, "customers/1234567890/assetGroupAssets/7~91~HEADLINE") {
		t.Errorf("Completed = %q", partial.Completed)
	}
	if len(fake.mutates) != 3 {
		t.Errorf("mutates = %d, want 3", len(fake.mutates))
	}
}

func TestUpdateAssetGroupAssetsRemoveOnly(t *testing.T) {
	fake := &fakeAdapter{}
	out, err := NewService(fake, nil).UpdateAssetGroupAssets(context.Background(), UpdateAssetGroupAssetsArgs{
		CustomerID:               testCID,
		AssetGroupID:             "7",
		RemoveAssetGroupAssetIDs: []string{"7~80~HEADLINE"},
		ResponseFormat:           "json",
	})
	if err != nil {
		t.Fatalf("UpdateAssetGroupAssets failed: %v", err)
	}
	if len(fake.mutates) != 1 || fake.mutates[0].Service != "assetGroupAssets" {
		t.Fatalf("unexpected mutates: %+v", fake.mutates)
	}
	ops := decodeJSON(t, out)["operations"].([]any)
	if len(ops) != 1 || ops[0].(map[string]any)["type"] != "remove" {
		t.Errorf("operations = %v", ops)
	}
}
