package ads

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type textAsset struct {
	FieldType string
	Text      string
}

type assetSummary struct {
	Headlines     []string `json:"headlines"`
	Descriptions  []string `json:"descriptions"`
	LongHeadlines []string `json:"long_headlines"`
	BusinessName  *string  `json:"business_name"`
}

type createdAssets struct {
	Success                      bool         `json:"success"`
	AssetGroupID                 string       `json:"asset_group_id"`
	TotalCreated                 int          `json:"total_created"`
	Assets                       assetSummary `json:"assets"`
	AssetResourceNames           []string     `json:"asset_resource_names"`
	AssetGroupAssetResourceNames []string     `json:"asset_group_asset_resource_names"`
}

func summarize(items []textAsset) assetSummary {
	sum := assetSummary{Headlines: []string{}, Descriptions: []string{}, LongHeadlines: []string{}}
	for _, it := range items {
		switch it.FieldType {
		case "HEADLINE":
			sum.Headlines = append(sum.Headlines, it.Text)
		case "DESCRIPTION":
			sum.Descriptions = append(sum.Descriptions, it.Text)
		case "LONG_HEADLINE":
			sum.LongHeadlines = append(sum.LongHeadlines, it.Text)
		case "BUSINESS_NAME":
			name := it.Text
			sum.BusinessName = &name
		}
	}
	return sum
}

// linkTextAssets creates one TEXT asset per item and links each to the asset
// group under its field type. Assets and links are two mutate calls; when
// linking fails the created assets stay in the account library unlinked.
func (s *Service) linkTextAssets(ctx context.Context, cid, assetGroupID string, items []textAsset) (createdAssets, error) {
	assetOps := make([]googleads.Operation, 0, len(items))
	for _, it := range items {
		assetOps = append(assetOps, googleads.Operation{Create: map[string]any{
			"type":      "TEXT",
			"name":      it.FieldType + "_" + report.Clip(it.Text, 20),
			"textAsset": map[string]any{"text": it.Text},
		}})
	}
	assetNames, err := s.ads.Mutate(ctx, cid, "assets", assetOps)
	if err != nil {
		return createdAssets{}, err
	}

	group := resourcePath(cid, "assetGroups", assetGroupID)
	linkOps := make([]googleads.Operation, 0, len(assetNames))
	for i, name := range assetNames {
		linkOps = append(linkOps, googleads.Operation{Create: map[string]any{
			"asset":      name,
			"assetGroup": group,
			"fieldType":  items[i].FieldType,
		}})
	}
	linkNames, err := s.ads.Mutate(ctx, cid, "assetGroupAssets", linkOps)
	if err != nil {
		return createdAssets{}, &apperrors.PartialError{
			Completed: fmt.Sprintf("Created %d text asset(s) that were not linked to asset group %s: %s",
				len(assetNames), assetGroupID, strings.Join(assetNames, ", ")),
			Err: err,
		}
	}

	return createdAssets{
		Success:                      true,
		AssetGroupID:                 assetGroupID,
		TotalCreated:                 len(assetNames),
		Assets:                       summarize(items),
		AssetResourceNames:           assetNames,
		AssetGroupAssetResourceNames: linkNames,
	}, nil
}

func collect(fieldType string, texts []string) []textAsset {
	out := make([]textAsset, 0, len(texts))
	for _, t := range texts {
		out = append(out, textAsset{FieldType: fieldType, Text: t})
	}
	return out
}

// CreateTextAssets creates text assets and adds them to a Performance Max
// asset group.
func (s *Service) CreateTextAssets(ctx context.Context, args CreateTextAssetsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	assetGroupID, err := schema.ID("asset_group_id", args.AssetGroupID)
	if err != nil {
		return "", err
	}
	headlines, err := schema.Texts("headlines", "Headline", args.Headlines, 30, 0, 15)
	if err != nil {
		return "", err
	}
	descriptions, err := schema.Texts("descriptions", "Description", args.Descriptions, 90, 0, 5)
	if err != nil {
		return "", err
	}
	longHeadlines, err := schema.Texts("long_headlines", "Long headline", args.LongHeadlines, 90, 0, 5)
	if err != nil {
		return "", err
	}
	businessName, err := schema.Text("business_name", args.BusinessName, 0, 25)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}
	if err := schema.AtLeastOne("headlines",
		"You must provide at least one asset type (headlines, descriptions, long_headlines, or business_name).",
		len(headlines) > 0, len(descriptions) > 0, len(longHeadlines) > 0, businessName != ""); err != nil {
		return "", err
	}

	items := collect("HEADLINE", headlines)
	items = append(items, collect("DESCRIPTION", descriptions)...)
	items = append(items, collect("LONG_HEADLINE", longHeadlines)...)
	if businessName != "" {
		items = append(items, textAsset{FieldType: "BUSINESS_NAME", Text: businessName})
	}

	res, err := s.linkTextAssets(ctx, cid, assetGroupID, items)
	if err != nil {
		return "", err
	}

	return render(format, res, func() string {
		sum := res.Assets
		lines := []string{
			"✅ **Text assets created and added to asset group successfully!**",
			"",
			"**Asset Group ID**: " + assetGroupID,
			fmt.Sprintf("**Total Assets Created**: %d", res.TotalCreated),
			"",
		}
		section := func(heading string, items []string) {
			if len(items) == 0 {
				return
			}
			lines = append(lines, fmt.Sprintf("### %s (%d)", heading, len(items)))
			for _, it := range items {
				lines = append(lines, "- "+it)
			}
			lines = append(lines, "")
		}
		section("Headlines", sum.Headlines)
		section("Descriptions", sum.Descriptions)
		section("Long Headlines", sum.LongHeadlines)
		if sum.BusinessName != nil {
			lines = append(lines, "### Business Name", "- "+*sum.BusinessName, "")
		}
		lines = append(lines,
			"**Status**: Assets are pending Google review (usually within 1 business day)",
			"",
			"**Next Steps**:",
			"1. Monitor asset approval status with `google_ads_get_asset_performance`",
			"2. Remove disapproved assets if any",
			"3. Wait 24-48 hours for performance labels to appear",
		)
		return strings.Join(lines, "\n")
	})
}

// assetGroupAssetNames accepts full resource names or the bare
// "{asset_group_id}~{asset_id}~{field_type}" key.
func assetGroupAssetNames(cid string, refs []string) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		if strings.HasPrefix(ref, "customers/") {
			out[i] = ref
			continue
		}
		out[i] = resourcePath(cid, "assetGroupAssets", ref)
	}
	return out
}

func (s *Service) unlinkAssets(ctx context.Context, cid string, names []string) (int, error) {
	ops := make([]googleads.Operation, 0, len(names))
	for _, n := range names {
		ops = append(ops, googleads.Operation{Remove: n})
	}
	removed, err := s.ads.Mutate(ctx, cid, "assetGroupAssets", ops)
	if err != nil {
		return 0, err
	}
	return len(removed), nil
}

func removedAssetsText(requested, removed int) string {
	return strings.Join([]string{
		fmt.Sprintf("✅ **Removed %d asset(s) from asset group successfully!**", requested),
		"",
		fmt.Sprintf("**Removed Assets**: %d", removed),
		"",
		"The assets have been unlinked from the asset group. The campaign will stop using them immediately.",
		"",
		"**Note**: The assets themselves remain in your account library and can be reused in other campaigns.",
	}, "\n")
}

// RemoveAssetFromGroup unlinks assets from their asset group. The assets
// stay in the account library.
func (s *Service) RemoveAssetFromGroup(ctx context.Context, args RemoveAssetFromGroupArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	refs, err := schema.Refs("asset_group_asset_ids", args.AssetGroupAssetIDs, 1)
	if err != nil {
		return "", err
	}

	removed, err := s.unlinkAssets(ctx, cid, assetGroupAssetNames(cid, refs))
	if err != nil {
		return "", err
	}
	return removedAssetsText(len(refs), removed), nil
}

type assetGroupStep struct {
	Type    string         `json:"type"`
	Added   *createdAssets `json:"added,omitempty"`
	Removed *int           `json:"removed,omitempty"`
}

// UpdateAssetGroupAssets adds new text assets and then unlinks old ones.
// The steps are separate calls and are not atomic: if removal fails the
// added assets stay in place and the error says so.
func (s *Service) UpdateAssetGroupAssets(ctx context.Context, args UpdateAssetGroupAssetsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	assetGroupID, err := schema.ID("asset_group_id", args.AssetGroupID)
	if err != nil {
		return "", err
	}
	headlines, err := schema.Texts("add_headlines", "Headline", args.AddHeadlines, 30, 0, 15)
	if err != nil {
		return "", err
	}
	descriptions, err := schema.Texts("add_descriptions", "Description", args.AddDescriptions, 90, 0, 5)
	if err != nil {
		return "", err
	}
	refs, err := schema.Refs("remove_asset_group_asset_ids", args.RemoveAssetGroupAssetIDs, 0)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}
	hasAdd := len(headlines) > 0 || len(descriptions) > 0
	if err := schema.AtLeastOne("add_headlines",
		"You must specify at least one operation (add or remove assets).",
		hasAdd, len(refs) > 0); err != nil {
		return "", err
	}

	var steps []assetGroupStep
	if hasAdd {
		items := append(collect("HEADLINE", headlines), collect("DESCRIPTION", descriptions)...)
		added, err := s.linkTextAssets(ctx, cid, assetGroupID, items)
		if err != nil {
			return "", err
		}
		steps = append(steps, assetGroupStep{Type: "add", Added: &added})
	}
	if len(refs) > 0 {
		removed, err := s.unlinkAssets(ctx, cid, assetGroupAssetNames(cid, refs))
		if err != nil {
			if hasAdd {
				added := steps[0].Added
				return "", &apperrors.PartialError{
					Completed: fmt.Sprintf("Added %d asset(s) to asset group %s before the removal failed; they were not rolled back: %s",
						added.TotalCreated, assetGroupID, strings.Join(added.AssetGroupAssetResourceNames, ", ")),
					Err: err,
				}
			}
			return "", err
		}
		steps = append(steps, assetGroupStep{Type: "remove", Removed: &removed})
	}

	resp := map[string]any{
		"success":        true,
		"asset_group_id": assetGroupID,
		"operations":     steps,
	}
	return render(format, resp, func() string {
		lines := []string{
			"✅ **Asset group updated successfully!**",
			"",
			"**Asset Group ID**: " + assetGroupID,
			"",
		}
		for _, st := range steps {
			switch st.Type {
			case "add":
				lines = append(lines, fmt.Sprintf("### Added Assets (%d)", st.Added.TotalCreated))
				if h := st.Added.Assets.Headlines; len(h) > 0 {
					lines = append(lines, "**Headlines**: "+strings.Join(h, ", "))
				}
				if d := st.Added.Assets.Descriptions; len(d) > 0 {
					lines = append(lines, "**Descriptions**: "+strings.Join(d, ", "))
				}
			case "remove":
				lines = append(lines, "### Removed Assets", removedAssetsText(len(refs), *st.Removed))
			}
			lines = append(lines, "")
		}
		lines = append(lines,
			"**Next Steps**:",
			"1. Verify new assets are approved with `google_ads_get_asset_performance`",
			"2. Monitor campaign performance for impact",
		)
		return strings.Join(lines, "\n")
	})
}
