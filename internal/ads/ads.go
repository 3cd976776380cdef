package ads

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type adRecord struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	FinalURLs    []string `json:"final_urls"`
	Headlines    []string `json:"headlines,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// texts collects the text of each AdTextAsset at path.
func texts(r googleads.Row, path string) []string {
	assets := r.Rows(path)
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Str("text"))
	}
	return out
}

func normalizeAd(r googleads.Row) adRecord {
	a := adRecord{
		ID:        r.Str("ad_group_ad.ad.id"),
		Type:      r.Str("ad_group_ad.ad.type"),
		Status:    r.Str("ad_group_ad.status"),
		FinalURLs: r.Strings("ad_group_ad.ad.final_urls"),
	}
	if a.FinalURLs == nil {
		a.FinalURLs = []string{}
	}
	if a.Type == "RESPONSIVE_SEARCH_AD" {
		a.Headlines = texts(r, "ad_group_ad.ad.responsive_search_ad.headlines")
		a.Descriptions = texts(r, "ad_group_ad.ad.responsive_search_ad.descriptions")
	}
	return a
}

// ListAds lists the ads in an ad group.
func (s *Service) ListAds(ctx context.Context, args ListAdsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	status, err := schema.AdStatuses.Optional(args.StatusFilter)
	if err != nil {
		return "", err
	}
	limit, err := schema.Bounded("limit", args.Limit, 50, 1, 100)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"ad_group_ad.ad.id",
		"ad_group_ad.ad.type",
		"ad_group_ad.status",
		"ad_group_ad.ad.final_urls",
		"ad_group_ad.ad.responsive_search_ad.headlines",
		"ad_group_ad.ad.responsive_search_ad.descriptions",
		"ad_group.id",
		"ad_group.name",
	).From("ad_group_ad").Where(gaql.EqID("ad_group.id", adGroupID))
	if status != "" {
		q.Where(gaql.Eq("ad_group_ad.status", status))
	}
	q.Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	var adGroupName string
	ads := make([]adRecord, 0, len(rows))
	for _, r := range rows {
		if adGroupName == "" {
			adGroupName = r.Str("ad_group.name")
		}
		ads = append(ads, normalizeAd(r))
	}

	if format == schema.JSON {
		return report.JSON(map[string]any{
			"ad_group_id":   adGroupID,
			"ad_group_name": nullable(adGroupName),
			"total":         len(ads),
			"ads":           ads,
		})
	}
	if len(ads) == 0 {
		return fmt.Sprintf("No ads found for ad group %s", adGroupID), nil
	}
	d := report.NewDoc("Ads for Ad Group: " + adGroupName)
	d.Linef("Found %d ad(s)", len(ads))
	d.Blank()
	for _, a := range ads {
		d.H2(fmt.Sprintf("%s Ad %s", statusIcon(a.Status), a.ID))
		d.Field("Type", a.Type)
		d.Field("Status", a.Status)
		if len(a.Headlines) > 0 {
			shown, _ := report.Cap(a.Headlines, 3)
			d.Field("Headlines", strings.Join(shown, ", ")+"...")
		}
		if len(a.Descriptions) > 0 {
			d.Field("Descriptions", report.Clip(a.Descriptions[0], 50)+"...")
		}
		if len(a.FinalURLs) > 0 {
			d.Field("URL", a.FinalURLs[0])
		}
		d.Blank()
	}
	return d.String(), nil
}

// textAssets wraps each text as an AdTextAsset.
func textAssets(items []string) []map[string]any {
	out := make([]map[string]any, len(items))
	for i, t := range items {
		out[i] = map[string]any{"text": t}
	}
	return out
}

// CreateResponsiveSearchAd creates a PAUSED responsive search ad.
func (s *Service) CreateResponsiveSearchAd(ctx context.Context, args CreateResponsiveSearchAdArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	headlines, err := schema.Texts("headlines", "Headline", args.Headlines, 30, 3, 15)
	if err != nil {
		return "", err
	}
	descriptions, err := schema.Texts("descriptions", "Description", args.Descriptions, 90, 2, 4)
	if err != nil {
		return "", err
	}
	finalURLs, err := schema.Refs("final_urls", args.FinalURLs, 1)
	if err != nil {
		return "", err
	}
	path1, err := schema.Text("path1", args.Path1, 0, 15)
	if err != nil {
		return "", err
	}
	path2, err := schema.Text("path2", args.Path2, 0, 15)
	if err != nil {
		return "", err
	}

	rsa := map[string]any{
		"headlines":    textAssets(headlines),
		"descriptions": textAssets(descriptions),
	}
	if path1 != "" {
		rsa["path1"] = path1
	}
	if path2 != "" {
		rsa["path2"] = path2
	}
	adGroupAd := map[string]any{
		"adGroup": resourcePath(cid, "adGroups", adGroupID),
		"status":  "PAUSED",
		"ad": map[string]any{
			"finalUrls":          finalURLs,
			"responsiveSearchAd": rsa,
		},
	}
	names, err := s.ads.Mutate(ctx, cid, "adGroupAds", []googleads.Operation{{Create: adGroupAd}})
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		"✅ Responsive search ad created successfully!",
		"",
		"**Ad ID**: " + criterionID(names[0]),
		"**Ad Group ID**: " + adGroupID,
		"**Status**: PAUSED (enable when ready)",
		fmt.Sprintf("**Headlines**: %d added", len(headlines)),
		fmt.Sprintf("**Descriptions**: %d added", len(descriptions)),
		"**Final URL**: " + finalURLs[0],
		"",
		"The ad will automatically test different combinations to find the best performers.",
		"",
		"Next step: Enable the ad group and campaign to start showing ads.",
	}, "\n"), nil
}

// UpdateAdStatus enables, pauses or removes an ad.
func (s *Service) UpdateAdStatus(ctx context.Context, args UpdateAdStatusArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	adID, err := schema.ID("ad_id", args.AdID)
	if err != nil {
		return "", err
	}
	status, err := schema.AdStatuses.Check(args.Status, "")
	if err != nil {
		return "", err
	}

	op := googleads.Operation{
		Update: map[string]any{
			"resourceName": resourcePath(cid, "adGroupAds", adGroupID+"~"+adID),
			"status":       status,
		},
		UpdateMask: "status",
	}
	if _, err := s.ads.Mutate(ctx, cid, "adGroupAds", []googleads.Operation{op}); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Ad %s has been %s successfully.", adID, statusVerbs[status]), nil
}
