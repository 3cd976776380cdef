package ads

import (
	"context"
	"fmt"

	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

// strOr returns the string at path, or def when the field is absent or empty.
func strOr(r googleads.Row, path, def string) string {
	if v := r.Str(path); v != "" {
		return v
	}
	return def
}

type insightMetrics struct {
	Impressions             int64   `json:"impressions"`
	Clicks                  int64   `json:"clicks"`
	CostMicros              int64   `json:"cost_micros"`
	Conversions             float64 `json:"conversions"`
	ConversionsValue        float64 `json:"conversions_value"`
	CTR                     float64 `json:"ctr"`
	AverageCPCMicros        int64   `json:"average_cpc_micros"`
	ConversionRate          float64 `json:"conversion_rate"`
	CostPerConversionMicros int64   `json:"cost_per_conversion_micros"`
	ROAS                    float64 `json:"roas"`
}

type campaignInsights struct {
	CampaignID   string         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	DateRange    string         `json:"date_range"`
	Metrics      insightMetrics `json:"metrics"`
}

// GetCampaignInsights sums a campaign's metrics over a date range and
// derives the rates from the totals.
func (s *Service) GetCampaignInsights(ctx context.Context, args GetCampaignInsightsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	dateRange, err := schema.DatePresets.Check(args.DateRange, "LAST_30_DAYS")
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.conversions_value",
		"metrics.ctr",
		"metrics.average_cpc",
		"metrics.average_cpm",
		"metrics.cost_per_conversion",
	).From("campaign").Where(
		gaql.EqID("campaign.id", campaignID),
		gaql.DateRange(dateRange),
	)
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No data found for campaign %s in the selected date range", campaignID), nil
	}

	in := campaignInsights{CampaignID: campaignID, DateRange: dateRange}
	m := &in.Metrics
	for _, r := range rows {
		if in.CampaignName == "" {
			in.CampaignName = r.Str("campaign.name")
		}
		m.Impressions += r.Int("metrics.impressions")
		m.Clicks += r.Int("metrics.clicks")
		m.CostMicros += r.Int("metrics.cost_micros")
		m.Conversions += r.Float("metrics.conversions")
		m.ConversionsValue += r.Float("metrics.conversions_value")
	}
	m.CTR = report.Percent(report.SafeDiv(float64(m.Clicks), float64(m.Impressions)))
	m.AverageCPCMicros = int64(report.SafeDiv(float64(m.CostMicros), float64(m.Clicks)))
	m.ConversionRate = report.Percent(report.SafeDiv(m.Conversions, float64(m.Clicks)))
	m.CostPerConversionMicros = int64(report.SafeDiv(float64(m.CostMicros), m.Conversions))
	m.ROAS = report.Round2(report.SafeDiv(m.ConversionsValue, report.ToUnits(m.CostMicros)))

	return render(format, in, func() string {
		d := report.NewDoc("Performance: " + in.CampaignName)
		d.Linef("**Date Range**: %s", dateRange)
		d.Blank()
		d.H2("Key Metrics")
		d.Field("Impressions", report.Count(m.Impressions))
		d.Field("Clicks", report.Count(m.Clicks))
		d.Field("CTR", fmt.Sprintf("%.2f%%", m.CTR))
		d.Field("Cost", report.Money(m.CostMicros, ""))
		d.Field("Avg. CPC", report.Money(m.AverageCPCMicros, ""))
		d.Blank()
		d.H2("Conversions")
		d.Field("Conversions", fmt.Sprintf("%.2f", m.Conversions))
		d.Field("Conversion Rate", fmt.Sprintf("%.2f%%", m.ConversionRate))
		d.Field("Cost per Conversion", report.Money(m.CostPerConversionMicros, ""))
		d.Field("Conversion Value", report.Money(int64(m.ConversionsValue*1_000_000), ""))
		d.Field("ROAS", fmt.Sprintf("%.2fx", m.ROAS))
		return d.String()
	})
}

type searchTermMetrics struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	CTR              float64 `json:"ctr"`
	CostMicros       int64   `json:"cost_micros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversions_value"`
	AverageCPCMicros int64   `json:"average_cpc_micros"`
}

type searchTermRecord struct {
	SearchTerm   string            `json:"search_term"`
	Status       string            `json:"status"`
	CampaignID   string            `json:"campaign_id"`
	CampaignName string            `json:"campaign_name"`
	AdGroupID    string            `json:"ad_group_id"`
	AdGroupName  string            `json:"ad_group_name"`
	KeywordText  string            `json:"keyword_text"`
	MatchType    string            `json:"match_type"`
	Metrics      searchTermMetrics `json:"metrics"`
}

func normalizeSearchTerm(r googleads.Row) searchTermRecord {
	return searchTermRecord{
		SearchTerm:   r.Str("search_term_view.search_term"),
		Status:       strOr(r, "search_term_view.status", "UNKNOWN"),
		CampaignID:   r.Str("campaign.id"),
		CampaignName: r.Str("campaign.name"),
		AdGroupID:    r.Str("ad_group.id"),
		AdGroupName:  r.Str("ad_group.name"),
		KeywordText:  strOr(r, "segments.keyword.info.text", "N/A"),
		MatchType:    strOr(r, "segments.keyword.info.match_type", "N/A"),
		Metrics: searchTermMetrics{
			Impressions:      r.Int("metrics.impressions"),
			Clicks:           r.Int("metrics.clicks"),
			CTR:              report.Percent(r.Float("metrics.ctr")),
			CostMicros:       r.Int("metrics.cost_micros"),
			Conversions:      r.Float("metrics.conversions"),
			ConversionsValue: r.Float("metrics.conversions_value"),
			AverageCPCMicros: int64(r.Float("metrics.average_cpc")),
		},
	}
}

// searchTermsShown caps the markdown report; JSON carries every row.
const searchTermsShown = 50

// GetSearchTerms reports the queries that triggered ads, busiest first.
func (s *Service) GetSearchTerms(ctx context.Context, args GetSearchTermsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.OptionalID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.OptionalID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	dateRange, err := schema.DatePresets.Check(args.DateRange, "LAST_30_DAYS")
	if err != nil {
		return "", err
	}
	minImpressions, err := schema.Bounded("min_impressions", args.MinImpressions, 1, 1, -1)
	if err != nil {
		return "", err
	}
	limit, err := schema.Bounded("limit", args.Limit, 100, 1, 500)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"search_term_view.search_term",
		"search_term_view.status",
		"campaign.id",
		"campaign.name",
		"ad_group.id",
		"ad_group.name",
		"segments.keyword.info.text",
		"segments.keyword.info.match_type",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.ctr",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.conversions_value",
		"metrics.average_cpc",
	).From("search_term_view").Where(
		gaql.DateRange(dateRange),
		gaql.EqID("campaign.id", campaignID),
		gaql.EqID("ad_group.id", adGroupID),
		gaql.Gte("metrics.impressions", int64(minImpressions)),
	).OrderBy("metrics.impressions", true).Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		if campaignID != "" {
			return fmt.Sprintf("No search terms found for campaign %s in the selected date range", campaignID), nil
		}
		return "No search terms found in the selected date range", nil
	}

	terms := make([]searchTermRecord, 0, len(rows))
	for _, r := range rows {
		terms = append(terms, normalizeSearchTerm(r))
	}

	resp := map[string]any{
		"date_range":   dateRange,
		"total":        len(terms),
		"search_terms": terms,
	}
	return render(format, resp, func() string {
		d := report.NewDoc("Search Terms Report")
		d.Linef("**Date Range**: %s", dateRange)
		d.Linef("**Found**: %d search term(s)", len(terms))
		d.Blank()
		shown, hidden := report.Cap(terms, searchTermsShown)
		for _, st := range shown {
			m := st.Metrics
			icon := "👁️"
			switch {
			case m.Conversions > 0:
				icon = "🎯"
			case m.Clicks > 0:
				icon = "👆"
			}
			d.H2(fmt.Sprintf("%s \"%s\"", icon, st.SearchTerm))
			d.Field("Campaign", st.CampaignName)
			d.Field("Ad Group", st.AdGroupName)
			d.Field("Keyword", fmt.Sprintf("%s (%s)", st.KeywordText, st.MatchType))
			d.Field("Status", st.Status)
			d.Blank()
			d.Line("**Performance:**")
			d.Bullet("Impressions: %s", report.Count(m.Impressions))
			d.Bullet("Clicks: %s", report.Count(m.Clicks))
			d.Bullet("CTR: %.2f%%", m.CTR)
			d.Bullet("Cost: %s", report.Money(m.CostMicros, ""))
			d.Bullet("Avg CPC: %s", report.Money(m.AverageCPCMicros, ""))
			if m.Conversions > 0 {
				d.Bullet("Conversions: %.2f", m.Conversions)
				d.Bullet("Conv. Value: %s", report.Money(int64(m.ConversionsValue*1_000_000), ""))
			}
			d.Blank()
		}
		if hidden > 0 {
			d.Linef("*Showing top %d of %d search terms*", searchTermsShown, len(terms))
			d.Line("*Use JSON format or filters to see all results*")
		}
		return d.String()
	})
}

type assetRecord struct {
	AssetID          string `json:"asset_id"`
	AssetType        string `json:"asset_type"`
	FieldType        string `json:"field_type"`
	PerformanceLabel string `json:"performance_label"`
	ApprovalStatus   string `json:"approval_status"`
	ReviewStatus     string `json:"review_status"`
	Content          string `json:"content"`
	Preview          string `json:"preview"`
	AssetName        string `json:"asset_name"`
	AssetGroupID     string `json:"asset_group_id"`
	AssetGroupName   string `json:"asset_group_name"`
	CampaignID       string `json:"campaign_id"`
	CampaignName     string `json:"campaign_name"`
}

// assetContent picks the displayable content of an asset by its type.
func assetContent(r googleads.Row, assetType string) (content, preview string) {
	switch assetType {
	case "TEXT":
		content = strOr(r, "asset.text_asset.text", "N/A")
		return content, report.Preview(content, 100)
	case "IMAGE":
		if url := r.Str("asset.image_asset.full_size.url"); url != "" {
			return url, "🖼️ Image"
		}
		return "Image (URL not available)", "🖼️ Image"
	case "YOUTUBE_VIDEO":
		if id := r.Str("asset.youtube_video_asset.youtube_video_id"); id != "" {
			return "https://youtube.com/watch?v=" + id, "📹 Video: " + report.Clip(id, 20)
		}
		return "YouTube Video", "📹 Video"
	}
	return assetType + " asset", assetType
}

func normalizeAsset(r googleads.Row) assetRecord {
	assetType := r.Str("asset.type")
	content, preview := assetContent(r, assetType)
	return assetRecord{
		AssetID:          r.Str("asset_group_asset.asset"),
		AssetType:        assetType,
		FieldType:        strOr(r, "asset_group_asset.field_type", "UNKNOWN"),
		PerformanceLabel: strOr(r, "asset_group_asset.performance_label", "UNKNOWN"),
		ApprovalStatus:   strOr(r, "asset_group_asset.policy_summary.approval_status", "UNKNOWN"),
		ReviewStatus:     strOr(r, "asset_group_asset.policy_summary.review_status", "UNKNOWN"),
		Content:          content,
		Preview:          preview,
		AssetName:        r.Str("asset.name"),
		AssetGroupID:     r.Str("asset_group.id"),
		AssetGroupName:   r.Str("asset_group.name"),
		CampaignID:       r.Str("campaign.id"),
		CampaignName:     r.Str("campaign.name"),
	}
}

var (
	performanceLabels = []string{"BEST", "GOOD", "LOW", "LEARNING", "PENDING", "UNKNOWN"}

	performanceIcons = map[string]string{
		"BEST":     "🏆",
		"GOOD":     "✅",
		"LOW":      "⚠️",
		"LEARNING": "🔄",
		"PENDING":  "⏳",
		"UNKNOWN":  "❓",
	}

	approvalIcons = map[string]string{
		"APPROVED":     "✅",
		"DISAPPROVED":  "❌",
		"LIMITED":      "⚠️",
		"UNDER_REVIEW": "🔍",
	}
)

// assetsPerLabel caps each performance group in the markdown report.
const assetsPerLabel = 20

func iconOr(icons map[string]string, key, def string) string {
	if icon, ok := icons[key]; ok {
		return icon
	}
	return def
}

// GetAssetPerformance reports Performance Max assets grouped by Google's
// performance label.
func (s *Service) GetAssetPerformance(ctx context.Context, args GetAssetPerformanceArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	assetGroupID, err := schema.OptionalID("asset_group_id", args.AssetGroupID)
	if err != nil {
		return "", err
	}
	limit, err := schema.Bounded("limit", args.Limit, 50, 1, 200)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"asset_group_asset.asset",
		"asset_group_asset.field_type",
		"asset_group_asset.performance_label",
		"asset_group_asset.policy_summary.approval_status",
		"asset_group_asset.policy_summary.review_status",
		"asset.type",
		"asset.name",
		"asset.text_asset.text",
		"asset.image_asset.full_size.url",
		"asset.youtube_video_asset.youtube_video_id",
		"asset_group.id",
		"asset_group.name",
		"campaign.id",
		"campaign.name",
	).From("asset_group_asset").Where(
		gaql.EqID("campaign.id", campaignID),
		gaql.EqID("asset_group.id", assetGroupID),
	).Limit(limit)
	if args.AssetTypeFilter != "" {
		q.Where(gaql.Eq("asset.type", args.AssetTypeFilter))
	}

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No assets found for campaign %s. Make sure this is a Performance Max campaign.", campaignID), nil
	}

	assets := make([]assetRecord, 0, len(rows))
	for _, r := range rows {
		assets = append(assets, normalizeAsset(r))
	}
	byLabel := func(a assetRecord) string { return a.PerformanceLabel }
	campaignName := assets[0].CampaignName

	resp := map[string]any{
		"campaign_id":      campaignID,
		"campaign_name":    campaignName,
		"total":            len(assets),
		"assets":           assets,
		"summary_by_label": report.CountBy(assets, byLabel),
	}
	return render(format, resp, func() string {
		groups := report.GroupBy(assets, byLabel, performanceLabels)

		d := report.NewDoc("Asset Performance Report")
		d.Linef("**Campaign**: %s (%s)", campaignName, campaignID)
		d.Linef("**Found**: %d asset(s)", len(assets))
		d.Blank()
		d.H2("Performance Summary")
		for _, g := range groups {
			d.Linef("- **%s**: %d asset(s)", g.Key, len(g.Items))
		}
		d.Blank()
		for _, g := range groups {
			d.H2(fmt.Sprintf("%s %s Performance", iconOr(performanceIcons, g.Key, "❓"), g.Key))
			d.Blank()
			shown, hidden := report.Cap(g.Items, assetsPerLabel)
			for _, a := range shown {
				d.H3(a.AssetType + " - " + a.FieldType)
				d.Linef("**Content**: %s", a.Preview)
				d.Linef("**Approval**: %s %s", iconOr(approvalIcons, a.ApprovalStatus, "❓"), a.ApprovalStatus)
				d.Linef("**Review Status**: %s", a.ReviewStatus)
				d.Linef("**Asset Group**: %s", a.AssetGroupName)
				d.Blank()
			}
			d.More(hidden)
		}
		return d.String()
	})
}
