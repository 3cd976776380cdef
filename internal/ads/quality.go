package ads

import (
	"context"
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type qualityRecord struct {
	CriterionID  string `json:"criterion_id"`
	Keyword      string `json:"keyword"`
	MatchType    string `json:"match_type"`
	QualityScore *int64 `json:"quality_score"`
	ExpectedCTR  string `json:"expected_ctr"`
	AdRelevance  string `json:"ad_relevance"`
	LandingPage  string `json:"landing_page"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	CostMicros   int64  `json:"cost_micros"`
	AdGroup      string `json:"ad_group"`
	Campaign     string `json:"campaign"`
}

func normalizeQuality(r googleads.Row) qualityRecord {
	q := qualityRecord{
		CriterionID: r.Str("ad_group_criterion.criterion_id"),
		Keyword:     r.Str("ad_group_criterion.keyword.text"),
		MatchType:   r.Str("ad_group_criterion.keyword.match_type"),
		ExpectedCTR: strOr(r, "ad_group_criterion.quality_info.search_predicted_ctr", "UNSPECIFIED"),
		AdRelevance: strOr(r, "ad_group_criterion.quality_info.creative_quality_score", "UNSPECIFIED"),
		LandingPage: strOr(r, "ad_group_criterion.quality_info.post_click_quality_score", "UNSPECIFIED"),
		Impressions: r.Int("metrics.impressions"),
		Clicks:      r.Int("metrics.clicks"),
		CostMicros:  r.Int("metrics.cost_micros"),
		AdGroup:     r.Str("ad_group.name"),
		Campaign:    r.Str("campaign.name"),
	}
	if qs := r.Int("ad_group_criterion.quality_info.quality_score"); qs > 0 {
		q.QualityScore = &qs
	}
	return q
}

// qsAbbrev shortens a quality bucket for table cells.
var qsAbbrev = map[string]string{
	"ABOVE_AVERAGE": "ABV",
	"AVERAGE":       "AVG",
	"BELOW_AVERAGE": "BEL",
}

func qsCell(bucket string) string {
	return iconOr(qsAbbrev, bucket, "-")
}

func qsText(qs *int64) string {
	if qs == nil {
		return "N/A"
	}
	return fmt.Sprint(*qs)
}

func qsIcon(qs int64) string {
	switch {
	case qs >= 7:
		return "🟢"
	case qs >= 5:
		return "🟡"
	}
	return "🔴"
}

// Markdown caps for the quality score report.
const (
	lowQualityShown = 20
	keywordsShown   = 50
)

// GetKeywordQualityScores reports Quality Score and its three components per
// keyword, lowest score first.
func (s *Service) GetKeywordQualityScores(ctx context.Context, args GetKeywordQualityScoresArgs) (string, error) {
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
	minImpressions, err := schema.Bounded("min_impressions", args.MinImpressions, 0, 0, -1)
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
		"ad_group_criterion.criterion_id",
		"ad_group_criterion.keyword.text",
		"ad_group_criterion.keyword.match_type",
		"ad_group_criterion.quality_info.quality_score",
		"ad_group_criterion.quality_info.creative_quality_score",
		"ad_group_criterion.quality_info.post_click_quality_score",
		"ad_group_criterion.quality_info.search_predicted_ctr",
		"ad_group.id",
		"ad_group.name",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
	).From("keyword_view").Where(
		gaql.Neq("ad_group_criterion.status", "REMOVED"),
		gaql.EqID("campaign.id", campaignID),
		gaql.EqID("ad_group.id", adGroupID),
	)
	if minImpressions > 0 {
		q.Where(gaql.Gte("metrics.impressions", int64(minImpressions)))
	}
	q.OrderBy("ad_group_criterion.quality_info.quality_score", false).Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No keyword data found. Keywords need impressions for Quality Score to be calculated.", nil
	}
	keywords := make([]qualityRecord, 0, len(rows))
	for _, r := range rows {
		keywords = append(keywords, normalizeQuality(r))
	}

	resp := map[string]any{"total": len(keywords), "keywords": keywords}
	return render(format, resp, func() string {
		d := report.NewDoc("Keyword Quality Scores")
		d.Linef("**Keywords Analyzed**: %d", len(keywords))
		d.Blank()

		dist := map[int64]int{}
		var low []qualityRecord
		for _, k := range keywords {
			if k.QualityScore == nil {
				continue
			}
			dist[*k.QualityScore]++
			if *k.QualityScore < 5 {
				low = append(low, k)
			}
		}
		if len(dist) > 0 {
			d.H2("Quality Score Distribution")
			scores := make([]int64, 0, len(dist))
			for qs := range dist {
				scores = append(scores, qs)
			}
			slices.Sort(scores)
			for _, qs := range scores {
				n := dist[qs]
				d.Bullet("%s **QS %d**: %d keywords %s", qsIcon(qs), qs, n, strings.Repeat("█", min(n, 20)))
			}
			d.Blank()
		}

		if len(low) > 0 {
			d.H2("⚠️ Keywords Needing Attention (QS < 5)")
			d.Blank()
			shown, hidden := report.Cap(low, lowQualityShown)
			tbl := make([][]string, 0, len(shown))
			for _, k := range shown {
				tbl = append(tbl, []string{
					report.Clip(k.Keyword, 25), qsText(k.QualityScore),
					qsCell(k.ExpectedCTR), qsCell(k.AdRelevance), qsCell(k.LandingPage),
					report.Count(k.Impressions),
				})
			}
			d.Table([]string{"Keyword", "QS", "CTR", "Ad Rel", "LP", "Impressions"}, tbl)
			d.Blank()
			d.More(hidden)
		}

		d.H2("All Keywords")
		d.Blank()
		shown, hidden := report.Cap(keywords, keywordsShown)
		tbl := make([][]string, 0, len(shown))
		for _, k := range shown {
			tbl = append(tbl, []string{
				report.Clip(k.Keyword, 20), report.Clip(k.MatchType, 5), qsText(k.QualityScore),
				qsCell(k.ExpectedCTR), qsCell(k.AdRelevance), qsCell(k.LandingPage),
				report.Count(k.Impressions), report.Money(k.CostMicros, ""),
			})
		}
		d.Table([]string{"Keyword", "Match", "QS", "CTR", "Ad Rel", "LP", "Impr", "Cost"}, tbl)
		if hidden > 0 {
			d.Blank()
			d.Linef("*Showing %d of %d keywords*", len(shown), len(keywords))
		}
		d.Blank()
		d.H3("Legend")
		d.Field("CTR", "Expected Click-Through Rate")
		d.Field("Ad Rel", "Ad Relevance")
		d.Field("LP", "Landing Page Experience")
		d.Bullet("Values: ABV (Above Average), AVG (Average), BEL (Below Average)")
		return d.String()
	})
}

type adStrengthRecord struct {
	AdID              string   `json:"ad_id"`
	AdStrength        string   `json:"ad_strength"`
	Status            string   `json:"status"`
	HeadlinesCount    int      `json:"headlines_count"`
	DescriptionsCount int      `json:"descriptions_count"`
	Headlines         []string `json:"headlines"`
	Descriptions      []string `json:"descriptions"`
	FinalURL          string   `json:"final_url"`
	Impressions       int64    `json:"impressions"`
	Clicks            int64    `json:"clicks"`
	CTR               float64  `json:"ctr"`
	AdGroup           string   `json:"ad_group"`
	Campaign          string   `json:"campaign"`
}

func normalizeAdStrength(r googleads.Row) adStrengthRecord {
	headlines := texts(r, "ad_group_ad.ad.responsive_search_ad.headlines")
	descriptions := texts(r, "ad_group_ad.ad.responsive_search_ad.descriptions")
	a := adStrengthRecord{
		AdID:              r.Str("ad_group_ad.ad.id"),
		AdStrength:        strOr(r, "ad_group_ad.ad_strength", "UNSPECIFIED"),
		Status:            r.Str("ad_group_ad.status"),
		HeadlinesCount:    len(headlines),
		DescriptionsCount: len(descriptions),
		Impressions:       r.Int("metrics.impressions"),
		Clicks:            r.Int("metrics.clicks"),
		CTR:               report.Percent(r.Float("metrics.ctr")),
		AdGroup:           r.Str("ad_group.name"),
		Campaign:          r.Str("campaign.name"),
	}
	a.Headlines, _ = report.Cap(headlines, 5)
	a.Descriptions, _ = report.Cap(descriptions, 2)
	if urls := r.Strings("ad_group_ad.ad.final_urls"); len(urls) > 0 {
		a.FinalURL = urls[0]
	}
	return a
}

var (
	strengthOrder = []string{"EXCELLENT", "GOOD", "AVERAGE", "POOR", "UNSPECIFIED"}
	strengthIcons = map[string]string{
		"EXCELLENT":   "🟢",
		"GOOD":        "🟡",
		"AVERAGE":     "🟠",
		"POOR":        "🔴",
		"UNSPECIFIED": "⚪",
	}
)

const weakAdsShown = 10

// GetAdStrength reports Ad Strength for responsive search ads, weakest
// first, with a distribution over the strength levels.
func (s *Service) GetAdStrength(ctx context.Context, args GetAdStrengthArgs) (string, error) {
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
	limit, err := schema.Bounded("limit", args.Limit, 50, 1, 200)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"ad_group_ad.ad.id",
		"ad_group_ad.ad.responsive_search_ad.headlines",
		"ad_group_ad.ad.responsive_search_ad.descriptions",
		"ad_group_ad.ad.final_urls",
		"ad_group_ad.ad_strength",
		"ad_group_ad.status",
		"ad_group.id",
		"ad_group.name",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.ctr",
	).From("ad_group_ad").Where(
		gaql.Eq("ad_group_ad.ad.type", "RESPONSIVE_SEARCH_AD"),
		gaql.Neq("ad_group_ad.status", "REMOVED"),
		gaql.EqID("campaign.id", campaignID),
		gaql.EqID("ad_group.id", adGroupID),
	).OrderBy("ad_group_ad.ad_strength", false).Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No Responsive Search Ads found.", nil
	}
	ads := make([]adStrengthRecord, 0, len(rows))
	for _, r := range rows {
		ads = append(ads, normalizeAdStrength(r))
	}
	byStrength := func(a adStrengthRecord) string { return a.AdStrength }
	dist := report.CountBy(ads, byStrength)

	resp := map[string]any{"total": len(ads), "distribution": dist, "ads": ads}
	return render(format, resp, func() string {
		d := report.NewDoc("Ad Strength Report")
		d.Linef("**Responsive Search Ads Analyzed**: %d", len(ads))
		d.Blank()
		d.H2("Ad Strength Distribution")
		for _, g := range report.GroupBy(ads, byStrength, strengthOrder) {
			d.Bullet("%s **%s**: %d ads", iconOr(strengthIcons, g.Key, "⚪"), g.Key, len(g.Items))
		}
		d.Blank()

		var weak []adStrengthRecord
		for _, a := range ads {
			if a.AdStrength == "POOR" || a.AdStrength == "AVERAGE" {
				weak = append(weak, a)
			}
		}
		if len(weak) > 0 {
			d.H2("⚠️ Ads Needing Improvement")
			d.Blank()
			shown, hidden := report.Cap(weak, weakAdsShown)
			for _, a := range shown {
				d.H3(fmt.Sprintf("Ad %s - %s", a.AdID, a.AdStrength))
				d.Field("Campaign", a.Campaign)
				d.Field("Ad Group", a.AdGroup)
				d.Field("Headlines", fmt.Sprintf("%d (need 8-15 for best results)", a.HeadlinesCount))
				d.Field("Descriptions", fmt.Sprintf("%d (need 4 for best results)", a.DescriptionsCount))
				d.Field("Performance", fmt.Sprintf("%s impr, %.2f%% CTR", report.Count(a.Impressions), a.CTR))
				d.Blank()
			}
			d.More(hidden)
		}

		d.H2("Recommendations to Improve Ad Strength")
		d.Blank()
		d.Line("1. **Add more headlines**: Aim for 10-15 unique headlines")
		d.Line("2. **Add more descriptions**: Use all 4 description slots")
		d.Line("3. **Include keywords**: Add popular keywords in headlines")
		d.Line("4. **Vary messaging**: Different selling points and CTAs")
		d.Line("5. **Pin strategically**: Only pin if absolutely necessary")
		return d.String()
	})
}

type policyTopic struct {
	Topic string `json:"topic"`
	Type  string `json:"type"`
}

func policyTopics(r googleads.Row, path string) []policyTopic {
	entries := r.Rows(path)
	out := make([]policyTopic, 0, len(entries))
	for _, e := range entries {
		out = append(out, policyTopic{
			Topic: strOr(e, "topic", "Unknown"),
			Type:  strOr(e, "type", "Unknown"),
		})
	}
	return out
}

type adPolicyIssue struct {
	AdID           string        `json:"ad_id"`
	AdType         string        `json:"ad_type"`
	Status         string        `json:"status"`
	ApprovalStatus string        `json:"approval_status"`
	ReviewStatus   string        `json:"review_status"`
	PolicyTopics   []policyTopic `json:"policy_topics"`
	AdGroup        string        `json:"ad_group"`
	AdGroupID      string        `json:"ad_group_id"`
	Campaign       string        `json:"campaign"`
	CampaignID     string        `json:"campaign_id"`
}

type assetPolicyIssue struct {
	AssetID        string        `json:"asset_id"`
	AssetType      string        `json:"asset_type"`
	Name           string        `json:"name"`
	Content        string        `json:"content"`
	ApprovalStatus string        `json:"approval_status"`
	ReviewStatus   string        `json:"review_status"`
	PolicyTopics   []policyTopic `json:"policy_topics"`
}

var flaggedApprovals = []string{"DISAPPROVED", "APPROVED_LIMITED", "AREA_OF_INTEREST_ONLY"}

// GetPolicyIssues lists disapproved and limited ads and assets. Asset
// issues are account-wide; a failing asset search is logged and skipped
// because accounts without Performance Max campaigns may reject it.
func (s *Service) GetPolicyIssues(ctx context.Context, args GetPolicyIssuesArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.OptionalID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}
	includeAds := args.IncludeAds == nil || *args.IncludeAds
	includeAssets := args.IncludeAssets == nil || *args.IncludeAssets

	adIssues := []adPolicyIssue{}
	if includeAds {
		q := gaql.Select(
			"ad_group_ad.ad.id",
			"ad_group_ad.ad.type",
			"ad_group_ad.status",
			"ad_group_ad.policy_summary.approval_status",
			"ad_group_ad.policy_summary.policy_topic_entries",
			"ad_group_ad.policy_summary.review_status",
			"ad_group.id",
			"ad_group.name",
			"campaign.id",
			"campaign.name",
		).From("ad_group_ad").Where(
			gaql.In("ad_group_ad.policy_summary.approval_status", flaggedApprovals),
			gaql.EqID("campaign.id", campaignID),
		)
		rows, err := s.ads.Search(ctx, cid, q.String())
		if err != nil {
			return "", err
		}
		for _, r := range rows {
			adIssues = append(adIssues, adPolicyIssue{
				AdID:           r.Str("ad_group_ad.ad.id"),
				AdType:         r.Str("ad_group_ad.ad.type"),
				Status:         r.Str("ad_group_ad.status"),
				ApprovalStatus: r.Str("ad_group_ad.policy_summary.approval_status"),
				ReviewStatus:   r.Str("ad_group_ad.policy_summary.review_status"),
				PolicyTopics:   policyTopics(r, "ad_group_ad.policy_summary.policy_topic_entries"),
				AdGroup:        r.Str("ad_group.name"),
				AdGroupID:      r.Str("ad_group.id"),
				Campaign:       r.Str("campaign.name"),
				CampaignID:     r.Str("campaign.id"),
			})
		}
	}

	assetIssues := []assetPolicyIssue{}
	if includeAssets {
		q := gaql.Select(
			"asset.id",
			"asset.type",
			"asset.name",
			"asset.text_asset.text",
			"asset.policy_summary.approval_status",
			"asset.policy_summary.policy_topic_entries",
			"asset.policy_summary.review_status",
		).From("asset").Where(
			gaql.In("asset.policy_summary.approval_status", flaggedApprovals),
		)
		rows, err := s.ads.Search(ctx, cid, q.String())
		switch {
		case apperrors.IsRemote(err):
			s.logger.Debug("Asset policy search failed", "customer_id", cid, "error", err)
		case err != nil:
			return "", err
		}
		for _, r := range rows {
			a := assetPolicyIssue{
				AssetID:        r.Str("asset.id"),
				AssetType:      r.Str("asset.type"),
				Name:           r.Str("asset.name"),
				ApprovalStatus: r.Str("asset.policy_summary.approval_status"),
				ReviewStatus:   r.Str("asset.policy_summary.review_status"),
				PolicyTopics:   policyTopics(r, "asset.policy_summary.policy_topic_entries"),
			}
			if a.AssetType == "TEXT" {
				a.Content = r.Str("asset.text_asset.text")
			}
			assetIssues = append(assetIssues, a)
		}
	}

	total := len(adIssues) + len(assetIssues)
	resp := map[string]any{"total_issues": total, "ads": adIssues, "assets": assetIssues}
	if format == schema.JSON {
		return report.JSON(resp)
	}
	if total == 0 {
		return strings.Join([]string{
			"✅ **No Policy Issues Found!**",
			"",
			"All your ads and assets are approved and serving normally.",
			"",
			"**Tip**: Regularly check this report after making changes to catch issues early.",
		}, "\n"), nil
	}

	d := report.NewDoc("Policy Issues Report")
	d.Linef("**Total Issues**: %d", total)
	d.Blank()
	if len(adIssues) > 0 {
		d.H2(fmt.Sprintf("⚠️ Ad Policy Issues (%d)", len(adIssues)))
		d.Blank()
		var disapproved, limited []adPolicyIssue
		for _, a := range adIssues {
			if a.ApprovalStatus == "DISAPPROVED" {
				disapproved = append(disapproved, a)
			} else {
				limited = append(limited, a)
			}
		}
		if len(disapproved) > 0 {
			d.H3("🔴 Disapproved Ads")
			for _, a := range disapproved {
				d.Blank()
				d.Linef("**Ad %s** (%s)", a.AdID, a.AdType)
				d.Bullet("Campaign: %s", a.Campaign)
				d.Bullet("Ad Group: %s", a.AdGroup)
				if len(a.PolicyTopics) > 0 {
					d.Bullet("Policy violations:")
					for _, t := range a.PolicyTopics {
						d.Linef("  - %s (%s)", t.Topic, t.Type)
					}
				}
			}
			d.Blank()
		}
		if len(limited) > 0 {
			d.H3("🟡 Limited Ads")
			for _, a := range limited {
				d.Blank()
				d.Linef("**Ad %s** - %s", a.AdID, a.ApprovalStatus)
				d.Bullet("Campaign: %s", a.Campaign)
				for _, t := range a.PolicyTopics {
					d.Linef("  - %s", t.Topic)
				}
			}
			d.Blank()
		}
	}
	if len(assetIssues) > 0 {
		d.H2(fmt.Sprintf("⚠️ Asset Policy Issues (%d)", len(assetIssues)))
		d.Blank()
		for _, a := range assetIssues {
			icon := "🟡"
			if a.ApprovalStatus == "DISAPPROVED" {
				icon = "🔴"
			}
			d.Linef("%s **Asset %s** (%s)", icon, a.AssetID, a.AssetType)
			if a.Content != "" {
				d.Bullet("Content: \"%s\"", a.Content)
			}
			d.Bullet("Status: %s", a.ApprovalStatus)
			for _, t := range a.PolicyTopics {
				d.Bullet("Violation: %s", t.Topic)
			}
			d.Blank()
		}
	}
	d.H2("How to Fix Policy Issues")
	d.Blank()
	d.Line("1. **Review Google Ads policies**: https://support.google.com/adspolicy/")
	d.Line("2. **Edit the ad/asset**: Remove violating content")
	d.Line("3. **Request re-review**: After fixing, ads are automatically re-reviewed")
	d.Line("4. **Appeal if needed**: Use the Google Ads appeal process for incorrect disapprovals")
	return d.String(), nil
}
