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

// recommendationImpact is the estimated change if the recommendation is
// applied: potential metrics minus base metrics.
type recommendationImpact struct {
	Impressions *float64 `json:"impressions,omitempty"`
	Clicks      *float64 `json:"clicks,omitempty"`
	CostMicros  *int64   `json:"cost_micros,omitempty"`
	Conversions *float64 `json:"conversions,omitempty"`
}

func (i recommendationImpact) empty() bool {
	return i.Impressions == nil && i.Clicks == nil && i.CostMicros == nil && i.Conversions == nil
}

type recommendationDetails struct {
	CurrentBudgetMicros     *int64 `json:"current_budget_micros,omitempty"`
	RecommendedBudgetMicros *int64 `json:"recommended_budget_micros,omitempty"`
	Keyword                 string `json:"keyword,omitempty"`
	MatchType               string `json:"match_type,omitempty"`
}

type recommendationRecord struct {
	ID           string                `json:"id"`
	ResourceName string                `json:"resource_name"`
	Type         string                `json:"type"`
	Campaign     string                `json:"campaign"`
	Impact       recommendationImpact  `json:"impact"`
	Details      recommendationDetails `json:"details"`
}

func impactDelta(r googleads.Row, metric string) (float64, bool) {
	base, potential := "recommendation.impact.base_metrics."+metric, "recommendation.impact.potential_metrics."+metric
	if !r.Has(potential) {
		return 0, false
	}
	return r.Float(potential) - r.Float(base), true
}

func normalizeRecommendation(r googleads.Row) recommendationRecord {
	rec := recommendationRecord{
		ResourceName: r.Str("recommendation.resource_name"),
		Type:         r.Str("recommendation.type"),
		Campaign:     strOr(r, "recommendation.campaign", "N/A"),
	}
	rec.ID = lastSegment(rec.ResourceName)

	if v, ok := impactDelta(r, "impressions"); ok {
		rec.Impact.Impressions = &v
	}
	if v, ok := impactDelta(r, "clicks"); ok {
		rec.Impact.Clicks = &v
	}
	if v, ok := impactDelta(r, "cost_micros"); ok {
		n := int64(v)
		rec.Impact.CostMicros = &n
	}
	if v, ok := impactDelta(r, "conversions"); ok {
		rec.Impact.Conversions = &v
	}

	switch rec.Type {
	case "CAMPAIGN_BUDGET":
		const p = "recommendation.campaign_budget_recommendation."
		if r.Has(p + "current_budget_amount_micros") {
			v := r.Int(p + "current_budget_amount_micros")
			rec.Details.CurrentBudgetMicros = &v
		}
		if r.Has(p + "recommended_budget_amount_micros") {
			v := r.Int(p + "recommended_budget_amount_micros")
			rec.Details.RecommendedBudgetMicros = &v
		}
	case "KEYWORD":
		const p = "recommendation.keyword_recommendation.keyword."
		rec.Details.Keyword = r.Str(p + "text")
		if rec.Details.Keyword != "" {
			rec.Details.MatchType = strOr(r, p+"match_type", "BROAD")
		}
	}
	return rec
}

type recommendationGroup struct {
	icon  string
	label string
}

var recommendationGroups = map[string]recommendationGroup{
	"CAMPAIGN_BUDGET":             {"💰", "Budget Recommendations"},
	"KEYWORD":                     {"🔑", "Keyword Suggestions"},
	"RESPONSIVE_SEARCH_AD":        {"📝", "Ad Improvement"},
	"TARGET_CPA_OPT_IN":           {"🎯", "Bidding Strategy"},
	"MAXIMIZE_CONVERSIONS_OPT_IN": {"📈", "Bidding Strategy"},
	"SITELINK_ASSET":              {"🔗", "Sitelink Suggestions"},
	"CALLOUT_ASSET":               {"📢", "Callout Suggestions"},
}

const recommendationsPerType = 10

// ListRecommendations lists pending (not dismissed) recommendations grouped
// by type.
func (s *Service) ListRecommendations(ctx context.Context, args ListRecommendationsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.OptionalID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	types, err := schema.RecommendationTypes.All(args.RecommendationTypes)
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
		"recommendation.resource_name",
		"recommendation.type",
		"recommendation.impact",
		"recommendation.campaign",
		"recommendation.campaign_budget_recommendation",
		"recommendation.keyword_recommendation",
		"recommendation.text_ad_recommendation",
		"recommendation.responsive_search_ad_recommendation",
	).From("recommendation").Where(
		gaql.Bool("recommendation.dismissed", false),
		gaql.In("recommendation.type", types),
	)
	if campaignID != "" {
		q.Where(gaql.Eq("recommendation.campaign", resourcePath(cid, "campaigns", campaignID)))
	}
	q.Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	recs := make([]recommendationRecord, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, normalizeRecommendation(r))
	}

	if format == schema.JSON {
		return report.JSON(map[string]any{"total": len(recs), "recommendations": recs})
	}
	if len(recs) == 0 {
		return strings.Join([]string{
			"✅ **No pending recommendations found!**",
			"",
			"Your account appears to be well-optimized, or all recommendations have been applied/dismissed.",
			"",
			"**Tip**: Check back regularly as Google generates new recommendations based on performance data.",
		}, "\n"), nil
	}

	d := report.NewDoc("Google Ads Recommendations")
	d.Linef("**Total Recommendations**: %d", len(recs))
	d.Blank()
	for _, g := range report.GroupBy(recs, func(r recommendationRecord) string { return r.Type }, nil) {
		info, ok := recommendationGroups[g.Key]
		if !ok {
			info = recommendationGroup{"💡", presetLabel(g.Key)}
		}
		d.H2(fmt.Sprintf("%s %s (%d)", info.icon, info.label, len(g.Items)))
		d.Blank()
		shown, hidden := report.Cap(g.Items, recommendationsPerType)
		for _, rec := range shown {
			d.H3("Recommendation")
			d.Field("Type", rec.Type)
			d.Field("ID", "`"+rec.ID+"`")
			if v := rec.Details.CurrentBudgetMicros; v != nil {
				d.Field("Current Budget", report.Money(*v, ""))
			}
			if v := rec.Details.RecommendedBudgetMicros; v != nil {
				d.Field("Recommended Budget", report.Money(*v, ""))
			}
			if rec.Details.Keyword != "" {
				d.Field("Keyword", rec.Details.Keyword)
				d.Field("Match Type", rec.Details.MatchType)
			}
			if !rec.Impact.empty() {
				d.Line("- **Estimated Impact**:")
				if v := rec.Impact.Impressions; v != nil {
					d.Linef("  - Impressions: %s", signedCount(*v))
				}
				if v := rec.Impact.Clicks; v != nil {
					d.Linef("  - Clicks: %s", signedCount(*v))
				}
				if v := rec.Impact.CostMicros; v != nil {
					d.Linef("  - Cost: %s", report.Money(*v, ""))
				}
				if v := rec.Impact.Conversions; v != nil {
					d.Linef("  - Conversions: %s", signedCount(*v))
				}
			}
			d.Blank()
		}
		d.More(hidden)
	}
	d.H2("How to Apply Recommendations")
	d.Blank()
	d.Line("Use `google_ads_apply_recommendation` with the recommendation ID to apply.")
	d.Line("Use `google_ads_dismiss_recommendation` to dismiss if not relevant.")
	return d.String(), nil
}

func signedCount(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	if n < 0 {
		return report.Count(n)
	}
	return "+" + report.Count(n)
}

// recommendationName accepts a full resource name or a bare recommendation
// ID.
func recommendationName(cid, ref string) string {
	if strings.HasPrefix(ref, "customers/") {
		return ref
	}
	return resourcePath(cid, "recommendations", ref)
}

// ApplyRecommendation applies one recommendation to the account.
func (s *Service) ApplyRecommendation(ctx context.Context, args ApplyRecommendationArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	ref, err := schema.Text("recommendation_id", args.RecommendationID, 1, -1)
	if err != nil {
		return "", err
	}
	if _, err := s.ads.ApplyRecommendation(ctx, cid, recommendationName(cid, ref)); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"✅ **Recommendation applied successfully!**",
		"",
		"**Recommendation ID**: " + ref,
		"**Status**: Applied",
		"",
		"The recommended changes have been made to your account. Changes may take a few minutes to reflect in reporting.",
		"",
		"**Next Steps**:",
		"- Monitor performance over the next few days",
		"- Check for any budget or bidding changes",
		"- Review `google_ads_list_recommendations` for more suggestions",
	}, "\n"), nil
}

// DismissRecommendation hides one recommendation from the pending list.
func (s *Service) DismissRecommendation(ctx context.Context, args DismissRecommendationArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	ref, err := schema.Text("recommendation_id", args.RecommendationID, 1, -1)
	if err != nil {
		return "", err
	}
	if _, err := s.ads.DismissRecommendation(ctx, cid, recommendationName(cid, ref)); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"✅ **Recommendation dismissed!**",
		"",
		"**Recommendation ID**: " + ref,
		"**Status**: Dismissed",
		"",
		"This recommendation will no longer appear in your list.",
		"",
		"**Note**: Similar recommendations may appear in the future if account conditions change.",
	}, "\n"), nil
}
