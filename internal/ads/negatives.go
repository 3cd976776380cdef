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

type negativeRecord struct {
	CriterionID  string  `json:"criterion_id"`
	Keyword      string  `json:"keyword"`
	MatchType    string  `json:"match_type"`
	AdGroupID    *string `json:"ad_group_id,omitempty"`
	AdGroupName  *string `json:"ad_group_name,omitempty"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
}

func normalizeNegative(r googleads.Row, resource string) negativeRecord {
	n := negativeRecord{
		CriterionID:  r.Str(resource + ".criterion_id"),
		Keyword:      r.Str(resource + ".keyword.text"),
		MatchType:    r.Str(resource + ".keyword.match_type"),
		CampaignID:   r.Str("campaign.id"),
		CampaignName: r.Str("campaign.name"),
	}
	if resource == "ad_group_criterion" {
		id, name := r.Str("ad_group.id"), r.Str("ad_group.name")
		n.AdGroupID, n.AdGroupName = &id, &name
	}
	return n
}

// ListNegativeKeywords lists negative keywords at campaign and ad group
// level. Filtering by ad group skips the campaign-level search.
func (s *Service) ListNegativeKeywords(ctx context.Context, args ListNegativeKeywordsArgs) (string, error) {
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
	limit, err := schema.Bounded("limit", args.Limit, 100, 1, 500)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	campaignLevel := []negativeRecord{}
	if adGroupID == "" {
		q := gaql.Select(
			"campaign_criterion.criterion_id",
			"campaign_criterion.keyword.text",
			"campaign_criterion.keyword.match_type",
			"campaign_criterion.negative",
			"campaign.id",
			"campaign.name",
		).From("campaign_criterion").Where(
			gaql.Eq("campaign_criterion.type", "KEYWORD"),
			gaql.Bool("campaign_criterion.negative", true),
			gaql.EqID("campaign.id", campaignID),
		).Limit(limit)
		rows, err := s.ads.Search(ctx, cid, q.String())
		if err != nil {
			return "", err
		}
		for _, r := range rows {
			campaignLevel = append(campaignLevel, normalizeNegative(r, "campaign_criterion"))
		}
	}

	q := gaql.Select(
		"ad_group_criterion.criterion_id",
		"ad_group_criterion.keyword.text",
		"ad_group_criterion.keyword.match_type",
		"ad_group_criterion.negative",
		"ad_group.id",
		"ad_group.name",
		"campaign.id",
		"campaign.name",
	).From("ad_group_criterion").Where(
		gaql.Eq("ad_group_criterion.type", "KEYWORD"),
		gaql.Bool("ad_group_criterion.negative", true),
		gaql.EqID("campaign.id", campaignID),
		gaql.EqID("ad_group.id", adGroupID),
	).Limit(limit)
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	adGroupLevel := make([]negativeRecord, 0, len(rows))
	for _, r := range rows {
		adGroupLevel = append(adGroupLevel, normalizeNegative(r, "ad_group_criterion"))
	}

	total := len(campaignLevel) + len(adGroupLevel)
	resp := map[string]any{
		"total":          total,
		"campaign_level": campaignLevel,
		"ad_group_level": adGroupLevel,
	}
	return render(format, resp, func() string {
		d := report.NewDoc("Negative Keywords")
		d.Linef("**Total**: %d negative keywords found", total)
		d.Blank()
		if len(campaignLevel) > 0 {
			d.H2(fmt.Sprintf("Campaign-Level Negatives (%d)", len(campaignLevel)))
			d.Blank()
			tbl := make([][]string, 0, len(campaignLevel))
			for _, n := range campaignLevel {
				tbl = append(tbl, []string{n.Keyword, n.MatchType, n.CampaignName, n.CriterionID})
			}
			d.Table([]string{"Keyword", "Match Type", "Campaign", "Criterion ID"}, tbl)
			d.Blank()
		}
		if len(adGroupLevel) > 0 {
			d.H2(fmt.Sprintf("Ad Group-Level Negatives (%d)", len(adGroupLevel)))
			d.Blank()
			tbl := make([][]string, 0, len(adGroupLevel))
			for _, n := range adGroupLevel {
				tbl = append(tbl, []string{n.Keyword, n.MatchType, *n.AdGroupName, n.CampaignName, n.CriterionID})
			}
			d.Table([]string{"Keyword", "Match Type", "Ad Group", "Campaign", "Criterion ID"}, tbl)
			d.Blank()
		}
		if total == 0 {
			d.Line("No negative keywords found. Consider adding negative keywords to:")
			d.Blank()
			d.Bullet("Block irrelevant search queries")
			d.Bullet("Reduce wasted ad spend")
			d.Bullet("Improve campaign relevance")
		}
		return d.String()
	})
}

// negativeTarget resolves the parent resource and mutate service for a
// negative keyword level.
type negativeTarget struct {
	service  string
	parent   string // "campaign" or "adGroup" payload key
	path     string
	entityID string
	label    string
}

func targetFor(cid, level, campaignID, adGroupID string) negativeTarget {
	if level == "AD_GROUP" {
		return negativeTarget{
			service:  "adGroupCriteria",
			parent:   "adGroup",
			path:     resourcePath(cid, "adGroups", adGroupID),
			entityID: adGroupID,
			label:    "Ad Group",
		}
	}
	return negativeTarget{
		service:  "campaignCriteria",
		parent:   "campaign",
		path:     resourcePath(cid, "campaigns", campaignID),
		entityID: campaignID,
		label:    "Campaign",
	}
}

// AddNegativeKeywords blocks search terms at campaign or ad group level.
func (s *Service) AddNegativeKeywords(ctx context.Context, args AddNegativeKeywordsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	keywords, err := schema.Texts("keywords", "Keyword", args.Keywords, 80, 1, 200)
	if err != nil {
		return "", err
	}
	level, err := schema.NegativeLevels.Check(args.Level, "CAMPAIGN")
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
	matchType, err := schema.MatchTypes.Check(args.MatchType, "PHRASE")
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}
	if err := schema.RequireForLevel(level, campaignID, adGroupID); err != nil {
		return "", err
	}

	t := targetFor(cid, level, campaignID, adGroupID)
	ops := make([]googleads.Operation, 0, len(keywords))
	for _, kw := range keywords {
		ops = append(ops, googleads.Operation{Create: map[string]any{
			t.parent:   t.path,
			"negative": true,
			"keyword":  map[string]any{"text": kw, "matchType": matchType},
		}})
	}
	names, err := s.ads.Mutate(ctx, cid, t.service, ops)
	if err != nil {
		return "", err
	}

	resp := map[string]any{
		"success":        true,
		"level":          level,
		"campaign_id":    nullable(campaignID),
		"ad_group_id":    nullable(adGroupID),
		"match_type":     matchType,
		"keywords_added": keywords,
		"count":          len(keywords),
		"resource_names": names,
	}
	return render(format, resp, func() string {
		lines := []string{
			fmt.Sprintf("✅ **Added %d negative keywords successfully!**", len(keywords)),
			"",
			"**Level**: " + t.label,
			fmt.Sprintf("**%s ID**: %s", t.label, t.entityID),
			"**Match Type**: " + matchType,
			"",
			"### Keywords Added:",
		}
		for _, kw := range keywords {
			lines = append(lines, "- "+kw)
		}
		lines = append(lines,
			"",
			"**Effect**: Ads will no longer show for searches containing these terms.",
			"",
			"**Tip**: Use `google_ads_get_search_terms` to find more irrelevant queries to block.",
		)
		return strings.Join(lines, "\n")
	})
}

// RemoveNegativeKeywords unblocks negative keywords by criterion ID.
func (s *Service) RemoveNegativeKeywords(ctx context.Context, args RemoveNegativeKeywordsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	ids, err := schema.IDs("criterion_ids", args.CriterionIDs, 1)
	if err != nil {
		return "", err
	}
	level, err := schema.NegativeLevels.Check(args.Level, "")
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
	if err := schema.RequireForLevel(level, campaignID, adGroupID); err != nil {
		return "", err
	}

	t := targetFor(cid, level, campaignID, adGroupID)
	ops := make([]googleads.Operation, 0, len(ids))
	for _, id := range ids {
		ops = append(ops, googleads.Operation{Remove: resourcePath(cid, t.service, t.entityID+"~"+id)})
	}
	if _, err := s.ads.Mutate(ctx, cid, t.service, ops); err != nil {
		return "", err
	}

	return strings.Join([]string{
		fmt.Sprintf("✅ **Removed %d negative keyword(s) successfully!**", len(ids)),
		"",
		"**Level**: " + t.label,
		"**Removed Criterion IDs**: " + strings.Join(ids, ", "),
		"",
		"Your ads may now show for searches that were previously blocked by these negatives.",
		"",
		"**Tip**: Monitor search terms report to see if this increases irrelevant traffic.",
	}, "\n"), nil
}
