package ads

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type keywordRecord struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	MatchType    string `json:"match_type"`
	Status       string `json:"status"`
	CPCBidMicros *int64 `json:"cpc_bid_micros"`
}

func normalizeKeyword(r googleads.Row) keywordRecord {
	k := keywordRecord{
		ID:        r.Str("ad_group_criterion.criterion_id"),
		Text:      r.Str("ad_group_criterion.keyword.text"),
		MatchType: r.Str("ad_group_criterion.keyword.match_type"),
		Status:    r.Str("ad_group_criterion.status"),
	}
	if r.Has("ad_group_criterion.cpc_bid_micros") {
		v := r.Int("ad_group_criterion.cpc_bid_micros")
		k.CPCBidMicros = &v
	}
	return k
}

var matchIcons = map[string]string{
	"EXACT":  "🎯",
	"PHRASE": "📝",
	"BROAD":  "🌐",
}

// ListKeywords lists an ad group's active keywords alphabetically.
func (s *Service) ListKeywords(ctx context.Context, args ListKeywordsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
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
		"ad_group_criterion.status",
		"ad_group_criterion.cpc_bid_micros",
		"ad_group.id",
		"ad_group.name",
	).From("ad_group_criterion").Where(
		gaql.EqID("ad_group.id", adGroupID),
		gaql.Eq("ad_group_criterion.type", "KEYWORD"),
		gaql.Neq("ad_group_criterion.status", "REMOVED"),
	).OrderBy("ad_group_criterion.keyword.text", false).Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	var adGroupName string
	keywords := make([]keywordRecord, 0, len(rows))
	for _, r := range rows {
		if adGroupName == "" {
			adGroupName = r.Str("ad_group.name")
		}
		keywords = append(keywords, normalizeKeyword(r))
	}

	if format == schema.JSON {
		return report.JSON(map[string]any{
			"ad_group_id":   adGroupID,
			"ad_group_name": nullable(adGroupName),
			"total":         len(keywords),
			"keywords":      keywords,
		})
	}
	if len(keywords) == 0 {
		return fmt.Sprintf("No keywords found for ad group %s", adGroupID), nil
	}
	d := report.NewDoc("Keywords for Ad Group: " + adGroupName)
	d.Linef("Found %d keyword(s)", len(keywords))
	d.Blank()
	for _, k := range keywords {
		status := "⏸️"
		if k.Status == "ENABLED" {
			status = "✅"
		}
		d.H2(fmt.Sprintf("%s %s %s", status, iconOr(matchIcons, k.MatchType, "❓"), k.Text))
		d.Field("Match Type", k.MatchType)
		d.Field("Status", k.Status)
		d.Field("ID", k.ID)
		if k.CPCBidMicros != nil && *k.CPCBidMicros > 0 {
			d.Field("CPC Bid", report.Money(*k.CPCBidMicros, ""))
		}
		d.Blank()
	}
	return d.String(), nil
}

// AddKeywords creates one ENABLED keyword criterion per keyword in a single
// mutate call. Keywords go live immediately, unlike campaigns and ads.
func (s *Service) AddKeywords(ctx context.Context, args AddKeywordsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	keywords, err := schema.Texts("keywords", "Keyword", args.Keywords, 80, 1, 50)
	if err != nil {
		return "", err
	}
	matchType, err := schema.MatchTypes.Check(args.MatchType, "BROAD")
	if err != nil {
		return "", err
	}
	if args.CPCBidMicros != nil {
		if err := schema.Min("cpc_bid_micros", *args.CPCBidMicros, 10_000); err != nil {
			return "", err
		}
	}

	adGroup := resourcePath(cid, "adGroups", adGroupID)
	ops := make([]googleads.Operation, 0, len(keywords))
	for _, kw := range keywords {
		criterion := map[string]any{
			"adGroup": adGroup,
			"status":  "ENABLED",
			"keyword": map[string]any{"text": kw, "matchType": matchType},
		}
		if args.CPCBidMicros != nil {
			criterion["cpcBidMicros"] = *args.CPCBidMicros
		}
		ops = append(ops, googleads.Operation{Create: criterion})
	}
	if _, err := s.ads.Mutate(ctx, cid, "adGroupCriteria", ops); err != nil {
		return "", err
	}

	bid := "Inherited from ad group"
	if args.CPCBidMicros != nil {
		bid = report.Money(*args.CPCBidMicros, "")
	}
	lines := []string{
		fmt.Sprintf("✅ Added %d keyword(s) successfully!", len(keywords)),
		"",
		"**Ad Group ID**: " + adGroupID,
		"**Match Type**: " + matchType,
		"**CPC Bid**: " + bid,
		"",
		"**Keywords added:**",
	}
	for _, kw := range keywords {
		lines = append(lines, fmt.Sprintf("  - %s (%s)", kw, matchType))
	}
	return strings.Join(lines, "\n"), nil
}

// criterionKeys validates "parentId~criterionId" keys.
func criterionKeys(field string, raw []string) ([]string, error) {
	keys, err := schema.Refs(field, raw, 1)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		parent, child, ok := strings.Cut(k, "~")
		if !ok || !digits(parent) || !digits(child) {
			return nil, apperrors.NewValidationError(field, k,
				field+" entries must use the adGroupId~criterionId format")
		}
	}
	return keys, nil
}

func digits(s string) bool {
	_, err := schema.ID("", s)
	return err == nil
}

// RemoveKeywords removes keyword criteria by their adGroupId~criterionId key.
func (s *Service) RemoveKeywords(ctx context.Context, args RemoveKeywordsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	keys, err := criterionKeys("keyword_ids", args.KeywordIDs)
	if err != nil {
		return "", err
	}

	ops := make([]googleads.Operation, 0, len(keys))
	for _, k := range keys {
		ops = append(ops, googleads.Operation{Remove: resourcePath(cid, "adGroupCriteria", k)})
	}
	if _, err := s.ads.Mutate(ctx, cid, "adGroupCriteria", ops); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Removed %d keyword(s) successfully.", len(keys)), nil
}
