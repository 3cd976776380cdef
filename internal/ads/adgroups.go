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

type adGroupRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CPCBidMicros int64  `json:"cpc_bid_micros"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
}

func normalizeAdGroup(r googleads.Row) adGroupRecord {
	return adGroupRecord{
		ID:           r.Str("ad_group.id"),
		Name:         r.Str("ad_group.name"),
		Status:       r.Str("ad_group.status"),
		Type:         strOr(r, "ad_group.type", "UNKNOWN"),
		CPCBidMicros: r.Int("ad_group.cpc_bid_micros"),
		CampaignID:   r.Str("campaign.id"),
		CampaignName: r.Str("campaign.name"),
	}
}

// statusIcon marks enabled, paused and removed entities.
func statusIcon(status string) string {
	switch status {
	case "ENABLED":
		return "✅"
	case "PAUSED":
		return "⏸️"
	}
	return "🗑️"
}

// ListAdGroups lists a campaign's ad groups by name.
func (s *Service) ListAdGroups(ctx context.Context, args ListAdGroupsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	status, err := schema.AdGroupStatuses.Optional(args.StatusFilter)
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
		"ad_group.id",
		"ad_group.name",
		"ad_group.status",
		"ad_group.type",
		"ad_group.cpc_bid_micros",
		"campaign.id",
		"campaign.name",
	).From("ad_group").Where(gaql.EqID("campaign.id", campaignID))
	if status != "" {
		q.Where(gaql.Eq("ad_group.status", status))
	}
	q.OrderBy("ad_group.name", false).Limit(limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	groups := make([]adGroupRecord, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, normalizeAdGroup(r))
	}

	resp := map[string]any{
		"campaign_id": campaignID,
		"total":       len(groups),
		"ad_groups":   groups,
	}
	if format == schema.JSON {
		return report.JSON(resp)
	}
	if len(groups) == 0 {
		return fmt.Sprintf("No ad groups found for campaign %s", campaignID), nil
	}
	d := report.NewDoc("Ad Groups for Campaign " + groups[0].CampaignName)
	d.Linef("Found %d ad group(s)", len(groups))
	d.Blank()
	for _, g := range groups {
		d.H2(fmt.Sprintf("%s %s (%s)", statusIcon(g.Status), g.Name, g.ID))
		d.Field("Status", g.Status)
		d.Field("Type", g.Type)
		if g.CPCBidMicros > 0 {
			d.Field("CPC Bid", report.Money(g.CPCBidMicros, ""))
		}
		d.Blank()
	}
	return d.String(), nil
}

// CreateAdGroup creates a search ad group, PAUSED unless another status is
// requested.
func (s *Service) CreateAdGroup(ctx context.Context, args CreateAdGroupArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	name, err := schema.Text("ad_group_name", args.AdGroupName, 1, 255)
	if err != nil {
		return "", err
	}
	if args.CPCBidMicros != nil {
		if err := schema.Min("cpc_bid_micros", *args.CPCBidMicros, 10_000); err != nil {
			return "", err
		}
	}
	status, err := schema.AdGroupStatuses.Check(args.Status, "PAUSED")
	if err != nil {
		return "", err
	}

	adGroup := map[string]any{
		"name":     name,
		"campaign": resourcePath(cid, "campaigns", campaignID),
		"status":   status,
		"type":     "SEARCH_STANDARD",
	}
	bid := "Not set (inherited from campaign)"
	if args.CPCBidMicros != nil {
		adGroup["cpcBidMicros"] = *args.CPCBidMicros
		bid = report.Money(*args.CPCBidMicros, "")
	}
	names, err := s.ads.Mutate(ctx, cid, "adGroups", []googleads.Operation{{Create: adGroup}})
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		"✅ Ad group created successfully!",
		"",
		"**Ad Group Name**: " + name,
		"**Ad Group ID**: " + lastSegment(names[0]),
		"**Campaign ID**: " + campaignID,
		"**Status**: " + status,
		"**CPC Bid**: " + bid,
		"",
		"Next steps:",
		"1. Add keywords with google_ads_add_keywords",
		"2. Create ads with google_ads_create_responsive_search_ad",
		"3. Enable the ad group when ready",
	}, "\n"), nil
}

// UpdateAdGroupStatus enables, pauses or removes an ad group.
func (s *Service) UpdateAdGroupStatus(ctx context.Context, args UpdateAdGroupStatusArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	adGroupID, err := schema.ID("ad_group_id", args.AdGroupID)
	if err != nil {
		return "", err
	}
	status, err := schema.AdGroupStatuses.Check(args.Status, "")
	if err != nil {
		return "", err
	}

	op := googleads.Operation{
		Update: map[string]any{
			"resourceName": resourcePath(cid, "adGroups", adGroupID),
			"status":       status,
		},
		UpdateMask: "status",
	}
	if _, err := s.ads.Mutate(ctx, cid, "adGroups", []googleads.Operation{op}); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Ad group %s has been %s successfully.", adGroupID, statusVerbs[status]), nil
}
