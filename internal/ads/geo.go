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

// commonLocations are geo target constant IDs callers ask for most often.
var commonLocations = []struct{ ID, Name string }{
	{"2380", "Italy"},
	{"2840", "United States"},
	{"2826", "United Kingdom"},
	{"2276", "Germany"},
	{"2250", "France"},
}

type locationRecord struct {
	CriterionID       string  `json:"criterion_id"`
	GeoTargetID       string  `json:"geo_target_id"`
	GeoTargetConstant string  `json:"geo_target_constant"`
	BidModifier       float64 `json:"bid_modifier"`
}

// GetGeoTargets lists a campaign's targeted and excluded locations.
func (s *Service) GetGeoTargets(ctx context.Context, args GetGeoTargetsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"campaign_criterion.criterion_id",
		"campaign_criterion.location.geo_target_constant",
		"campaign_criterion.negative",
		"campaign_criterion.bid_modifier",
	).From("campaign_criterion").Where(
		gaql.EqID("campaign.id", campaignID),
		gaql.Eq("campaign_criterion.type", "LOCATION"),
	)
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return strings.Join([]string{
			fmt.Sprintf("⚠️ **No geographic targeting found for campaign %s**", campaignID),
			"",
			"This campaign may be:",
			"1. Targeting all locations (no restrictions)",
			"2. Using account-level geographic settings",
			"3. A Performance Max campaign with audience signals",
			"",
			"**Tip**: Use `google_ads_set_geo_targets` to add location targeting.",
		}, "\n"), nil
	}

	included, excluded := []locationRecord{}, []locationRecord{}
	for _, r := range rows {
		constant := r.Str("campaign_criterion.location.geo_target_constant")
		loc := locationRecord{
			CriterionID:       r.Str("campaign_criterion.criterion_id"),
			GeoTargetID:       lastSegment(constant),
			GeoTargetConstant: constant,
			BidModifier:       1.0,
		}
		if m := r.Float("campaign_criterion.bid_modifier"); m != 0 {
			loc.BidModifier = m
		}
		if r.Bool("campaign_criterion.negative") {
			excluded = append(excluded, loc)
		} else {
			included = append(included, loc)
		}
	}

	resp := map[string]any{"campaign_id": campaignID, "included": included, "excluded": excluded}
	return render(format, resp, func() string {
		d := report.NewDoc("Geographic Targeting - Campaign " + campaignID)
		d.Linef("**Targeted Locations**: %d", len(included))
		d.Linef("**Excluded Locations**: %d", len(excluded))
		d.Blank()
		if len(included) > 0 {
			d.H2("✅ Targeted Locations")
			d.Blank()
			tbl := make([][]string, 0, len(included))
			for _, l := range included {
				bid := "None"
				if l.BidModifier != 1.0 {
					bid = fmt.Sprintf("%.0f%%", l.BidModifier*100)
				}
				tbl = append(tbl, []string{l.GeoTargetID, bid, l.CriterionID})
			}
			d.Table([]string{"Geo Target ID", "Bid Adjustment", "Criterion ID"}, tbl)
			d.Blank()
		}
		if len(excluded) > 0 {
			d.H2("❌ Excluded Locations")
			d.Blank()
			tbl := make([][]string, 0, len(excluded))
			for _, l := range excluded {
				tbl = append(tbl, []string{l.GeoTargetID, l.CriterionID})
			}
			d.Table([]string{"Geo Target ID", "Criterion ID"}, tbl)
			d.Blank()
		}
		d.Line("---")
		d.Line("**Common Geo Target IDs**:")
		for _, c := range commonLocations {
			d.Bullet("**%s**: %s", c.ID, c.Name)
		}
		d.Blank()
		d.Line("Use `google_ads_search_geo_targets` to find location IDs by name.")
		return d.String()
	})
}

type geoSuggestion struct {
	ID            string `json:"id"`
	ResourceName  string `json:"resource_name"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
	CountryCode   string `json:"country_code"`
	Type          string `json:"type"`
	Reach         *int64 `json:"reach"`
}

func normalizeSuggestion(r googleads.Row) geoSuggestion {
	g := geoSuggestion{
		ResourceName:  r.Str("geo_target_constant.resource_name"),
		Name:          r.Str("geo_target_constant.name"),
		CanonicalName: r.Str("geo_target_constant.canonical_name"),
		CountryCode:   r.Str("geo_target_constant.country_code"),
		Type:          r.Str("geo_target_constant.target_type"),
	}
	g.ID = lastSegment(g.ResourceName)
	if r.Has("reach") {
		v := r.Int("reach")
		g.Reach = &v
	}
	return g
}

// SearchGeoTargets finds geo target constants by location name. The lookup
// is not tied to an account; customer_id is only validated.
func (s *Service) SearchGeoTargets(ctx context.Context, args SearchGeoTargetsArgs) (string, error) {
	if _, err := schema.CustomerID(args.CustomerID); err != nil {
		return "", err
	}
	query, err := schema.Text("query", args.Query, 2, -1)
	if err != nil {
		return "", err
	}
	country, err := schema.Text("country_code", args.CountryCode, 0, 2)
	if err != nil {
		return "", err
	}
	limit, err := schema.Bounded("limit", args.Limit, 20, 1, 100)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	rows, err := s.ads.SuggestGeoTargets(ctx, "en", strings.ToUpper(country), []string{query})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		lines := []string{
			fmt.Sprintf("⚠️ **No locations found matching \"%s\"**", query),
			"",
			"**Tips**:",
			"- Try a different spelling",
			"- Use English location names",
			"- Be more specific (e.g., \"Milan, Italy\" instead of just \"Milan\")",
			"- Check the country code filter",
			"",
			"**Common Location IDs**:",
		}
		for _, c := range commonLocations {
			lines = append(lines, fmt.Sprintf("- %s: %s", c.Name, c.ID))
		}
		lines = append(lines, "- Spain: 2724")
		return strings.Join(lines, "\n"), nil
	}

	shown, _ := report.Cap(rows, limit)
	locations := make([]geoSuggestion, 0, len(shown))
	for _, r := range shown {
		locations = append(locations, normalizeSuggestion(r))
	}

	resp := map[string]any{"query": query, "total": len(locations), "locations": locations}
	return render(format, resp, func() string {
		d := report.NewDoc(fmt.Sprintf("Location Search Results for \"%s\"", query))
		d.Linef("**Results Found**: %d", len(locations))
		d.Blank()
		d.H2("Matching Locations")
		d.Blank()
		tbl := make([][]string, 0, len(locations))
		for _, l := range locations {
			tbl = append(tbl, []string{report.Clip(l.CanonicalName, 40), l.Type, l.CountryCode, "`" + l.ID + "`"})
		}
		d.Table([]string{"Location", "Type", "Country", "ID (for targeting)"}, tbl)
		d.Blank()
		d.H2("How to Use These IDs")
		d.Blank()
		d.Line("Use `google_ads_set_geo_targets` with the location ID:")
		d.Line("```")
		d.Linef("location_ids: [\"%s\"]", locations[0].ID)
		d.Line("```")
		return d.String()
	})
}

// SetGeoTargets adds location criteria to a campaign, as targets or as
// exclusions.
func (s *Service) SetGeoTargets(ctx context.Context, args SetGeoTargetsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	locationIDs, err := schema.IDs("location_ids", args.LocationIDs, 1)
	if err != nil {
		return "", err
	}
	targetType, err := schema.GeoTargetTypes.Check(args.TargetType, "INCLUSION")
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	campaign := resourcePath(cid, "campaigns", campaignID)
	exclude := targetType == "EXCLUSION"
	ops := make([]googleads.Operation, 0, len(locationIDs))
	for _, id := range locationIDs {
		ops = append(ops, googleads.Operation{Create: map[string]any{
			"campaign": campaign,
			"negative": exclude,
			"location": map[string]any{"geoTargetConstant": "geoTargetConstants/" + id},
		}})
	}
	names, err := s.ads.Mutate(ctx, cid, "campaignCriteria", ops)
	if err != nil {
		return "", err
	}

	resp := map[string]any{
		"success":         true,
		"campaign_id":     campaignID,
		"locations_added": locationIDs,
		"target_type":     targetType,
		"resource_names":  names,
	}
	return render(format, resp, func() string {
		action := "targeted in"
		if exclude {
			action = "excluded from"
		}
		return strings.Join([]string{
			"✅ **Geographic targeting updated!**",
			"",
			"**Campaign ID**: " + campaignID,
			fmt.Sprintf("**Action**: %d location(s) %s campaign", len(locationIDs), action),
			"**Location IDs**: " + strings.Join(locationIDs, ", "),
			"",
			"The changes take effect immediately. Your ads will now show (or not show)",
			"in these locations based on user location and interest.",
			"",
			"**Next Steps**:",
			"- Verify with `google_ads_get_geo_targets`",
			"- Monitor performance by location in Google Ads UI",
			"- Consider adding bid adjustments for high-value locations",
		}, "\n")
	})
}

// RemoveGeoTargets removes location criteria from a campaign.
func (s *Service) RemoveGeoTargets(ctx context.Context, args RemoveGeoTargetsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	ids, err := schema.IDs("criterion_ids", args.CriterionIDs, 1)
	if err != nil {
		return "", err
	}

	ops := make([]googleads.Operation, 0, len(ids))
	for _, id := range ids {
		ops = append(ops, googleads.Operation{Remove: resourcePath(cid, "campaignCriteria", campaignID+"~"+id)})
	}
	if _, err := s.ads.Mutate(ctx, cid, "campaignCriteria", ops); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"✅ **Geographic targeting removed!**",
		"",
		"**Campaign ID**: " + campaignID,
		"**Removed Criteria**: " + strings.Join(ids, ", "),
		"",
		"The location targeting has been removed from this campaign.",
		"",
		"**Warning**: If no other geo targets remain, the campaign may now",
		"target all locations. Verify with `google_ads_get_geo_targets`.",
	}, "\n"), nil
}
