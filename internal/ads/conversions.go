package ads

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type conversionAction struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ListConversionActions lists the account's conversion actions by name.
// Only ENABLED actions are listed unless include_disabled is set.
func (s *Service) ListConversionActions(ctx context.Context, args ListConversionActionsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"conversion_action.id",
		"conversion_action.name",
		"conversion_action.status",
	).From("conversion_action")
	if !args.IncludeDisabled {
		q.Where(gaql.Eq("conversion_action.status", "ENABLED"))
	}
	q.OrderBy("conversion_action.name", false)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return strings.Join([]string{
			"⚠️ **No conversion actions found!**",
			"",
			"You don't have any conversion tracking set up. To track conversions:",
			"",
			"1. **Google Ads UI**: Go to Tools > Measurement > Conversions",
			"2. **Create conversion action**: Choose website, app, phone calls, or import",
			"3. **Install tracking code**: Add the conversion tag to your website",
			"",
			"Without conversion tracking, you can't measure ROI or optimize for conversions.",
		}, "\n"), nil
	}
	actions := make([]conversionAction, 0, len(rows))
	for _, r := range rows {
		actions = append(actions, conversionAction{
			ID:     r.Str("conversion_action.id"),
			Name:   r.Str("conversion_action.name"),
			Status: r.Str("conversion_action.status"),
		})
	}

	resp := map[string]any{"total": len(actions), "conversion_actions": actions}
	return render(format, resp, func() string {
		d := report.NewDoc("Conversion Actions")
		d.Linef("**Total Actions**: %d", len(actions))
		d.Blank()
		tbl := make([][]string, 0, len(actions))
		for _, a := range actions {
			icon := "⏸️"
			if a.Status == "ENABLED" {
				icon = "✅"
			}
			tbl = append(tbl, []string{icon, a.Name, a.ID})
		}
		d.Table([]string{"Status", "Name", "ID"}, tbl)
		d.Blank()
		d.Line("**Note**: Use conversion IDs for tracking and reporting configuration.")
		return d.String()
	})
}

type conversionTotals struct {
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversions_value"`
	CostMicros       int64   `json:"cost_micros"`
	Clicks           int64   `json:"clicks"`
	Impressions      int64   `json:"impressions"`
}

func (t conversionTotals) cpaMicros() int64 {
	return int64(report.SafeDiv(float64(t.CostMicros), t.Conversions))
}

func (t conversionTotals) roas() float64 {
	return report.SafeDiv(t.ConversionsValue, report.ToUnits(t.CostMicros))
}

type campaignConversions struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	conversionTotals
}

// GetConversionStats reports conversions, value and cost per campaign over
// a date range, most conversions first.
func (s *Service) GetConversionStats(ctx context.Context, args GetConversionStatsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.OptionalID("campaign_id", args.CampaignID)
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
		"campaign.status",
		"metrics.conversions",
		"metrics.conversions_value",
		"metrics.cost_micros",
		"metrics.clicks",
		"metrics.impressions",
	).From("campaign").Where(
		gaql.DateRange(dateRange),
		gaql.EqID("campaign.id", campaignID),
	).OrderBy("metrics.conversions", true)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return strings.Join([]string{
			fmt.Sprintf("⚠️ **No conversions found for %s**", strings.ToLower(presetLabel(dateRange))),
			"",
			"This could mean:",
			"1. No conversion actions have been triggered",
			"2. Conversion tracking is not properly set up",
			"3. Conversions are still in the attribution window",
			"",
			"**Next Steps**:",
			"- Check `google_ads_list_conversion_actions` to verify setup",
			"- Verify conversion tags are firing on your website",
			"- Wait 1-3 days for conversion attribution to complete",
		}, "\n"), nil
	}

	var totals conversionTotals
	campaigns := make([]campaignConversions, 0, len(rows))
	for _, r := range rows {
		c := campaignConversions{
			ID:     r.Str("campaign.id"),
			Name:   r.Str("campaign.name"),
			Status: r.Str("campaign.status"),
			conversionTotals: conversionTotals{
				Conversions:      r.Float("metrics.conversions"),
				ConversionsValue: r.Float("metrics.conversions_value"),
				CostMicros:       r.Int("metrics.cost_micros"),
				Clicks:           r.Int("metrics.clicks"),
				Impressions:      r.Int("metrics.impressions"),
			},
		}
		totals.Conversions += c.Conversions
		totals.ConversionsValue += c.ConversionsValue
		totals.CostMicros += c.CostMicros
		totals.Clicks += c.Clicks
		totals.Impressions += c.Impressions
		campaigns = append(campaigns, c)
	}

	resp := map[string]any{"date_range": dateRange, "totals": totals, "campaigns": campaigns}
	return render(format, resp, func() string {
		d := report.NewDoc("Conversion Statistics")
		d.Linef("**Date Range**: %s", presetLabel(dateRange))
		d.Blank()
		roas := totals.roas()
		d.H2("Summary")
		d.Field("Total Conversions", fmt.Sprintf("%.1f", totals.Conversions))
		d.Field("Total Value", report.Units(totals.ConversionsValue))
		d.Field("Total Cost", report.Money(totals.CostMicros, ""))
		d.Field("Cost/Conversion (CPA)", report.Money(totals.cpaMicros(), ""))
		d.Field("Conversion Rate", fmt.Sprintf("%.2f%%", report.Percent(report.SafeDiv(totals.Conversions, float64(totals.Clicks)))))
		d.Field("ROAS", fmt.Sprintf("%.2fx (%.0f%%)", roas, roas*100))
		d.Blank()

		d.H2("By Campaign")
		d.Blank()
		tbl := make([][]string, 0, len(campaigns))
		for _, c := range campaigns {
			icon := "⏸️"
			if c.Status == "ENABLED" {
				icon = "✅"
			}
			tbl = append(tbl, []string{
				report.Clip(c.Name, 20), icon,
				fmt.Sprintf("%.1f", c.Conversions),
				report.Units(c.ConversionsValue),
				report.Micros(c.CostMicros),
				report.Micros(c.cpaMicros()),
				fmt.Sprintf("%.2fx", c.roas()),
			})
		}
		d.Table([]string{"Campaign", "Status", "Conv", "Value", "Cost", "CPA", "ROAS"}, tbl)
		d.Blank()
		d.Line("**Note**: Conversion data may have a 1-3 day delay due to attribution windows.")
		return d.String()
	})
}

type conversionGoal struct {
	Category string `json:"category"`
	Origin   string `json:"origin"`
	Biddable bool   `json:"biddable"`
}

type campaignGoals struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ChannelType     string           `json:"channel_type"`
	BiddingStrategy string           `json:"bidding_strategy"`
	Goals           []conversionGoal `json:"goals"`
}

func (c campaignGoals) split() (primary, secondary []conversionGoal) {
	for _, g := range c.Goals {
		if g.Biddable {
			primary = append(primary, g)
		} else {
			secondary = append(secondary, g)
		}
	}
	return primary, secondary
}

func goalRows(goals []conversionGoal) [][]string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{g.Category, g.Origin})
	}
	return rows
}

// GetCampaignConversionGoals shows which conversion goals each campaign
// bids on (primary) and which it only observes (secondary).
func (s *Service) GetCampaignConversionGoals(ctx context.Context, args GetCampaignConversionGoalsArgs) (string, error) {
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

	q := gaql.Select(
		"campaign.id",
		"campaign.name",
		"campaign.advertising_channel_type",
		"campaign.bidding_strategy_type",
		"campaign_conversion_goal.category",
		"campaign_conversion_goal.origin",
		"campaign_conversion_goal.biddable",
	).From("campaign_conversion_goal").Where(
		gaql.Neq("campaign.status", "REMOVED"),
		gaql.EqID("campaign.id", campaignID),
	).OrderBy("campaign.name", false).OrderBy("campaign_conversion_goal.biddable", true)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return strings.Join([]string{
			"⚠️ **No campaign conversion goals found!**",
			"",
			"This could mean:",
			"1. Campaigns are using account-level default conversion goals",
			"2. No conversion actions are configured",
			"3. The specified campaign doesn't exist",
			"",
			"**Next Steps**:",
			"- Check `google_ads_list_conversion_actions` to see available conversions",
			"- Verify campaign IDs with `google_ads_list_campaigns`",
			"- Check Google Ads UI: Tools > Measurement > Conversions",
		}, "\n"), nil
	}

	var order []string
	byID := map[string]*campaignGoals{}
	for _, r := range rows {
		id := r.Str("campaign.id")
		c, ok := byID[id]
		if !ok {
			c = &campaignGoals{
				ID:              id,
				Name:            r.Str("campaign.name"),
				ChannelType:     r.Str("campaign.advertising_channel_type"),
				BiddingStrategy: r.Str("campaign.bidding_strategy_type"),
			}
			byID[id] = c
			order = append(order, id)
		}
		c.Goals = append(c.Goals, conversionGoal{
			Category: r.Str("campaign_conversion_goal.category"),
			Origin:   r.Str("campaign_conversion_goal.origin"),
			Biddable: r.Bool("campaign_conversion_goal.biddable"),
		})
	}
	campaigns := make([]campaignGoals, 0, len(order))
	for _, id := range order {
		campaigns = append(campaigns, *byID[id])
	}

	resp := map[string]any{"total_campaigns": len(campaigns), "campaigns": campaigns}
	return render(format, resp, func() string {
		d := report.NewDoc("Campaign Conversion Goals")
		d.Linef("**Campaigns Analyzed**: %d", len(campaigns))
		d.Blank()
		for _, c := range campaigns {
			primary, secondary := c.split()
			d.H2(c.Name)
			d.Field("ID", c.ID)
			d.Field("Type", c.ChannelType)
			d.Field("Bidding", c.BiddingStrategy)
			d.Field("Primary Goals", len(primary))
			d.Field("Secondary Goals", len(secondary))
			d.Blank()
			if len(primary) > 0 {
				d.H3("✅ Primary Conversions (Used for Bidding)")
				d.Table([]string{"Category", "Origin"}, goalRows(primary))
				d.Blank()
			}
			if len(secondary) > 0 {
				d.H3("📊 Secondary Conversions (Observation Only)")
				d.Table([]string{"Category", "Origin"}, goalRows(secondary))
				d.Blank()
			}
		}
		d.Line("---")
		d.Line("**Legend**:")
		d.Field("Primary", "Used for Smart Bidding optimization")
		d.Field("Secondary", "Tracked but not used for bidding")
		d.Field("Origin", "GOOGLE_ADS (native), FIREBASE, ANALYTICS, etc.")
		return d.String()
	})
}
