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

type campaignRecord struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Status            string   `json:"status"`
	Type              string   `json:"type"`
	BiddingStrategy   string   `json:"bidding_strategy"`
	BudgetMicros      *int64   `json:"budget_micros"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	OptimizationScore *float64 `json:"optimization_score"`
}

func normalizeCampaign(r googleads.Row) campaignRecord {
	c := campaignRecord{
		ID:              r.Str("campaign.id"),
		Name:            r.Str("campaign.name"),
		Status:          r.Str("campaign.status"),
		Type:            r.Str("campaign.advertising_channel_type"),
		BiddingStrategy: r.Str("campaign.bidding_strategy_type"),
		StartDate:       r.Str("campaign.start_date"),
		EndDate:         r.Str("campaign.end_date"),
	}
	if r.Has("campaign_budget.amount_micros") {
		v := r.Int("campaign_budget.amount_micros")
		c.BudgetMicros = &v
	}
	if r.Has("campaign.optimization_score") {
		v := r.Float("campaign.optimization_score")
		c.OptimizationScore = &v
	}
	return c
}

// maxCampaignOffset is the account's campaign ceiling; no page starts past it.
const maxCampaignOffset = 10_000

// ListCampaigns lists campaigns newest first. GAQL has no OFFSET, so the
// query fetches offset+limit rows and the first offset are dropped.
func (s *Service) ListCampaigns(ctx context.Context, args ListCampaignsArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	status, err := schema.CampaignStatuses.Optional(args.StatusFilter)
	if err != nil {
		return "", err
	}
	limit, err := schema.Bounded("limit", args.Limit, 20, 1, 100)
	if err != nil {
		return "", err
	}
	offset, err := schema.Bounded("offset", args.Offset, 0, 0, maxCampaignOffset)
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
		"campaign.advertising_channel_type",
		"campaign.bidding_strategy_type",
		"campaign_budget.amount_micros",
		"campaign.start_date",
		"campaign.end_date",
		"campaign.optimization_score",
	).From("campaign")
	if status != "" {
		q.Where(gaql.Eq("campaign.status", status))
	}
	q.OrderBy("campaign.id", true).Limit(offset + limit)

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	hasMore := len(rows) == offset+limit
	if offset < len(rows) {
		rows = rows[offset:]
	} else {
		rows = nil
	}
	if len(rows) == 0 {
		if status != "" {
			return "No campaigns found with status " + status, nil
		}
		return "No campaigns found", nil
	}

	campaigns := make([]campaignRecord, 0, len(rows))
	for _, r := range rows {
		campaigns = append(campaigns, normalizeCampaign(r))
	}

	var nextOffset *int
	if hasMore {
		n := offset + limit
		nextOffset = &n
	}
	resp := map[string]any{
		"total":       len(campaigns),
		"count":       len(campaigns),
		"offset":      offset,
		"campaigns":   campaigns,
		"has_more":    hasMore,
		"next_offset": nextOffset,
	}
	return render(format, resp, func() string {
		d := report.NewDoc("Campaigns")
		d.Linef("Found **%d** campaign(s)", len(campaigns))
		d.Blank()
		for _, c := range campaigns {
			d.H2(fmt.Sprintf("%s (%s)", c.Name, c.ID))
			d.Field("Status", c.Status)
			d.Field("Type", c.Type)
			d.Field("Bidding", c.BiddingStrategy)
			if c.BudgetMicros != nil && *c.BudgetMicros > 0 {
				d.Field("Daily Budget", report.Money(*c.BudgetMicros, ""))
			}
			d.Field("Start Date", c.StartDate)
			if c.EndDate != "" {
				d.Field("End Date", c.EndDate)
			}
			if c.OptimizationScore != nil {
				d.Field("Optimization Score", fmt.Sprintf("%.2f", *c.OptimizationScore))
			}
			d.Blank()
		}
		if hasMore {
			d.Linef("*Use offset=%d to see more results*", offset+limit)
		}
		return d.String()
	})
}

type campaignDetail struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Type            string `json:"type"`
	SubType         string `json:"sub_type,omitempty"`
	BiddingStrategy string `json:"bidding_strategy"`
	Budget          struct {
		AmountMicros   *int64 `json:"amount_micros"`
		DeliveryMethod string `json:"delivery_method,omitempty"`
	} `json:"budget"`
	Dates struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dates"`
	NetworkSettings struct {
		GoogleSearch         bool `json:"google_search"`
		SearchNetwork        bool `json:"search_network"`
		ContentNetwork       bool `json:"content_network"`
		PartnerSearchNetwork bool `json:"partner_search_network"`
	} `json:"network_settings"`
	OptimizationScore *float64 `json:"optimization_score"`
}

// GetCampaign describes one campaign's settings.
func (s *Service) GetCampaign(ctx context.Context, args GetCampaignArgs) (string, error) {
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
		"campaign.id",
		"campaign.name",
		"campaign.status",
		"campaign.advertising_channel_type",
		"campaign.advertising_channel_sub_type",
		"campaign.bidding_strategy_type",
		"campaign_budget.amount_micros",
		"campaign_budget.delivery_method",
		"campaign.start_date",
		"campaign.end_date",
		"campaign.network_settings.target_google_search",
		"campaign.network_settings.target_search_network",
		"campaign.network_settings.target_content_network",
		"campaign.network_settings.target_partner_search_network",
		"campaign.optimization_score",
		"campaign.url_custom_parameters",
	).From("campaign").Where(gaql.EqID("campaign.id", campaignID))

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("Campaign %s not found", campaignID), nil
	}

	r := rows[0]
	var c campaignDetail
	c.ID = r.Str("campaign.id")
	c.Name = r.Str("campaign.name")
	c.Status = r.Str("campaign.status")
	c.Type = r.Str("campaign.advertising_channel_type")
	c.SubType = r.Str("campaign.advertising_channel_sub_type")
	c.BiddingStrategy = r.Str("campaign.bidding_strategy_type")
	if r.Has("campaign_budget.amount_micros") {
		v := r.Int("campaign_budget.amount_micros")
		c.Budget.AmountMicros = &v
	}
	c.Budget.DeliveryMethod = r.Str("campaign_budget.delivery_method")
	c.Dates.Start = r.Str("campaign.start_date")
	c.Dates.End = r.Str("campaign.end_date")
	c.NetworkSettings.GoogleSearch = r.Bool("campaign.network_settings.target_google_search")
	c.NetworkSettings.SearchNetwork = r.Bool("campaign.network_settings.target_search_network")
	c.NetworkSettings.ContentNetwork = r.Bool("campaign.network_settings.target_content_network")
	c.NetworkSettings.PartnerSearchNetwork = r.Bool("campaign.network_settings.target_partner_search_network")
	if r.Has("campaign.optimization_score") {
		v := r.Float("campaign.optimization_score")
		c.OptimizationScore = &v
	}

	return render(format, c, func() string {
		d := report.NewDoc(fmt.Sprintf("Campaign: %s (%s)", c.Name, c.ID))
		d.H2("Basic Settings")
		d.Field("Status", c.Status)
		d.Field("Type", c.Type)
		if c.SubType != "" {
			d.Field("Sub-type", c.SubType)
		}
		d.Field("Bidding Strategy", c.BiddingStrategy)
		d.Blank()

		d.H2("Budget")
		if c.Budget.AmountMicros != nil && *c.Budget.AmountMicros > 0 {
			d.Field("Daily Budget", report.Money(*c.Budget.AmountMicros, ""))
			d.Field("Delivery Method", c.Budget.DeliveryMethod)
		}
		d.Blank()

		d.H2("Schedule")
		d.Field("Start Date", c.Dates.Start)
		if c.Dates.End != "" {
			d.Field("End Date", c.Dates.End)
		}
		d.Blank()

		ns := c.NetworkSettings
		d.H2("Network Targeting")
		d.Field("Google Search", report.Mark(ns.GoogleSearch))
		d.Field("Search Network Partners", report.Mark(ns.SearchNetwork))
		d.Field("Display Network", report.Mark(ns.ContentNetwork))
		d.Field("Partner Search Network", report.Mark(ns.PartnerSearchNetwork))

		if c.OptimizationScore != nil {
			d.Blank()
			d.H2("Optimization")
			d.Field("Score", fmt.Sprintf("%.2f/100", *c.OptimizationScore))
		}
		return d.String()
	})
}

// biddingPayload maps a bidding strategy to the campaign field that selects
// it. Manual CPC is created with enhanced CPC on.
func biddingPayload(strategy string) (string, map[string]any) {
	switch strategy {
	case "MANUAL_CPC":
		return "manualCpc", map[string]any{"enhancedCpcEnabled": true}
	case "MANUAL_CPM":
		return "manualCpm", map[string]any{}
	case "MANUAL_CPV":
		return "manualCpv", map[string]any{}
	case "MAXIMIZE_CONVERSIONS":
		return "maximizeConversions", map[string]any{}
	case "MAXIMIZE_CONVERSION_VALUE":
		return "maximizeConversionValue", map[string]any{}
	case "TARGET_CPA":
		return "targetCpa", map[string]any{}
	case "TARGET_ROAS":
		return "targetRoas", map[string]any{}
	case "TARGET_SPEND":
		return "targetSpend", map[string]any{}
	case "TARGET_IMPRESSION_SHARE":
		return "targetImpressionShare", map[string]any{}
	}
	return "", nil
}

// CreateCampaign creates a budget and then a PAUSED campaign that uses it.
// The two mutations are separate calls; a failed campaign create leaves the
// budget behind.
func (s *Service) CreateCampaign(ctx context.Context, args CreateCampaignArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	name, err := schema.Text("campaign_name", args.CampaignName, 1, 255)
	if err != nil {
		return "", err
	}
	if err := schema.Min("budget_amount_micros", args.BudgetAmountMicros, 1_000_000); err != nil {
		return "", err
	}
	channel, err := schema.AdvertisingChannelTypes.Check(args.AdvertisingChannelType, "")
	if err != nil {
		return "", err
	}
	bidding, err := schema.BiddingStrategies.Check(args.BiddingStrategy, "MANUAL_CPC")
	if err != nil {
		return "", err
	}
	startDate, err := schema.Date("start_date", args.StartDate)
	if err != nil {
		return "", err
	}
	endDate, err := schema.Date("end_date", args.EndDate)
	if err != nil {
		return "", err
	}
	googleSearch := true
	if args.TargetGoogleSearch != nil {
		googleSearch = *args.TargetGoogleSearch
	}

	budget := map[string]any{
		"name":           name + " Budget",
		"amountMicros":   args.BudgetAmountMicros,
		"deliveryMethod": "STANDARD",
	}
	budgetNames, err := s.ads.Mutate(ctx, cid, "campaignBudgets", []googleads.Operation{{Create: budget}})
	if err != nil {
		return "", err
	}

	campaign := map[string]any{
		"name":                   name,
		"status":                 "PAUSED",
		"advertisingChannelType": channel,
		"campaignBudget":         budgetNames[0],
		"networkSettings": map[string]any{
			"targetGoogleSearch":         googleSearch,
			"targetSearchNetwork":        args.TargetSearchNetwork,
			"targetContentNetwork":       args.TargetContentNetwork,
			"targetPartnerSearchNetwork": false,
		},
		"containsEuPoliticalAdvertising": "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING",
	}
	if field, v := biddingPayload(bidding); field != "" {
		campaign[field] = v
	}
	if startDate != "" {
		campaign["startDate"] = startDate
	}
	if endDate != "" {
		campaign["endDate"] = endDate
	}
	campaignNames, err := s.ads.Mutate(ctx, cid, "campaigns", []googleads.Operation{{Create: campaign}})
	if err != nil {
		return "", err
	}
	resourceName := campaignNames[0]

	return strings.Join([]string{
		"✅ Campaign created successfully!",
		"",
		"**Campaign Name**: " + name,
		"**Campaign ID**: " + lastSegment(resourceName),
		"**Status**: PAUSED (enable it when ready)",
		"**Budget**: " + report.Money(args.BudgetAmountMicros, "") + "/day",
		"**Type**: " + channel,
		"**Bidding**: " + bidding,
		"",
		"Resource name: " + resourceName,
		"",
		"Next steps:",
		"1. Add ad groups to the campaign",
		"2. Create ads and add keywords",
		"3. Enable the campaign with google_ads_update_campaign_status",
	}, "\n"), nil
}

var statusVerbs = map[string]string{
	"ENABLED": "enabled",
	"PAUSED":  "paused",
	"REMOVED": "removed",
}

// UpdateCampaignStatus enables, pauses or removes a campaign.
func (s *Service) UpdateCampaignStatus(ctx context.Context, args UpdateCampaignStatusArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	status, err := schema.CampaignStatuses.Check(args.Status, "")
	if err != nil {
		return "", err
	}

	op := googleads.Operation{
		Update: map[string]any{
			"resourceName": resourcePath(cid, "campaigns", campaignID),
			"status":       status,
		},
		UpdateMask: "status",
	}
	if _, err := s.ads.Mutate(ctx, cid, "campaigns", []googleads.Operation{op}); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Campaign %s has been %s successfully.", campaignID, statusVerbs[status]), nil
}

var minuteOfHour = map[int]string{
	0:  "ZERO",
	15: "FIFTEEN",
	30: "THIRTY",
	45: "FORTY_FIVE",
}

// SetCampaignSchedule replaces every ad schedule criterion of a campaign
// with one criterion per requested day. Removal and creation go out in a
// single mutate call.
func (s *Service) SetCampaignSchedule(ctx context.Context, args SetCampaignScheduleArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	if err := schema.Count("days", len(args.Days), 1, -1); err != nil {
		return "", err
	}
	days, err := schema.DaysOfWeek.All(args.Days)
	if err != nil {
		return "", err
	}
	if err := schema.Range("start_hour", args.StartHour, 0, 23); err != nil {
		return "", err
	}
	if err := schema.Range("end_hour", args.EndHour, 0, 24); err != nil {
		return "", err
	}
	if err := schema.Minute("start_minute", args.StartMinute); err != nil {
		return "", err
	}
	if err := schema.Minute("end_minute", args.EndMinute); err != nil {
		return "", err
	}

	q := gaql.Select(
		"campaign_criterion.criterion_id",
		"campaign_criterion.ad_schedule.day_of_week",
		"campaign_criterion.ad_schedule.start_hour",
		"campaign_criterion.ad_schedule.start_minute",
		"campaign_criterion.ad_schedule.end_hour",
		"campaign_criterion.ad_schedule.end_minute",
	).From("campaign_criterion").Where(
		gaql.EqID("campaign.id", campaignID),
		gaql.Eq("campaign_criterion.type", "AD_SCHEDULE"),
		gaql.Neq("campaign_criterion.status", "REMOVED"),
	)
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}

	ops := make([]googleads.Operation, 0, len(rows)+len(days))
	for _, r := range rows {
		key := campaignID + "~" + r.Str("campaign_criterion.criterion_id")
		ops = append(ops, googleads.Operation{Remove: resourcePath(cid, "campaignCriteria", key)})
	}
	for _, day := range days {
		ops = append(ops, googleads.Operation{Create: map[string]any{
			"campaign": resourcePath(cid, "campaigns", campaignID),
			"status":   "ENABLED",
			"adSchedule": map[string]any{
				"dayOfWeek":   day,
				"startHour":   args.StartHour,
				"startMinute": minuteOfHour[args.StartMinute],
				"endHour":     args.EndHour,
				"endMinute":   minuteOfHour[args.EndMinute],
			},
		}})
	}
	if _, err := s.ads.Mutate(ctx, cid, "campaignCriteria", ops); err != nil {
		return "", err
	}

	dayNames := make([]string, len(days))
	for i, day := range days {
		dayNames[i] = title(day)
	}
	return strings.Join([]string{
		"✅ Campaign ad schedule updated successfully!",
		"",
		"**Campaign ID**: " + campaignID,
		"**Active Days**: " + strings.Join(dayNames, ", "),
		fmt.Sprintf("**Active Hours**: %02d:%02d - %02d:%02d", args.StartHour, args.StartMinute, args.EndHour, args.EndMinute),
		"",
		fmt.Sprintf("Removed %d existing schedule(s)", len(rows)),
		fmt.Sprintf("Created %d new schedule(s)", len(days)),
		"",
		"The campaign will now only show ads during the specified days and hours.",
	}, "\n"), nil
}
