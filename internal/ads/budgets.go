package ads

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

type budgetChange struct {
	Success         bool    `json:"success"`
	CampaignID      string  `json:"campaign_id"`
	CampaignName    string  `json:"campaign_name"`
	OldBudgetMicros int64   `json:"old_budget_micros"`
	NewBudgetMicros int64   `json:"new_budget_micros"`
	OldBudget       float64 `json:"old_budget"`
	NewBudget       float64 `json:"new_budget"`
	Change          float64 `json:"change"`
	ChangePercent   float64 `json:"change_percent"`
}

// UpdateCampaignBudget looks up the campaign's budget and sets a new daily
// amount on it. Shared budgets change for every campaign using them.
func (s *Service) UpdateCampaignBudget(ctx context.Context, args UpdateCampaignBudgetArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignID, err := schema.ID("campaign_id", args.CampaignID)
	if err != nil {
		return "", err
	}
	if err := schema.Min("new_budget_micros", args.NewBudgetMicros, 1_000_000); err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"campaign.id",
		"campaign.name",
		"campaign.campaign_budget",
		"campaign_budget.amount_micros",
		"campaign_budget.id",
	).From("campaign").Where(gaql.EqID("campaign.id", campaignID))
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", apperrors.NewNotFoundError("Campaign", campaignID)
	}
	row := rows[0]
	budget := row.Str("campaign.campaign_budget")

	op := googleads.Operation{
		Update: map[string]any{
			"resourceName": budget,
			"amountMicros": args.NewBudgetMicros,
		},
		UpdateMask: "amountMicros",
	}
	if _, err := s.ads.Mutate(ctx, cid, "campaignBudgets", []googleads.Operation{op}); err != nil {
		return "", err
	}

	c := budgetChange{
		Success:         true,
		CampaignID:      campaignID,
		CampaignName:    row.Str("campaign.name"),
		OldBudgetMicros: row.Int("campaign_budget.amount_micros"),
		NewBudgetMicros: args.NewBudgetMicros,
	}
	c.OldBudget = report.ToUnits(c.OldBudgetMicros)
	c.NewBudget = report.ToUnits(c.NewBudgetMicros)
	c.Change = report.Round2(c.NewBudget - c.OldBudget)
	if c.OldBudget > 0 {
		c.ChangePercent = report.Percent(report.SafeDiv(c.NewBudget, c.OldBudget) - 1)
	}

	return render(format, c, func() string {
		icon := "➡️"
		switch {
		case c.Change > 0:
			icon = "📈"
		case c.Change < 0:
			icon = "📉"
		}
		sign := "+"
		if c.Change < 0 {
			sign = "-"
		}
		d := &report.Doc{}
		d.Line("✅ **Campaign budget updated successfully!**")
		d.Blank()
		d.Linef("**Campaign**: %s (%s)", c.CampaignName, campaignID)
		d.Blank()
		d.Table([]string{"", "Amount"}, [][]string{
			{"**Previous Budget**", report.Money(c.OldBudgetMicros, "") + "/day"},
			{"**New Budget**", report.Money(c.NewBudgetMicros, "") + "/day"},
			{"**Change**", fmt.Sprintf("%s %s%s (%+.1f%%)", icon, sign, report.Units(math.Abs(c.Change)), c.ChangePercent)},
		})
		d.Blank()
		d.Line("**Note**: The new budget takes effect immediately. Google may spend up to 2x the daily budget on high-traffic days, but won't exceed monthly budget.")
		return d.String()
	})
}

// presetLabel renders a date preset for people: "LAST_7_DAYS" → "Last 7 Days".
func presetLabel(preset string) string {
	words := strings.Split(preset, "_")
	for i, w := range words {
		words[i] = title(w)
	}
	return strings.Join(words, " ")
}

type utilizationRecord struct {
	CampaignID          string  `json:"campaign_id"`
	Name                string  `json:"name"`
	Status              string  `json:"status"`
	BudgetType          string  `json:"budget_type"`
	DailyBudgetMicros   int64   `json:"daily_budget_micros"`
	AvgDailySpendMicros int64   `json:"avg_daily_spend_micros"`
	TotalSpendMicros    int64   `json:"total_spend_micros"`
	Utilization         float64 `json:"utilization"`
	Days                int     `json:"days"`
}

// Utilization thresholds, in percent of the daily budget.
const (
	budgetLimitedAt = 95
	budgetWarnAt    = 70
	underspendBelow = 50
)

func utilizationIcon(pct float64) string {
	switch {
	case pct >= budgetLimitedAt:
		return "🔴"
	case pct >= budgetWarnAt:
		return "🟡"
	}
	return "🟢"
}

// GetBudgetUtilization compares average daily spend with each campaign's
// daily budget over a date range, highest utilization first.
func (s *Service) GetBudgetUtilization(ctx context.Context, args GetBudgetUtilizationArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	campaignIDs, err := schema.IDs("campaign_ids", args.CampaignIDs, 0)
	if err != nil {
		return "", err
	}
	dateRange, err := schema.DatePresets.Check(args.DateRange, "LAST_7_DAYS")
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
		"campaign_budget.amount_micros",
		"campaign_budget.type",
		"metrics.cost_micros",
		"segments.date",
	).From("campaign").Where(
		gaql.Neq("campaign.status", "REMOVED"),
		gaql.DateRange(dateRange),
		gaql.InIDs("campaign.id", campaignIDs),
	)
	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No campaign data found for the specified criteria.", nil
	}

	// One row per campaign per day.
	var order []string
	byID := map[string]*utilizationRecord{}
	for _, r := range rows {
		id := r.Str("campaign.id")
		u, ok := byID[id]
		if !ok {
			u = &utilizationRecord{
				CampaignID:        id,
				Name:              r.Str("campaign.name"),
				Status:            r.Str("campaign.status"),
				BudgetType:        r.Str("campaign_budget.type"),
				DailyBudgetMicros: r.Int("campaign_budget.amount_micros"),
			}
			byID[id] = u
			order = append(order, id)
		}
		u.TotalSpendMicros += r.Int("metrics.cost_micros")
		u.Days++
	}

	campaigns := make([]utilizationRecord, 0, len(order))
	var totalBudget, totalSpend int64
	for _, id := range order {
		u := byID[id]
		u.AvgDailySpendMicros = u.TotalSpendMicros / int64(max(u.Days, 1))
		u.Utilization = report.Percent(report.SafeDiv(float64(u.AvgDailySpendMicros), float64(u.DailyBudgetMicros)))
		totalBudget += u.DailyBudgetMicros
		totalSpend += u.AvgDailySpendMicros
		campaigns = append(campaigns, *u)
	}
	slices.SortStableFunc(campaigns, func(a, b utilizationRecord) int {
		switch {
		case a.Utilization > b.Utilization:
			return -1
		case a.Utilization < b.Utilization:
			return 1
		}
		return 0
	})
	overall := report.Percent(report.SafeDiv(float64(totalSpend), float64(totalBudget)))

	resp := map[string]any{
		"date_range":      dateRange,
		"total_campaigns": len(campaigns),
		"summary": map[string]any{
			"total_daily_budget_micros":    totalBudget,
			"total_avg_daily_spend_micros": totalSpend,
			"overall_utilization":          overall,
		},
		"campaigns": campaigns,
	}
	return render(format, resp, func() string {
		d := report.NewDoc("Budget Utilization Report")
		d.Linef("**Date Range**: %s", presetLabel(dateRange))
		d.Linef("**Campaigns Analyzed**: %d", len(campaigns))
		d.Blank()
		d.H2("Summary")
		d.Field("Total Daily Budget", report.Money(totalBudget, ""))
		d.Field("Avg Daily Spend", report.Money(totalSpend, ""))
		d.Field("Overall Utilization", fmt.Sprintf("%.1f%%", overall))
		d.Blank()

		var limited, under []utilizationRecord
		for _, c := range campaigns {
			if c.Utilization >= budgetLimitedAt {
				limited = append(limited, c)
			}
			if c.Utilization < underspendBelow && c.Status == "ENABLED" {
				under = append(under, c)
			}
		}
		if len(limited) > 0 {
			d.H2("⚠️ Budget-Limited Campaigns")
			d.Line("These campaigns may be missing traffic due to budget constraints:")
			d.Blank()
			for _, c := range limited {
				d.Bullet("**%s**: %.1f%% (%s/day)", c.Name, c.Utilization, report.Money(c.DailyBudgetMicros, ""))
			}
			d.Blank()
		}
		if len(under) > 0 {
			d.H2("📉 Underspending Campaigns")
			d.Line("These campaigns have room to spend more:")
			d.Blank()
			for _, c := range under {
				d.Bullet("**%s**: %.1f%% (%s of %s/day)", c.Name, c.Utilization,
					report.Money(c.AvgDailySpendMicros, ""), report.Money(c.DailyBudgetMicros, ""))
			}
			d.Blank()
		}

		d.H2("All Campaigns")
		d.Blank()
		tbl := make([][]string, 0, len(campaigns))
		for _, c := range campaigns {
			tbl = append(tbl, []string{
				report.Clip(c.Name, 30),
				c.Status,
				report.Money(c.DailyBudgetMicros, ""),
				report.Money(c.AvgDailySpendMicros, ""),
				fmt.Sprintf("%s %.1f%%", utilizationIcon(c.Utilization), c.Utilization),
			})
		}
		d.Table([]string{"Campaign", "Status", "Daily Budget", "Avg Spend", "Utilization"}, tbl)
		return d.String()
	})
}
