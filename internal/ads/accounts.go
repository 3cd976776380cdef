package ads

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
	"github.com/olgasafonova/google-ads-mcp-server/internal/gaql"
	"github.com/olgasafonova/google-ads-mcp-server/internal/googleads"
	"github.com/olgasafonova/google-ads-mcp-server/internal/report"
	"github.com/olgasafonova/google-ads-mcp-server/internal/schema"
)

// accountFanout bounds concurrent account detail lookups in ListAccounts.
const accountFanout = 5

type accountRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
	Status       string `json:"status"`
	Timezone     string `json:"timezone"`
	ResourceName string `json:"resource_name"`
}

// ListAccounts lists the accounts the credentials can reach. Accounts whose
// details cannot be read are skipped.
func (s *Service) ListAccounts(ctx context.Context, args ListAccountsArgs) (string, error) {
	limit, err := schema.Bounded("limit", args.Limit, 25, 1, 100)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	names, err := s.ads.ListAccessibleCustomers(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "No accessible Google Ads accounts found for the authenticated credentials.", nil
	}
	names, _ = report.Cap(names, limit)

	// Each slot is written by exactly one goroutine; nil marks a skipped account.
	found := make([]*accountRecord, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(accountFanout)
	for i, name := range names {
		g.Go(func() error {
			cid := lastSegment(name)
			q := gaql.Select(
				"customer.id",
				"customer.descriptive_name",
				"customer.currency_code",
				"customer.time_zone",
				"customer.status",
			).From("customer").Where(gaql.EqID("customer.id", cid))

			rows, err := s.ads.Search(gctx, cid, q.String())
			if err != nil {
				if apperrors.IsRemote(err) {
					s.logger.Debug("Skipping inaccessible account", "customer_id", cid, "error", err)
					return nil
				}
				return err
			}
			if len(rows) == 0 {
				return nil
			}
			rec := normalizeAccount(rows[0])
			rec.ResourceName = name
			found[i] = &rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	accounts := make([]accountRecord, 0, len(found))
	for _, a := range found {
		if a != nil {
			accounts = append(accounts, *a)
		}
	}
	if len(accounts) == 0 {
		return "Unable to retrieve details for accessible accounts. You may lack sufficient permissions.", nil
	}

	resp := map[string]any{
		"total":    len(accounts),
		"count":    len(accounts),
		"accounts": accounts,
	}
	return render(format, resp, func() string {
		d := report.NewDoc("Google Ads Accounts")
		d.Linef("Found **%d** accessible account(s)", len(accounts))
		d.Blank()
		for _, a := range accounts {
			d.H2(fmt.Sprintf("%s (%s)", a.Name, a.ID))
			d.Field("Currency", a.CurrencyCode)
			d.Field("Status", a.Status)
			d.Field("Timezone", a.Timezone)
			d.Blank()
		}
		return d.String()
	})
}

func normalizeAccount(r googleads.Row) accountRecord {
	return accountRecord{
		ID:           r.Str("customer.id"),
		Name:         r.Str("customer.descriptive_name"),
		CurrencyCode: r.Str("customer.currency_code"),
		Status:       r.Str("customer.status"),
		Timezone:     r.Str("customer.time_zone"),
	}
}

type accountInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	CurrencyCode       string `json:"currency_code"`
	Timezone           string `json:"timezone"`
	Status             string `json:"status"`
	IsManager          bool   `json:"is_manager"`
	IsTestAccount      bool   `json:"is_test_account"`
	AutoTaggingEnabled bool   `json:"auto_tagging_enabled"`
	HasPartnersBadge   bool   `json:"has_partners_badge"`
}

// GetAccountInfo describes one account.
func (s *Service) GetAccountInfo(ctx context.Context, args GetAccountInfoArgs) (string, error) {
	cid, err := schema.CustomerID(args.CustomerID)
	if err != nil {
		return "", err
	}
	format, err := schema.ResponseFormat(args.ResponseFormat)
	if err != nil {
		return "", err
	}

	q := gaql.Select(
		"customer.id",
		"customer.descriptive_name",
		"customer.currency_code",
		"customer.time_zone",
		"customer.tracking_url_template",
		"customer.auto_tagging_enabled",
		"customer.has_partners_badge",
		"customer.manager",
		"customer.test_account",
		"customer.status",
	).From("customer").Where(gaql.EqID("customer.id", cid))

	rows, err := s.ads.Search(ctx, cid, q.String())
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No account found with ID %s", cid), nil
	}

	r := rows[0]
	info := accountInfo{
		ID:                 r.Str("customer.id"),
		Name:               r.Str("customer.descriptive_name"),
		CurrencyCode:       r.Str("customer.currency_code"),
		Timezone:           r.Str("customer.time_zone"),
		Status:             r.Str("customer.status"),
		IsManager:          r.Bool("customer.manager"),
		IsTestAccount:      r.Bool("customer.test_account"),
		AutoTaggingEnabled: r.Bool("customer.auto_tagging_enabled"),
		HasPartnersBadge:   r.Bool("customer.has_partners_badge"),
	}

	return render(format, info, func() string {
		d := report.NewDoc(fmt.Sprintf("Account: %s (%s)", info.Name, info.ID))
		d.H2("Basic Information")
		d.Field("Currency", info.CurrencyCode)
		d.Field("Timezone", info.Timezone)
		d.Field("Status", info.Status)
		d.Blank()
		d.H2("Account Type")
		d.Field("Manager Account", report.YesNo(info.IsManager))
		d.Field("Test Account", report.YesNo(info.IsTestAccount))
		autoTagging := "Disabled"
		if info.AutoTaggingEnabled {
			autoTagging = "Enabled"
		}
		d.Field("Auto-tagging", autoTagging)
		d.Field("Google Partners Badge", report.YesNo(info.HasPartnersBadge))
		return d.String()
	})
}
