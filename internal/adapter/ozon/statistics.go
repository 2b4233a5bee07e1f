package ozon

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

const dailyStatsPath = "/api/client/statistics/daily/json"

type dailyStatsResponse struct {
	Rows []struct {
		ID         string `json:"id"`
		Date       string `json:"date"`
		MoneySpent string `json:"moneySpent"`
	} `json:"rows"`
}

// DailySpend queries the daily statistics report for day, batching campaign
// ids. Rows are returned as reported; summing is left to the caller.
func (g *Gateway) DailySpend(ctx context.Context, creds domain.Credentials, day domain.Date, campaignIDs []string) ([]domain.SpendRecord, error) {
	var out []domain.SpendRecord
	for start := 0; start < len(campaignIDs); start += g.batchSize {
		end := min(start+g.batchSize, len(campaignIDs))
		q := url.Values{}
		for _, id := range campaignIDs[start:end] {
			q.Add("campaignIds", id)
		}
		q.Set("dateFrom", day.String())
		q.Set("dateTo", day.String())

		var resp dailyStatsResponse
		err := g.Call(ctx, creds, Request{
			Method: http.MethodGet,
			Path:   dailyStatsPath,
			Route:  dailyStatsPath,
			Query:  q,
		}, &resp)
		if err != nil {
			return nil, err
		}
		for _, r := range resp.Rows {
			amount, err := parseAmount(r.MoneySpent)
			if err != nil {
				return nil, &port.PlatformError{
					Kind:     port.KindServerError,
					Method:   http.MethodGet,
					Endpoint: dailyStatsPath,
					Status:   http.StatusOK,
					Err:      fmt.Errorf("campaign %s: %w", r.ID, err),
				}
			}
			out = append(out, domain.SpendRecord{CampaignID: r.ID, Date: rowDate(r.Date, day), Amount: amount})
		}
	}
	return out, nil
}

// parseAmount reads platform money strings such as "1 234,56". Empty means
// zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// rowDate accepts ISO and dd.mm.yyyy dates and falls back to the requested
// day.
func rowDate(s string, fallback domain.Date) domain.Date {
	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return domain.DateOf(t)
		}
	}
	return fallback
}
