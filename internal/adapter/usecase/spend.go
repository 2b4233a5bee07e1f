package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// SpendAggregator turns raw statistics rows into today's spend per campaign.
type SpendAggregator struct {
	platform port.AdPlatform
}

// NewSpendAggregator creates an aggregator reading statistics from platform.
func NewSpendAggregator(platform port.AdPlatform) *SpendAggregator {
	return &SpendAggregator{platform: platform}
}

// TodaySpend returns the spend of every requested campaign on today.
// Campaigns without rows spent zero, repeated rows are summed and rows for
// other days or unrequested campaigns are ignored. Gateway errors are
// returned unchanged so the caller can fall back to cached spend.
func (a *SpendAggregator) TodaySpend(ctx context.Context, creds domain.Credentials, campaignIDs []string, today domain.Date) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	for _, id := range campaignIDs {
		out[id] = decimal.Zero
	}

	rows, err := a.platform.DailySpend(ctx, creds, today, campaignIDs)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		sum, ok := out[r.CampaignID]
		if !ok || r.Date != today {
			continue
		}
		out[r.CampaignID] = sum.Add(r.Amount)
	}
	return out, nil
}
