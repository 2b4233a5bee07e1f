package port

import (
	"context"

	"spendguard/internal/core/domain"
)

// AdPlatform is the outbound port to the advertising platform. Every method
// authenticates with the given credentials and returns a *PlatformError on
// failure.
type AdPlatform interface {
	// ListCampaigns returns every campaign visible to the credentials.
	ListCampaigns(ctx context.Context, creds domain.Credentials) ([]domain.Campaign, error)
	// ActivateCampaign starts a campaign and returns the state the platform
	// reports afterwards.
	ActivateCampaign(ctx context.Context, creds domain.Credentials, campaignID string) (domain.CampaignState, error)
	// DeactivateCampaign stops a campaign and returns the state the platform
	// reports afterwards.
	DeactivateCampaign(ctx context.Context, creds domain.Credentials, campaignID string) (domain.CampaignState, error)
	// DailySpend returns raw statistics rows for the campaigns on day. Rows
	// may repeat a campaign and campaigns without spend may be absent.
	DailySpend(ctx context.Context, creds domain.Credentials, day domain.Date, campaignIDs []string) ([]domain.SpendRecord, error)
}
