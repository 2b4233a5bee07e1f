package ozon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

type campaignListResponse struct {
	List []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		State       string `json:"state"`
		DailyBudget string `json:"dailyBudget"`
	} `json:"list"`
}

type stateResponse struct {
	CampaignID string `json:"campaignId"`
	State      string `json:"state"`
}

var _ port.AdPlatform = (*Gateway)(nil)

// ListCampaigns returns every campaign of the credentials.
func (g *Gateway) ListCampaigns(ctx context.Context, creds domain.Credentials) ([]domain.Campaign, error) {
	var resp campaignListResponse
	err := g.Call(ctx, creds, Request{
		Method: http.MethodGet,
		Path:   "/api/client/campaign",
		Route:  "/api/client/campaign",
	}, &resp)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(resp.List))
	for _, c := range resp.List {
		budget, err := parseAmount(c.DailyBudget)
		if err != nil {
			budget = decimal.Zero
		}
		state := domain.CampaignState(c.State)
		if state == "" {
			state = domain.StateUnknown
		}
		out = append(out, domain.Campaign{ID: c.ID, Title: c.Title, State: state, DailyBudget: budget})
	}
	return out, nil
}

// ActivateCampaign starts the campaign.
func (g *Gateway) ActivateCampaign(ctx context.Context, creds domain.Credentials, campaignID string) (domain.CampaignState, error) {
	return g.switchState(ctx, creds, campaignID, "activate", domain.StateRunning)
}

// DeactivateCampaign stops the campaign.
func (g *Gateway) DeactivateCampaign(ctx context.Context, creds domain.Credentials, campaignID string) (domain.CampaignState, error) {
	return g.switchState(ctx, creds, campaignID, "deactivate", domain.StateInactive)
}

func (g *Gateway) switchState(ctx context.Context, creds domain.Credentials, campaignID, verb string, expected domain.CampaignState) (domain.CampaignState, error) {
	var resp stateResponse
	err := g.Call(ctx, creds, Request{
		Method: http.MethodPost,
		Path:   "/api/client/campaign/" + url.PathEscape(campaignID) + "/" + verb,
		Route:  "/api/client/campaign/{id}/" + verb,
		Body:   struct{}{},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.State != "" {
		return domain.CampaignState(resp.State), nil
	}
	return expected, nil
}
