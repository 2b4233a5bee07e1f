package ozon

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

const tokenPath = "/api/client/token"

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// tokenSource exchanges client credentials for a bearer token. It is wrapped
// in oauth2.ReuseTokenSource so a token is fetched once per expiry.
type tokenSource struct {
	g     *Gateway
	creds domain.Credentials
}

// Token implements oauth2.TokenSource. Rejected credentials are reported as
// port.KindUnauthorized whatever status the token endpoint used.
func (s tokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := s.g.callContext(context.Background())
	defer cancel()

	var resp tokenResponse
	err := s.g.do(ctx, Request{
		Method: http.MethodPost,
		Path:   tokenPath,
		Route:  tokenPath,
		Body: tokenRequest{
			ClientID:     s.creds.ClientID,
			ClientSecret: s.creds.ClientSecret,
			GrantType:    "client_credentials",
		},
	}, &resp, nil)
	if err != nil {
		var pe *port.PlatformError
		if errors.As(err, &pe) && (pe.Kind == port.KindInvalidRequest || pe.Kind == port.KindNotFound) {
			pe.Kind = port.KindUnauthorized
		}
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &port.PlatformError{Kind: port.KindUnauthorized, Method: http.MethodPost, Endpoint: tokenPath, Detail: []byte(`"empty access token"`)}
	}
	tok := &oauth2.Token{AccessToken: resp.AccessToken, TokenType: resp.TokenType}
	if tok.TokenType == "" {
		tok.TokenType = "Bearer"
	}
	if resp.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return tok, nil
}

func (g *Gateway) tokenSource(creds domain.Credentials) oauth2.TokenSource {
	g.mu.Lock()
	defer g.mu.Unlock()
	ts, ok := g.tokens[creds.ID]
	if !ok {
		ts = oauth2.ReuseTokenSource(nil, tokenSource{g: g, creds: creds})
		g.tokens[creds.ID] = ts
	}
	return ts
}

// dropToken forgets a cached token after the platform rejected it.
func (g *Gateway) dropToken(id uuid.UUID) {
	g.mu.Lock()
	delete(g.tokens, id)
	g.mu.Unlock()
}
