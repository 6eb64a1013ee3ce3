// Package provider implements the identity-provider client over the OAuth2
// authorization-code grant.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
	"github.com/stnicholas-trust/staff-portal/internal/infrastructure/config"
)

const requestTimeout = 10 * time.Second

// Client performs the server-to-server calls of the code flow. Every call is
// bounded by requestTimeout; failures surface as domain.ErrUpstream so the
// boundary maps them to 502 without echoing provider payloads.
type Client struct {
	oauth      *oauth2.Config
	profileURL string
	http       *http.Client
}

func NewClient(cfg config.OAuthConfig) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		profileURL: cfg.ProfileURL,
		http:       &http.Client{Timeout: requestTimeout},
	}
}

// LoginURL builds the provider authorization URL carrying the one-shot state.
func (c *Client) LoginURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: code exchange: %v", domain.ErrUpstream, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: exchange response missing access token", domain.ErrUpstream)
	}
	return tok.AccessToken, nil
}

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile fetches the external profile the access token belongs to.
func (c *Client) Profile(ctx context.Context, accessToken string) (*domain.ExternalProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build profile request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch profile: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: profile endpoint returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var pr profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", domain.ErrUpstream, err)
	}
	if pr.ID == "" {
		return nil, fmt.Errorf("%w: profile missing id", domain.ErrUpstream)
	}

	displayName := pr.Name
	if displayName == "" {
		displayName = pr.ID
	}
	return &domain.ExternalProfile{ID: pr.ID, DisplayName: displayName}, nil
}
