package githubapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// installationTokenResponse is the subset of the access token response we
// care about.
type installationTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Exchanger redeems an app JWT for an installation-scoped access token.
// Tokens are never cached across requests.
type Exchanger struct {
	apiBaseURL string
	client     *http.Client
}

func NewExchanger(apiBaseURL string, client *http.Client) *Exchanger {
	return &Exchanger{apiBaseURL: apiBaseURL, client: client}
}

// Exchange calls the installation access token endpoint with the app JWT as
// bearer credential and returns the opaque token scoped to installationID.
func (e *Exchanger) Exchange(ctx context.Context, appJWT string, installationID int64) (string, error) {
	if installationID == 0 {
		return "", ErrMissingInstallation
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", e.apiBaseURL, installationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("%w: status %d: %s", ErrTokenExchangeFailed, resp.StatusCode, body)
	}

	var tr installationTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrTokenExchangeFailed, err)
	}

	return tr.Token, nil
}
