package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eduplatform/backend/models"
	"eduplatform/backend/store"
)

// IdentityClient fetches the authoritative session identity from the external
// adapter. A 401 maps to store.ErrUnauthorized so reconciliation degrades to
// signed-out instead of erroring.
type IdentityClient struct {
	URL    string
	Token  string
	Client *http.Client
}

func NewIdentityClient(url, token string) *IdentityClient {
	return &IdentityClient{
		URL:    url,
		Token:  token,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *IdentityClient) FetchIdentity(ctx context.Context) (models.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return models.Identity{}, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return models.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return models.Identity{}, store.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return models.Identity{}, fmt.Errorf("identity fetch: unexpected status %d", resp.StatusCode)
	}

	var identity models.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return models.Identity{}, err
	}
	if identity.UserID == "" {
		return models.Identity{}, store.ErrUnauthorized
	}
	return identity, nil
}
