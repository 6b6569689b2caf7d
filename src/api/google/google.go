// Package google verifies Google ID tokens for federated manager login.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	clientID string
	baseURL  string
	client   *http.Client
}

// TokenInfo is the subset of Google's tokeninfo response the back office
// needs. Google returns most fields as strings.
type TokenInfo struct {
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Exp           string `json:"exp"`
	Picture       string `json:"picture"`
}

func (t TokenInfo) Verified() bool {
	return t.EmailVerified == "true"
}

func NewClient(clientID string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://oauth2.googleapis.com"
	}
	return &Client{
		clientID: clientID,
		baseURL:  baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// VerifyIDToken validates an ID token against the tokeninfo endpoint and
// checks audience and expiry (with a small clock-skew allowance).
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*TokenInfo, error) {
	endpoint := c.baseURL + "/tokeninfo?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google tokeninfo: status %d", resp.StatusCode)
	}

	var info TokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	if info.Aud != c.clientID {
		return nil, fmt.Errorf("google tokeninfo: audience mismatch")
	}
	exp, err := strconv.ParseInt(info.Exp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("google tokeninfo: bad expiry")
	}
	if time.Now().Add(-60 * time.Second).After(time.Unix(exp, 0)) {
		return nil, fmt.Errorf("google tokeninfo: token expired")
	}
	return &info, nil
}
