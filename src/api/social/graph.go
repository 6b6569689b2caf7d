package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const graphBaseURL = "https://graph.facebook.com/v18.0"

func newGraphHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

type graphError struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// postGraphForm posts a form-encoded request to a Graph API path and decodes
// the JSON response into out, surfacing Graph error payloads as errors.
func postGraphForm(ctx context.Context, client *http.Client, baseURL, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var ge graphError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Error != nil {
		return fmt.Errorf("graph api: %s", ge.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("graph api: unexpected status %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}
