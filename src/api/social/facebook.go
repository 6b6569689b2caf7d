package social

import (
	"context"
	"net/http"
	"net/url"
)

// Facebook posts to a page feed via the Graph API.
type Facebook struct {
	pageID  string
	token   string
	baseURL string
	client  *http.Client
}

func NewFacebook(pageID, token string) *Facebook {
	return &Facebook{
		pageID:  pageID,
		token:   token,
		baseURL: graphBaseURL,
		client:  newGraphHTTPClient(),
	}
}

func (f *Facebook) Name() string { return "facebook" }

func (f *Facebook) Post(ctx context.Context, post Post) (string, error) {
	if f.token == "" || f.pageID == "" {
		return "", notConfigured("facebook access token")
	}

	form := url.Values{}
	form.Set("message", post.Message)
	form.Set("access_token", f.token)
	if post.Image != nil && post.Image.URL != "" {
		form.Set("link", post.Image.URL)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := postGraphForm(ctx, f.client, f.baseURL, "/"+f.pageID+"/feed", form, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}
