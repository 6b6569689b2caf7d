package social

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Instagram publishes via the two-step Graph container flow. An image URL
// is mandatory; text-only posts are not supported by the platform.
type Instagram struct {
	accountID string
	token     string
	baseURL   string
	client    *http.Client
}

func NewInstagram(accountID, token string) *Instagram {
	return &Instagram{
		accountID: accountID,
		token:     token,
		baseURL:   graphBaseURL,
		client:    newGraphHTTPClient(),
	}
}

func (i *Instagram) Name() string { return "instagram" }

func (i *Instagram) Post(ctx context.Context, post Post) (string, error) {
	if i.token == "" || i.accountID == "" {
		return "", notConfigured("instagram access token")
	}
	if post.Image == nil || post.Image.URL == "" {
		return "", errors.New("instagram requires an image url")
	}

	// Step 1: create the media container.
	form := url.Values{}
	form.Set("image_url", post.Image.URL)
	form.Set("caption", post.Message)
	form.Set("access_token", i.token)

	var container struct {
		ID string `json:"id"`
	}
	if err := postGraphForm(ctx, i.client, i.baseURL, "/"+i.accountID+"/media", form, &container); err != nil {
		return "", err
	}

	// Step 2: publish it.
	publish := url.Values{}
	publish.Set("creation_id", container.ID)
	publish.Set("access_token", i.token)

	var out struct {
		ID string `json:"id"`
	}
	if err := postGraphForm(ctx, i.client, i.baseURL, "/"+i.accountID+"/media_publish", publish, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}
