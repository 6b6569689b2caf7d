package social

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// WhatsApp sends via the Cloud API. Images arrive either as a public URL or
// as base64 data, which is uploaded to the media endpoint first.
type WhatsApp struct {
	phoneID          string
	token            string
	defaultRecipient string
	baseURL          string
	client           *http.Client
}

func NewWhatsApp(phoneID, token, defaultRecipient string) *WhatsApp {
	return &WhatsApp{
		phoneID:          phoneID,
		token:            token,
		defaultRecipient: defaultRecipient,
		baseURL:          graphBaseURL,
		client:           newGraphHTTPClient(),
	}
}

func (w *WhatsApp) Name() string { return "whatsapp" }

// Post sends to the post's recipient, falling back to the configured
// default and finally to the status broadcast list.
func (w *WhatsApp) Post(ctx context.Context, post Post) (string, error) {
	if w.token == "" || w.phoneID == "" {
		return "", notConfigured("whatsapp access token")
	}

	to := post.Recipient
	if to == "" {
		to = w.defaultRecipient
	}
	if to == "" {
		to = "status@broadcast"
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
	}

	image := post.Image
	switch {
	case image != nil && image.Base64 != "":
		mediaID, err := w.uploadMedia(ctx, image.Base64)
		if err != nil {
			return "", err
		}
		payload["type"] = "image"
		payload["image"] = map[string]string{"id": mediaID, "caption": post.Message}
	case image != nil && image.URL != "":
		payload["type"] = "image"
		payload["image"] = map[string]string{"link": image.URL, "caption": post.Message}
	default:
		payload["type"] = "text"
		payload["text"] = map[string]string{"body": post.Message}
	}

	var out struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := w.postJSON(ctx, "/"+w.phoneID+"/messages", payload, &out); err != nil {
		return "", err
	}
	if len(out.Messages) == 0 {
		return "", nil
	}
	return out.Messages[0].ID, nil
}

// uploadMedia pushes a base64 image (raw payload or data URL) to the media
// endpoint and returns the assigned media id.
func (w *WhatsApp) uploadMedia(ctx context.Context, data string) (string, error) {
	mimeType := "image/png"
	payload := data
	if strings.HasPrefix(data, "data:") {
		header, rest, ok := strings.Cut(data, ",")
		if !ok {
			return "", fmt.Errorf("invalid data url")
		}
		payload = rest
		if mt := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64"); mt != "" {
			mimeType = mt
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	ext := ".png"
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("messaging_product", "whatsapp"); err != nil {
		return "", err
	}
	part, err := mw.CreateFormFile("file", "result"+ext)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(raw); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/"+w.phoneID+"/media", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var ge graphError
	if err := json.Unmarshal(respBody, &ge); err == nil && ge.Error != nil {
		return "", fmt.Errorf("graph api: %s", ge.Error.Message)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (w *WhatsApp) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var ge graphError
	if err := json.Unmarshal(respBody, &ge); err == nil && ge.Error != nil {
		return fmt.Errorf("graph api: %s", ge.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("graph api: unexpected status %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(respBody, out)
	}
	return nil
}
