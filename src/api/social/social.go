// Package social dispatches approved lottery results to external
// social/messaging channels and collects one outcome per channel.
package social

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rand-lottery/backoffice/src/api/config"
)

// ErrNotConfigured marks a channel whose credentials are absent. It is
// always converted to a per-channel failure outcome, never propagated.
var ErrNotConfigured = errors.New("channel not configured")

func notConfigured(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotConfigured)
}

// Image is an optional attachment for a post. Either a public URL or a
// base64 payload (raw or data URL); channels pick what they support.
type Image struct {
	URL    string
	Base64 string
}

// Post carries one formatted announcement. Channels use the fields they
// understand: Recipient only applies to direct-message channels.
type Post struct {
	Message   string
	Image     *Image
	Recipient string
}

// Poster is one external posting capability.
type Poster interface {
	Name() string
	Post(ctx context.Context, post Post) (postID string, err error)
}

// PostOutcome is the per-channel report of one fan-out attempt.
type PostOutcome struct {
	Platform string  `json:"platform"`
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	PostID   *string `json:"post_id,omitempty"`
}

// Registry maps channel names to posters. Built once at startup from the
// immutable config; unrecognized names are reported per-post, not at build.
type Registry struct {
	posters map[string]Poster
}

func NewRegistry(cfg config.SocialConfig) *Registry {
	r := &Registry{posters: make(map[string]Poster)}
	r.Register(NewFacebook(cfg.FacebookPageID, cfg.FacebookToken))
	r.Register(NewInstagram(cfg.InstagramAccountID, cfg.InstagramToken))
	r.Register(NewWhatsApp(cfg.WhatsAppPhoneID, cfg.WhatsAppToken, cfg.WhatsAppRecipient))
	r.Register(NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID))
	r.Register(NewDiscord(cfg.DiscordBotToken, cfg.DiscordChannelID))
	r.Register(NewTwitter())
	return r
}

// NewEmptyRegistry returns a registry with no channels registered.
func NewEmptyRegistry() *Registry {
	return &Registry{posters: make(map[string]Poster)}
}

func (r *Registry) Register(p Poster) {
	r.posters[p.Name()] = p
}

// Fanout attempts each requested platform exactly once, in the caller's
// order. A channel failure is converted to a success:false outcome and
// never aborts the remaining channels. Unknown platform names yield a
// failure outcome without any network call.
func (r *Registry) Fanout(ctx context.Context, platforms []string, post Post) []PostOutcome {
	outcomes := make([]PostOutcome, 0, len(platforms))
	for _, platform := range platforms {
		poster, ok := r.posters[platform]
		if !ok {
			outcomes = append(outcomes, PostOutcome{
				Platform: platform,
				Success:  false,
				Message:  fmt.Sprintf("Platform '%s' not supported", platform),
			})
			continue
		}

		postID, err := poster.Post(ctx, post)
		if err != nil {
			log.Printf("social: %s post failed: %v", platform, err)
			outcomes = append(outcomes, PostOutcome{
				Platform: platform,
				Success:  false,
				Message:  err.Error(),
			})
			continue
		}

		outcome := PostOutcome{
			Platform: platform,
			Success:  true,
			Message:  "Posted successfully",
		}
		if postID != "" {
			outcome.PostID = &postID
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
