package social

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Discord posts announcements to a configured channel. Only REST calls are
// used; no gateway connection is opened.
type Discord struct {
	token     string
	channelID string

	mu      sync.Mutex
	session *discordgo.Session
}

func NewDiscord(token, channelID string) *Discord {
	return &Discord{token: token, channelID: channelID}
}

func (d *Discord) Name() string { return "discord" }

func (d *Discord) Post(ctx context.Context, post Post) (string, error) {
	if d.token == "" || d.channelID == "" {
		return "", notConfigured("discord bot token")
	}

	s, err := d.rest()
	if err != nil {
		return "", err
	}

	send := &discordgo.MessageSend{Content: post.Message}
	if post.Image != nil && post.Image.URL != "" {
		send.Embeds = []*discordgo.MessageEmbed{
			{Image: &discordgo.MessageEmbedImage{URL: post.Image.URL}},
		}
	}

	msg, err := s.ChannelMessageSendComplex(d.channelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (d *Discord) rest() (*discordgo.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		return d.session, nil
	}
	s, err := discordgo.New("Bot " + d.token)
	if err != nil {
		return nil, err
	}
	d.session = s
	return s, nil
}
