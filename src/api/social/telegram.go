package social

import (
	"context"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram posts to a configured chat through the Bot API. The bot session
// is created lazily so a missing token only fails the channels that need it.
type Telegram struct {
	token  string
	chatID int64

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{token: token, chatID: chatID}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Post(ctx context.Context, post Post) (string, error) {
	if t.token == "" || t.chatID == 0 {
		return "", notConfigured("telegram bot token")
	}

	bot, err := t.session()
	if err != nil {
		return "", err
	}

	var sent tgbotapi.Message
	if post.Image != nil && post.Image.URL != "" {
		photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FileURL(post.Image.URL))
		photo.Caption = post.Message
		sent, err = bot.Send(photo)
	} else {
		sent, err = bot.Send(tgbotapi.NewMessage(t.chatID, post.Message))
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sent.MessageID), nil
}

func (t *Telegram) session() (*tgbotapi.BotAPI, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bot != nil {
		return t.bot, nil
	}
	bot, err := tgbotapi.NewBotAPI(t.token)
	if err != nil {
		return nil, err
	}
	t.bot = bot
	return bot, nil
}
