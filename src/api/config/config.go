package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	MySQLDSN       string
	RedisURL       string
	JWTSecret      string
	Port           string
	PollInterval   int
	GoogleClientID string
	PortalURL      string

	Social SocialConfig
	SMTP   SMTPConfig
}

// SocialConfig holds per-channel credentials. A channel with empty
// credentials stays registered and reports a per-post configuration failure.
type SocialConfig struct {
	FacebookPageID     string
	FacebookToken      string
	InstagramAccountID string
	InstagramToken     string
	WhatsAppPhoneID    string
	WhatsAppToken      string
	WhatsAppRecipient  string
	TelegramBotToken   string
	TelegramChatID     int64
	DiscordBotToken    string
	DiscordChannelID   string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	UseTLS      bool
	UseSSL      bool
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getenvBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func Load() Config {
	pi, _ := strconv.Atoi(getenv("POLL_INTERVAL", "60"))
	smtpPort, _ := strconv.Atoi(getenv("SMTP_PORT", "587"))
	tgChat, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	return Config{
		MySQLDSN:       getenv("MYSQL_DSN", "lottery:lottery@tcp(localhost:3306)/lottery?parseTime=true"),
		RedisURL:       getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:      getenv("JWT_SECRET", ""),
		Port:           getenv("PORT", "8080"),
		PollInterval:   pi,
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		PortalURL:      os.Getenv("HELP_PORTAL_URL"),
		Social: SocialConfig{
			FacebookPageID:     os.Getenv("FACEBOOK_PAGE_ID"),
			FacebookToken:      os.Getenv("FACEBOOK_ACCESS_TOKEN"),
			InstagramAccountID: os.Getenv("INSTAGRAM_ACCOUNT_ID"),
			InstagramToken:     os.Getenv("INSTAGRAM_ACCESS_TOKEN"),
			WhatsAppPhoneID:    os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			WhatsAppToken:      os.Getenv("WHATSAPP_ACCESS_TOKEN"),
			WhatsAppRecipient:  os.Getenv("WHATSAPP_DEFAULT_RECIPIENT"),
			TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
			TelegramChatID:     tgChat,
			DiscordBotToken:    os.Getenv("DISCORD_BOT_TOKEN"),
			DiscordChannelID:   os.Getenv("DISCORD_CHANNEL_ID"),
		},
		SMTP: SMTPConfig{
			Host:        os.Getenv("SMTP_HOST"),
			Port:        smtpPort,
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			FromAddress: os.Getenv("SMTP_FROM_ADDRESS"),
			UseTLS:      getenvBool("SMTP_USE_TLS"),
			UseSSL:      getenvBool("SMTP_USE_SSL"),
		},
	}
}
