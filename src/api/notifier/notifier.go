// Package notifier reminds managers by email when a draw comes due so the
// winning numbers get entered promptly.
package notifier

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

// Sender delivers one reminder email.
type Sender interface {
	Send(subject string, recipients []string, body string) error
}

// Run polls for due draws until the context is cancelled.
func Run(ctx context.Context, db *gorm.DB, sender Sender, portalURL string, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := Sweep(db, sender, portalURL, time.Now().UTC()); err != nil {
				log.Printf("notifier: sweep failed: %v", err)
			}
		}
	}
}

// Sweep emails every active manager about each due, un-notified draw and
// marks the draw notified. Email failures are logged and skipped; a failed
// reminder is retried on the next sweep because the draw stays un-notified.
func Sweep(db *gorm.DB, sender Sender, portalURL string, now time.Time) error {
	var draws []types.Draw
	if err := db.Preload("Game").
		Where("draw_at <= ? AND notified = ?", now, false).
		Find(&draws).Error; err != nil {
		return err
	}
	if len(draws) == 0 {
		return nil
	}

	var managers []types.Manager
	if err := db.Where("is_active = ?", true).Find(&managers).Error; err != nil {
		return err
	}
	recipients := make([]string, 0, len(managers))
	for _, m := range managers {
		if m.Email != "" {
			recipients = append(recipients, m.Email)
		}
	}

	for _, draw := range draws {
		dateStr := draw.DrawAt.Format("2006-01-02")
		timeStr := draw.DrawAt.Format("15:04")
		subject := "Draw reminder: " + draw.Game.Name + " " + dateStr

		lines := []string{
			"Hi team,",
			"",
			"The draw for " + draw.Game.Name + " is scheduled on " + dateStr + " at " + timeStr + ".",
			"Please log in and enter the winning and machine numbers once available.",
		}
		if url := strings.TrimSpace(portalURL); url != "" {
			lines = append(lines,
				"",
				"Need help? Use the link below to open the manager portal:",
				url,
			)
		}
		lines = append(lines, "", "Thank you.")

		if len(recipients) > 0 {
			if err := sender.Send(subject, recipients, strings.Join(lines, "\n")); err != nil {
				log.Printf("notifier: reminder for draw %d failed: %v", draw.ID, err)
				continue
			}
		}

		if err := db.Model(&types.Draw{}).Where("id = ?", draw.ID).
			Update("notified", true).Error; err != nil {
			return err
		}
	}
	return nil
}
