package notifier

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

type recordingSender struct {
	subjects   []string
	recipients [][]string
	err        error
}

func (r *recordingSender) Send(subject string, recipients []string, body string) error {
	if r.err != nil {
		return r.err
	}
	r.subjects = append(r.subjects, subject)
	r.recipients = append(r.recipients, recipients)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&types.Game{}, &types.Draw{}, &types.Manager{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSweep(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*gorm.DB, types.Draw) {
		db := newTestDB(t)
		game := types.Game{Name: "MID-WEEK"}
		if err := db.Create(&game).Error; err != nil {
			t.Fatalf("seed game: %v", err)
		}
		draw := types.Draw{GameID: game.ID, DrawAt: now.Add(-time.Hour)}
		if err := db.Create(&draw).Error; err != nil {
			t.Fatalf("seed draw: %v", err)
		}
		managers := []types.Manager{
			{Email: "a@randlottery.com", PasswordHash: "x", IsActive: true},
			{Email: "b@randlottery.com", PasswordHash: "x", IsActive: true},
			{Email: "gone@randlottery.com", PasswordHash: "x", IsActive: false},
		}
		if err := db.Create(&managers).Error; err != nil {
			t.Fatalf("seed managers: %v", err)
		}
		return db, draw
	}

	t.Run("emails active managers and marks the draw", func(t *testing.T) {
		db, draw := setup(t)
		sender := &recordingSender{}

		if err := Sweep(db, sender, "https://portal.randlottery.com", now); err != nil {
			t.Fatalf("sweep: %v", err)
		}

		if len(sender.subjects) != 1 {
			t.Fatalf("emails sent = %d, want 1", len(sender.subjects))
		}
		if sender.subjects[0] != "Draw reminder: MID-WEEK 2025-03-14" {
			t.Errorf("subject = %q", sender.subjects[0])
		}
		if len(sender.recipients[0]) != 2 {
			t.Errorf("recipients = %v, want the 2 active managers", sender.recipients[0])
		}

		var reread types.Draw
		if err := db.First(&reread, draw.ID).Error; err != nil {
			t.Fatalf("reread: %v", err)
		}
		if !reread.Notified {
			t.Errorf("draw must be marked notified")
		}
	})

	t.Run("future draws are left alone", func(t *testing.T) {
		db, _ := setup(t)
		future := types.Draw{GameID: 1, DrawAt: now.Add(24 * time.Hour)}
		if err := db.Create(&future).Error; err != nil {
			t.Fatalf("seed future draw: %v", err)
		}
		sender := &recordingSender{}

		if err := Sweep(db, sender, "", now); err != nil {
			t.Fatalf("sweep: %v", err)
		}
		var reread types.Draw
		db.First(&reread, future.ID)
		if reread.Notified {
			t.Errorf("future draw must not be notified")
		}
	})

	t.Run("send failure leaves the draw for the next sweep", func(t *testing.T) {
		db, draw := setup(t)
		sender := &recordingSender{err: errors.New("smtp down")}

		if err := Sweep(db, sender, "", now); err != nil {
			t.Fatalf("sweep: %v", err)
		}
		var reread types.Draw
		db.First(&reread, draw.ID)
		if reread.Notified {
			t.Errorf("draw must stay un-notified after a failed send")
		}
	})
}
