package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rand-lottery/backoffice/src/api/config"
	"github.com/rand-lottery/backoffice/src/api/data"
	"github.com/rand-lottery/backoffice/src/api/mailer"
	"github.com/rand-lottery/backoffice/src/api/notifier"
	"github.com/rand-lottery/backoffice/src/api/social"
	"github.com/rand-lottery/backoffice/src/api/webserver"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded environment from .env")
	}

	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := data.SeedGames(db); err != nil {
		log.Printf("seed games: %v", err)
	}
	if err := data.LoadSettings(db); err != nil {
		log.Printf("failed to load settings: %v", err)
	}
	// Operational settings stored in the database win over the environment.
	if url := data.GetSetting("help_portal_url"); url != "" {
		cfg.PortalURL = url
	}

	rdb := data.MustRedis(cfg.RedisURL)
	channels := social.NewRegistry(cfg.Social)

	ctx, cancel := context.WithCancel(context.Background())

	// Remind managers when a draw comes due.
	go notifier.Run(ctx, db, mailer.New(cfg.SMTP), cfg.PortalURL, time.Duration(cfg.PollInterval)*time.Second)

	router := webserver.New(cfg, db, rdb, channels)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("lottery back office API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	cancel()
	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
