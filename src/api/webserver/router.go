package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/config"
	"github.com/rand-lottery/backoffice/src/api/social"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client, channels *social.Registry) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://portal.randlottery.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.JWTSecret)
	authH := NewAuth(db, cfg)
	gamesH := NewGames(db)
	drawsH := NewDraws(db)
	resultsH := NewResults(db, rdb)
	socialH := NewSocial(db, channels)

	// Brute-force guard on credential endpoints.
	limiter := NewRateLimiter(10, time.Minute)

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(RateLimitMiddleware(limiter))
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/google", authH.Google)

		v1.GET("/games", gamesH.List)
		v1.POST("/games", gamesH.Create)
		v1.GET("/draws", drawsH.List)
		v1.POST("/draws", drawsH.Create)

		v1.GET("/results", resultsH.List)
		v1.POST("/results", OptionalJWT(secret), resultsH.Create)

		secured := v1.Group("")
		secured.Use(JWTMiddleware(secret))
		secured.PATCH("/results/:id/verify", resultsH.Verify)
		secured.POST("/social/post", socialH.Post)
	}
}
