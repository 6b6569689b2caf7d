package webserver

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/config"
	"github.com/rand-lottery/backoffice/src/api/social"
)

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, channels *social.Registry) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, db, rdb, channels)
	return g
}
