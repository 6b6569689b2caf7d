package webserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

type Draws struct {
	db *gorm.DB
}

func NewDraws(db *gorm.DB) Draws {
	return Draws{db: db}
}

func (d Draws) List(c *gin.Context) {
	var draws []types.Draw
	if err := d.db.Preload("Game").Order("draw_at desc").Find(&draws).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draws)
}

func (d Draws) Create(c *gin.Context) {
	var req struct {
		GameID uint      `json:"game_id" binding:"required"`
		DrawAt time.Time `json:"draw_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	var game types.Game
	if err := d.db.First(&game, req.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"err": "game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	draw := types.Draw{GameID: game.ID, DrawAt: req.DrawAt}
	if err := d.db.Create(&draw).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	draw.Game = game
	c.JSON(http.StatusCreated, draw)
}
