package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

type Games struct {
	db *gorm.DB
}

func NewGames(db *gorm.DB) Games {
	return Games{db: db}
}

func (g Games) List(c *gin.Context) {
	var games []types.Game
	if err := g.db.Order("name asc").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, games)
}

func (g Games) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name"        binding:"required,max=128"`
		Description string `json:"description" binding:"max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	game := types.Game{Name: strings.TrimSpace(req.Name), Description: req.Description}

	var existing types.Game
	if err := g.db.First(&existing, "name = ?", game.Name).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "game already exists"})
		return
	}
	if err := g.db.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, game)
}
