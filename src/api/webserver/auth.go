package webserver

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/config"
	"github.com/rand-lottery/backoffice/src/api/google"
	"github.com/rand-lottery/backoffice/src/api/types"
)

type Auth struct {
	db        *gorm.DB
	jwtSecret []byte
	google    *google.Client
	googleON  bool
}

func NewAuth(db *gorm.DB, cfg config.Config) Auth {
	a := Auth{db: db, jwtSecret: []byte(cfg.JWTSecret)}
	if cfg.GoogleClientID != "" {
		a.google = google.NewClient(cfg.GoogleClientID, "")
		a.googleON = true
	}
	return a
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (a Auth) Signup(c *gin.Context) {
	var req struct {
		Email    string  `json:"email"    binding:"required,email,max=255"`
		Password string  `json:"password" binding:"required,min=8,max=72"`
		Phone    *string `json:"phone"    binding:"omitempty,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	var existing types.Manager
	if err := a.db.First(&existing, "email = ?", req.Email).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "password invalid"})
		return
	}

	manager := types.Manager{Email: req.Email, PasswordHash: string(hash), Phone: req.Phone, IsActive: true}
	if err := a.db.Create(&manager).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	a.respondToken(c, manager)
}

func (a Auth) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	var manager types.Manager
	if err := a.db.First(&manager, "email = ?", req.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("auth: failed login for %s from %s", req.Email, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"err": "invalid credentials"})
		return
	}

	a.respondToken(c, manager)
}

// Google exchanges a verified Google ID token for a manager session,
// provisioning the account on first login.
func (a Auth) Google(c *gin.Context) {
	if !a.googleON {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "google login not configured"})
		return
	}

	var req struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	info, err := a.google.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Printf("auth: google token validation failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"err": "invalid google token"})
		return
	}
	if info.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"err": "google account missing email"})
		return
	}
	if !info.Verified() {
		c.JSON(http.StatusForbidden, gin.H{"err": "google email not verified"})
		return
	}

	var manager types.Manager
	err = a.db.First(&manager, "email = ?", info.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Federated accounts never use this password; it only fills the column.
		secret, err := randomSecret()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to provision account"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": "failed to provision account"})
			return
		}
		manager = types.Manager{Email: info.Email, PasswordHash: string(hash), IsActive: true}
		if err := a.db.Create(&manager).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	a.respondToken(c, manager)
}

func (a Auth) respondToken(c *gin.Context, manager types.Manager) {
	token, err := issueJWT(manager.ID, manager.Email, a.jwtSecret)
	if err != nil {
		log.Printf("auth: failed to issue JWT for %s: %v", manager.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
