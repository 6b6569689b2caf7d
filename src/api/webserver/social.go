package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/results"
	"github.com/rand-lottery/backoffice/src/api/social"
)

type Social struct {
	svc      *results.Service
	channels *social.Registry
}

func NewSocial(db *gorm.DB, channels *social.Registry) Social {
	return Social{svc: results.NewService(db), channels: channels}
}

// Post fans one result out to the requested platforms. Partial delivery is
// an expected operating condition: the response is always 200 with one
// outcome per requested platform, in request order.
func (s Social) Post(c *gin.Context) {
	var req struct {
		ResultID          uint     `json:"result_id"          binding:"required"`
		Platforms         []string `json:"platforms"          binding:"required,min=1,max=16"`
		ImageURL          string   `json:"image_url"          binding:"omitempty,url"`
		ImageBase64       string   `json:"image_base64"`
		WhatsAppRecipient string   `json:"whatsapp_recipient" binding:"omitempty,max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	result, err := s.svc.Get(req.ResultID)
	if err != nil {
		if errors.Is(err, results.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"err": "result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	machine := ""
	if result.MachineNumbers != nil {
		machine = *result.MachineNumbers
	}
	message := social.FormatResultMessage(
		result.Draw.Game.Name,
		result.Draw.DrawAt.Format("02 Jan 2006"),
		result.Draw.DrawAt.Format("03:04 PM"),
		result.WinningNumbers,
		machine,
	)

	post := social.Post{Message: message, Recipient: req.WhatsAppRecipient}
	if req.ImageURL != "" || req.ImageBase64 != "" {
		post.Image = &social.Image{URL: req.ImageURL, Base64: req.ImageBase64}
	}

	outcomes := s.channels.Fanout(c.Request.Context(), req.Platforms, post)
	c.JSON(http.StatusOK, outcomes)
}
