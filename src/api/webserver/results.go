package webserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/data"
	"github.com/rand-lottery/backoffice/src/api/results"
	"github.com/rand-lottery/backoffice/src/api/types"
)

type Results struct {
	svc       *results.Service
	rdb       *redis.Client
	sanitizer *bluemonday.Policy
}

func NewResults(db *gorm.DB, rdb *redis.Client) Results {
	return Results{
		svc: results.NewService(db),
		rdb: rdb,
		// Share copy and notes are operator-entered free text headed for
		// public posting; strip all markup.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h Results) List(c *gin.Context) {
	out, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Results) Create(c *gin.Context) {
	var req struct {
		DrawID         uint        `json:"draw_id"         binding:"required"`
		WinningNumbers FlexStrings `json:"winning_numbers" binding:"required"`
		MachineNumbers FlexStrings `json:"machine_numbers"`
		ShareCopy      string      `json:"share_copy"      binding:"max=10000"`
		ShareHashtags  FlexStrings `json:"share_hashtags"`
		ShareTargets   FlexStrings `json:"share_targets"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	submit := results.SubmitRequest{
		DrawID:         req.DrawID,
		WinningNumbers: req.WinningNumbers,
		MachineNumbers: req.MachineNumbers,
		ShareCopy:      h.sanitizer.Sanitize(req.ShareCopy),
		ShareHashtags:  req.ShareHashtags,
		ShareTargets:   req.ShareTargets,
	}
	if id, ok := managerID(c); ok {
		submit.SubmittedByID = &id
	}

	result, err := h.svc.Submit(submit)
	if err != nil {
		respondResultError(c, err, "draw not found")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h Results) Verify(c *gin.Context) {
	resultID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || resultID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid result id"})
		return
	}

	var req struct {
		Decision string  `json:"decision" binding:"required,max=20"`
		Note     *string `json:"note"     binding:"omitempty,max=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if req.Note != nil {
		clean := h.sanitizer.Sanitize(*req.Note)
		req.Note = &clean
	}

	deciderID, ok := managerID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	result, err := h.svc.Verify(uint(resultID), req.Decision, req.Note, deciderID)
	if err != nil {
		respondResultError(c, err, "result not found")
		return
	}

	if result.Status == types.StatusApproved && h.rdb != nil {
		if err := data.PublishResultEvent(context.Background(), h.rdb, map[string]interface{}{
			"result_id":  result.ID,
			"draw_id":    result.DrawID,
			"game":       result.Draw.Game.Name,
			"status":     result.Status,
			"decided_by": deciderID,
		}); err != nil {
			log.Printf("results: publish approval event: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}

func respondResultError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, results.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"err": notFoundMsg})
	case results.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
	}
}
