package results

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/types"
)

// DefaultTargets is the distribution list applied when a submission names none.
var DefaultTargets = []string{"facebook", "instagram", "twitter", "whatsapp", "telegram"}

// DefaultHashtag is applied when a submission carries no hashtags.
const DefaultHashtag = "RandLottery"

// Service owns the result lifecycle: submission with validation and
// normalization, and the approval state machine. Every write runs as a
// single transaction so partial state is never observable.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type SubmitRequest struct {
	DrawID         uint
	WinningNumbers []string
	MachineNumbers []string
	ShareCopy      string
	ShareHashtags  []string
	ShareTargets   []string
	SubmittedByID  *uint
}

// Submit validates and normalizes a raw number submission and persists a
// Result in pending_review. Validation order is fixed: draw existence,
// non-empty winning set, digit-only entries, duplicate-free union.
func (s *Service) Submit(req SubmitRequest) (*types.Result, error) {
	var draw types.Draw
	if err := s.db.Preload("Game").First(&draw, req.DrawID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	winning := trimNonEmpty(req.WinningNumbers)
	machine := trimNonEmpty(req.MachineNumbers)

	if len(winning) == 0 {
		return nil, invalid("at least one winning number is required")
	}
	if !allDigits(winning) {
		return nil, invalid("winning numbers must be digits")
	}
	if !allDigits(machine) {
		return nil, invalid("machine numbers must be digits")
	}
	if hasDuplicates(append(append([]string{}, winning...), machine...)) {
		return nil, invalid("each winning and machine number must be unique across both lists")
	}

	shareCopy := strings.TrimSpace(req.ShareCopy)
	if shareCopy == "" {
		shareCopy = buildShareCopy(draw.Game.Name, draw.DrawAt, winning, machine)
	}

	result := types.Result{
		DrawID:         draw.ID,
		WinningNumbers: strings.Join(winning, ","),
		MachineNumbers: joined(machine),
		ShareCopy:      shareCopy,
		ShareHashtags:  joinedOrDefault(req.ShareHashtags, DefaultHashtag),
		ShareTargets:   joinedOrDefault(req.ShareTargets, strings.Join(DefaultTargets, ",")),
		Status:         types.StatusPendingReview,
		SubmittedByID:  req.SubmittedByID,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return s.Get(result.ID)
}

// Verify records one manager's decision against a result. The approval row
// is appended unconditionally; the result's status/verified/verified_at are
// overwritten from this latest decision only. History never loses entries,
// repeat decisions from the same manager included.
func (s *Service) Verify(resultID uint, decision string, note *string, managerID uint) (*types.Result, error) {
	var result types.Result
	if err := s.db.First(&result, resultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	decision = strings.ToLower(strings.TrimSpace(decision))
	if decision != "approved" && decision != "rejected" {
		return nil, invalid("decision must be 'approved' or 'rejected'")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		approval := types.ResultApproval{
			ResultID:  result.ID,
			ManagerID: managerID,
			Decision:  decision,
			Note:      note,
		}
		if err := tx.Create(&approval).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if decision == "approved" {
			now := time.Now().UTC()
			updates["verified"] = true
			updates["status"] = types.StatusApproved
			updates["verified_at"] = &now
		} else {
			updates["verified"] = false
			updates["status"] = types.StatusChangesRequested
			updates["verified_at"] = nil
		}
		return tx.Model(&types.Result{}).Where("id = ?", result.ID).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(result.ID)
}

// Get loads a result with its draw, game and approval history.
func (s *Service) Get(id uint) (*types.Result, error) {
	var result types.Result
	err := s.db.Preload("Draw.Game").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_approvals.created_at asc, result_approvals.id asc")
		}).
		First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns all results, newest first.
func (s *Service) List() ([]types.Result, error) {
	var out []types.Result
	err := s.db.Preload("Draw.Game").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_approvals.created_at asc, result_approvals.id asc")
		}).
		Order("created_at desc, id desc").
		Find(&out).Error
	return out, err
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func allDigits(values []string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
		for _, r := range v {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

func hasDuplicates(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// joined canonicalizes a collection to a comma-joined string; an empty
// collection normalizes to no value rather than an empty string.
func joined(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	s := strings.Join(values, ",")
	return &s
}

func joinedOrDefault(values []string, def string) *string {
	if v := joined(trimNonEmpty(values)); v != nil {
		return v
	}
	return &def
}

// buildShareCopy renders the internal share copy applied when a submission
// arrives without one.
func buildShareCopy(gameName string, drawAt time.Time, winning, machine []string) string {
	if gameName == "" {
		gameName = "Rand Lottery"
	}
	lines := []string{
		"Rand Lottery " + gameName + " Results",
		"Draw: " + drawAt.Format("2006-01-02") + " " + drawAt.Format("15:04"),
		"Winning Numbers: " + strings.Join(winning, ", "),
	}
	if len(machine) > 0 {
		lines = append(lines, "Machine Numbers: "+strings.Join(machine, ", "))
	}
	return strings.Join(lines, "\n")
}
