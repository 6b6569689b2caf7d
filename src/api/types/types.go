package types

import "time"

// Result lifecycle states.
const (
	StatusPendingReview    = "pending_review"
	StatusApproved         = "approved"
	StatusChangesRequested = "changes_requested"
)

// Games
type Game struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:128;unique;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// Draws are scheduled drawing events for a game
type Draw struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"index;not null" json:"game_id"`
	DrawAt    time.Time `gorm:"index;not null" json:"draw_at"`
	Notified  bool      `gorm:"default:false" json:"notified"`
	Game      Game      `gorm:"foreignKey:GameID" json:"game"`
	CreatedAt time.Time `json:"created_at"`
}

// Results hold the submitted numbers and review state for one draw.
// Number collections are stored as comma-joined strings, order preserving.
type Result struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	DrawID         uint             `gorm:"index;not null" json:"draw_id"`
	WinningNumbers string           `gorm:"size:255;not null" json:"winning_numbers"`
	MachineNumbers *string          `gorm:"size:255" json:"machine_numbers"`
	ShareCopy      string           `gorm:"type:text" json:"share_copy"`
	ShareHashtags  *string          `gorm:"type:text" json:"share_hashtags"`
	ShareTargets   *string          `gorm:"type:text" json:"share_targets"`
	Status         string           `gorm:"size:20;default:pending_review;index" json:"status"`
	Verified       bool             `gorm:"default:false" json:"verified"`
	VerifiedAt     *time.Time       `json:"verified_at"`
	SubmittedByID  *uint            `json:"submitted_by_id"`
	Draw           Draw             `gorm:"foreignKey:DrawID;constraint:OnDelete:CASCADE" json:"draw"`
	SubmittedBy    *Manager         `gorm:"foreignKey:SubmittedByID;constraint:OnDelete:SET NULL" json:"-"`
	Approvals      []ResultApproval `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE" json:"approvals"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"-"`
}

// ResultApproval is an append-only audit record of one manager's decision.
// Rows are never updated after creation.
type ResultApproval struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ResultID  uint      `gorm:"index;not null" json:"result_id"`
	ManagerID uint      `gorm:"index;not null" json:"manager_id"`
	Decision  string    `gorm:"size:20;not null" json:"decision"`
	Note      *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Managers
type Manager struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        *string   `gorm:"size:50" json:"phone,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}
