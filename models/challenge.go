package models

import (
	"errors"
	"math"
	"time"

	"github.com/Athanas-ai/PrayerRequest/utils"

	"gorm.io/gorm"
)

// Challenge is the storage row for a communal prayer goal. All fields are
// constrained non-null at the store; no implicit defaulting applies on the
// way out.
type Challenge struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(150);not null" json:"title"`
	PrayerType   string    `gorm:"type:varchar(50);not null" json:"prayer_type"`
	TotalTarget  int64     `gorm:"not null" json:"total_target"`
	CurrentCount int64     `gorm:"not null;default:0" json:"current_count"`
	IsActive     bool      `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type ChallengeView struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	PrayerType   string    `json:"prayerType"`
	TotalTarget  int64     `json:"totalTarget"`
	CurrentCount int64     `json:"currentCount"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c *Challenge) View() *ChallengeView {
	if c == nil {
		return nil
	}
	return &ChallengeView{
		ID:           c.ID,
		Title:        c.Title,
		PrayerType:   c.PrayerType,
		TotalTarget:  c.TotalTarget,
		CurrentCount: c.CurrentCount,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func ChallengeViews(rows []Challenge) []*ChallengeView {
	out := make([]*ChallengeView, 0, len(rows))
	for idx := range rows {
		out = append(out, rows[idx].View())
	}
	return out
}

// PercentComplete is the saturating progress view: min(100,
// round(current/total*100)). The stored counter itself may exceed the
// target.
func (v *ChallengeView) PercentComplete() int {
	if v.TotalTarget <= 0 {
		return 0
	}
	p := int(math.Round(float64(v.CurrentCount) / float64(v.TotalTarget) * 100))
	if p > 100 {
		p = 100
	}
	return p
}

// Completed reports whether the goal has been reached.
func (v *ChallengeView) Completed() bool {
	return v.CurrentCount >= v.TotalTarget
}

type CreateChallengeRequest struct {
	Title       string `json:"title" validate:"required" errmsg:"Challenge title is required"`
	PrayerType  string `json:"prayerType" validate:"required" errmsg:"Prayer type is required"`
	TotalTarget int64  `json:"totalTarget" validate:"min=1" errmsg:"Target must be at least 1"`
}

// UpdateChallengeRequest carries a partial update; nil fields are left
// untouched.
type UpdateChallengeRequest struct {
	Title       *string `json:"title,omitempty"`
	PrayerType  *string `json:"prayerType,omitempty"`
	TotalTarget *int64  `json:"totalTarget,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *UpdateChallengeRequest) validate() error {
	fields := map[string]string{}
	if r.Title != nil && *r.Title == "" {
		fields["title"] = "Challenge title is required"
	}
	if r.PrayerType != nil && *r.PrayerType == "" {
		fields["prayerType"] = "Prayer type is required"
	}
	if r.TotalTarget != nil && *r.TotalTarget < 1 {
		fields["totalTarget"] = "Target must be at least 1"
	}
	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}

// GetActiveChallenge returns the active challenge or nil when none exists.
// Should legacy data hold several active rows, the most recently created
// one wins.
func GetActiveChallenge(db *gorm.DB) (*ChallengeView, error) {
	var row Challenge
	err := db.Where("is_active = ?", true).Order("created_at DESC, id DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStoreErr("getActiveChallenge", err)
	}
	return row.View(), nil
}

// ListChallenges returns every challenge, newest first.
func ListChallenges(db *gorm.DB) ([]*ChallengeView, error) {
	var rows []Challenge
	if err := db.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, wrapStoreErr("listChallenges", err)
	}
	return ChallengeViews(rows), nil
}

// CreateChallenge inserts a new challenge with a zero counter and makes it
// the single active one: any previously active challenge is deactivated in
// the same transaction.
func CreateChallenge(db *gorm.DB, req CreateChallengeRequest) (*ChallengeView, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}
	row := Challenge{
		Title:       req.Title,
		PrayerType:  req.PrayerType,
		TotalTarget: req.TotalTarget,
		IsActive:    true,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Challenge{}).Where("is_active = ?", true).
			UpdateColumn("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, wrapStoreErr("createChallenge", err)
	}
	return row.View(), nil
}

// UpdateChallenge applies the provided fields to one challenge. Activating
// a challenge deactivates every other one in the same transaction.
func UpdateChallenge(db *gorm.DB, id int64, req UpdateChallengeRequest) (*ChallengeView, error) {
	const op = "updateChallenge"
	if err := req.validate(); err != nil {
		return nil, err
	}

	var row Challenge
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}

	cols := map[string]interface{}{}
	if req.Title != nil {
		cols["title"] = *req.Title
	}
	if req.PrayerType != nil {
		cols["prayer_type"] = *req.PrayerType
	}
	if req.TotalTarget != nil {
		cols["total_target"] = *req.TotalTarget
	}
	if req.IsActive != nil {
		cols["is_active"] = *req.IsActive
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.IsActive != nil && *req.IsActive {
			if err := tx.Model(&Challenge{}).Where("is_active = ? AND id <> ?", true, id).
				UpdateColumn("is_active", false).Error; err != nil {
				return err
			}
		}
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&Challenge{}).Where("id = ?", id).Updates(cols).Error
	})
	if err != nil {
		return nil, wrapStoreErr(op, err)
	}

	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	return row.View(), nil
}

// DeleteChallenge removes one challenge. Deleting an identifier absent from
// the store fails NotFound.
func DeleteChallenge(db *gorm.DB, id int64) error {
	res := db.Delete(&Challenge{}, id)
	if res.Error != nil {
		return wrapStoreErr("deleteChallenge", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapStoreErr("deleteChallenge", gorm.ErrRecordNotFound)
	}
	return nil
}

// IncrementChallengeProgress adds amount (callers default it to 1) to the
// progress counter as a single store-side atomic write, then returns the
// store-confirmed row. The counter is never capped at the target.
func IncrementChallengeProgress(db *gorm.DB, id int64, amount int64) (*ChallengeView, error) {
	const op = "incrementChallengeProgress"
	if amount <= 0 {
		return nil, utils.NewValidationError("amount", "Amount must be a positive integer")
	}

	var row Challenge
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.Model(&Challenge{}).Where("id = ?", id).
		UpdateColumn("current_count", gorm.Expr("current_count + ?", amount)).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	return row.View(), nil
}
