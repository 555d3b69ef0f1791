package models

import (
	"errors"
	"time"

	"github.com/Athanas-ai/PrayerRequest/utils"

	"gorm.io/gorm"
)

// RefreshToken is an opaque, rotating credential backing admin sessions.
// The token value handed to the client is the row ID.
type RefreshToken struct {
	ID        string    `gorm:"primaryKey;type:char(51)" json:"id"`
	AdminID   int64     `gorm:"index" json:"admin_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// RevokedToken backs the jti blacklist consulted during access-token
// validation when Redis is not configured.
type RevokedToken struct {
	ID        string    `gorm:"primaryKey;type:char(64)"`
	RevokedAt time.Time `gorm:"column:revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

// IssueRefreshToken creates and stores a refresh token for an admin.
func IssueRefreshToken(db *gorm.DB, adminID int64, ttlDays int) (*RefreshToken, error) {
	id, err := utils.GenerateJTI(48)
	if err != nil {
		return nil, err
	}
	rt := &RefreshToken{
		ID:        "rt_" + id,
		AdminID:   adminID,
		ExpiresAt: time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
	if err := db.Create(rt).Error; err != nil {
		return nil, err
	}
	return rt, nil
}

// ValidateRefreshToken looks up a refresh token and rejects revoked or
// expired ones.
func ValidateRefreshToken(db *gorm.DB, token string) (*RefreshToken, error) {
	var rt RefreshToken
	if err := db.Where("id = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	if rt.Revoked {
		return nil, errors.New("refresh token revoked")
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, errors.New("refresh token expired")
	}
	return &rt, nil
}

// RotateRefreshToken revokes the old token and issues a replacement in one
// transaction, so a crash can't leave two live tokens.
func RotateRefreshToken(db *gorm.DB, old *RefreshToken, ttlDays int) (*RefreshToken, error) {
	var fresh *RefreshToken
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&RefreshToken{}).Where("id = ?", old.ID).
			UpdateColumn("revoked", true).Error; err != nil {
			return err
		}
		var err error
		fresh, err = IssueRefreshToken(tx, old.AdminID, ttlDays)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}
