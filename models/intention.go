package models

import (
	"time"

	"github.com/Athanas-ai/PrayerRequest/utils"

	"gorm.io/gorm"
)

// Intention is the storage row for a submitted prayer request. Optional
// columns are nullable; the tally columns are constrained NOT NULL at the
// schema layer so a NULL count can never surface.
type Intention struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Name           *string   `gorm:"type:varchar(100)" json:"name,omitempty"`
	PrayerType     *string   `gorm:"type:varchar(50)" json:"prayer_type,omitempty"`
	HailMaryCount  int64     `gorm:"not null;default:0" json:"hail_mary_count"`
	OurFatherCount int64     `gorm:"not null;default:0" json:"our_father_count"`
	RosaryCount    int64     `gorm:"not null;default:0" json:"rosary_count"`
	IsPrinted      bool      `gorm:"not null;default:false" json:"is_printed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Intention) TableName() string {
	return "intentions"
}

// IntentionView is the camelCase shape handed to API callers. A nil Name or
// PrayerType means "not provided" and is omitted from JSON; the empty string
// never appears.
type IntentionView struct {
	ID             int64     `json:"id"`
	Content        string    `json:"content"`
	Name           *string   `json:"name,omitempty"`
	PrayerType     *string   `json:"prayerType,omitempty"`
	HailMaryCount  int64     `json:"hailMaryCount"`
	OurFatherCount int64     `json:"ourFatherCount"`
	RosaryCount    int64     `json:"rosaryCount"`
	IsPrinted      bool      `json:"isPrinted"`
	CreatedAt      time.Time `json:"createdAt"`
}

// View converts the storage row to its API shape. A nil row yields a nil
// view ("no such record"), not an error. Purely mechanical: no validation.
func (i *Intention) View() *IntentionView {
	if i == nil {
		return nil
	}
	return &IntentionView{
		ID:             i.ID,
		Content:        i.Content,
		Name:           presentString(i.Name),
		PrayerType:     presentString(i.PrayerType),
		HailMaryCount:  i.HailMaryCount,
		OurFatherCount: i.OurFatherCount,
		RosaryCount:    i.RosaryCount,
		IsPrinted:      i.IsPrinted,
		CreatedAt:      i.CreatedAt,
	}
}

// IntentionViews converts rows element-wise, preserving order.
func IntentionViews(rows []Intention) []*IntentionView {
	out := make([]*IntentionView, 0, len(rows))
	for idx := range rows {
		out = append(out, rows[idx].View())
	}
	return out
}

// presentString normalizes NULL and empty-string columns to the absent
// state so the presentation layer has one unambiguous sentinel.
func presentString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// optString maps an empty request field to a NULL column.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// PrayerCategory selects which tally an increment applies to.
type PrayerCategory string

const (
	CategoryHailMary  PrayerCategory = "hailMary"
	CategoryOurFather PrayerCategory = "ourFather"
	CategoryRosary    PrayerCategory = "rosary"
)

func (c PrayerCategory) Valid() bool {
	switch c {
	case CategoryHailMary, CategoryOurFather, CategoryRosary:
		return true
	}
	return false
}

// column maps the category to exactly one tally column. Handlers validate
// the category at the API edge; an unknown value reaching this point is a
// programmer error.
func (c PrayerCategory) column() string {
	switch c {
	case CategoryHailMary:
		return "hail_mary_count"
	case CategoryOurFather:
		return "our_father_count"
	case CategoryRosary:
		return "rosary_count"
	}
	panic("unknown prayer category: " + string(c))
}

type CreateIntentionRequest struct {
	Content    string `json:"content" validate:"required" errmsg:"Intention content is required"`
	Name       string `json:"name"`
	PrayerType string `json:"prayerType"`
}

// ListIntentions returns every intention, newest first.
func ListIntentions(db *gorm.DB) ([]*IntentionView, error) {
	var rows []Intention
	if err := db.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, wrapStoreErr("listIntentions", err)
	}
	return IntentionViews(rows), nil
}

// CreateIntention validates the request and inserts a new row with zeroed
// tallies. Validation failures never reach the store.
func CreateIntention(db *gorm.DB, req CreateIntentionRequest) (*IntentionView, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return nil, err
	}
	row := Intention{
		Content:    req.Content,
		Name:       optString(req.Name),
		PrayerType: optString(req.PrayerType),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, wrapStoreErr("createIntention", err)
	}
	return row.View(), nil
}

// IncrementIntentionCounter adds 1 to the tally selected by category. The
// write is a single-column atomic add at the store, so concurrent prayers
// against the same intention are never lost. The returned view reflects the
// post-write row as confirmed by the store.
func IncrementIntentionCounter(db *gorm.DB, id int64, category PrayerCategory) (*IntentionView, error) {
	const op = "incrementIntentionCounter"
	col := category.column()

	var row Intention
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.Model(&Intention{}).Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + ?", 1)).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	return row.View(), nil
}

// MarkIntentionPrinted sets is_printed. The transition is one-way and
// idempotent: marking an already-printed intention succeeds unchanged.
func MarkIntentionPrinted(db *gorm.DB, id int64) (*IntentionView, error) {
	const op = "markIntentionPrinted"

	var row Intention
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.Model(&Intention{}).Where("id = ?", id).
		UpdateColumn("is_printed", true).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	if err := db.First(&row, id).Error; err != nil {
		return nil, wrapStoreErr(op, err)
	}
	return row.View(), nil
}
