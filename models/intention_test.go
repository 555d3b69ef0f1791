package models

import (
	"errors"
	"testing"
	"time"

	"github.com/Athanas-ai/PrayerRequest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentionDefaults(t *testing.T) {
	db := newTestDB(t)

	view, err := CreateIntention(db, CreateIntentionRequest{Content: "For my family"})
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.NotZero(t, view.ID)
	assert.Equal(t, "For my family", view.Content)
	assert.Nil(t, view.Name)
	assert.Nil(t, view.PrayerType)
	assert.Zero(t, view.HailMaryCount)
	assert.Zero(t, view.OurFatherCount)
	assert.Zero(t, view.RosaryCount)
	assert.False(t, view.IsPrinted)
}

func TestCreateIntentionEmptyContentFailsWithoutWrite(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateIntention(db, CreateIntentionRequest{Content: ""})
	require.Error(t, err)

	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Intention content is required", ve.Fields["content"])

	var count int64
	require.NoError(t, db.Model(&Intention{}).Count(&count).Error)
	assert.Zero(t, count, "validation failure must not reach the store")
}

func TestCreateIntentionKeepsProvidedOptionals(t *testing.T) {
	db := newTestDB(t)

	view, err := CreateIntention(db, CreateIntentionRequest{
		Content:    "Healing for a friend",
		Name:       "Maria",
		PrayerType: "Rosary",
	})
	require.NoError(t, err)
	require.NotNil(t, view.Name)
	require.NotNil(t, view.PrayerType)
	assert.Equal(t, "Maria", *view.Name)
	assert.Equal(t, "Rosary", *view.PrayerType)
}

func TestIntentionViewAbsentSentinel(t *testing.T) {
	// NULL and empty-string optionals both surface as absent, never as "".
	cases := []struct {
		name string
		row  Intention
	}{
		{"null optionals", Intention{ID: 1, Content: "x"}},
		{"empty-string optionals", Intention{ID: 2, Content: "x", Name: strPtr(""), PrayerType: strPtr("")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.row.View()
			require.NotNil(t, v)
			assert.Nil(t, v.Name)
			assert.Nil(t, v.PrayerType)
		})
	}
}

func TestIntentionViewNilRow(t *testing.T) {
	var row *Intention
	assert.Nil(t, row.View())
}

func TestIntentionViewsPreserveOrder(t *testing.T) {
	rows := []Intention{
		{ID: 3, Content: "c"},
		{ID: 1, Content: "a"},
		{ID: 2, Content: "b"},
	}
	views := IntentionViews(rows)
	require.Len(t, views, 3)
	assert.Equal(t, int64(3), views[0].ID)
	assert.Equal(t, int64(1), views[1].ID)
	assert.Equal(t, int64(2), views[2].ID)
}

func TestListIntentionsNewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&Intention{Content: "oldest", CreatedAt: base}).Error)
	require.NoError(t, db.Create(&Intention{Content: "middle", CreatedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&Intention{Content: "newest", CreatedAt: base.Add(2 * time.Hour)}).Error)

	views, err := ListIntentions(db)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "newest", views[0].Content)
	assert.Equal(t, "middle", views[1].Content)
	assert.Equal(t, "oldest", views[2].Content)
}

func TestIncrementIntentionCounterPerCategory(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateIntention(db, CreateIntentionRequest{Content: "x"})
	require.NoError(t, err)

	view, err := IncrementIntentionCounter(db, created.ID, CategoryHailMary)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.HailMaryCount)
	assert.Zero(t, view.OurFatherCount)
	assert.Zero(t, view.RosaryCount)

	view, err = IncrementIntentionCounter(db, created.ID, CategoryOurFather)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.HailMaryCount)
	assert.Equal(t, int64(1), view.OurFatherCount)
	assert.Zero(t, view.RosaryCount)

	view, err = IncrementIntentionCounter(db, created.ID, CategoryRosary)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.RosaryCount)

	// repeated increments keep adding one
	view, err = IncrementIntentionCounter(db, created.ID, CategoryHailMary)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.HailMaryCount)
}

func TestIncrementIntentionCounterNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := IncrementIntentionCounter(db, 9999, CategoryRosary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIncrementIntentionCounterUnknownCategoryPanics(t *testing.T) {
	db := newTestDB(t)
	assert.Panics(t, func() {
		_, _ = IncrementIntentionCounter(db, 1, PrayerCategory("novena"))
	})
}

func TestPrayerCategoryValid(t *testing.T) {
	assert.True(t, CategoryHailMary.Valid())
	assert.True(t, CategoryOurFather.Valid())
	assert.True(t, CategoryRosary.Valid())
	assert.False(t, PrayerCategory("").Valid())
	assert.False(t, PrayerCategory("hail_mary").Valid())
}

func TestMarkIntentionPrintedIdempotent(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateIntention(db, CreateIntentionRequest{Content: "x"})
	require.NoError(t, err)
	require.False(t, created.IsPrinted)

	view, err := MarkIntentionPrinted(db, created.ID)
	require.NoError(t, err)
	assert.True(t, view.IsPrinted)

	// second call succeeds and stays printed
	view, err = MarkIntentionPrinted(db, created.ID)
	require.NoError(t, err)
	assert.True(t, view.IsPrinted)
}

func TestMarkIntentionPrintedNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := MarkIntentionPrinted(db, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
