package models

import (
	"errors"
	"testing"
	"time"

	"github.com/Athanas-ai/PrayerRequest/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeDefaults(t *testing.T) {
	db := newTestDB(t)

	view, err := CreateChallenge(db, CreateChallengeRequest{
		Title:       "Rosary Week",
		PrayerType:  "Rosary",
		TotalTarget: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.NotZero(t, view.ID)
	assert.Equal(t, "Rosary Week", view.Title)
	assert.Equal(t, "Rosary", view.PrayerType)
	assert.Equal(t, int64(50), view.TotalTarget)
	assert.Zero(t, view.CurrentCount)
	assert.True(t, view.IsActive)
}

func TestCreateChallengeValidationCollectsAllFields(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateChallenge(db, CreateChallengeRequest{})
	require.Error(t, err)

	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Challenge title is required", ve.Fields["title"])
	assert.Equal(t, "Prayer type is required", ve.Fields["prayerType"])
	assert.Equal(t, "Target must be at least 1", ve.Fields["totalTarget"])
}

func TestCreateChallengeEmptyTitleLeavesStoreUntouched(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateChallenge(db, CreateChallengeRequest{Title: "ok", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	before, err := ListChallenges(db)
	require.NoError(t, err)

	_, err = CreateChallenge(db, CreateChallengeRequest{Title: "", PrayerType: "Rosary", TotalTarget: 10})
	require.Error(t, err)

	after, err := ListChallenges(db)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestCreateChallengeDeactivatesPrevious(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateChallenge(db, CreateChallengeRequest{Title: "Week 1", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)
	require.True(t, first.IsActive)

	second, err := CreateChallenge(db, CreateChallengeRequest{Title: "Week 2", PrayerType: "Hail Mary", TotalTarget: 20})
	require.NoError(t, err)
	assert.True(t, second.IsActive)

	var row Challenge
	require.NoError(t, db.First(&row, first.ID).Error)
	assert.False(t, row.IsActive, "creating a challenge must deactivate the previous one")

	var activeCount int64
	require.NoError(t, db.Model(&Challenge{}).Where("is_active = ?", true).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}

func TestGetActiveChallengeAbsent(t *testing.T) {
	db := newTestDB(t)

	view, err := GetActiveChallenge(db)
	require.NoError(t, err, "no active challenge is a valid outcome, not an error")
	assert.Nil(t, view)
}

func TestGetActiveChallengeTieBreaksOnMostRecent(t *testing.T) {
	db := newTestDB(t)

	// legacy data: two active rows written directly, bypassing the
	// single-active transaction
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&Challenge{Title: "older", PrayerType: "Rosary", TotalTarget: 5, IsActive: true, CreatedAt: base}).Error)
	require.NoError(t, db.Create(&Challenge{Title: "newer", PrayerType: "Rosary", TotalTarget: 5, IsActive: true, CreatedAt: base.Add(time.Hour)}).Error)

	view, err := GetActiveChallenge(db)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "newer", view.Title)
}

func TestListChallengesNewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&Challenge{Title: "a", PrayerType: "Rosary", TotalTarget: 5, CreatedAt: base}).Error)
	require.NoError(t, db.Create(&Challenge{Title: "b", PrayerType: "Rosary", TotalTarget: 5, CreatedAt: base.Add(time.Hour)}).Error)

	views, err := ListChallenges(db)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "b", views[0].Title)
	assert.Equal(t, "a", views[1].Title)
}

func TestIncrementChallengeProgress(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 100})
	require.NoError(t, err)

	view, err := IncrementChallengeProgress(db, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.CurrentCount)

	view, err = IncrementChallengeProgress(db, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(6), view.CurrentCount)
}

func TestIncrementChallengeProgressInvalidAmount(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	for _, amount := range []int64{0, -3} {
		_, err := IncrementChallengeProgress(db, created.ID, amount)
		require.Error(t, err)
		var ve *utils.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "amount")
	}

	var row Challenge
	require.NoError(t, db.First(&row, created.ID).Error)
	assert.Zero(t, row.CurrentCount, "rejected amounts must not mutate the counter")
}

func TestIncrementChallengeProgressNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := IncrementChallengeProgress(db, 12345, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIncrementChallengeProgressExceedsTarget(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 3})
	require.NoError(t, err)

	view, err := IncrementChallengeProgress(db, created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), view.CurrentCount, "the stored counter is never capped at the target")
	assert.Equal(t, 100, view.PercentComplete())
	assert.True(t, view.Completed())
}

func TestRosaryWeekEndToEnd(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{
		Title:       "Rosary Week",
		PrayerType:  "Rosary",
		TotalTarget: 50,
	})
	require.NoError(t, err)
	require.Zero(t, created.CurrentCount)
	require.True(t, created.IsActive)

	var view *ChallengeView
	for i := 0; i < 50; i++ {
		view, err = IncrementChallengeProgress(db, created.ID, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(50), view.CurrentCount)
	assert.Equal(t, 100, view.PercentComplete())
	assert.True(t, view.Completed())
}

func TestPercentComplete(t *testing.T) {
	cases := []struct {
		current, target int64
		want            int
	}{
		{0, 50, 0},
		{1, 3, 33},
		{2, 3, 67},
		{25, 50, 50},
		{50, 50, 100},
		{75, 50, 100}, // saturates
		{0, 0, 0},     // defensive: malformed row
	}
	for _, tc := range cases {
		v := ChallengeView{CurrentCount: tc.current, TotalTarget: tc.target}
		assert.Equal(t, tc.want, v.PercentComplete(), "current=%d target=%d", tc.current, tc.target)
	}
}

func TestUpdateChallengePartial(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	view, err := UpdateChallenge(db, created.ID, UpdateChallengeRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Title)
	assert.Equal(t, "Rosary", view.PrayerType, "unset fields must be untouched")
	assert.Equal(t, int64(10), view.TotalTarget)
	assert.True(t, view.IsActive)

	view, err = UpdateChallenge(db, created.ID, UpdateChallengeRequest{
		TotalTarget: int64Ptr(25),
		IsActive:    boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), view.TotalTarget)
	assert.False(t, view.IsActive)
}

func TestUpdateChallengeActivateDeactivatesOthers(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateChallenge(db, CreateChallengeRequest{Title: "one", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)
	second, err := CreateChallenge(db, CreateChallengeRequest{Title: "two", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	view, err := UpdateChallenge(db, first.ID, UpdateChallengeRequest{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, view.IsActive)

	var row Challenge
	require.NoError(t, db.First(&row, second.ID).Error)
	assert.False(t, row.IsActive)

	var activeCount int64
	require.NoError(t, db.Model(&Challenge{}).Where("is_active = ?", true).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}

func TestUpdateChallengeValidation(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	_, err = UpdateChallenge(db, created.ID, UpdateChallengeRequest{
		Title:       strPtr(""),
		TotalTarget: int64Ptr(0),
	})
	require.Error(t, err)
	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Challenge title is required", ve.Fields["title"])
	assert.Equal(t, "Target must be at least 1", ve.Fields["totalTarget"])
}

func TestUpdateChallengeNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateChallenge(db, 404, UpdateChallengeRequest{Title: strPtr("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteChallenge(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateChallenge(db, CreateChallengeRequest{Title: "t", PrayerType: "Rosary", TotalTarget: 10})
	require.NoError(t, err)

	require.NoError(t, DeleteChallenge(db, created.ID))

	views, err := ListChallenges(db)
	require.NoError(t, err)
	assert.Empty(t, views)

	err = DeleteChallenge(db, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestChallengeViewNilRow(t *testing.T) {
	var row *Challenge
	assert.Nil(t, row.View())
}
