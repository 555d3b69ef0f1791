package admins

import (
	"net/http"
	"time"

	"github.com/Athanas-ai/PrayerRequest/database"
	"github.com/Athanas-ai/PrayerRequest/models"
	"github.com/Athanas-ai/PrayerRequest/utils"
)

type PrayerTotals struct {
	HailMary  int64 `json:"hail_mary"`
	OurFather int64 `json:"our_father"`
	Rosary    int64 `json:"rosary"`
	Total     int64 `json:"total"`
}

type DashboardStats struct {
	TotalIntentions     int64                 `json:"total_intentions"`
	UnprintedIntentions int64                 `json:"unprinted_intentions"`
	IntentionsThisWeek  int64                 `json:"intentions_this_week"`
	Prayers             PrayerTotals          `json:"prayers"`
	TotalChallenges     int64                 `json:"total_challenges"`
	ActiveChallenge     *models.ChallengeView `json:"active_challenge"`
	ChallengePercent    int                   `json:"challenge_percent"`
	ChallengeCompleted  bool                  `json:"challenge_completed"`
}

// GET /v1/admin/dashboard
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	db := database.DB
	var stats DashboardStats

	db.Model(&models.Intention{}).Count(&stats.TotalIntentions)
	db.Model(&models.Intention{}).Where("is_printed = ?", false).Count(&stats.UnprintedIntentions)
	db.Model(&models.Intention{}).
		Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&stats.IntentionsThisWeek)

	row := db.Model(&models.Intention{}).
		Select("COALESCE(SUM(hail_mary_count), 0), COALESCE(SUM(our_father_count), 0), COALESCE(SUM(rosary_count), 0)").
		Row()
	if row != nil {
		_ = row.Scan(&stats.Prayers.HailMary, &stats.Prayers.OurFather, &stats.Prayers.Rosary)
	}
	stats.Prayers.Total = stats.Prayers.HailMary + stats.Prayers.OurFather + stats.Prayers.Rosary

	db.Model(&models.Challenge{}).Count(&stats.TotalChallenges)

	active, err := models.GetActiveChallenge(db)
	if err != nil {
		writeOpError(w, err, "")
		return
	}
	stats.ActiveChallenge = active
	if active != nil {
		stats.ChallengePercent = active.PercentComplete()
		stats.ChallengeCompleted = active.Completed()
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    stats,
	})
}
