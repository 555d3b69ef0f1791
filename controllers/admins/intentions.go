package admins

import (
	"net/http"

	"github.com/Athanas-ai/PrayerRequest/database"
	"github.com/Athanas-ai/PrayerRequest/models"
	"github.com/Athanas-ai/PrayerRequest/utils"
)

// GET /v1/admin/intentions
func IntentionListHandler(w http.ResponseWriter, r *http.Request) {
	views, err := models.ListIntentions(database.DB)
	if err != nil {
		writeOpError(w, err, "")
		return
	}

	// ?printed=true|false narrows the list for the print queue
	if q := r.URL.Query().Get("printed"); q == "true" || q == "false" {
		want := q == "true"
		filtered := make([]*models.IntentionView, 0, len(views))
		for _, v := range views {
			if v.IsPrinted == want {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    views,
	})
}

// PUT /v1/admin/intentions/{id}/printed
// One-way transition; repeating it on a printed intention succeeds.
func MarkIntentionPrintedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid intention id",
		})
		return
	}

	view, err := models.MarkIntentionPrinted(database.DB, id)
	if err != nil {
		writeOpError(w, err, "Intention not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Intention marked as printed",
		Data:    view,
	})
}
