package admins

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Athanas-ai/PrayerRequest/database"
	"github.com/Athanas-ai/PrayerRequest/models"
	"github.com/Athanas-ai/PrayerRequest/utils"

	"github.com/gorilla/mux"
)

func writeOpError(w http.ResponseWriter, err error, notFoundMsg string) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Validation failed",
			Data:    ve.Fields,
		})
	case errors.Is(err, models.ErrNotFound):
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: notFoundMsg,
		})
	default:
		log.Printf("store operation failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Something went wrong, please try again",
		})
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GET /v1/admin/challenges
func ChallengeListHandler(w http.ResponseWriter, r *http.Request) {
	views, err := models.ListChallenges(database.DB)
	if err != nil {
		writeOpError(w, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    views,
	})
}

// POST /v1/admin/challenges
func CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}

	view, err := models.CreateChallenge(database.DB, req)
	if err != nil {
		writeOpError(w, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Challenge created",
		Data:    view,
	})
}

// PUT /v1/admin/challenges/{id}
func UpdateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid challenge id",
		})
		return
	}

	var req models.UpdateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}

	view, err := models.UpdateChallenge(database.DB, id, req)
	if err != nil {
		writeOpError(w, err, "Challenge not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Challenge updated",
		Data:    view,
	})
}

// DELETE /v1/admin/challenges/{id}
func DeleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid challenge id",
		})
		return
	}

	if err := models.DeleteChallenge(database.DB, id); err != nil {
		writeOpError(w, err, "Challenge not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Challenge deleted",
	})
}
