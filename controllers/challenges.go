package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Athanas-ai/PrayerRequest/database"
	"github.com/Athanas-ai/PrayerRequest/models"
	"github.com/Athanas-ai/PrayerRequest/utils"
)

// GET /v1/challenges/active
// Data is null when no challenge is currently active; that is a valid
// outcome, not an error.
func ActiveChallengeHandler(w http.ResponseWriter, r *http.Request) {
	view, err := models.GetActiveChallenge(database.DB)
	if err != nil {
		writeOpError(w, err, "")
		return
	}
	if view == nil {
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
			Success: true,
			Message: "No active challenge",
		})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    view,
	})
}

type prayChallengeRequest struct {
	Amount *int64 `json:"amount,omitempty"`
}

// POST /v1/challenges/{id}/pray
// Body is optional; amount defaults to 1.
func PrayChallengeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid challenge id",
		})
		return
	}

	var req prayChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}
	amount := int64(1)
	if req.Amount != nil {
		amount = *req.Amount
	}

	view, err := models.IncrementChallengeProgress(database.DB, id, amount)
	if err != nil {
		writeOpError(w, err, "Challenge not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Prayer recorded",
		Data:    view,
	})
}
