package controllers

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

// writeOpError maps core errors onto the API envelope: validation failures
// carry per-field messages, missing records answer 404, everything else is
// logged and answered generically.
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

// GET /v1/intentions
func IntentionListHandler(w http.ResponseWriter, r *http.Request) {
	views, err := models.ListIntentions(database.DB)
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

// POST /v1/intentions
func CreateIntentionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIntentionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}

	view, err := models.CreateIntention(database.DB, req)
	if err != nil {
		writeOpError(w, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Intention submitted",
		Data:    view,
	})
}

type prayIntentionRequest struct {
	Type models.PrayerCategory `json:"type"`
}

// POST /v1/intentions/{id}/pray
func PrayIntentionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid intention id",
		})
		return
	}

	var req prayIntentionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}
	if !req.Type.Valid() {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Unknown prayer type",
		})
		return
	}

	view, err := models.IncrementIntentionCounter(database.DB, id, req.Type)
	if err != nil {
		writeOpError(w, err, "Intention not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Prayer recorded",
		Data:    view,
	})
}
