package admins

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Athanas-ai/PrayerRequest/database"
	"github.com/Athanas-ai/PrayerRequest/models"
	"github.com/Athanas-ai/PrayerRequest/utils"
)

const refreshTokenTTLDays = 7

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /v1/admin/login
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}

	admin, err := models.GetAdminByUsername(req.Username)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	if !admin.ValidatePassword(req.Password) {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to create token",
		})
		return
	}

	refresh, err := models.IssueRefreshToken(database.DB, admin.ID, refreshTokenTTLDays)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to create session",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully logged in",
		Data: map[string]interface{}{
			"token":         token,
			"token_expire":  time.Now().Add(utils.AdminTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": refresh.ID,
			"admin":         admin,
		},
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// POST /v1/admin/refresh
// Exchanges a valid refresh token for a new access token and a rotated
// refresh token.
func Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "refresh_token is required",
		})
		return
	}

	rt, err := models.ValidateRefreshToken(database.DB, req.RefreshToken)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Invalid refresh token",
		})
		return
	}

	var admin models.Admin
	if err := database.DB.First(&admin, rt.AdminID).Error; err != nil || !admin.IsActive {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Invalid refresh token",
		})
		return
	}

	fresh, err := models.RotateRefreshToken(database.DB, rt, refreshTokenTTLDays)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"token":         token,
			"token_expire":  time.Now().Add(utils.AdminTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": fresh.ID,
		},
	})
}

// POST /v1/admin/logout
// Revokes the presented access token's jti for the remainder of its
// lifetime.
func Logout(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	_, claims, err := utils.ValidateAccessToken(tokenStr)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	jti, _ := claims["jti"].(string)
	ttl := utils.AdminTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := utils.RevokeJTI(jti, ttl); err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to revoke token",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully logged out",
	})
}
