package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"
)

// LogoutHandler revokes the current access token's jti and all of the user's
// refresh tokens.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	authz := r.Header.Get("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if tokenStr != "" {
		if _, claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			jti, _ := claims["jti"].(string)
			ttl := 15 * time.Minute
			if expRaw, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(expRaw), 0)); until > 0 {
					ttl = until
				}
			}
			if jti != "" {
				_ = utils.RevokeJTI(jti, ttl)
			}
		}
	}

	if err := database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", uid, false).
		Update("revoked", true).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal logout"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Berhasil logout"})
}
