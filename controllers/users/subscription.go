package users

import (
	"net/http"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"
)

// GET /subscription/status
func SubscriptionStatusHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	var sub models.Subscription
	if err := db.Where("user_id = ?", uid).First(&sub).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Langganan tidak ditemukan"})
		return
	}

	var nicheCount int64
	if err := db.Table("user_niches").Where("user_id = ?", uid).Count(&nicheCount).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"plan":               sub.Plan,
			"status":             sub.Status,
			"active":             sub.IsActive(),
			"max_alerts_per_day": sub.MaxAlertsPerDay,
			"max_niches":         sub.MaxNiches,
			"niches_used":        nicheCount,
			"expires_at":         sub.ExpiresAt,
		},
	})
}
