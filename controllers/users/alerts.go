package users

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"
)

// GET /alerts/stats
func AlertStatsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	var total, sent, failed, pending, today int64
	base := db.Model(&models.Alert{}).Where("user_id = ?", uid)
	if err := base.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	db.Model(&models.Alert{}).Where("user_id = ? AND status = ?", uid, "SENT").Count(&sent)
	db.Model(&models.Alert{}).Where("user_id = ? AND status = ?", uid, "FAILED").Count(&failed)
	db.Model(&models.Alert{}).Where("user_id = ? AND status = ?", uid, "PENDING").Count(&pending)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	db.Model(&models.Alert{}).Where("user_id = ? AND created_at >= ?", uid, startOfDay).Count(&today)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"total":   total,
		"sent":    sent,
		"failed":  failed,
		"pending": pending,
		"today":   today,
	}})
}

// GET /alerts/history?page=&limit=&status=
func AlertHistoryHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.DB
	q := db.Model(&models.Alert{}).Where("user_id = ?", uid)
	if status := r.URL.Query().Get("status"); status != "" {
		switch status {
		case "PENDING", "SENT", "FAILED":
			q = q.Where("status = ?", status)
		default:
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status tidak valid"})
			return
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var alerts []models.Alert
	if err := q.Preload("Product").Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&alerts).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"alerts": alerts,
		"page":   page,
		"limit":  limit,
		"total":  total,
	}})
}
