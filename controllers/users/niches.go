package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// GET /niches
func ListNichesHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	var niches []models.Niche
	if err := db.Order("name ASC").Find(&niches).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	subscribed := map[uint]bool{}
	var rows []struct{ NicheID uint }
	if err := db.Table("user_niches").Select("niche_id").Where("user_id = ?", uid).Scan(&rows).Error; err == nil {
		for _, row := range rows {
			subscribed[row.NicheID] = true
		}
	}

	out := make([]map[string]interface{}, 0, len(niches))
	for _, n := range niches {
		out = append(out, map[string]interface{}{
			"id":         n.ID,
			"name":       n.Name,
			"slug":       n.Slug,
			"subscribed": subscribed[n.ID],
		})
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: out})
}

// POST /niches/{id}/subscribe
func SubscribeNicheHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	nicheID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || nicheID <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID niche tidak valid"})
		return
	}

	db := database.DB
	var sub models.Subscription
	if err := db.Where("user_id = ?", uid).First(&sub).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Langganan tidak ditemukan"})
		return
	}
	if !sub.IsActive() {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Langganan Anda belum aktif"})
		return
	}
	if sub.Plan != "PREMIUM" {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
			Success: false,
			Message: "Pilih niche hanya tersedia untuk paket PREMIUM",
			Data:    map[string]interface{}{"current_plan": sub.Plan, "required_plan": "PREMIUM"},
		})
		return
	}

	var niche models.Niche
	if err := db.First(&niche, nicheID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Niche tidak ditemukan"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var count int64
	if err := db.Table("user_niches").Where("user_id = ?", uid).Count(&count).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if count >= int64(sub.MaxNiches) {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Batas niche tercapai (maksimal %d)", sub.MaxNiches),
		})
		return
	}

	user := models.User{ID: uid}
	if err := db.Model(&user).Association("Niches").Append(&niche); err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Berhasil berlangganan niche " + niche.Name,
	})
}

// DELETE /niches/{id}/subscribe
func UnsubscribeNicheHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	nicheID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || nicheID <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID niche tidak valid"})
		return
	}

	db := database.DB
	var niche models.Niche
	if err := db.First(&niche, nicheID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Niche tidak ditemukan"})
		return
	}

	user := models.User{ID: uid}
	if err := db.Model(&user).Association("Niches").Delete(&niche); err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Berhenti berlangganan niche " + niche.Name,
	})
}
