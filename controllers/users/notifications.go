package users

import (
	"encoding/json"
	"net/http"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"
)

type updateNotificationConfigRequest struct {
	TelegramEnabled *bool   `json:"telegram_enabled"`
	WhatsappEnabled *bool   `json:"whatsapp_enabled"`
	TelegramChatID  *int64  `json:"telegram_chat_id"`
	WhatsappNumber  *string `json:"whatsapp_number" validate:"phone8"`
	QuietHoursStart *int    `json:"quiet_hours_start"`
	QuietHoursEnd   *int    `json:"quiet_hours_end"`
	MaxAlertsPerDay *int    `json:"max_alerts_per_day"`
}

// GET /notifications/config
func NotificationConfigHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	cfg, err := loadOrCreateConfig(uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: cfg})
}

// PUT /notifications/config
func UpdateNotificationConfigHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req updateNotificationConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Format request tidak valid"})
		return
	}

	if req.WhatsappNumber != nil && *req.WhatsappNumber != "" {
		check := struct {
			WhatsappNumber string `validate:"phone8"`
		}{WhatsappNumber: *req.WhatsappNumber}
		if err := utils.ValidateStruct(&check); err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nomor WhatsApp tidak valid"})
			return
		}
	}
	for _, h := range []*int{req.QuietHoursStart, req.QuietHoursEnd} {
		if h != nil && (*h < -1 || *h > 23) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Jam tenang harus antara 0-23, atau -1 untuk menonaktifkan"})
			return
		}
	}
	if req.MaxAlertsPerDay != nil && *req.MaxAlertsPerDay < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Batas alert per hari tidak boleh negatif"})
		return
	}

	cfg, err := loadOrCreateConfig(uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if req.TelegramEnabled != nil {
		cfg.TelegramEnabled = *req.TelegramEnabled
	}
	if req.WhatsappEnabled != nil {
		cfg.WhatsappEnabled = *req.WhatsappEnabled
	}
	if req.TelegramChatID != nil {
		cfg.TelegramChatID = req.TelegramChatID
	}
	if req.WhatsappNumber != nil {
		if *req.WhatsappNumber == "" {
			cfg.WhatsappNumber = nil
		} else {
			cfg.WhatsappNumber = req.WhatsappNumber
		}
	}
	if req.QuietHoursStart != nil {
		cfg.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		cfg.QuietHoursEnd = *req.QuietHoursEnd
	}
	if req.MaxAlertsPerDay != nil {
		cfg.MaxAlertsPerDay = *req.MaxAlertsPerDay
	}

	if err := database.DB.Save(cfg).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menyimpan konfigurasi"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Konfigurasi notifikasi diperbarui", Data: cfg})
}

func loadOrCreateConfig(uid uint) (*models.NotificationConfig, error) {
	db := database.DB
	var cfg models.NotificationConfig
	err := db.Where("user_id = ?", uid).First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	cfg = models.NotificationConfig{
		UserID:          uid,
		TelegramEnabled: true,
		QuietHoursStart: -1,
		QuietHoursEnd:   -1,
	}
	if err := db.Create(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
