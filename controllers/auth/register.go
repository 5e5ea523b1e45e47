package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/middleware"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name                 string  `json:"name" validate:"required,nameok"`
	Number               string  `json:"number" validate:"required,phone8"`
	Email                *string `json:"email,omitempty"`
	Password             string  `json:"password" validate:"required,pwdmin"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	// Trim inputs
	req.Name = strings.TrimSpace(req.Name)
	req.Number = strings.TrimSpace(req.Number)

	db := database.DB

	// Ensure unique number
	var existing models.User
	if err := db.Where("number = ?", req.Number).First(&existing).Error; err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Nomor telepon sudah terdaftar"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] DB error checking number: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	newUser := models.User{
		Name:     req.Name,
		Number:   req.Number,
		Email:    req.Email,
		Password: string(hashed),
		Status:   "Active",
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("[register] DB Create user error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Registrasi gagal, silakan coba lagi"})
		return
	}

	// BASE plan is free, so the subscription is activated immediately.
	maxAlerts, maxNiches := models.PlanLimits("BASE")
	sub := models.Subscription{
		UserID:          newUser.ID,
		Plan:            "BASE",
		Status:          "ACTIVE",
		MaxAlertsPerDay: maxAlerts,
		MaxNiches:       maxNiches,
	}
	if err := db.Create(&sub).Error; err != nil {
		log.Printf("[register] DB Create subscription error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	cfg := models.NotificationConfig{
		UserID:          newUser.ID,
		TelegramEnabled: true,
		QuietHoursStart: -1,
		QuietHoursEnd:   -1,
	}
	if err := db.Create(&cfg).Error; err != nil {
		log.Printf("[register] DB Create notification config error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	exp := time.Now().Add(15 * time.Minute)
	accessToken, err := utils.GenerateAccessToken(newUser.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal membuat token"})
		return
	}
	refreshJTI, err := utils.GenerateRefreshToken(newUser.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menyimpan refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Registrasi berhasil, Selamat datang!",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": exp.UTC().Format(time.RFC3339),
			"refresh_token": refreshJTI,
			"user": map[string]interface{}{
				"name":   newUser.Name,
				"number": newUser.Number,
				"email":  newUser.Email,
			},
			"subscription": map[string]interface{}{
				"plan":               sub.Plan,
				"status":             sub.Status,
				"max_alerts_per_day": sub.MaxAlertsPerDay,
				"max_niches":         sub.MaxNiches,
			},
		},
	})
}
