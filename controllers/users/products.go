package users

import (
	"net/http"
	"strconv"

	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"

	"github.com/gorilla/mux"
)

// GET /products?status=&niche_id=&min_score=&page=&limit=
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
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
	q := db.Model(&models.Product{}).Where("is_active = ?", true)

	if status := r.URL.Query().Get("status"); status != "" {
		switch status {
		case "MONITORING", "VIRAL", "DECLINED":
			q = q.Where("status = ?", status)
		default:
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status tidak valid"})
			return
		}
	}
	if nicheID, err := strconv.Atoi(r.URL.Query().Get("niche_id")); err == nil && nicheID > 0 {
		q = q.Where("niche_id = ?", nicheID)
	}
	if minScore, err := strconv.ParseFloat(r.URL.Query().Get("min_score"), 64); err == nil && minScore > 0 {
		q = q.Where("viral_score >= ?", minScore)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var products []models.Product
	if err := q.Preload("Niche").Order("viral_score DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"products": products,
		"page":     page,
		"limit":    limit,
		"total":    total,
	}})
}

// GET /products/{id}/trends?limit=
func ProductTrendsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || productID <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID produk tidak valid"})
		return
	}

	db := database.DB
	var product models.Product
	if err := db.Preload("Niche").First(&product, productID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Produk tidak ditemukan"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var trends []models.Trend
	if err := db.Where("product_id = ?", productID).
		Order("created_at DESC").Limit(limit).Find(&trends).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"product": product,
		"trends":  trends,
	}})
}
