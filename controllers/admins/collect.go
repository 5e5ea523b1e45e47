package admins

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wesleycpo2/spacered-sub000/utils"
)

type collectRequest struct {
	Type string `json:"type"`
}

// POST /admin/collect  body: {"type":"hashtags"|"videos"|"signals"}
func CollectHandler(w http.ResponseWriter, r *http.Request) {
	if collectorService == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Collector belum siap"})
		return
	}

	var req collectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Format request tidak valid"})
		return
	}

	var saved int
	var err error
	switch req.Type {
	case "hashtags":
		saved, err = collectorService.CollectHashtags()
	case "videos":
		saved, err = collectorService.CollectVideos()
	case "signals":
		saved, err = collectorService.CollectSignals()
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Type harus hashtags, videos, atau signals"})
		return
	}
	if err != nil {
		log.Printf("[admin] koleksi %s gagal: %v", req.Type, err)
		utils.WriteJSON(w, http.StatusBadGateway, utils.APIResponse{Success: false, Message: "Koleksi data gagal"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"type":  req.Type,
		"saved": saved,
	}})
}

// POST /admin/collect-all runs the full pipeline: collect everything then re-score.
func CollectAllHandler(w http.ResponseWriter, r *http.Request) {
	if collectorService == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Collector belum siap"})
		return
	}
	summary := collectorService.RunAll()
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: summary})
}
