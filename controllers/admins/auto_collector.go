package admins

import (
	"log"
	"net/http"

	"github.com/wesleycpo2/spacered-sub000/utils"
)

// POST /admin/auto-collector/start
func StartAutoCollectorHandler(w http.ResponseWriter, r *http.Request) {
	if autoCollector == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Auto collector belum siap"})
		return
	}
	if err := autoCollector.Start(); err != nil {
		log.Printf("[admin] start auto collector gagal: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menyimpan state auto collector"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Auto collector aktif", Data: autoCollector.Status()})
}

// POST /admin/auto-collector/stop
func StopAutoCollectorHandler(w http.ResponseWriter, r *http.Request) {
	if autoCollector == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Auto collector belum siap"})
		return
	}
	if err := autoCollector.Stop(); err != nil {
		log.Printf("[admin] stop auto collector gagal: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Gagal menyimpan state auto collector"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Auto collector berhenti", Data: autoCollector.Status()})
}

// GET /admin/auto-collector/status
func AutoCollectorStatusHandler(w http.ResponseWriter, r *http.Request) {
	if autoCollector == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Auto collector belum siap"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: autoCollector.Status()})
}
