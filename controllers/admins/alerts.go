package admins

import (
	"log"
	"net/http"

	"github.com/wesleycpo2/spacered-sub000/utils"
)

// POST /admin/alerts/process: find qualifying products, create and send alerts.
func ProcessAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if dispatcher == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Dispatcher belum siap"})
		return
	}
	summary, err := dispatcher.ProcessAll()
	if err != nil {
		log.Printf("[admin] proses alert gagal: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Proses alert gagal"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: summary})
}

// POST /admin/alerts/retry: re-send failed alerts that still have budget.
func RetryAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if dispatcher == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Dispatcher belum siap"})
		return
	}
	sent, failed, err := dispatcher.RetryFailed()
	if err != nil {
		log.Printf("[admin] retry alert gagal: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Retry alert gagal"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"sent":   sent,
		"failed": failed,
	}})
}

// POST /admin/alerts/cleanup: purge delivered and dead alerts past retention.
func CleanupAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if dispatcher == nil {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "Dispatcher belum siap"})
		return
	}
	deleted, err := dispatcher.CleanupOld()
	if err != nil {
		log.Printf("[admin] cleanup alert gagal: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Cleanup alert gagal"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"deleted": deleted,
	}})
}
