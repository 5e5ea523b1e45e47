package channels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// WhatsAppAdapter sends text messages through an external WhatsApp gateway.
type WhatsAppAdapter struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewWhatsAppAdapter() (*WhatsAppAdapter, error) {
	baseURL := os.Getenv("WA_GATEWAY_URL")
	token := os.Getenv("WA_GATEWAY_TOKEN")
	if baseURL == "" || token == "" {
		return nil, errors.New("WA_GATEWAY_URL dan WA_GATEWAY_TOKEN wajib")
	}
	return &WhatsAppAdapter{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type waSendRequest struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (a *WhatsAppAdapter) Send(destination, text string) (bool, error) {
	if destination == "" {
		return false, nil
	}

	payload := waSendRequest{To: destination, Type: "text"}
	payload.Text.Body = text
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[whatsapp] send to %s failed: %v", destination, err)
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[whatsapp] gateway status %d for %s: %s", resp.StatusCode, destination, string(respBody))
		return false, nil
	}
	return true, nil
}
