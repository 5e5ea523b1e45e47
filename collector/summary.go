package collector

import (
	"fmt"
	"os"
	"strings"

	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"

	"gorm.io/gorm"
)

const summarySystemPrompt = "Kamu adalah analis tren TikTok untuk seller Indonesia. " +
	"Ringkas sinyal tren berikut menjadi laporan singkat: tren apa yang sedang naik, " +
	"kategori produk apa yang layak dijual, dan mengapa. Maksimal 5 paragraf."

// SummaryEnabled reports whether the AI summary pass should run.
func SummaryEnabled() bool {
	return strings.ToLower(os.Getenv("AI_SUMMARY_ENABLED")) == "true"
}

// GenerateAiReport summarizes the latest trend signals through the LLM and
// stores the result as an append-only AiReport row.
func GenerateAiReport(db *gorm.DB, signals []models.TrendSignal) (*models.AiReport, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("tidak ada signal untuk diringkas")
	}

	var b strings.Builder
	for _, s := range signals {
		fmt.Fprintf(&b, "- %s %q (%s, %s): %+.1f%%\n", s.Type, s.Value, s.Category, s.Region, s.GrowthPercent)
	}

	content, err := utils.CallGroqAPI([]utils.GroqMessage{
		{Role: "user", Content: "Sinyal tren terbaru:\n" + b.String()},
	}, summarySystemPrompt)
	if err != nil {
		return nil, err
	}

	report := models.AiReport{
		Content:     content,
		Model:       utils.AIModel(),
		SignalCount: len(signals),
	}
	if err := db.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
