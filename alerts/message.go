package alerts

import (
	"fmt"

	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/utils"
)

// RenderTelegram builds the Telegram alert body (HTML markup).
func RenderTelegram(p *models.Product, nicheName string) string {
	return fmt.Sprintf(
		"🔥 <b>Produk Viral Terdeteksi!</b>\n\n"+
			"<b>%s</b>\n"+
			"Niche: %s\n"+
			"Skor Viral: <b>%.2f</b>/100\n"+
			"Views: %s\n"+
			"Estimasi penjualan: %s\n\n"+
			"<a href=\"%s\">Lihat di TikTok</a>",
		p.Title, nicheLabel(nicheName), p.ViralScore,
		utils.FormatCount(p.Views), utils.FormatCount(p.Sales), p.SourceURL,
	)
}

// RenderWhatsApp builds the WhatsApp alert body (asterisk markup).
func RenderWhatsApp(p *models.Product, nicheName string) string {
	return fmt.Sprintf(
		"🔥 *Produk Viral Terdeteksi!*\n\n"+
			"*%s*\n"+
			"Niche: %s\n"+
			"Skor Viral: *%.2f*/100\n"+
			"Views: %s\n"+
			"Estimasi penjualan: %s\n\n"+
			"Lihat di TikTok: %s",
		p.Title, nicheLabel(nicheName), p.ViralScore,
		utils.FormatCount(p.Views), utils.FormatCount(p.Sales), p.SourceURL,
	)
}

func nicheLabel(name string) string {
	if name == "" {
		return "Umum"
	}
	return name
}
