package alerts

import (
	"strings"
	"testing"

	"github.com/wesleycpo2/spacered-sub000/models"
)

func sampleProduct() *models.Product {
	return &models.Product{
		Title:      "Lampu Tidur Proyektor Bintang",
		SourceURL:  "https://www.tiktok.com/@toko/video/123",
		Views:      1_200_000,
		Sales:      3_400,
		ViralScore: 82.45,
	}
}

func TestRenderTelegram(t *testing.T) {
	body := RenderTelegram(sampleProduct(), "Home Decor")
	for _, want := range []string{
		"<b>Produk Viral Terdeteksi!</b>",
		"Lampu Tidur Proyektor Bintang",
		"Home Decor",
		"82.45",
		"1.2M",
		"3.4K",
		`<a href="https://www.tiktok.com/@toko/video/123">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("telegram body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderWhatsApp(t *testing.T) {
	body := RenderWhatsApp(sampleProduct(), "")
	for _, want := range []string{
		"*Produk Viral Terdeteksi!*",
		"Niche: Umum",
		"*82.45*/100",
		"https://www.tiktok.com/@toko/video/123",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("whatsapp body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "<b>") {
		t.Error("whatsapp body should not contain HTML markup")
	}
}
