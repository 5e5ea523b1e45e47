package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// TikTokClient fetches trend data as JSON from an external endpoint. Real
// scraping is out of scope: when TIKTOK_API_BASE_URL is unset the client
// returns deterministic built-in sample data so the pipeline can run locally.
type TikTokClient struct {
	baseURL string
	client  *http.Client
}

func NewTikTokClient() *TikTokClient {
	return &TikTokClient{
		baseURL: os.Getenv("TIKTOK_API_BASE_URL"),
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type RawHashtag struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Region        string  `json:"region"`
	GrowthPercent float64 `json:"growth_percent"`
}

type RawVideo struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Niche    string `json:"niche"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
	Sales    int64  `json:"sales"`
}

type RawSignal struct {
	Type          string  `json:"type"`
	Value         string  `json:"value"`
	Category      string  `json:"category"`
	Region        string  `json:"region"`
	GrowthPercent float64 `json:"growth_percent"`
}

func (c *TikTokClient) FetchHashtags() ([]RawHashtag, error) {
	if c.baseURL == "" {
		return mockHashtags(), nil
	}
	var out []RawHashtag
	if err := c.fetchJSON("/trending/hashtags", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TikTokClient) FetchVideos() ([]RawVideo, error) {
	if c.baseURL == "" {
		return mockVideos(), nil
	}
	var out []RawVideo
	if err := c.fetchJSON("/trending/videos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TikTokClient) FetchSignals() ([]RawSignal, error) {
	if c.baseURL == "" {
		return mockSignals(), nil
	}
	var out []RawSignal
	if err := c.fetchJSON("/trending/signals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TikTokClient) fetchJSON(path string, dst interface{}) error {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: status %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func mockHashtags() []RawHashtag {
	return []RawHashtag{
		{Name: "#racuntiktok", Category: "Belanja", Region: "ID", GrowthPercent: 182.4},
		{Name: "#skincareroutine", Category: "Kecantikan", Region: "ID", GrowthPercent: 95.1},
		{Name: "#gadgetmurah", Category: "Elektronik", Region: "ID", GrowthPercent: 64.7},
	}
}

func mockVideos() []RawVideo {
	return []RawVideo{
		{Title: "Serum Viral Glowing 7 Hari", URL: "https://www.tiktok.com/@demo/video/7301", Niche: "Kecantikan",
			Views: 1_350_000, Likes: 162_000, Comments: 11_400, Shares: 58_200, Sales: 6_150},
		{Title: "Mini Blender Portable", URL: "https://www.tiktok.com/@demo/video/7302", Niche: "Rumah Tangga",
			Views: 480_000, Likes: 51_000, Comments: 3_900, Shares: 17_500, Sales: 2_040},
		{Title: "Lampu Tidur Proyektor Galaxy", URL: "https://www.tiktok.com/@demo/video/7303", Niche: "Elektronik",
			Views: 92_000, Likes: 8_400, Comments: 610, Shares: 2_300, Sales: 310},
	}
}

func mockSignals() []RawSignal {
	return []RawSignal{
		{Type: "hashtag", Value: "#racuntiktok", Category: "Belanja", Region: "ID", GrowthPercent: 182.4},
		{Type: "sound", Value: "original sound - tokotrend", Category: "Belanja", Region: "ID", GrowthPercent: 77.9},
		{Type: "video", Value: "Serum Viral Glowing 7 Hari", Category: "Kecantikan", Region: "ID", GrowthPercent: 140.2},
	}
}
