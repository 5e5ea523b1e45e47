package collector

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/trends"

	"gorm.io/gorm"
)

// Service runs the collection pipeline: pull raw trend data, upsert products,
// append signals, then re-score everything through the analyzer.
type Service struct {
	db       *gorm.DB
	client   *TikTokClient
	analyzer *trends.Analyzer
	// Inter-item delay so the (mocked) upstream API is not hammered.
	ItemDelay time.Duration
}

func NewService(db *gorm.DB, client *TikTokClient, analyzer *trends.Analyzer) *Service {
	return &Service{db: db, client: client, analyzer: analyzer, ItemDelay: 200 * time.Millisecond}
}

// CollectHashtags records trending hashtags as signals.
func (s *Service) CollectHashtags() (int, error) {
	raw, err := s.client.FetchHashtags()
	if err != nil {
		return 0, err
	}
	saved := 0
	for i, h := range raw {
		sig := models.TrendSignal{
			Type:          "hashtag",
			Value:         h.Name,
			Category:      h.Category,
			Region:        h.Region,
			GrowthPercent: h.GrowthPercent,
		}
		if err := s.analyzer.RecordSignal(&sig); err != nil {
			log.Printf("[collector] simpan signal hashtag %s gagal: %v", h.Name, err)
			continue
		}
		saved++
		s.pause(i, len(raw))
	}
	return saved, nil
}

// CollectVideos upserts trending videos as products (matched by source URL)
// with fresh engagement counters.
func (s *Service) CollectVideos() (int, error) {
	raw, err := s.client.FetchVideos()
	if err != nil {
		return 0, err
	}
	saved := 0
	for i, v := range raw {
		if err := s.upsertProduct(v); err != nil {
			log.Printf("[collector] upsert produk %s gagal: %v", v.Title, err)
			continue
		}
		saved++
		s.pause(i, len(raw))
	}
	return saved, nil
}

// CollectSignals records the raw signal feed (hashtags, sounds, videos).
func (s *Service) CollectSignals() (int, error) {
	raw, err := s.client.FetchSignals()
	if err != nil {
		return 0, err
	}
	saved := 0
	for i, r := range raw {
		sig := models.TrendSignal{
			Type:          r.Type,
			Value:         r.Value,
			Category:      r.Category,
			Region:        r.Region,
			GrowthPercent: r.GrowthPercent,
		}
		if err := s.analyzer.RecordSignal(&sig); err != nil {
			log.Printf("[collector] simpan signal %s gagal: %v", r.Value, err)
			continue
		}
		saved++
		s.pause(i, len(raw))
	}
	return saved, nil
}

func (s *Service) upsertProduct(v RawVideo) error {
	nicheID, err := s.nicheID(v.Niche)
	if err != nil {
		return err
	}

	now := time.Now()
	var product models.Product
	err = s.db.Where("source_url = ?", v.URL).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		product = models.Product{
			Title:         v.Title,
			SourceURL:     v.URL,
			NicheID:       nicheID,
			Views:         v.Views,
			Likes:         v.Likes,
			Comments:      v.Comments,
			Shares:        v.Shares,
			Sales:         v.Sales,
			IsActive:      true,
			LastScrapedAt: &now,
		}
		return s.db.Create(&product).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&product).Updates(map[string]interface{}{
		"title":           v.Title,
		"views":           v.Views,
		"likes":           v.Likes,
		"comments":        v.Comments,
		"shares":          v.Shares,
		"sales":           v.Sales,
		"last_scraped_at": now,
	}).Error
}

func (s *Service) nicheID(name string) (*uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	niche := models.Niche{Name: name, Slug: slugify(name)}
	if err := s.db.Where("name = ?", name).FirstOrCreate(&niche).Error; err != nil {
		return nil, err
	}
	return &niche.ID, nil
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

func (s *Service) pause(i, total int) {
	if s.ItemDelay > 0 && i < total-1 {
		time.Sleep(s.ItemDelay)
	}
}

// RunSummary aggregates one full collection pass.
type RunSummary struct {
	Hashtags int `json:"hashtags"`
	Videos   int `json:"videos"`
	Signals  int `json:"signals"`
	Analyzed int `json:"analyzed"`
	Failed   int `json:"failed"`
}

// RunAll executes hashtag, video and signal collection followed by a full
// re-scoring pass. A failing step is logged and the run continues.
func (s *Service) RunAll() RunSummary {
	var sum RunSummary
	var err error

	if sum.Hashtags, err = s.CollectHashtags(); err != nil {
		log.Printf("[collector] koleksi hashtag gagal: %v", err)
	}
	if sum.Videos, err = s.CollectVideos(); err != nil {
		log.Printf("[collector] koleksi video gagal: %v", err)
	}
	if sum.Signals, err = s.CollectSignals(); err != nil {
		log.Printf("[collector] koleksi signal gagal: %v", err)
	}
	if sum.Analyzed, sum.Failed, err = s.analyzer.AnalyzeAll(); err != nil {
		log.Printf("[collector] analisis produk gagal: %v", err)
	}
	return sum
}
