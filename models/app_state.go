package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppState is a small key-value table used for process state that must survive
// restarts, e.g. whether the auto collector should be running.
type AppState struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppState) TableName() string {
	return "app_states"
}

// GetAppState returns the stored value for key, or "" when the key is absent.
func GetAppState(db *gorm.DB, key string) (string, error) {
	var st AppState
	if err := db.Where("`key` = ?", key).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return st.Value, nil
}

// SetAppState upserts the value for key.
func SetAppState(db *gorm.DB, key, value string) error {
	st := AppState{Key: key, Value: value, UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&st).Error
}
