package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"izesquad-api/models"
)

// snapshotRow is the single-row table holding the world snapshot. The blob
// stays opaque to the database; load and save are all-or-nothing.
type snapshotRow struct {
	ID        uint   `gorm:"primaryKey"`
	Data      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "world_snapshots"
}

// GormStore persists the snapshot in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Load() (*models.Snapshot, error) {
	var row snapshotRow
	err := g.db.Order("id").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap models.Snapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (g *GormStore) Save(snap *models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return g.db.Transaction(func(tx *gorm.DB) error {
		var row snapshotRow
		err := tx.Order("id").First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&snapshotRow{ID: 1, Data: raw}).Error
		}
		if err != nil {
			return err
		}
		row.Data = raw
		return tx.Save(&row).Error
	})
}
