// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/lifequest/backend/internal/domain/entity"
)

// ProgressRowID is the fixed primary key of the single progress row.
const ProgressRowID = 1

// ProgressModel represents the user_progress table in the session store.
// The table holds exactly one row for the session's user.
type ProgressModel struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Level     int       `gorm:"not null;default:1"`
	XP        int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProgressModel.
func (ProgressModel) TableName() string {
	return "user_progress"
}

// ToEntity converts a ProgressModel to a domain Progress entity.
func (m *ProgressModel) ToEntity() *entity.Progress {
	return &entity.Progress{
		Name:      m.Name,
		Level:     m.Level,
		XP:        m.XP,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProgressFromEntity creates a ProgressModel from a domain Progress entity.
func ProgressFromEntity(progress *entity.Progress) *ProgressModel {
	return &ProgressModel{
		ID:        ProgressRowID,
		Name:      progress.Name,
		Level:     progress.Level,
		XP:        progress.XP,
		UpdatedAt: progress.UpdatedAt,
	}
}
