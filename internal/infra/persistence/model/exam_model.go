package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamModel mirrors the 'exams' table.
type ExamModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Description   string     `gorm:"type:text;not null"`
	ExamDate      *time.Time `gorm:"index"`
	ImageUploaded bool       `gorm:"not null;default:false"`
	WorkerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ExamModel) TableName() string {
	return "exams"
}
