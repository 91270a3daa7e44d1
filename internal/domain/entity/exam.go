package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exam is an occupational exam scheduled by a company for one of its workers.
type Exam struct {
	ID            uuid.UUID
	Description   string
	ExamDate      *time.Time // Calendar date of the appointment, nil while unscheduled.
	ImageUploaded bool       // Set once result files have been uploaded.
	WorkerID      uuid.UUID
	CompanyID     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExamImage is a stored result file belonging to an exam.
type ExamImage struct {
	Key         string
	Name        string
	ContentType string
	Size        int64
}

// DashboardStats aggregates record counts for the admin dashboard.
type DashboardStats struct {
	Workers         int64 `json:"workers"`
	Companies       int64 `json:"companies"`
	PendingAccounts int64 `json:"pending_accounts"`
	Exams           int64 `json:"exams"`
	ExamsWithImages int64 `json:"exams_with_images"`
}
