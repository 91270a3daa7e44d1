package service

import (
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ExamPass is the payload encoded in the QR code a worker presents at the clinic.
type ExamPass struct {
	ExamID    uuid.UUID  `json:"exam_id"`
	WorkerID  uuid.UUID  `json:"worker_id"`
	CompanyID uuid.UUID  `json:"company_id"`
	ExamDate  *time.Time `json:"exam_date,omitempty"`
	Type      string     `json:"type"`
}

// ExamPassService renders and parses exam pass QR codes.
type ExamPassService interface {
	// GenerateExamPass returns a PNG QR code for the exam.
	GenerateExamPass(exam *entity.Exam) ([]byte, error)

	// ParseExamPass decodes the text content of a scanned pass.
	ParseExamPass(data string) (*ExamPass, error)
}
