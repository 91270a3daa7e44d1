package usecase

import (
	"context"
	"io"
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateExamInput defines a new exam appointment.
type CreateExamInput struct {
	Description string
	ExamDate    *time.Time
	WorkerID    uuid.UUID
	CompanyID   uuid.UUID
}

// UpdateExamInput carries a partial update. Nil fields are left unchanged.
type UpdateExamInput struct {
	Description *string
	ExamDate    *time.Time
	WorkerID    *uuid.UUID
	CompanyID   *uuid.UUID
}

// ExamListFilter narrows the exam listing. Zero ids and a nil date match everything.
type ExamListFilter struct {
	WorkerID  uuid.UUID
	CompanyID uuid.UUID
	Date      *time.Time
	Page      Page
}

// ExamPage is one page of exams.
type ExamPage struct {
	Items []*entity.Exam
	Total int64
	Page  int
	Limit int
}

// ImageUpload is one result file. Name is the stored base name; Filename supplies the extension.
type ImageUpload struct {
	Name        string
	Filename    string
	ContentType string
	Body        io.Reader
}

// UploadResult reports what was stored for an exam.
type UploadResult struct {
	Exam   *entity.Exam
	Images []entity.ExamImage
}

// ExamUsecase manages exam appointments and their result files.
type ExamUsecase interface {
	Create(ctx context.Context, input *CreateExamInput) (*entity.Exam, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Exam, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateExamInput) (*entity.Exam, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *ExamListFilter) (*ExamPage, error)
	UploadImages(ctx context.Context, id uuid.UUID, uploads []ImageUpload) (*UploadResult, error)
	ListImages(ctx context.Context, id uuid.UUID) ([]entity.ExamImage, error)
	DeleteImages(ctx context.Context, id uuid.UUID) ([]string, error)
	ExamPass(ctx context.Context, id uuid.UUID) ([]byte, error)
}
