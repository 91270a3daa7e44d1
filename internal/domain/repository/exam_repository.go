package repository

import (
	"context"
	"errors"
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExamNotFound is returned when no exam matches the lookup.
var ErrExamNotFound = errors.New("exam not found")

// ExamFilter narrows exam listings. Zero values match everything.
type ExamFilter struct {
	WorkerID  uuid.UUID
	CompanyID uuid.UUID
	Date      *time.Time // Matches the calendar day of exam_date.
	Offset    int
	Limit     int
}

// ExamRepository defines persistence for exam records.
type ExamRepository interface {
	// FindByID retrieves a single exam.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error)

	// Create persists a new exam.
	Create(ctx context.Context, exam *entity.Exam) error

	// Update persists the mutable fields of an exam.
	Update(ctx context.Context, exam *entity.Exam) error

	// Delete removes an exam.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccount removes every exam that references the account, returning the removed ids.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)

	// DeleteByAccounts removes every exam that references any of the accounts, returning the removed ids.
	DeleteByAccounts(ctx context.Context, accountIDs []uuid.UUID) ([]uuid.UUID, error)

	// List returns one page of exams plus the total number matching the filter.
	List(ctx context.Context, filter ExamFilter) ([]*entity.Exam, int64, error)

	// Count counts exams. When onlyWithImages is set only exams with uploaded results are counted.
	Count(ctx context.Context, onlyWithImages bool) (int64, error)
}
