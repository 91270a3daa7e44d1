package postgres

import (
	"context"
	"time"

	"examhub/internal/domain/entity"
	"examhub/internal/domain/repository"
	"examhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// examRepository implements the repository.ExamRepository interface using GORM.
type examRepository struct {
	db *gorm.DB
}

// NewExamRepository is the constructor for examRepository.
func NewExamRepository(db *gorm.DB) repository.ExamRepository {
	return &examRepository{db: db}
}

// FindByID retrieves a single exam.
func (repo *examRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Exam, error) {
	var examM model.ExamModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&examM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExamNotFound
		}

		return nil, errors.Wrap(err, "failed to find exam by id")
	}

	return toExamDomain(&examM), nil
}

// Create persists a new exam.
func (repo *examRepository) Create(ctx context.Context, exam *entity.Exam) error {
	if exam.ID == uuid.Nil {
		exam.ID = uuid.New()
	}
	examM := fromExamDomain(exam)

	if err := repo.db.WithContext(ctx).Create(examM).Error; err != nil {
		return errors.Wrap(err, "failed to create exam")
	}

	exam.CreatedAt = examM.CreatedAt
	exam.UpdatedAt = examM.UpdatedAt

	return nil
}

// Update persists the mutable fields of an exam.
func (repo *examRepository) Update(ctx context.Context, exam *entity.Exam) error {
	examM := fromExamDomain(exam)
	examM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ExamModel{}).
		Where("id = ?", exam.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(examM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update exam")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExamNotFound
	}

	exam.UpdatedAt = examM.UpdatedAt

	return nil
}

// Delete removes an exam.
func (repo *examRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExamModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete exam")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExamNotFound
	}

	return nil
}

// DeleteByAccount removes the exams where the account is either the worker or the company.
func (repo *examRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	return repo.DeleteByAccounts(ctx, []uuid.UUID{accountID})
}

// DeleteByAccounts removes the exams referencing any of the accounts.
func (repo *examRepository) DeleteByAccounts(ctx context.Context, accountIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.ExamModel{}).
		Where("worker_id IN ? OR company_id IN ?", accountIDs, accountIDs).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect exams of accounts")
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ExamModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete exams of accounts")
	}

	return ids, nil
}

// List returns one page of exams, newest first.
func (repo *examRepository) List(ctx context.Context, filter repository.ExamFilter) ([]*entity.Exam, int64, error) {
	scope := func(tx *gorm.DB) *gorm.DB {
		if filter.WorkerID != uuid.Nil {
			tx = tx.Where("worker_id = ?", filter.WorkerID)
		}
		if filter.CompanyID != uuid.Nil {
			tx = tx.Where("company_id = ?", filter.CompanyID)
		}
		if filter.Date != nil {
			d := filter.Date.UTC()
			start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			tx = tx.Where("exam_date >= ? AND exam_date < ?", start, start.AddDate(0, 0, 1))
		}

		return tx
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ExamModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count exams")
	}

	var examMs []model.ExamModel
	err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&examMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list exams")
	}

	exams := make([]*entity.Exam, 0, len(examMs))
	for i := range examMs {
		exams = append(exams, toExamDomain(&examMs[i]))
	}

	return exams, total, nil
}

// Count counts exams, optionally only those with uploaded files.
func (repo *examRepository) Count(ctx context.Context, onlyWithImages bool) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ExamModel{})
	if onlyWithImages {
		query = query.Where("image_uploaded = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count exams")
	}

	return count, nil
}

func toExamDomain(examM *model.ExamModel) *entity.Exam {
	return &entity.Exam{
		ID:            examM.ID,
		Description:   examM.Description,
		ExamDate:      examM.ExamDate,
		ImageUploaded: examM.ImageUploaded,
		WorkerID:      examM.WorkerID,
		CompanyID:     examM.CompanyID,
		CreatedAt:     examM.CreatedAt,
		UpdatedAt:     examM.UpdatedAt,
	}
}

func fromExamDomain(exam *entity.Exam) *model.ExamModel {
	return &model.ExamModel{
		ID:            exam.ID,
		Description:   exam.Description,
		ExamDate:      exam.ExamDate,
		ImageUploaded: exam.ImageUploaded,
		WorkerID:      exam.WorkerID,
		CompanyID:     exam.CompanyID,
		CreatedAt:     exam.CreatedAt,
		UpdatedAt:     exam.UpdatedAt,
	}
}
