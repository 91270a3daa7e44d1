package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"examhub/config"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/repository"
	"examhub/internal/domain/service"
	"examhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageExtensions lists the result file types accepted for upload.
var allowedImageExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"pdf":  "application/pdf",
}

// examService implements the ExamUsecase interface.
type examService struct {
	txManager   repository.TransactionManager
	examRepo    repository.ExamRepository
	accountRepo repository.AccountRepository
	imageStore  service.ImageStore
	passService service.ExamPassService
	mail        *mailDispatcher
	logger      *slog.Logger
}

// ExamServiceParams holds dependencies for ExamService, injected by Fx.
type ExamServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ExamRepo    repository.ExamRepository
	AccountRepo repository.AccountRepository
	ImageStore  service.ImageStore
	PassService service.ExamPassService
	Notifier    service.Notifier
	Renderer    service.MessageRenderer
	Metrics     service.LifecycleMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewExamService is the constructor for examService.
func NewExamService(params ExamServiceParams) usecase.ExamUsecase {
	var frontend config.FrontendConfig
	if params.Config != nil {
		frontend = params.Config.Frontend
	}

	return &examService{
		txManager:   params.TxManager,
		examRepo:    params.ExamRepo,
		accountRepo: params.AccountRepo,
		imageStore:  params.ImageStore,
		passService: params.PassService,
		mail:        newMailDispatcher(params.Renderer, params.Notifier, params.Metrics, frontend),
		logger:      params.Logger,
	}
}

func (srv *examService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// examImagePrefix is the blob prefix under which an exam's files are stored.
func examImagePrefix(examID uuid.UUID) string {
	return "exams/" + examID.String() + "/"
}

// removeExamFiles deletes the stored files of exams whose rows are already gone.
// The database change is committed at this point, so failures are only logged.
func removeExamFiles(ctx context.Context, store service.ImageStore, logger *slog.Logger, examIDs []uuid.UUID) {
	for _, examID := range examIDs {
		if _, err := store.DeletePrefix(ctx, examImagePrefix(examID)); err != nil {
			logger.Warn("Failed to delete exam files", slog.Any("examID", examID), slog.Any("error", err))
		}
	}
}

// Create schedules an exam between an existing worker and company.
func (srv *examService) Create(ctx context.Context, input *usecase.CreateExamInput) (*entity.Exam, error) {
	if input == nil {
		return nil, invalidInput("exam payload is required")
	}

	exam := &entity.Exam{
		Description: strings.TrimSpace(input.Description),
		ExamDate:    truncateToDay(input.ExamDate),
		WorkerID:    input.WorkerID,
		CompanyID:   input.CompanyID,
	}
	if err := validateExam(exam); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureParticipants(ctx, repoFactory.AccountRepo(), exam.WorkerID, exam.CompanyID); err != nil {
			return err
		}

		if err := repoFactory.ExamRepo().Create(ctx, exam); err != nil {
			return errors.Wrap(err, "failed to create exam")
		}

		return nil
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to execute exam create transaction")
	}

	srv.log(ctx).Info("Exam created", slog.Any("examID", exam.ID), slog.Any("workerID", exam.WorkerID), slog.Any("companyID", exam.CompanyID))

	return exam, nil
}

// Get retrieves one exam.
func (srv *examService) Get(ctx context.Context, id uuid.UUID) (*entity.Exam, error) {
	exam, err := srv.examRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get exam")
	}

	return exam, nil
}

// Update applies a partial update. Changed participants must exist with the right kinds.
func (srv *examService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateExamInput) (*entity.Exam, error) {
	if input == nil {
		return nil, invalidInput("update payload is required")
	}

	var updated *entity.Exam
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		examRepo := repoFactory.ExamRepo()

		exam, err := examRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find exam")
		}

		participantsChanged := false
		if input.Description != nil {
			exam.Description = strings.TrimSpace(*input.Description)
		}
		if input.ExamDate != nil {
			exam.ExamDate = truncateToDay(input.ExamDate)
		}
		if input.WorkerID != nil && *input.WorkerID != exam.WorkerID {
			exam.WorkerID = *input.WorkerID
			participantsChanged = true
		}
		if input.CompanyID != nil && *input.CompanyID != exam.CompanyID {
			exam.CompanyID = *input.CompanyID
			participantsChanged = true
		}

		if err := validateExam(exam); err != nil {
			return err
		}

		if participantsChanged {
			if err := ensureParticipants(ctx, repoFactory.AccountRepo(), exam.WorkerID, exam.CompanyID); err != nil {
				return err
			}
		}

		if err := examRepo.Update(ctx, exam); err != nil {
			return errors.Wrap(err, "failed to update exam")
		}

		updated = exam

		return nil
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to execute exam update transaction")
	}

	srv.log(ctx).Info("Exam updated", slog.Any("examID", id))

	return updated, nil
}

// Delete removes an exam and its stored files.
func (srv *examService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ExamRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete exam")
		}

		return nil
	})
	if err != nil {
		return mapRepositoryError(err, "failed to execute exam delete transaction")
	}

	if _, err := srv.imageStore.DeletePrefix(ctx, examImagePrefix(id)); err != nil {
		srv.log(ctx).Warn("Failed to delete exam files", slog.Any("examID", id), slog.Any("error", err))
	}

	srv.log(ctx).Info("Exam deleted", slog.Any("examID", id))

	return nil
}

// List returns one page of exams matching the filter, newest first.
func (srv *examService) List(ctx context.Context, filter *usecase.ExamListFilter) (*usecase.ExamPage, error) {
	if filter == nil {
		filter = &usecase.ExamListFilter{}
	}
	page := filter.Page.Normalize()

	items, total, err := srv.examRepo.List(ctx, repository.ExamFilter{
		WorkerID:  filter.WorkerID,
		CompanyID: filter.CompanyID,
		Date:      truncateToDay(filter.Date),
		Offset:    page.Offset(),
		Limit:     page.Limit,
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list exams")
	}

	return &usecase.ExamPage{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// UploadImages stores result files, flags the exam and tells the worker the results are ready.
func (srv *examService) UploadImages(ctx context.Context, id uuid.UUID, uploads []usecase.ImageUpload) (*usecase.UploadResult, error) {
	if len(uploads) == 0 {
		return nil, invalidInput("at least one file is required")
	}

	type storedFile struct {
		key, name, contentType string
		upload                 usecase.ImageUpload
	}

	files := make([]storedFile, 0, len(uploads))
	for i, upload := range uploads {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
		defaultType, ok := allowedImageExtensions[ext]
		if !ok {
			return nil, errors.WithStack(domainerrors.ErrUnsupportedFileType.WithDetails(fmt.Sprintf("%q is not png, jpg, jpeg, gif or pdf", upload.Filename)))
		}

		name := sanitizeFileName(upload.Name)
		if name == "" {
			name = sanitizeFileName(strings.TrimSuffix(filepath.Base(upload.Filename), filepath.Ext(upload.Filename)))
		}
		if name == "" {
			name = fmt.Sprintf("file-%d", i+1)
		}

		contentType := upload.ContentType
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = defaultType
			if byExt := mime.TypeByExtension("." + ext); byExt != "" {
				contentType = byExt
			}
		}

		files = append(files, storedFile{
			key:         examImagePrefix(id) + name + "." + ext,
			name:        name + "." + ext,
			contentType: contentType,
			upload:      upload,
		})
	}

	exam, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	images := make([]entity.ExamImage, 0, len(files))
	for _, file := range files {
		size, err := srv.imageStore.Put(ctx, file.key, file.contentType, file.upload.Body)
		if err != nil {
			srv.log(ctx).Error("Failed to store exam file", slog.Any("examID", id), slog.String("key", file.key), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}

		images = append(images, entity.ExamImage{
			Key:         file.key,
			Name:        file.name,
			ContentType: file.contentType,
			Size:        size,
		})
	}

	if !exam.ImageUploaded {
		exam, err = srv.setImageUploaded(ctx, id, true)
		if err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Exam files uploaded", slog.Any("examID", id), slog.Int("files", len(images)))
	srv.notifyResultsReady(ctx, exam)

	return &usecase.UploadResult{Exam: exam, Images: images}, nil
}

// ListImages returns the stored files of an exam.
func (srv *examService) ListImages(ctx context.Context, id uuid.UUID) ([]entity.ExamImage, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	images, err := srv.imageStore.List(ctx, examImagePrefix(id))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return images, nil
}

// DeleteImages removes every stored file of an exam and clears its upload flag.
func (srv *examService) DeleteImages(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	keys, err := srv.imageStore.DeletePrefix(ctx, examImagePrefix(id))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if len(keys) == 0 {
		return nil, errors.WithStack(domainerrors.ErrExamImagesNotFound)
	}

	if _, err := srv.setImageUploaded(ctx, id, false); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Exam files deleted", slog.Any("examID", id), slog.Int("files", len(keys)))

	return keys, nil
}

// ExamPass renders the QR code the worker presents at the clinic.
func (srv *examService) ExamPass(ctx context.Context, id uuid.UUID) ([]byte, error) {
	exam, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.passService.GenerateExamPass(exam)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (srv *examService) setImageUploaded(ctx context.Context, id uuid.UUID, uploaded bool) (*entity.Exam, error) {
	var updated *entity.Exam
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		examRepo := repoFactory.ExamRepo()

		exam, err := examRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find exam")
		}

		exam.ImageUploaded = uploaded
		if err := examRepo.Update(ctx, exam); err != nil {
			return errors.Wrap(err, "failed to update exam upload flag")
		}

		updated = exam

		return nil
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to execute exam upload flag transaction")
	}

	return updated, nil
}

func (srv *examService) notifyResultsReady(ctx context.Context, exam *entity.Exam) {
	worker, err := srv.accountRepo.FindByID(ctx, entity.AccountKindWorker, exam.WorkerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load worker for results notice", slog.Any("examID", exam.ID), slog.Any("error", err))

		return
	}

	srv.mail.dispatch(ctx, srv.log(ctx), service.MessageExamReady, worker.Email, service.MessageData{
		Name:            worker.Name,
		Link:            srv.mail.link(srv.mail.frontend.ExamPath, exam.ID.String()),
		ExamDescription: exam.Description,
		ExamDate:        exam.ExamDate,
	})
}

func ensureParticipants(ctx context.Context, accountRepo repository.AccountRepository, workerID, companyID uuid.UUID) error {
	if _, err := accountRepo.FindByID(ctx, entity.AccountKindWorker, workerID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails("worker not found"))
		}

		return errors.Wrap(err, "failed to find worker")
	}

	if _, err := accountRepo.FindByID(ctx, entity.AccountKindCompany, companyID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.WithStack(domainerrors.ErrAccountNotFound.WithDetails("company not found"))
		}

		return errors.Wrap(err, "failed to find company")
	}

	return nil
}

func validateExam(exam *entity.Exam) error {
	switch {
	case exam.Description == "":
		return invalidInput("description is required")
	case len(exam.Description) > 1000:
		return invalidInput("description must be at most 1000 characters")
	case exam.WorkerID == uuid.Nil:
		return invalidInput("worker_id is required")
	case exam.CompanyID == uuid.Nil:
		return invalidInput("company_id is required")
	}

	return nil
}

// truncateToDay keeps only the calendar date, in UTC.
func truncateToDay(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}

	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &day
}

// sanitizeFileName keeps letters, digits, dashes and underscores.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ' || r == '.':
			return '_'
		default:
			return -1
		}
	}, name)

	return strings.Trim(cleaned, "_")
}
