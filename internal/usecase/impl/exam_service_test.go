package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/repository"
	"examhub/internal/domain/service"
	mockRepo "examhub/internal/mocks/repository"
	mockSvc "examhub/internal/mocks/service"
	"examhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type examServiceFixtures struct {
	service     usecase.ExamUsecase
	tx          *txFixture
	examRepo    *mockRepo.MockExamRepository
	accountRepo *mockRepo.MockAccountRepository
	imageStore  *mockSvc.MockImageStore
	passService *mockSvc.MockExamPassService
	notifier    *mockSvc.MockNotifier
	renderer    *mockSvc.MockMessageRenderer
	metrics     *mockSvc.MockLifecycleMetrics
}

func createTestExamService(t *testing.T) examServiceFixtures {
	tx := newTxFixture(t)
	examRepo := mockRepo.NewMockExamRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	passService := mockSvc.NewMockExamPassService(t)
	notifier := mockSvc.NewMockNotifier(t)
	renderer := mockSvc.NewMockMessageRenderer(t)
	metrics := mockSvc.NewMockLifecycleMetrics(t)

	svc := NewExamService(ExamServiceParams{
		TxManager:   tx.txManager,
		ExamRepo:    examRepo,
		AccountRepo: accountRepo,
		ImageStore:  imageStore,
		PassService: passService,
		Notifier:    notifier,
		Renderer:    renderer,
		Metrics:     metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return examServiceFixtures{
		service:     svc,
		tx:          tx,
		examRepo:    examRepo,
		accountRepo: accountRepo,
		imageStore:  imageStore,
		passService: passService,
		notifier:    notifier,
		renderer:    renderer,
		metrics:     metrics,
	}
}

func newExam() *entity.Exam {
	date := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	return &entity.Exam{
		ID:          uuid.New(),
		Description: "Audiometria",
		ExamDate:    &date,
		WorkerID:    uuid.New(),
		CompanyID:   uuid.New(),
	}
}

func TestExamService_Create_Success(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	workerID, companyID := uuid.New(), uuid.New()
	when := time.Date(2024, 7, 10, 15, 30, 0, 0, time.UTC)

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, workerID).Return(&entity.Account{ID: workerID}, nil)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, companyID).Return(&entity.Account{ID: companyID}, nil)
	fx.tx.examRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Exam")).
		Run(func(_ context.Context, exam *entity.Exam) { exam.ID = uuid.New() }).
		Return(nil)

	exam, err := fx.service.Create(ctx, &usecase.CreateExamInput{
		Description: " Audiometria ",
		ExamDate:    &when,
		WorkerID:    workerID,
		CompanyID:   companyID,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, exam.ID)
	assert.Equal(t, "Audiometria", exam.Description)
	require.NotNil(t, exam.ExamDate)
	assert.Equal(t, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), *exam.ExamDate)
}

func TestExamService_Create_UnknownParticipant(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	workerID, companyID := uuid.New(), uuid.New()

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, workerID).Return(&entity.Account{ID: workerID}, nil)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, companyID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Create(ctx, &usecase.CreateExamInput{Description: "x", WorkerID: workerID, CompanyID: companyID})

	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "company not found", appErr.Details())
}

func TestExamService_Create_InvalidInput(t *testing.T) {
	fx := createTestExamService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreateExamInput{Description: "x", WorkerID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestExamService_Get_NotFound(t *testing.T) {
	fx := createTestExamService(t)
	id := uuid.New()

	fx.examRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrExamNotFound)

	_, err := fx.service.Get(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrExamNotFound)
}

func TestExamService_Update_ChecksNewParticipants(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()
	newWorker := uuid.New()

	fx.tx.expectTx(1)
	fx.tx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, newWorker).Return(&entity.Account{ID: newWorker}, nil)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, exam.CompanyID).Return(&entity.Account{ID: exam.CompanyID}, nil)
	fx.tx.examRepo.EXPECT().Update(ctx, exam).Return(nil)

	got, err := fx.service.Update(ctx, exam.ID, &usecase.UpdateExamInput{
		Description: strPtr("Espirometria"),
		WorkerID:    &newWorker,
	})

	require.NoError(t, err)
	assert.Equal(t, "Espirometria", got.Description)
	assert.Equal(t, newWorker, got.WorkerID)
}

func TestExamService_Update_KeepsParticipants(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()

	fx.tx.expectTx(1)
	fx.tx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.tx.examRepo.EXPECT().Update(ctx, exam).Return(nil)

	_, err := fx.service.Update(ctx, exam.ID, &usecase.UpdateExamInput{WorkerID: &exam.WorkerID})

	require.NoError(t, err)
}

func TestExamService_Delete(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectTx(1)
	fx.tx.examRepo.EXPECT().Delete(ctx, id).Return(nil)
	fx.imageStore.EXPECT().DeletePrefix(ctx, examImagePrefix(id)).Return(nil, nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}

func TestExamService_Delete_NotFound(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectTx(1)
	fx.tx.examRepo.EXPECT().Delete(ctx, id).Return(repository.ErrExamNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, id), domainerrors.ErrExamNotFound)
}

func TestExamService_List(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	workerID := uuid.New()
	day := time.Date(2024, 7, 10, 18, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	fx.examRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.ExamFilter) bool {
			return f.WorkerID == workerID && f.CompanyID == uuid.Nil && f.Date != nil && f.Date.Equal(midnight) && f.Offset == 10 && f.Limit == 10
		})).
		Return([]*entity.Exam{newExam()}, int64(11), nil)

	page, err := fx.service.List(ctx, &usecase.ExamListFilter{WorkerID: workerID, Date: &day, Page: usecase.Page{Page: 2}})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.Page)
}

func TestExamService_UploadImages_Success(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()
	worker := &entity.Account{ID: exam.WorkerID, Kind: entity.AccountKindWorker, Email: "ana@example.com", Name: "Ana"}
	prefix := examImagePrefix(exam.ID)

	fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.imageStore.EXPECT().Put(ctx, prefix+"audiometria.png", "image/png", mock.Anything).Return(int64(4), nil)
	fx.imageStore.EXPECT().Put(ctx, prefix+"laudo_final.pdf", "application/pdf", mock.Anything).Return(int64(7), nil)

	fx.tx.expectTx(1)
	fx.tx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.tx.examRepo.EXPECT().Update(ctx, mock.MatchedBy(func(e *entity.Exam) bool { return e.ImageUploaded })).Return(nil)

	fx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, exam.WorkerID).Return(worker, nil)
	fx.renderer.EXPECT().
		Render(service.MessageExamReady, mock.MatchedBy(func(data service.MessageData) bool {
			return data.Link == "https://app.example.com/exames/"+exam.ID.String() && data.ExamDescription == "Audiometria"
		})).
		Return(&service.Message{Subject: "ready", HTML: "<p>ready</p>"}, nil)
	fx.notifier.EXPECT().Send(ctx, "ana@example.com", "ready", "<p>ready</p>").Return(nil)
	fx.metrics.EXPECT().RecordMail(service.MessageExamReady, mailOutcomeSent).Return()

	result, err := fx.service.UploadImages(ctx, exam.ID, []usecase.ImageUpload{
		{Name: "audiometria", Filename: "scan.PNG", ContentType: "image/png", Body: strings.NewReader("data")},
		{Filename: "laudo final.pdf", ContentType: "application/pdf", Body: strings.NewReader("content")},
	})

	require.NoError(t, err)
	assert.True(t, result.Exam.ImageUploaded)
	require.Len(t, result.Images, 2)
	assert.Equal(t, "audiometria.png", result.Images[0].Name)
	assert.Equal(t, int64(4), result.Images[0].Size)
	assert.Equal(t, "laudo_final.pdf", result.Images[1].Name)
}

func TestExamService_UploadImages_RejectsExtension(t *testing.T) {
	fx := createTestExamService(t)

	_, err := fx.service.UploadImages(context.Background(), uuid.New(), []usecase.ImageUpload{
		{Name: "virus", Filename: "virus.exe", Body: strings.NewReader("MZ")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestExamService_UploadImages_RequiresFiles(t *testing.T) {
	fx := createTestExamService(t)

	_, err := fx.service.UploadImages(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestExamService_UploadImages_StorageFailure(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()

	fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.imageStore.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))

	_, err := fx.service.UploadImages(ctx, exam.ID, []usecase.ImageUpload{
		{Name: "a", Filename: "a.jpg", ContentType: "image/jpeg", Body: strings.NewReader("x")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestExamService_ListImages(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()
	images := []entity.ExamImage{{Key: examImagePrefix(exam.ID) + "a.png", Name: "a.png"}}

	fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.imageStore.EXPECT().List(ctx, examImagePrefix(exam.ID)).Return(images, nil)

	got, err := fx.service.ListImages(ctx, exam.ID)

	require.NoError(t, err)
	assert.Equal(t, images, got)
}

func TestExamService_DeleteImages(t *testing.T) {
	t.Run("removes files and clears the flag", func(t *testing.T) {
		fx := createTestExamService(t)
		ctx := context.Background()
		exam := newExam()
		exam.ImageUploaded = true
		keys := []string{examImagePrefix(exam.ID) + "a.png"}

		fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
		fx.imageStore.EXPECT().DeletePrefix(ctx, examImagePrefix(exam.ID)).Return(keys, nil)
		fx.tx.expectTx(1)
		fx.tx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
		fx.tx.examRepo.EXPECT().Update(ctx, mock.MatchedBy(func(e *entity.Exam) bool { return !e.ImageUploaded })).Return(nil)

		got, err := fx.service.DeleteImages(ctx, exam.ID)

		require.NoError(t, err)
		assert.Equal(t, keys, got)
	})

	t.Run("nothing stored", func(t *testing.T) {
		fx := createTestExamService(t)
		ctx := context.Background()
		exam := newExam()

		fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
		fx.imageStore.EXPECT().DeletePrefix(ctx, examImagePrefix(exam.ID)).Return(nil, nil)

		_, err := fx.service.DeleteImages(ctx, exam.ID)

		assert.ErrorIs(t, err, domainerrors.ErrExamImagesNotFound)
	})
}

func TestExamService_ExamPass(t *testing.T) {
	fx := createTestExamService(t)
	ctx := context.Background()
	exam := newExam()

	fx.examRepo.EXPECT().FindByID(ctx, exam.ID).Return(exam, nil)
	fx.passService.EXPECT().GenerateExamPass(exam).Return([]byte("\x89PNG"), nil)

	png, err := fx.service.ExamPass(ctx, exam.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "laudo_final", sanitizeFileName(" laudo final "))
	assert.Equal(t, "raio-x_2024", sanitizeFileName("raio-x.2024"))
	assert.Equal(t, "", sanitizeFileName("../../"))
}
