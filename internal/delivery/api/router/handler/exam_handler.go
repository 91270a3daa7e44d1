package handler

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"examhub/config"
	"examhub/internal/delivery/api/response"
	"examhub/internal/delivery/api/validator"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/usecase"
	"examhub/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formFieldImages     = "images"
	formFieldImageNames = "image_names"
	maxFilesPerUpload   = 20
)

// ExamHandlerParams holds dependencies for ExamHandler, injected by Fx.
type ExamHandlerParams struct {
	fx.In

	ExamUC usecase.ExamUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ExamHandler serves exam appointments, their result files and exam passes.
type ExamHandler struct {
	examUC        usecase.ExamUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewExamHandler is the constructor for ExamHandler
func NewExamHandler(params ExamHandlerParams) *ExamHandler {
	var maxUploadSize int64
	if params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &ExamHandler{
		examUC:        params.ExamUC,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

// CreateExamRequest represents the request body for scheduling an exam
type CreateExamRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
	ExamDate    string `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
	WorkerID    string `json:"worker_id" validate:"required,uuid"`
	CompanyID   string `json:"company_id" validate:"required,uuid"`
}

// UpdateExamRequest is a partial update; omitted fields keep their value.
type UpdateExamRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=1000"`
	ExamDate    *string `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
	WorkerID    *string `json:"worker_id" validate:"omitempty,uuid"`
	CompanyID   *string `json:"company_id" validate:"omitempty,uuid"`
}

// ListExamsQuery binds GET /exams
type ListExamsQuery struct {
	WorkerID  string `query:"worker_id" validate:"omitempty,uuid"`
	CompanyID string `query:"company_id" validate:"omitempty,uuid"`
	Date      string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// UploadResponse lists the stored files after an upload.
type UploadResponse struct {
	Exam   ExamResponse    `json:"exam"`
	Images []ImageResponse `json:"images"`
}

// Create handles POST /exams
func (h *ExamHandler) Create(c echo.Context) error {
	var req CreateExamRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exam input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	input := &usecase.CreateExamInput{
		Description: req.Description,
		ExamDate:    parseDate(req.ExamDate),
		WorkerID:    uuid.MustParse(req.WorkerID),
		CompanyID:   uuid.MustParse(req.CompanyID),
	}
	if !companyMayAssign(c, input.CompanyID) {
		return response.HandleAppError(c, domainerrors.ErrForbidden)
	}

	exam, err := h.examUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newExamResponse(exam))
}

// List handles GET /exams
func (h *ExamHandler) List(c echo.Context) error {
	var query ListExamsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exam filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	filter := &usecase.ExamListFilter{
		Date: parseDate(query.Date),
		Page: usecase.Page{Page: query.Page, Limit: query.Limit},
	}
	if query.WorkerID != "" {
		filter.WorkerID = uuid.MustParse(query.WorkerID)
	}
	if query.CompanyID != "" {
		filter.CompanyID = uuid.MustParse(query.CompanyID)
	}
	if err := scopeExamFilter(c, &filter.WorkerID, &filter.CompanyID); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.examUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.PageData[ExamResponse]{
		Items: newExamResponses(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// Get handles GET /exams/:id
func (h *ExamHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	exam, err := h.examUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !canAccessExam(c, exam) {
		return response.HandleAppError(c, domainerrors.ErrExamNotFound)
	}

	return response.Success(c, http.StatusOK, newExamResponse(exam))
}

// Update handles PUT /exams/:id
func (h *ExamHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	var req UpdateExamRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exam input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	input := &usecase.UpdateExamInput{Description: req.Description}
	if req.ExamDate != nil {
		input.ExamDate = parseDate(*req.ExamDate)
	}
	if req.WorkerID != nil {
		workerID := uuid.MustParse(*req.WorkerID)
		input.WorkerID = &workerID
	}
	if req.CompanyID != nil {
		companyID := uuid.MustParse(*req.CompanyID)
		if !companyMayAssign(c, companyID) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}
		input.CompanyID = &companyID
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	exam, err := h.examUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newExamResponse(exam))
}

// Delete handles DELETE /exams/:id
func (h *ExamHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.examUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImages handles POST /exams/:id/images
// The multipart form carries the files under "images" and, optionally, a stored name for each file
// under "image_names" in the same order.
func (h *ExamHandler) UploadImages(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected a multipart form")
	}

	headers := form.File[formFieldImages]
	if len(headers) == 0 {
		return response.ValidationError(c, map[string]string{formFieldImages: "required"})
	}
	if len(headers) > maxFilesPerUpload {
		return response.ValidationError(c, map[string]string{formFieldImages: fmt.Sprintf("max=%d", maxFilesPerUpload)})
	}
	names := form.Value[formFieldImageNames]

	uploads := make([]usecase.ImageUpload, 0, len(headers))
	for i, header := range headers {
		if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
			return response.ValidationError(c, map[string]string{header.Filename: "max_size=" + util.FormatBytes(h.maxUploadSize)})
		}

		file, err := header.Open()
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Unreadable file "+header.Filename)
		}
		defer closeFile(file)

		upload := usecase.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Body:        file,
		}
		if i < len(names) {
			upload.Name = names[i]
		}
		uploads = append(uploads, upload)
	}

	result, err := h.examUC.UploadImages(c.Request().Context(), id, uploads)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, UploadResponse{
		Exam:   newExamResponse(result.Exam),
		Images: newImageResponses(result.Images),
	})
}

// ListImages handles GET /exams/:id/images
func (h *ExamHandler) ListImages(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	images, err := h.examUC.ListImages(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newImageResponses(images))
}

// DeleteImages handles DELETE /exams/:id/images
func (h *ExamHandler) DeleteImages(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	keys, err := h.examUC.DeleteImages(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deleted": keys})
}

// ExamPass handles GET /exams/:id/pass and returns the QR code as a PNG image.
func (h *ExamHandler) ExamPass(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid exam ID")
	}

	if err := h.authorizeExam(c, id); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.examUC.ExamPass(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if len(png) == 0 {
		return response.HandleAppError(c, domainerrors.ErrInternalError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseDate reads a validated YYYY-MM-DD value. Empty means no date.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}

	return &date
}

func closeFile(file multipart.File) {
	_ = file.Close()
}
