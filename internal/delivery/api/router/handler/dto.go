package handler

import (
	"time"

	"examhub/internal/domain/entity"
)

const dateLayout = time.DateOnly

// AccountResponse is the public view of an account. The credential hash is never exposed.
type AccountResponse struct {
	ID        string             `json:"id"`
	Kind      entity.AccountKind `json:"kind"`
	Email     string             `json:"email"`
	Active    bool               `json:"active"`
	Name      string             `json:"name"`
	Phone     string             `json:"phone,omitempty"`
	TaxID     string             `json:"tax_id"`
	Address   *entity.Address    `json:"address,omitempty"`
	Role      entity.Role        `json:"role,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func newAccountResponse(account *entity.Account) AccountResponse {
	resp := AccountResponse{
		ID:        account.ID.String(),
		Kind:      account.Kind,
		Email:     account.Email,
		Active:    account.Active,
		Name:      account.Name,
		Phone:     account.Phone,
		TaxID:     account.TaxID,
		Address:   account.Address,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	if account.Kind == entity.AccountKindWorker {
		resp.Role = account.SessionRole()
	}

	return resp
}

func newAccountResponses(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, newAccountResponse(account))
	}

	return out
}

// ExamResponse is the public view of an exam.
type ExamResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	ExamDate      *string   `json:"exam_date"`
	ImageUploaded bool      `json:"image_uploaded"`
	WorkerID      string    `json:"worker_id"`
	CompanyID     string    `json:"company_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newExamResponse(exam *entity.Exam) ExamResponse {
	resp := ExamResponse{
		ID:            exam.ID.String(),
		Description:   exam.Description,
		ImageUploaded: exam.ImageUploaded,
		WorkerID:      exam.WorkerID.String(),
		CompanyID:     exam.CompanyID.String(),
		CreatedAt:     exam.CreatedAt,
		UpdatedAt:     exam.UpdatedAt,
	}
	if exam.ExamDate != nil {
		date := exam.ExamDate.Format(dateLayout)
		resp.ExamDate = &date
	}

	return resp
}

func newExamResponses(exams []*entity.Exam) []ExamResponse {
	out := make([]ExamResponse, 0, len(exams))
	for _, exam := range exams {
		out = append(out, newExamResponse(exam))
	}

	return out
}

// ImageResponse describes one stored result file.
type ImageResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}

func newImageResponses(images []entity.ExamImage) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, ImageResponse(image))
	}

	return out
}

// PageQuery binds the common pagination query parameters.
type PageQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}
