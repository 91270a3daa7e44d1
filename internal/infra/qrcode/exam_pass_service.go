package qrcode

import (
	"encoding/json"
	"strings"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	examPassType = "exam_pass"
	defaultSize  = 256
)

type examPassService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewExamPassService creates the exam pass QR service. A missing qrcode section uses 256px and level M.
func NewExamPassService(cfg *config.Config) service.ExamPassService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newExamPassService(size, level)
}

func newExamPassService(size int, errorCorrectionLevel string) *examPassService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &examPassService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateExamPass encodes the exam reference as JSON inside a PNG QR code.
func (s *examPassService) GenerateExamPass(exam *entity.Exam) ([]byte, error) {
	payload, err := json.Marshal(service.ExamPass{
		ExamID:    exam.ID,
		WorkerID:  exam.WorkerID,
		CompanyID: exam.CompanyID,
		ExamDate:  exam.ExamDate,
		Type:      examPassType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal exam pass")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseExamPass decodes the text of a scanned pass.
func (s *examPassService) ParseExamPass(data string) (*service.ExamPass, error) {
	var pass service.ExamPass
	if err := json.Unmarshal([]byte(data), &pass); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal exam pass")
	}

	if pass.Type != examPassType {
		return nil, errors.Errorf("invalid QR code type: %s", pass.Type)
	}
	if pass.ExamID == uuid.Nil {
		return nil, errors.New("exam pass without exam id")
	}

	return &pass, nil
}
