package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExamPassService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newExamPassService(256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewExamPassService_Defaults(t *testing.T) {
	svc := NewExamPassService(&config.Config{}).(*examPassService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestExamPassService_GenerateExamPass(t *testing.T) {
	svc := newExamPassService(256, "M")
	date := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	png, err := svc.GenerateExamPass(&entity.Exam{
		ID:        uuid.New(),
		WorkerID:  uuid.New(),
		CompanyID: uuid.New(),
		ExamDate:  &date,
	})
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestExamPassService_ParseExamPass(t *testing.T) {
	svc := newExamPassService(256, "M")
	examID := uuid.New()

	payload, err := json.Marshal(service.ExamPass{ExamID: examID, WorkerID: uuid.New(), CompanyID: uuid.New(), Type: examPassType})
	require.NoError(t, err)

	pass, err := svc.ParseExamPass(string(payload))
	require.NoError(t, err)
	assert.Equal(t, examID, pass.ExamID)

	_, err = svc.ParseExamPass(`{"exam_id":"` + examID.String() + `","type":"subscription"}`)
	assert.Error(t, err)

	_, err = svc.ParseExamPass(`{"type":"exam_pass"}`)
	assert.Error(t, err)

	_, err = svc.ParseExamPass("not json")
	assert.Error(t, err)
}
