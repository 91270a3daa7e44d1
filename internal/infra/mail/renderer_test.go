package mail

import (
	"testing"
	"time"

	"examhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Activation(t *testing.T) {
	msg, err := NewRenderer().Render(service.MessageActivation, service.MessageData{
		Name: "Ana",
		Link: "https://app.examhub.test/confirmar-email/tok?x=1&y=2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Por favor, confirme seu e-mail", msg.Subject)
	assert.Contains(t, msg.HTML, "Olá, Ana!")
	assert.Contains(t, msg.HTML, `href="https://app.examhub.test/confirmar-email/tok?x=1&amp;y=2"`)
}

func TestRenderer_EscapesNames(t *testing.T) {
	msg, err := NewRenderer().Render(service.MessageReset, service.MessageData{Name: "<script>", Link: "https://x"})
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestRenderer_ExamReady(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	msg, err := NewRenderer().Render(service.MessageExamReady, service.MessageData{
		Name:            "Ana",
		ExamDescription: "Audiometria",
		ExamDate:        &date,
	})
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "<b>Audiometria</b>")
	assert.Contains(t, msg.HTML, "10/03/2026")
	assert.NotContains(t, msg.HTML, "href")
}

func TestRenderer_UnknownKind(t *testing.T) {
	_, err := NewRenderer().Render(service.MessageKind("newsletter"), service.MessageData{})
	assert.Error(t, err)
}
