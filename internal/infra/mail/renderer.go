package mail

import (
	"bytes"
	"html/template"

	"examhub/internal/domain/service"

	"github.com/pkg/errors"
)

type messageTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[service.MessageKind]messageTemplate{
	service.MessageActivation: {
		subject: "Por favor, confirme seu e-mail",
		body: template.Must(template.New("activation").Parse(
			`<p>Olá{{with .Name}}, {{.}}{{end}}!</p>` +
				`<p><b>Bem-vindo! Por favor, confirme seu e-mail e defina sua senha clicando <a href="{{.Link}}">aqui</a>.</b></p>` +
				`<p>Se você não solicitou este cadastro, ignore esta mensagem.</p>`,
		)),
	},
	service.MessageReset: {
		subject: "Redefinição de senha",
		body: template.Must(template.New("reset").Parse(
			`<p>Olá{{with .Name}}, {{.}}{{end}}!</p>` +
				`<p><b>Para redefinir sua senha, clique <a href="{{.Link}}">aqui</a>.</b></p>` +
				`<p>Se você não solicitou a redefinição, ignore esta mensagem.</p>`,
		)),
	},
	service.MessageExamReady: {
		subject: "Resultado de exame disponível",
		body: template.Must(template.New("exam_ready").Parse(
			`<p>Olá{{with .Name}}, {{.}}{{end}}!</p>` +
				`<p>O resultado do exame <b>{{.ExamDescription}}</b>` +
				`{{with .ExamDate}} realizado em {{.Format "02/01/2006"}}{{end}} já está disponível.</p>` +
				`{{with .Link}}<p>Consulte <a href="{{.}}">aqui</a>.</p>{{end}}`,
		)),
	},
}

type templateRenderer struct{}

// NewRenderer returns the built-in HTML message renderer.
func NewRenderer() service.MessageRenderer {
	return templateRenderer{}
}

// Render executes the template of kind with data.
func (templateRenderer) Render(kind service.MessageKind, data service.MessageData) (*service.Message, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return nil, errors.Errorf("unknown message kind: %s", kind)
	}

	var buf bytes.Buffer
	if err := tmpl.body.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "render %s message", kind)
	}

	return &service.Message{Subject: tmpl.subject, HTML: buf.String()}, nil
}
