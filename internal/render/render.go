// Package render turns saved submissions into result-panel markup.
// Every user-supplied value goes through EscapeHTML; labels are resolved first.
package render

import (
	"html"
	"strings"
	"sync"
	"text/template"

	"github.com/coursemind/landing-forms/internal/models"
	apperrors "github.com/coursemind/landing-forms/pkg/errors"
	"github.com/coursemind/landing-forms/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML neutralises & < > " and '
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var funcs = template.FuncMap{
	"esc":          EscapeHTML,
	"roleLabel":    func(r models.Role) string { return r.Label() },
	"channelLabel": func(c models.Channel) string { return c.Label() },
}

var consultationTemplate = template.Must(template.New("consultation").Funcs(funcs).Parse(`
    <h3 style="margin:0 0 8px;">Запись на консультацию принята</h3>
    <p style="margin:0 0 6px;"><strong>Роль:</strong> {{ roleLabel .Role | esc }}</p>
    <p style="margin:0 0 6px;"><strong>Канал:</strong> {{ channelLabel .Channel | esc }}</p>
    <p style="margin:0 0 6px;"><strong>Контакт:</strong> {{ esc .Contact }}</p>
    <p style="margin:0 0 6px;"><strong>Время:</strong> {{ esc .Time }}</p>
    <p style="margin:0;"><strong>Комментарий:</strong> {{ esc .Comment }}</p>
`))

var demoTemplate = template.Must(template.New("demo").Funcs(funcs).Parse(`
    <h3 style="margin:0 0 8px;">Заявка принята</h3>
    <p style="margin:0 0 6px;"><strong>Имя:</strong> {{ esc .Name }}</p>
    <p style="margin:0 0 6px;"><strong>Email:</strong> {{ esc .Email }}</p>
    <p style="margin:0 0 6px;"><strong>Статус:</strong> {{ roleLabel .Status | esc }}</p>
    <p style="margin:0;"><strong>Сообщение:</strong> {{ esc .Message }}</p>
`))

// Consultation renders the consultation result panel
func Consultation(req *models.ConsultationRequest) string {
	return execute(consultationTemplate, req)
}

// Demo renders the demo request result panel
func Demo(req *models.DemoRequest) string {
	return execute(demoTemplate, req)
}

func execute(tmpl *template.Template, data any) string {
	var sb strings.Builder
	// Fields and funcs are fixed, so only a nil payload gets here
	if err := tmpl.Execute(&sb, data); err != nil {
		logger.LogError(apperrors.InternalError("render "+tmpl.Name()+": "+err.Error()), "Failed to render result panel")
		return ""
	}
	return sb.String()
}

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// PlainText strips markup down to its text, one non-empty line per block
func PlainText(markup string) string {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	text := html.UnescapeString(strictPolicy.Sanitize(markup))
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
