package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFiles = map[Kind]string{
	KindActivation:          "activation.html",
	KindPasswordReset:       "password-reset.html",
	KindBookingConfirmation: "booking-confirmation.html",
	KindBookingCancellation: "booking-cancellation.html",
	KindPlanCreated:         "plan-created.html",
	KindPlanDeleted:         "plan-deleted.html",
}

var funcs = template.FuncMap{
	"price": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

// Each kind is parsed together with the shared layout so the visual shell is
// defined once.
var templates = mustParseTemplates()

func mustParseTemplates() map[Kind]*template.Template {
	parsed := make(map[Kind]*template.Template, len(templateFiles))
	for kind, file := range templateFiles {
		parsed[kind] = template.Must(
			template.New(file).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+file),
		)
	}
	return parsed
}

func render(n Notification) (string, error) {
	tmpl, ok := templates[n.Kind]
	if !ok {
		return "", fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", n.Data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", n.Kind, err)
	}
	return body.String(), nil
}
