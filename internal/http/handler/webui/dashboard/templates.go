package dashboard

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"timeAgo": humanize.Time,
}

func tabTemplate(page string) *template.Template {
	return template.Must(
		template.New("layout.html.tmpl").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html.tmpl", "templates/"+page),
	)
}

type dashboardPage struct {
	BaseURL   string
	User      *authn.User
	ActiveTab Tab
	Tabs      []Tab
	Flashes   []Flash
}

func renderTab(w http.ResponseWriter, r *http.Request, tmpl *template.Template, statusCode int, vmodel any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := tmpl.ExecuteTemplate(w, "layout", vmodel); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", slog.Any("error", errors.WithStack(err)))
	}
}
