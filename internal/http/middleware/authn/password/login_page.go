package password

import (
	"html/template"
	"log/slog"
	"net/http"

	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/pkg/errors"
)

type loginPageVModel struct {
	BaseURL      string
	Email        string
	Next         string
	ErrorMessage string
}

var loginPageTemplate = template.Must(template.New("").Parse(`
<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1" />
		<title>Sign in</title>
	</head>
	<body>
		<main class="login">
			<h1>Sign in</h1>
			{{ if .ErrorMessage }}
			<p class="error" role="alert">{{ .ErrorMessage }}</p>
			{{ end }}
			<form method="post" action="{{ .BaseURL }}auth/login">
				{{ if .Next }}
				<input type="hidden" name="next" value="{{ .Next }}" />
				{{ end }}
				<label for="email">Email</label>
				<input type="email" id="email" name="email" value="{{ .Email }}" required autofocus />
				<label for="password">Password</label>
				<input type="password" id="password" name="password" required />
				<button type="submit">Sign in</button>
			</form>
		</main>
	</body>
</html>
`))

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, statusCode int, vmodel loginPageVModel) {
	ctx := r.Context()

	vmodel.BaseURL = httpCtx.BaseURL(ctx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := loginPageTemplate.Execute(w, vmodel); err != nil {
		slog.ErrorContext(ctx, "could not execute template", slog.Any("error", errors.WithStack(err)))
	}
}
