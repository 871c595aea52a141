package common

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type errorPageVModel struct {
	Message string
}

var errorPageTemplate = template.Must(template.New("").Parse(`
<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8" />
		<title>Something went wrong</title>
	</head>
	<body>
		<main class="error">
			<h1>Something went wrong</h1>
			<p>{{ .Message }}</p>
			<p><a href="/">Back to the homepage</a></p>
		</main>
	</body>
</html>
`))

func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	vmodel := errorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(r.Context(), "unexpected error", slog.Any("error", errors.WithStack(err)))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := errorPageTemplate.Execute(w, vmodel); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", slog.Any("error", errors.WithStack(err)))
	}
}
