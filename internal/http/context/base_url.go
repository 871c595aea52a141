package context

import (
	"context"
)

const keyBaseURL contextKey = "baseURL"

func BaseURL(ctx context.Context) string {
	baseURL, ok := ctx.Value(keyBaseURL).(string)
	if !ok {
		return "/"
	}

	return baseURL
}

func SetBaseURL(ctx context.Context, baseURL string) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}
