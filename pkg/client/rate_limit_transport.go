package client

import (
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests the server rejects with 429, waiting
// out the Retry-After or X-RateLimit-Reset hint between attempts. The last
// 429 response is returned once MaxRetries is exhausted.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

// RoundTrip implements [http.RoundTripper].
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := base.RoundTrip(req)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt == t.MaxRetries {
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		wait := t.waitFor(res)

		slog.WarnContext(req.Context(), "request was rate limited, retrying", slog.Duration("wait", wait), slog.Int("attempt", attempt+1), slog.Int("max_retries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(wait):
		}

		if err := rewindBody(req); err != nil {
			return nil, errors.WithStack(err)
		}
	}
}

func (t *RateLimitTransport) waitFor(res *http.Response) time.Duration {
	if wait, ok := parseRetryAfter(res.Header.Get("Retry-After")); ok {
		return withJitter(wait)
	}

	if wait, ok := parseRateLimitReset(res.Header.Get("X-RateLimit-Reset")); ok {
		return wait
	}

	return t.DefaultWait
}

func rewindBody(req *http.Request) error {
	if req.Body == nil {
		return nil
	}

	if req.GetBody == nil {
		return errors.New("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return errors.WithStack(err)
	}

	req.Body = body

	return nil
}

// Retry-After carries either a delay in seconds or an HTTP date.
func parseRetryAfter(raw string) (time.Duration, bool) {
	if raw == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(raw); err == nil {
		return time.Until(date), true
	}

	return 0, false
}

// X-RateLimit-Reset carries the unix time at which the window reopens.
func parseRateLimitReset(raw string) (time.Duration, bool) {
	if raw == "" {
		return 0, false
	}

	reset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	wait := time.Until(time.Unix(reset, 0))
	if wait <= 0 {
		return 0, false
	}

	return wait, true
}

func withJitter(wait time.Duration) time.Duration {
	return wait + time.Duration(rand.Int63n(int64(wait)/2+1))
}
