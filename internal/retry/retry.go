// Package retry bounds how often a rate-limited request is reattempted.
package retry

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jobsift/jobsift/internal/model"
)

// Policy bounds the retry loop for rate-limited requests.
type Policy struct {
	MaxRetries int           // additional attempts after the first failure
	BaseDelay  time.Duration // delay before the first retry, doubled each time
}

// DefaultPolicy matches the upstream APIs' observed tolerance.
var DefaultPolicy = Policy{MaxRetries: 3, BaseDelay: 2 * time.Second}

// Do runs fn, retrying HTTP 429 failures with exponential backoff
// (BaseDelay * 2^attempt). A Retry-After duration on the error takes
// precedence over the computed delay. Any other error, or exhausting the
// retry budget, is returned to the caller; backoff sleeps happen only in
// direct response to a rate-limit error.
func Do(p Policy, logger *slog.Logger, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		var httpErr *model.HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTooManyRequests {
			return err
		}
		if attempt >= p.MaxRetries {
			return err
		}

		delay := p.BaseDelay << attempt
		if httpErr.RetryAfter > 0 {
			delay = httpErr.RetryAfter
		}

		logger.Warn("rate limited, backing off",
			"attempt", attempt+1,
			"max_retries", p.MaxRetries,
			"delay", delay,
		)
		time.Sleep(delay)
	}
}
