// Package contentful is a small Content Delivery API client that pages through the entries
// of one content type with retries on transient and rate limited responses
package contentful

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/config"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/validate"
)

const (
	baseURLDefault     = "https://cdn.contentful.com"
	envDefault         = "master"
	contentTypeDefault = "product"
	defaultTimeout     = 10 * time.Second
	defaultPageSize    = 100
	maxPageSize        = 1000
	defaultMaxRetry    = 3
	defaultRetryBase   = 500 * time.Millisecond
	maxBackoff         = 30 * time.Second
)

// Options configures the Client
type Options struct {
	SpaceID     string `json:"spaceId" validate:"required"`
	AccessToken string `json:"accessToken" validate:"required"`
	Environment string `json:"environment"`
	ContentType string `json:"contentType"`
	BaseURL     string `json:"baseUrl" validate:"omitempty,url"`
	Timeout     time.Duration
	PageSize    int `json:"pageSize" validate:"gte=0,lte=1000"`

	// Retry config for transport errors, 429 and 502/503/504
	MaxRetries int
	RetryBase  time.Duration
}

// OptionsFromEnv reads CONTENTFUL_* variables; required values are checked by NewClient
func OptionsFromEnv() Options {
	c := config.New().Prefix("CONTENTFUL_")
	return Options{
		SpaceID:     c.MayString("SPACE_ID", ""),
		AccessToken: c.MayString("ACCESS_TOKEN", ""),
		Environment: c.MayString("ENVIRONMENT", envDefault),
		ContentType: c.MayString("CONTENT_TYPE", contentTypeDefault),
		BaseURL:     c.MayString("BASE_URL", baseURLDefault),
		Timeout:     c.MayDuration("TIMEOUT", defaultTimeout),
		PageSize:    c.MayInt("PAGE_SIZE", defaultPageSize),
		MaxRetries:  c.MayInt("MAX_RETRIES", defaultMaxRetry),
	}
}

// Client fetches entries from one space and environment
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient validates o and fills defaults
func NewClient(o Options) (*Client, error) {
	if err := validate.Struct(o); err != nil {
		return nil, err
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Environment == "" {
		o.Environment = envDefault
	}
	if o.ContentType == "" {
		o.ContentType = contentTypeDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("contentful"),
		now:   time.Now,
		sleep: sleepCtx,
	}, nil
}

// Do issues a GET for url with auth headers, retries and rate limit handling. Failures
// classified as retryable by perr.Retryable are retried up to MaxRetries. The caller closes
// the body of a returned response.
func (c *Client) Do(ctx context.Context, url string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, wait, err := c.attempt(ctx, url, attempt)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !perr.Retryable(err) || !c.shouldRetry(attempt) {
			return nil, err
		}

		c.log.Warn().
			Err(err).
			Int("status", StatusOf(err)).
			Dur("retry_in", wait).
			Int("attempt", attempt).
			Msg("contentful request failed retrying")
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

// attempt sends one GET; a failed attempt also returns the wait before the next one
func (c *Client) attempt(ctx context.Context, url string, attempt int) (*http.Response, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeUnknown, "contentful new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.AccessToken)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, c.backoff(attempt), perr.Wrap(err, perr.ErrorCodeUnavailable, "contentful request failed")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Int("attempt", attempt).
		Dur("latency", lat).
		Msg("contentful http response")

	switch resp.StatusCode {
	case http.StatusOK:
		return resp, 0, nil
	case http.StatusTooManyRequests:
		wait := rateLimitWait(resp.Header)
		if wait <= 0 {
			wait = c.backoff(attempt)
		}
		_ = drainAndClose(resp.Body)
		return nil, wait, statusError(resp.StatusCode, perr.New(perr.ErrorCodeTooManyRequests, "contentful rate limited"))
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = resp.Body.Close()
	return nil, c.backoff(attempt), statusError(resp.StatusCode, errorForStatus(resp.StatusCode, body))
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
