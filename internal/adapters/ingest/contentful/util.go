package contentful

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
)

// StatusError carries the HTTP status of a failed Contentful response
type StatusError struct {
	Status int
	Err    error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

func statusError(status int, err error) error {
	return &StatusError{Status: status, Err: err}
}

// StatusOf returns the HTTP status behind err, or 0
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// errorForStatus classifies a non 2xx response; only 502, 503 and 504 are transient
func errorForStatus(status int, body []byte) error {
	const format = "contentful unexpected status %d body %s"
	switch status {
	case http.StatusUnauthorized:
		return perr.Unauthorizedf(format, status, body)
	case http.StatusForbidden:
		return perr.Forbiddenf(format, status, body)
	case http.StatusNotFound:
		return perr.NotFoundf(format, status, body)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return perr.InvalidArgf(format, status, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return perr.Unavailablef(format, status, body)
	}
	return perr.Internalf(format, status, body)
}

// rateLimitWait reads X-Contentful-RateLimit-Reset, then Retry-After, both in seconds
func rateLimitWait(h http.Header) time.Duration {
	for _, k := range []string{"X-Contentful-RateLimit-Reset", "Retry-After"} {
		if s := atoi(h.Get(k)); s > 0 {
			return time.Duration(s) * time.Second
		}
	}
	return 0
}

func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
