// Package fetch downloads a GitHub profile page and parses it into a
// document tree.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gitfetch/gitfetch/pkg/logging"
)

// DefaultBaseURL is the site profile pages are fetched from.
const DefaultBaseURL = "https://github.com"

const tracerName = "github.com/gitfetch/gitfetch/pkg/fetch"

//go:generate mockgen -destination=mock_doer_test.go -package=fetch . Doer

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a response whose status was not 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request GET %s\nResponse STATUS_CODE %d", e.URL, e.StatusCode)
}

// ConnectivityError reports a request that never produced a response,
// e.g. DNS failure or a refused connection.
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// Fetcher retrieves profile pages.
type Fetcher struct {
	client  Doer
	baseURL string
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP transport.
func WithClient(c Doer) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithBaseURL points the Fetcher at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.baseURL = u }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New creates a Fetcher. Without options it uses a plain http.Client with
// no timeout against DefaultBaseURL.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{},
		baseURL: DefaultBaseURL,
		logger:  logging.NewDiscardLogger(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// BaseURL returns the site root the Fetcher requests pages from.
func (f *Fetcher) BaseURL() string {
	return strings.TrimRight(f.baseURL, "/")
}

// ProfileURL builds the profile page address for username under base.
func ProfileURL(base, username string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(username)
}

// Fetch issues a single GET for the user's profile page and parses the body.
// It returns *StatusError for a non-200 response and *ConnectivityError when
// no response was received.
func (f *Fetcher) Fetch(ctx context.Context, username string) (*goquery.Document, error) {
	target := ProfileURL(f.baseURL, username)

	ctx, span := f.tracer.Start(ctx, "fetch.profile",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", target)),
	)
	defer span.End()

	f.logger.Debug("fetching profile", "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "connection failed")
		f.logger.Debug("request failed", "url", target, "error", err)
		return nil, &ConnectivityError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	f.logger.Debug("response received", "url", target, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("parsing profile page: %w", err)
	}
	return doc, nil
}
