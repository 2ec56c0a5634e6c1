// Package pipeline runs one gitfetch invocation: fetch the profile page,
// extract its fields and present them.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gitfetch/gitfetch/pkg/fetch"
	"github.com/gitfetch/gitfetch/pkg/logging"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/gitfetch/gitfetch/pkg/present"
	"github.com/gitfetch/gitfetch/pkg/profile"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const msgOffline = "Please check your internet connection!"

// Runner holds the stages of a run.
type Runner struct {
	Fetcher   *fetch.Fetcher
	Presenter *present.Presenter
	Printer   *output.Printer
	Logger    *slog.Logger
}

// Run fetches username's profile and presents it. Failures are printed once
// and mapped to an exit code; missing fields and templates are not failures.
func (r *Runner) Run(ctx context.Context, username string) int {
	logger := r.logger().With("username", username)

	doc, err := r.Fetcher.Fetch(ctx, username)
	if err != nil {
		r.report(logger, err)
		return ExitFailure
	}

	prof := profile.Extractor{BaseURL: r.Fetcher.BaseURL()}.Extract(doc)
	for _, f := range prof.Fields() {
		if !f.Found {
			logger.Debug("field missing", "field", f.Key)
		}
	}

	outcome := r.Presenter.Present(prof)
	logger.Debug("run finished", "outcome", outcome.String())
	return ExitOK
}

func (r *Runner) report(logger *slog.Logger, err error) {
	var statusErr *fetch.StatusError
	var connErr *fetch.ConnectivityError

	switch {
	case errors.As(err, &statusErr):
		logger.Debug("profile request rejected", "url", statusErr.URL, "status", statusErr.StatusCode)
		r.Printer.Error(statusErr.Error())
	case errors.As(err, &connErr):
		logger.Debug("profile request failed", "url", connErr.URL, "error", connErr.Err)
		r.Printer.Error(msgOffline, "error", connErr.Err)
	default:
		logger.Debug("run failed", "error", err)
		r.Printer.Error("fetching profile failed", "error", err)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.NewDiscardLogger()
	}
	return r.Logger
}
