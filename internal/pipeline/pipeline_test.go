package pipeline

import (
	"bytes"
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitfetch/gitfetch/pkg/fetch"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/gitfetch/gitfetch/pkg/present"
)

const profilePage = `<html><body>
<span class="p-name vcard-fullname">The Octocat</span>
<span class="p-nickname vcard-username">octocat</span>
<a href="/octocat?tab=repositories"><span class="Counter">8</span></a>
<span class="p-label">GitHub</span>
<span class="p-label">San Francisco</span>
<a href="/octocat?tab=followers"><span>5000</span> followers</a>
<a href="/octocat?tab=following"><span>9</span> following</a>
</body></html>`

type harness struct {
	runner *Runner
	out    *bytes.Buffer
	errOut *bytes.Buffer
	hits   *atomic.Int32
}

func newHarness(t *testing.T, handler http.HandlerFunc, templates map[string]string) *harness {
	t.Helper()

	hits := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	for name, body := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	printer := output.NewWithWriters(out, errOut)

	return &harness{
		runner: &Runner{
			Fetcher:   fetch.New(fetch.WithBaseURL(srv.URL), fetch.WithClient(srv.Client())),
			Presenter: present.New(printer, present.WithDir(dir), present.WithRand(rand.New(rand.NewPCG(3, 4)))),
			Printer:   printer,
		},
		out:    out,
		errOut: errOut,
		hits:   hits,
	}
}

func TestRun_RendersProfile(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/octocat", r.URL.Path)
		_, _ = w.Write([]byte(profilePage))
	}, map[string]string{
		"card.txt": "{} @{} repos={} followers={} following={} loc={} bio={}",
	})

	code := h.runner.Run(context.Background(), "octocat")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, int32(1), h.hits.Load())
	assert.Equal(t,
		"The Octocat @octocat repos=8 followers=5000 following=9 loc=San Francisco bio=Bio not found!\n",
		h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestRun_NotFound(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}, map[string]string{"card.txt": "{}"})

	code := h.runner.Run(context.Background(), "no-such-user")

	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, int32(1), h.hits.Load())
	assert.Empty(t, h.out.String(), "nothing is presented after a failed fetch")
	assert.Contains(t, h.errOut.String(), h.runner.Fetcher.BaseURL()+"/no-such-user")
	assert.Contains(t, h.errOut.String(), "404")
}

func TestRun_Offline(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
	h.runner.Fetcher = fetch.New(fetch.WithBaseURL("http://127.0.0.1:1"))

	code := h.runner.Run(context.Background(), "octocat")

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, h.out.String())
	assert.Contains(t, h.errOut.String(), msgOffline)
}

func TestRun_MissingTemplatesIsNotFailure(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(profilePage))
	}, nil)

	code := h.runner.Run(context.Background(), "octocat")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, h.errOut.String(), present.TemplatesRepo)
}

func TestRun_EmptyPageDegradesToPlaceholders(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}, map[string]string{"card.txt": "{0}|{3}"})

	code := h.runner.Run(context.Background(), "ghost")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Name not found!|Followers count not found!\n", h.out.String())
}
