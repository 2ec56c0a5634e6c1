// Package assets downloads the ASCII-art templates gitfetch renders
// profiles with.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Defaults for PullOptions.
const (
	DefaultRepo   = "https://github.com/zinedine0014/git-fetch"
	DefaultSubdir = "ascii-templates"
)

// ErrNoTemplateDir means the cloned repository lacks the template directory.
var ErrNoTemplateDir = errors.New("repository has no template directory")

// PullOptions selects where templates come from and where they go.
type PullOptions struct {
	// URL of the git repository. Defaults to DefaultRepo.
	URL string
	// Ref is a branch name; empty means the remote HEAD.
	Ref string
	// Subdir is the directory inside the repository holding the templates.
	Subdir string
	// Dir receives the template files.
	Dir string
}

func (o *PullOptions) setDefaults() {
	if o.URL == "" {
		o.URL = DefaultRepo
	}
	if o.Subdir == "" {
		o.Subdir = DefaultSubdir
	}
}

// Pull clones the repository into a temporary directory and copies the
// regular files of its template directory into opts.Dir, overwriting files
// of the same name. It returns the number of files copied.
func Pull(ctx context.Context, opts PullOptions, logger *slog.Logger) (int, error) {
	opts.setDefaults()
	if opts.Dir == "" {
		return 0, errors.New("destination directory is required")
	}

	tmp, err := os.MkdirTemp("", "gitfetch-templates-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	if err := cloneRepo(ctx, opts.URL, opts.Ref, tmp, logger); err != nil {
		return 0, err
	}

	src := filepath.Join(tmp, opts.Subdir)
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNoTemplateDir, opts.Subdir)
	}

	return copyFiles(src, opts.Dir, logger)
}

func cloneRepo(ctx context.Context, url, ref, dest string, logger *slog.Logger) error {
	cloneOpts := &git.CloneOptions{
		URL:          url,
		SingleBranch: true,
	}
	if ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}

	logger.Debug("cloning template repository", "url", url, "ref", ref)
	if _, err := git.PlainCloneContext(ctx, dest, false, cloneOpts); err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

func copyFiles(src, dst string, logger *slog.Logger) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return n, err
		}
		logger.Debug("template installed", "file", e.Name())
		n++
	}
	return n, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", filepath.Base(src), err)
	}
	return out.Close()
}
