package present

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
)

// DefaultDir is where templates are looked up, relative to the working
// directory.
const DefaultDir = "./ascii-templates"

// ErrNoTemplates means the template directory is absent, not a directory,
// or holds no template files.
var ErrNoTemplates = errors.New("no ascii templates")

// Library is a directory of template files.
type Library struct {
	Dir string
}

// Files lists the template files in the library, sorted by name.
// Subdirectories are skipped.
func (l Library) Files() ([]string, error) {
	info, err := os.Stat(l.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoTemplates
		}
		return nil, fmt.Errorf("reading template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, ErrNoTemplates
	}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		// Symlinks are listed too; a dangling one surfaces when it is read.
		if e.Type().IsRegular() || e.Type()&fs.ModeSymlink != 0 {
			files = append(files, filepath.Join(l.Dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, ErrNoTemplates
	}
	sort.Strings(files)
	return files, nil
}

// Pick chooses one template file uniformly at random.
func (l Library) Pick(r *rand.Rand) (string, error) {
	files, err := l.Files()
	if err != nil {
		return "", err
	}
	return files[r.IntN(len(files))], nil
}

// Load reads and parses the template at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	t.Path = path
	return t, nil
}
