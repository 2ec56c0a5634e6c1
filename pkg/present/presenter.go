// Package present renders profile data to the terminal, either overlaid on
// a randomly chosen ASCII-art template or as a table.
package present

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/gitfetch/gitfetch/pkg/logging"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/gitfetch/gitfetch/pkg/profile"
)

// TemplatesRepo is where the template assets are published.
const TemplatesRepo = "https://github.com/zinedine0014/git-fetch"

// User-facing warnings.
const (
	msgDownload   = "Please download the ASCII templates from my GitHub repo: " + TemplatesRepo
	msgUnreadable = "please make sure that you have all the ascii templates!"
	msgMalformed  = "the ascii template could not be rendered"
)

// Outcome reports what Present printed.
type Outcome int

const (
	Rendered Outcome = iota
	Tabulated
	TemplatesMissing
	TemplateUnreadable
	TemplateMalformed
)

func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "rendered"
	case Tabulated:
		return "tabulated"
	case TemplatesMissing:
		return "templates-missing"
	case TemplateUnreadable:
		return "template-unreadable"
	case TemplateMalformed:
		return "template-malformed"
	default:
		return "unknown"
	}
}

// Rendering is a template filled with profile values and the colour to
// print it in.
type Rendering struct {
	Text  string
	Color output.NamedColor
}

// Compose fills tmpl with the display values of p in field order and picks
// the output colour: the template's own colour if it names a palette entry,
// otherwise one drawn uniformly from r.
func Compose(p profile.Profile, tmpl *Template, r *rand.Rand) (Rendering, error) {
	text, err := tmpl.Render(p.Display())
	if err != nil {
		return Rendering{}, err
	}

	color, ok := output.PaletteColor(tmpl.Color)
	if !ok {
		color = output.Palette[r.IntN(len(output.Palette))]
	}
	return Rendering{Text: text, Color: color}, nil
}

// Presenter prints profiles.
type Presenter struct {
	printer *output.Printer
	library Library
	rand    *rand.Rand
	logger  *slog.Logger
	table   bool
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithDir sets the template directory.
func WithDir(dir string) Option {
	return func(p *Presenter) { p.library = Library{Dir: dir} }
}

// WithRand sets the random source used to pick the template and colour.
func WithRand(r *rand.Rand) Option {
	return func(p *Presenter) { p.rand = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) { p.logger = l }
}

// WithTable prints a table of fields instead of a template.
func WithTable(enabled bool) Option {
	return func(p *Presenter) { p.table = enabled }
}

// New creates a Presenter printing through printer.
func New(printer *output.Printer, opts ...Option) *Presenter {
	p := &Presenter{
		printer: printer,
		library: Library{Dir: DefaultDir},
		rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:  logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Present prints prof. Missing or broken templates produce a warning, never
// an error.
func (p *Presenter) Present(prof profile.Profile) Outcome {
	if p.table {
		p.printTable(prof)
		return Tabulated
	}

	path, err := p.library.Pick(p.rand)
	if err != nil {
		if !errors.Is(err, ErrNoTemplates) {
			p.logger.Debug("listing templates failed", "dir", p.library.Dir, "error", err)
		}
		p.printer.Warn(msgDownload, "hint", "gitfetch templates pull")
		return TemplatesMissing
	}
	p.logger.Debug("template chosen", "path", path)

	tmpl, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrTemplateSyntax) {
			p.printer.Warn(msgMalformed, "file", path, "error", err)
			return TemplateMalformed
		}
		p.printer.Warn(msgUnreadable, "file", path, "error", err)
		return TemplateUnreadable
	}

	r, err := Compose(prof, tmpl, p.rand)
	if err != nil {
		p.printer.Warn(msgMalformed, "file", path, "error", err)
		return TemplateMalformed
	}

	p.logger.Debug("rendering profile", "template", tmpl.Name, "author", tmpl.Author, "color", r.Color.Name)
	p.printer.Colored(r.Text, r.Color.Color)
	return Rendered
}

func (p *Presenter) printTable(prof profile.Profile) {
	values := prof.Display()
	rows := make([]output.Row, len(profile.Keys))
	for i, k := range profile.Keys {
		rows[i] = output.Row{Label: string(k), Value: values[i]}
	}
	p.printer.KeyValues(values[1], rows)
}
