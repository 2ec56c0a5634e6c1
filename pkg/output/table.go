package output

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// Row is one labelled value in a key/value table.
type Row struct {
	Label string
	Value string
}

// KeyValues prints rows as a two-column table under title.
func (p *Printer) KeyValues(title string, rows []Row) {
	if len(rows) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())
	if title != "" {
		t.SetTitle(title)
	}
	if width := p.width(); width > 0 {
		t.SetAllowedRowLength(width)
	}

	t.AppendHeader(table.Row{"Field", "Value"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Label, r.Value})
	}

	t.Render()
}

// width returns the terminal width when printing to a terminal, else 0.
func (p *Printer) width() int {
	if !p.isTTY {
		return 0
	}
	f, ok := p.out.(*os.File)
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// tableStyle returns the standard table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiBlue, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
		style.Title.Colors = text.Colors{text.FgHiCyan, text.Bold}
	}
	style.Options.SeparateRows = false
	return style
}
