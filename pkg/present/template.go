package present

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrTemplateSyntax is wrapped by every template parse error.
var ErrTemplateSyntax = errors.New("template syntax")

// Template is a parsed ASCII-art template.
//
// The body uses positional replacement fields: {} takes the next value,
// {N} takes value N, and {{ and }} are literal braces. A field may carry a
// conversion !s or !r (quoted repr) and a format spec of the form
// :[[fill]align][width][.precision][s] with align one of < > ^; precision
// truncates the value. Automatic and manual numbering cannot be mixed in one
// template.
//
// Not supported: attribute or index lookups ({0.x}, {0[1]}), nested fields
// inside a spec, the !a conversion, sign, '#', zero padding, grouping, '='
// alignment and presentation types other than s.
type Template struct {
	Meta
	Path     string
	segments []segment
}

type segment struct {
	literal string
	field   *field
}

type field struct {
	index     int
	conv      byte
	fill      rune
	align     byte
	width     int
	precision int
}

// ParseTemplate parses template file contents, including any frontmatter.
func ParseTemplate(data []byte) (*Template, error) {
	meta, body := splitFrontmatter(data)

	segments, err := compile(body)
	if err != nil {
		return nil, err
	}
	return &Template{Meta: meta, segments: segments}, nil
}

// Fields returns how many values the template needs: one more than the
// highest index it references.
func (t *Template) Fields() int {
	n := 0
	for _, s := range t.segments {
		if s.field != nil && s.field.index+1 > n {
			n = s.field.index + 1
		}
	}
	return n
}

// Render substitutes values into the template. It fails when a field
// refers past the end of values.
func (t *Template) Render(values []string) (string, error) {
	var b strings.Builder
	for _, s := range t.segments {
		if s.field == nil {
			b.WriteString(s.literal)
			continue
		}
		if s.field.index >= len(values) {
			return "", fmt.Errorf("replacement index %d out of range for %d values", s.field.index, len(values))
		}
		b.WriteString(s.field.format(values[s.field.index]))
	}
	return b.String(), nil
}

func (f *field) format(v string) string {
	if f.conv == 'r' {
		v = repr(v)
	}
	if f.precision >= 0 && utf8.RuneCountInString(v) > f.precision {
		v = string([]rune(v)[:f.precision])
	}
	return f.pad(v)
}

// repr quotes v in single quotes, or double quotes when v holds only single
// quotes, escaping backslashes and unprintable characters.
func repr(v string) string {
	quote := '\''
	if strings.ContainsRune(v, '\'') && !strings.ContainsRune(v, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range v {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

func (f *field) pad(v string) string {
	n := f.width - utf8.RuneCountInString(v)
	if n <= 0 {
		return v
	}
	fill := string(f.fill)
	switch f.align {
	case '>':
		return strings.Repeat(fill, n) + v
	case '^':
		left := n / 2
		return strings.Repeat(fill, left) + v + strings.Repeat(fill, n-left)
	default:
		return v + strings.Repeat(fill, n)
	}
}

func compile(body string) ([]segment, error) {
	var (
		segments []segment
		literal  strings.Builder
		next     int
		auto     bool
		manual   bool
	)

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '{':
			if i+1 < len(body) && body[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(body[i+1:], "{}")
			if end == -1 || body[i+1+end] != '}' {
				return nil, fmt.Errorf("%w: unmatched '{' at offset %d", ErrTemplateSyntax, i)
			}
			f, numbered, err := parseField(body[i+1 : i+1+end])
			if err != nil {
				return nil, fmt.Errorf("%w: offset %d: %v", ErrTemplateSyntax, i, err)
			}
			if numbered {
				manual = true
			} else {
				auto = true
				f.index = next
				next++
			}
			if auto && manual {
				return nil, fmt.Errorf("%w: cannot mix automatic and manual field numbering", ErrTemplateSyntax)
			}
			flush()
			segments = append(segments, segment{field: f})
			i += end + 1
		case '}':
			if i+1 < len(body) && body[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w: single '}' at offset %d", ErrTemplateSyntax, i)
		default:
			literal.WriteByte(c)
		}
	}
	flush()
	return segments, nil
}

// parseField parses the text between braces. numbered reports whether an
// explicit index was given.
func parseField(s string) (*field, bool, error) {
	name, rest := s, ""
	if i := strings.IndexAny(s, "!:"); i >= 0 {
		name, rest = s[:i], s[i:]
	}

	f := &field{fill: ' ', align: '<', precision: -1}
	numbered := false
	if name != "" {
		if !isDigits(name) {
			return nil, false, fmt.Errorf("unsupported field %q", name)
		}
		idx, err := strconv.Atoi(name)
		if err != nil {
			return nil, false, fmt.Errorf("unsupported field %q", name)
		}
		f.index = idx
		numbered = true
	}

	if strings.HasPrefix(rest, "!") {
		if len(rest) < 2 {
			return nil, false, errors.New("missing conversion after '!'")
		}
		switch rest[1] {
		case 's', 'r':
			f.conv = rest[1]
		default:
			return nil, false, fmt.Errorf("unsupported conversion %q", rest[:2])
		}
		rest = rest[2:]
		if rest != "" && rest[0] != ':' {
			return nil, false, errors.New("expected ':' after conversion")
		}
	}

	if err := parseSpec(strings.TrimPrefix(rest, ":"), f); err != nil {
		return nil, false, err
	}
	return f, numbered, nil
}

func parseSpec(spec string, f *field) error {
	if spec == "" {
		return nil
	}
	orig := spec

	isAlign := func(b byte) bool { return b == '<' || b == '>' || b == '^' }

	fill, size := utf8.DecodeRuneInString(spec)
	switch {
	case len(spec) > size && isAlign(spec[size]):
		f.fill = fill
		f.align = spec[size]
		spec = spec[size+1:]
	case isAlign(spec[0]):
		f.align = spec[0]
		spec = spec[1:]
	}

	spec = strings.TrimSuffix(spec, "s")

	width, precision, hasPrecision := strings.Cut(spec, ".")
	if width != "" {
		if !isDigits(width) || (len(width) > 1 && width[0] == '0') {
			return fmt.Errorf("unsupported format spec %q", orig)
		}
		f.width, _ = strconv.Atoi(width)
	}
	if hasPrecision {
		if !isDigits(precision) {
			return fmt.Errorf("unsupported format spec %q", orig)
		}
		f.precision, _ = strconv.Atoi(precision)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
