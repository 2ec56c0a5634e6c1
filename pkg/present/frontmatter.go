package present

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the optional YAML frontmatter of a template file.
type Meta struct {
	Name   string `yaml:"name,omitempty"`
	Author string `yaml:"author,omitempty"`
	// Color pins the output colour to a palette entry, e.g. "cyan".
	Color string `yaml:"color,omitempty"`
}

var metaKeys = map[string]bool{
	"name":   true,
	"author": true,
	"color":  true,
}

// splitFrontmatter separates YAML frontmatter between --- delimiters from
// the template body. A leading block counts as frontmatter only when it is a
// mapping of scalar name, author and color entries; anything else, such as
// art ruled with dashes, leaves the whole file as body. The body bytes are
// returned unchanged.
func splitFrontmatter(data []byte) (Meta, string) {
	content := string(data)
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return Meta{}, content
	}

	lines := strings.SplitAfter(content, "\n")
	closeIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		return Meta{}, content
	}

	header := strings.ReplaceAll(strings.Join(lines[1:closeIdx], ""), "\r\n", "\n")
	meta, ok := parseMeta(header)
	if !ok {
		return Meta{}, content
	}
	return meta, strings.Join(lines[closeIdx+1:], "")
}

func parseMeta(header string) (Meta, bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return Meta{}, false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return Meta{}, false
	}

	m := doc.Content[0]
	if m.Kind != yaml.MappingNode || len(m.Content) == 0 {
		return Meta{}, false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || !metaKeys[k.Value] || v.Kind != yaml.ScalarNode {
			return Meta{}, false
		}
	}

	var meta Meta
	if err := m.Decode(&meta); err != nil {
		return Meta{}, false
	}
	return meta, true
}
