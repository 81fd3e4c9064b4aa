package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template is a page with a single printf-style %s placeholder. It is
// immutable once loaded.
type Template struct {
	name   string
	prefix string
	suffix string
}

func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return ParseTemplate(filepath.Base(path), string(data))
}

// ParseTemplate splits text around its placeholder. "%%" is a literal
// percent sign; any other verb is rejected.
func ParseTemplate(name, text string) (*Template, error) {
	var prefix, suffix, cur strings.Builder
	placeholders := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '%' {
			cur.WriteByte(c)
			continue
		}
		if i+1 >= len(text) {
			return nil, &TemplateError{Name: name, Reason: "dangling % at end of template"}
		}
		i++
		switch text[i] {
		case '%':
			cur.WriteByte('%')
		case 's':
			placeholders++
			if placeholders > 1 {
				return nil, &TemplateError{Name: name, Reason: "more than one %s placeholder"}
			}
			prefix.WriteString(cur.String())
			cur.Reset()
		default:
			return nil, &TemplateError{Name: name, Reason: fmt.Sprintf("unsupported verb %%%c at offset %d", text[i], i-1)}
		}
	}

	if placeholders == 0 {
		return nil, &TemplateError{Name: name, Reason: "no %s placeholder"}
	}
	suffix.WriteString(cur.String())

	return &Template{name: name, prefix: prefix.String(), suffix: suffix.String()}, nil
}

func (t *Template) Name() string { return t.name }

func (t *Template) Render(fragment string) string {
	var b strings.Builder
	b.Grow(len(t.prefix) + len(fragment) + len(t.suffix))
	b.WriteString(t.prefix)
	b.WriteString(fragment)
	b.WriteString(t.suffix)
	return b.String()
}
