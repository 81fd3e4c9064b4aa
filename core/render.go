package core

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

const ItemFormat = `<li class="list-group-item">first prime above %d is %d</li>`

// RenderItems formats records in the order given, joined by single spaces.
func RenderItems(records []PrimeRecord) string {
	items := make([]string, len(records))
	for i, r := range records {
		items[i] = fmt.Sprintf(ItemFormat, r.Seed, r.Prime)
	}
	return strings.Join(items, " ")
}

type Renderer struct {
	Template *Template
	Minify   bool
}

func (r *Renderer) Render(records []PrimeRecord) (string, error) {
	page := r.Template.Render(RenderItems(records))
	if !r.Minify {
		return page, nil
	}
	return MinifyHTML(page)
}

func MinifyHTML(page string) (string, error) {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)

	var buf bytes.Buffer
	if err := m.Minify("text/html", &buf, strings.NewReader(page)); err != nil {
		return "", fmt.Errorf("minify: %w", err)
	}
	return buf.String(), nil
}
