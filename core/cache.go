package core

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
)

func renderDir(config Config, name string) string {
	name = strings.Trim(name, "/")
	if name == "" {
		name = config.ServiceName
	}
	return filepath.Join(config.OutputDir, name)
}

func GetSavedRender(config Config, name string) ([]byte, bool) {
	path := filepath.Join(renderDir(config, name), "index.html")

	if _, err := os.Stat(path); err != nil {
		return nil, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return content, true
}

// SaveRender writes a rendered page as index.html plus a gzipped copy.
func SaveRender(config Config, name string, html []byte) (string, error) {
	outDir := renderDir(config, name)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", err
	}

	htmlPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return "", err
	}

	f, err := os.Create(htmlPath + ".gz")
	if err != nil {
		return "", err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(html); err != nil {
		gz.Close()
		return "", err
	}
	return htmlPath, gz.Close()
}
