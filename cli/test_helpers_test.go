package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/go-barry/webspark/core"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = orig
	return <-done
}

func overrideLoadConfig(mutate func(*core.Config), testFn func()) {
	orig := loadConfig
	loadConfig = func(_ string) (core.Config, error) {
		cfg := core.DefaultConfig()
		mutate(&cfg)
		return cfg, nil
	}
	defer func() { loadConfig = orig }()
	testFn()
}
