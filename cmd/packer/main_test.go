package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/packer/pkg/packer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun(t *testing.T) {
	t.Setenv("PACKER_CURRENCY_SYMBOL", "")
	t.Setenv("PACKER_LOG_LEVEL", "")
	t.Setenv("PACKER_LOG_ENCODING", "")

	input := writeFile(t, "input.txt", "10 : (1,10,€10) (2,15,€500)\n1 : (1,10,€10)\n")

	t.Run("prints result rows", func(t *testing.T) {
		var out bytes.Buffer
		if err := run([]string{"--log-level", "error", input}, &out); err != nil {
			t.Fatalf("run returned error: %v", err)
		}
		if want := "1" + packer.LineSeparator + "-\n"; out.String() != want {
			t.Fatalf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("currency flag", func(t *testing.T) {
		dollars := writeFile(t, "dollars.txt", "10 : (3,5,$20)\n")
		var out bytes.Buffer
		if err := run([]string{"--log-level", "error", "--currency", "$", dollars}, &out); err != nil {
			t.Fatalf("run returned error: %v", err)
		}
		if out.String() != "3\n" {
			t.Fatalf("expected 3, got %q", out.String())
		}
	})

	t.Run("config file", func(t *testing.T) {
		cfgPath := writeFile(t, "config.yaml", "currency_symbol: \"£\"\nlog_level: error\nlog_encoding: console\n")
		pounds := writeFile(t, "pounds.txt", "10 : (3,5,£20)\n")
		var out bytes.Buffer
		if err := run([]string{"--config", cfgPath, pounds}, &out); err != nil {
			t.Fatalf("run returned error: %v", err)
		}
		if out.String() != "3\n" {
			t.Fatalf("expected 3, got %q", out.String())
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		if err := run(nil, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error when file argument is missing")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		err := run([]string{"--log-level", "error", filepath.Join(t.TempDir(), "nope.txt")}, &out)
		if !errors.Is(err, packer.ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
		if out.Len() != 0 {
			t.Fatalf("expected no output on failure, got %q", out.String())
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		if err := run([]string{"--log-level", "shout", input}, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected configuration error")
		}
	})
}
