package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/cio/pkg"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadEnvironment(t *testing.T) {
	path := writeTempFile(t, "env.yaml",
		"name: Ada\nage: 30\nnums:\n  - 3\n  - 1\n  - 2\n")

	env, err := loadEnvironment(path)
	if err != nil {
		t.Fatal(err)
	}

	names := env.Names()
	want := []string{"name", "age", "nums"}

	if len(names) != len(want) {
		t.Fatalf("expected %d bindings, got %d: %v", len(want), len(names), names)
	}

	for i, w := range want {
		if names[i] != w {
			t.Errorf("binding %d: expected %q, got %q", i, w, names[i])
		}
	}
}

func TestLoadEnvironment_Empty(t *testing.T) {
	env, err := loadEnvironment("")
	if err != nil {
		t.Fatal(err)
	}

	if env.Len() != 0 {
		t.Errorf("expected empty environment, got %d bindings", env.Len())
	}
}

func TestLoadEnvironment_Errors(t *testing.T) {
	_, err := loadEnvironment(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, pkg.ErrReadEnvFile) {
		t.Errorf("expected ErrReadEnvFile, got %v", err)
	}

	path := writeTempFile(t, "bad.yaml", "name: [unclosed\n")

	_, err = loadEnvironment(path)
	if !errors.Is(err, pkg.ErrDecodeEnvFile) {
		t.Errorf("expected ErrDecodeEnvFile, got %v", err)
	}
}

func TestReadSourceFile(t *testing.T) {
	path := writeTempFile(t, "greeting.tmpl", "hello {name}")

	text, err := readSourceFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if text != "hello {name}" {
		t.Errorf("expected source text, got %q", text)
	}

	_, err = readSourceFile(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, pkg.ErrReadSource) {
		t.Errorf("expected ErrReadSource, got %v", err)
	}
}

func TestRender_Run(t *testing.T) {
	dir := t.TempDir()

	envPath := writeTempFile(t, "env.yaml", "name: Ada\nage: 30\n")
	tmplPath := writeTempFile(t, "age.tmpl", "{name} is {age * 12} months old")
	outPath := filepath.Join(dir, "out.txt")

	r := Render{
		Template: []string{"hi {name}"},
		File:     []string{tmplPath},
		Env:      envPath,
		Out:      outPath,
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}

	want := "hi Ada\nAda is 360 months old\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestRender_Run_NoSources(t *testing.T) {
	r := Render{}

	err := r.Run(context.Background())
	if !errors.Is(err, pkg.ErrNoTemplate) {
		t.Errorf("expected ErrNoTemplate, got %v", err)
	}
}

func TestRender_Run_UnresolvedName(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.txt")

	r := Render{
		Template: []string{"{missing}"},
		Out:      outPath,
	}

	err := r.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for unresolved name")
	}

	if !strings.Contains(err.Error(), "unresolved name") {
		t.Errorf("unexpected error: %v", err)
	}
}
