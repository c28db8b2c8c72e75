package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "dotsentry.yaml", "threads: 4\nmax_bytes: 123\nstrict: true\nfail_on: high\nentropy_threshold: 4.2\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Strict == nil || !*cfg.Strict {
		t.Fatal("expected strict=true")
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("expected fail_on=high, got %#v", cfg.FailOn)
	}
	if cfg.EntropyThreshold == nil || *cfg.EntropyThreshold != 4.2 {
		t.Fatalf("expected entropy_threshold=4.2, got %#v", cfg.EntropyThreshold)
	}
}

func TestLoadFile_UnsetFieldsStayNil(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "dotsentry.yaml", "threads: 2\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Strict != nil || cfg.FailOn != nil || cfg.MaxBytes != nil {
		t.Fatalf("unset fields should stay nil: %#v", cfg)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "dotsentry.yaml", "threads: 1\n")
	writeTemp(t, dir, ".dotsentry.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 7 {
		t.Fatalf("expected threads=7 from .dotsentry.yaml, got %#v", cfg.Threads)
	}
}

func TestLoadLocal_NoFile(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no config file exists")
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "dotsentry.yaml", "threads: [not an int\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}
