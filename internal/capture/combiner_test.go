package capture

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileCombiner_creates_and_appends(t *testing.T) {
	target := filepath.Join(t.TempDir(), "sound", "combined_20240101_0900_1000.aac")
	c := FileCombiner{}

	if err := c.Append(target, []byte("AAA")); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := c.Append(target, []byte("BBB")); err != nil {
		t.Fatalf("second append: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(got) != "AAABBB" {
		t.Errorf("expected appended bytes in order, got %q", got)
	}
}

func TestFileCombiner_append_never_truncates(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "combined.aac")
	if err := os.WriteFile(target, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := (FileCombiner{}).Append(target, []byte("+new")); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, _ := os.ReadFile(target)
	if string(got) != "existing+new" {
		t.Errorf("append truncated existing data: %q", got)
	}
}

func TestFileCombiner_error_on_directory_target(t *testing.T) {
	dir := t.TempDir()
	if err := (FileCombiner{}).Append(dir, []byte("x")); err == nil {
		t.Error("expected error appending to a directory path")
	}
}
