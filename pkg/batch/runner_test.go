package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubProcessor records processed files and fails on names containing "bad"
type stubProcessor struct {
	outputs []string
}

func (s *stubProcessor) ProcessFile(inputPath, outputPath string) error {
	if strings.Contains(filepath.Base(inputPath), "bad") {
		return fmt.Errorf("undecodable image: %s", inputPath)
	}
	if err := os.WriteFile(outputPath, []byte("ok"), 0644); err != nil {
		return err
	}
	s.outputs = append(s.outputs, outputPath)
	return nil
}

func writeInputFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunSkipsFailedFiles(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeInputFiles(t, inputDir, "a.png", "b.jpg", "bad.png", "c.png", "d.bmp")

	proc := &stubProcessor{}
	summary, err := NewRunner(proc, "", nil).Run(inputDir, outputDir)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if summary.Processed != 4 {
		t.Errorf("Processed = %d, want 4", summary.Processed)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("output folder contains %d files, want 4", len(entries))
	}
}

func TestRunIgnoresNonImageFiles(t *testing.T) {
	inputDir := t.TempDir()
	writeInputFiles(t, inputDir, "a.png", "notes.txt", "data.json")

	proc := &stubProcessor{}
	summary, err := NewRunner(proc, "", nil).Run(inputDir, t.TempDir())
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if summary.Processed != 1 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want 1 processed, 0 skipped", summary)
	}
}

func TestRunAppliesPrefix(t *testing.T) {
	inputDir := t.TempDir()
	writeInputFiles(t, inputDir, "photo.png")

	proc := &stubProcessor{}
	if _, err := NewRunner(proc, "wm_", nil).Run(inputDir, t.TempDir()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(proc.outputs) != 1 {
		t.Fatalf("processed %d files, want 1", len(proc.outputs))
	}
	if got := filepath.Base(proc.outputs[0]); got != "wm_photo.png" {
		t.Errorf("output filename = %q, want %q", got, "wm_photo.png")
	}
}

func TestRunMissingInputDir(t *testing.T) {
	proc := &stubProcessor{}
	_, err := NewRunner(proc, "", nil).Run(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	if err == nil {
		t.Error("Run() with missing input folder returned nil error")
	}
}
