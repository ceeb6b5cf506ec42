package histogram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSprint tests the text rendering
func TestSprint(t *testing.T) {
	counts := map[string]int{"11": 1000, "00": 10, "01": 8, "10": 6}
	out := Sprint(counts)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	// Outcomes are sorted, so the chart is stable across runs.
	if !strings.HasPrefix(lines[0], "00") || !strings.HasPrefix(lines[3], "11") {
		t.Errorf("expected sorted outcomes, got:\n%s", out)
	}
	// The dominant outcome carries the longest bar.
	if !strings.Contains(lines[3], strings.Repeat("#", 40)) {
		t.Errorf("expected a full-width bar for the top outcome:\n%s", out)
	}
}

// TestSprintEmpty tests rendering an empty table
func TestSprintEmpty(t *testing.T) {
	if out := Sprint(map[string]int{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

// TestWritePNG tests chart file output
func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	counts := map[string]int{"00": 10, "01": 12, "10": 9, "11": 993}

	if err := WritePNG(counts, "Grover search: target 11", path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

// TestWritePNGEmpty tests rejection of an empty table
func TestWritePNGEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	if err := WritePNG(map[string]int{}, "empty", path); !errors.Is(err, ErrNoCounts) {
		t.Errorf("expected ErrNoCounts, got %v", err)
	}
}
