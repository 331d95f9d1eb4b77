package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "testview-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create test directory structure
	testDirs := []string{
		"tests/unit",
		"tests/integration",
		".venv/lib",
		"node_modules",
		".git",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	// Create test files
	testFiles := []string{
		"tests/unit/test_calculator.py",
		"tests/unit/discount_logic_test.py",
		"tests/integration/test_state_machine.py",
		".venv/lib/test_vendored.py",
		"node_modules/test_file.py",
		".git/test_hook.py",
		"src/calculator.py",
		"tests/conftest.py",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{".venv", "node_modules"}, []string{"test_*.py", "*_test.py"})

	t.Run("scans test files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 3 test files, not the ones in ignored or hidden dirs
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
	})

	t.Run("hidden root is still scanned", func(t *testing.T) {
		hidden := filepath.Join(tmpDir, ".git")
		results, err := scanner.Scan(hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 test file, got %d", len(results))
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "testfile.txt")
		os.WriteFile(testFile, []byte("test"), 0644)
		_, err := scanner.Scan(testFile)
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
