package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()

	// Create a temporary Python test file
	tmpDir, err := os.MkdirTemp("", "testview-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "test_calculator.py")
	pyContent := `import pytest
from src.calculator import add, subtract, divide


def test_add():
    assert add(2, 3) == 5


def test_subtract():
    assert subtract(5, 10) == -5


@pytest.mark.parametrize("a, b", [(10, 2)])
def test_divide(a, b):
    assert divide(a, b) == 5.0


async def test_async_add():
    assert add(1, 1) == 2


class TestStateMachine:
    def test_initial_state(self):
        pass

    def helper(self):
        pass


def helper_not_a_test():
    pass

# def test_commented_out():
`
	if err := os.WriteFile(testFile, []byte(pyContent), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds test functions and methods", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"test_add", "test_async_add", "test_divide", "test_initial_state", "test_subtract"}
		if !reflect.DeepEqual(testCases, expected) {
			t.Errorf("expected %v, got %v", expected, testCases)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/test_file.py")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})

	t.Run("file without tests", func(t *testing.T) {
		empty := filepath.Join(tmpDir, "test_empty.py")
		if err := os.WriteFile(empty, []byte("import os\n"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		testCases, err := parser.FindTestCases(empty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(testCases) != 0 {
			t.Errorf("expected no test cases, got %v", testCases)
		}
	})
}
