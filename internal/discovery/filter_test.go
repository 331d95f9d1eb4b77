package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"test_user.py", "test_payment.py", "test_order.py"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			tests:    []string{"test_user.py", "test_payment.py", "test_order.py"},
			pattern:  "*user.py",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"test_user.py", "test_payment.py", "test_order.py", "test_payment_service.py"},
			pattern:  "*payment*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			tests:    []string{"test_user.py", "test_payment.py", "test_order.py"},
			pattern:  "payment",
			expected: 1,
		},
		{
			name:     "no matches",
			tests:    []string{"test_user.py", "test_payment.py"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			tests:    []string{"/path/to/test_user.py", "/path/to/test_payment.py"},
			pattern:  "*user.py",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.tests, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "test_*.py")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		tests := []string{"test_user_service.py", "test_user_controller.py", "test_payment.py"}
		result := filter.FilterByName(tests, "*user*.py")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("only wildcards matches nothing via fallback", func(t *testing.T) {
		if filter.Match("test_a", "**x") {
			t.Error("expected no match")
		}
	})
}

func TestFilter_Match(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		testName string
		pattern  string
		expected bool
	}{
		{"empty pattern", "test_add", "", true},
		{"exact", "test_add", "test_add", true},
		{"prefix wildcard", "test_discount_rate[gold-True-5000-20]", "test_discount*", true},
		{"contains", "test_divide", "div", true},
		{"question mark", "test_add", "test_ad?", true},
		{"question mark no match", "test_add", "test_x?", false},
		{"no match", "test_add", "subtract", false},
		{"wildcard parts out of order", "ab", "b*a", false},
		{"wildcard parts in order inside name", "test_b_then_a_case", "b*a", true},
		{"repeated part needs two occurrences", "test_add", "add*add", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.testName, tt.pattern); got != tt.expected {
				t.Errorf("Match(%q, %q): expected %v, got %v", tt.testName, tt.pattern, tt.expected, got)
			}
		})
	}
}
