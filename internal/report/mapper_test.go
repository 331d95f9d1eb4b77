package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"testview/internal/domain"
)

func TestFormatForDisplay(t *testing.T) {
	t.Parallel()
	records := []domain.TestCaseResult{
		{ContainingUnit: "T", Name: "ok", Outcome: domain.OutcomePassed, DurationSeconds: 0.12},
		{ContainingUnit: "T", Name: "bad", Outcome: domain.OutcomeFailed, DurationSeconds: 1, Detail: "boom"},
		{ContainingUnit: "T", Name: "broken", Outcome: domain.OutcomeError, Detail: "trace"},
		{ContainingUnit: "U", Name: "later", Outcome: domain.OutcomeSkipped, Detail: "slow"},
		{ContainingUnit: "U", Name: "odd", Outcome: domain.Outcome("XFAIL")},
	}
	original := append([]domain.TestCaseResult(nil), records...)

	table := FormatForDisplay(records, LocaleEnglish)

	expected := Table{
		Columns: [5]string{"Containing unit", "Test name", "Result", "Duration (s)", "Detail"},
		Rows: []Row{
			{ContainingUnit: "T", Name: "ok", Result: "✅ Passed", Color: ColorGreen, Duration: "0.12", Outcome: domain.OutcomePassed},
			{ContainingUnit: "T", Name: "bad", Result: "❌ FAILED", Color: ColorRed, Duration: "1.0", Detail: "boom", Outcome: domain.OutcomeFailed},
			{ContainingUnit: "T", Name: "broken", Result: "❌ ERROR", Color: ColorRed, Duration: "0.0", Detail: "trace", Outcome: domain.OutcomeError},
			{ContainingUnit: "U", Name: "later", Result: "⏭️ Skipped", Color: ColorGray, Duration: "0.0", Detail: "slow", Outcome: domain.OutcomeSkipped},
			{ContainingUnit: "U", Name: "odd", Result: "XFAIL", Color: ColorDefault, Duration: "0.0", Outcome: domain.Outcome("XFAIL")},
		},
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, records); diff != "" {
		t.Errorf("records were modified (-before +after):\n%s", diff)
	}
}

func TestFormatForDisplay_Japanese(t *testing.T) {
	t.Parallel()
	table := FormatForDisplay([]domain.TestCaseResult{
		{Name: "a", Outcome: domain.OutcomePassed},
		{Name: "b", Outcome: domain.OutcomeSkipped},
	}, LocaleJapanese)

	if table.Columns[0] != "テストが含まれるファイル" {
		t.Errorf("unexpected header %q", table.Columns[0])
	}
	if table.Rows[0].Result != "✅ 成功" {
		t.Errorf("unexpected passed label %q", table.Rows[0].Result)
	}
	if table.Rows[1].Result != "⏭️ スキップ" {
		t.Errorf("unexpected skipped label %q", table.Rows[1].Result)
	}
}

func TestFormatForDisplay_Empty(t *testing.T) {
	t.Parallel()
	for name, records := range map[string][]domain.TestCaseResult{
		"nil":   nil,
		"empty": {},
	} {
		records := records
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			table := FormatForDisplay(records, LocaleEnglish)
			if !table.Empty() {
				t.Errorf("expected empty table, got %d rows", len(table.Rows))
			}
			if table.Rows == nil {
				t.Error("rows should be an empty slice, not nil")
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	tests := map[float64]string{
		0:      "0.0",
		0.12:   "0.12",
		1:      "1.0",
		12.5:   "12.5",
		0.0005: "0.0005",
	}
	for in, expected := range tests {
		if got := FormatSeconds(in); got != expected {
			t.Errorf("FormatSeconds(%v): expected %s, got %s", in, expected, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	got := Summarize([]domain.TestCaseResult{
		{Outcome: domain.OutcomePassed, DurationSeconds: 0.5},
		{Outcome: domain.OutcomePassed, DurationSeconds: 0.25},
		{Outcome: domain.OutcomeFailed},
		{Outcome: domain.OutcomeError},
		{Outcome: domain.OutcomeSkipped},
		{Outcome: domain.Outcome("?")},
	})
	expected := Summary{Total: 6, Passed: 2, Failed: 1, Errors: 1, Skipped: 1, Other: 1, DurationSeconds: 0.75}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
