package report

// Locale selects header and message translations
type Locale string

const (
	LocaleEnglish  Locale = "en"
	LocaleJapanese Locale = "ja"
)

// Messages holds every user-facing string for one locale
type Messages struct {
	Title        string
	RunButton    string
	Columns      [5]string
	Passed       string
	Skipped      string
	AllPassed    string
	SomeFailed   string
	NotFound     string
	NoTests      string
	ParseError   string
	LaunchError  string
	Timeout      string
	Cancelled    string
	Busy         string
	Idle         string
	Summary      string
	Output       string
	ResultsTitle string
}

var messages = map[Locale]Messages{
	LocaleEnglish: {
		Title:        "Test Results",
		RunButton:    "Run tests",
		Columns:      [5]string{"Containing unit", "Test name", "Result", "Duration (s)", "Detail"},
		Passed:       "Passed",
		Skipped:      "Skipped",
		AllPassed:    "All tests passed!",
		SomeFailed:   "Some tests failed or errored.",
		NotFound:     "Test results file was not found.",
		NoTests:      "No tests were found.",
		ParseError:   "Could not read the test results",
		LaunchError:  "Could not start the test tool",
		Timeout:      "The test run exceeded its time limit",
		Cancelled:    "The test run was cancelled before it finished.",
		Busy:         "A test run is already in progress.",
		Idle:         "Press the button to run the test suite.",
		Summary:      "%d total: %d passed, %d failed, %d errors, %d skipped (%.2fs)",
		Output:       "Tool output",
		ResultsTitle: "Results",
	},
	LocaleJapanese: {
		Title:        "テスト結果表示",
		RunButton:    "テストを実行する",
		Columns:      [5]string{"テストが含まれるファイル", "テストの名前", "結果", "実行時間(秒)", "詳細"},
		Passed:       "成功",
		Skipped:      "スキップ",
		AllPassed:    "テストがすべて成功しました！",
		SomeFailed:   "一部のテストでエラーが発生しました。",
		NotFound:     "テスト結果ファイルが見つかりませんでした。",
		NoTests:      "テストが見つかりませんでした。",
		ParseError:   "テスト結果を読み込めませんでした",
		LaunchError:  "テストツールを起動できませんでした",
		Timeout:      "テストの実行が制限時間を超えました",
		Cancelled:    "テストの実行は完了前に中断されました。",
		Busy:         "テストはすでに実行中です。",
		Idle:         "ボタンを押してテストを実行してください。",
		Summary:      "合計 %d 件: 成功 %d, 失敗 %d, エラー %d, スキップ %d (%.2f秒)",
		Output:       "ツールの出力",
		ResultsTitle: "テスト結果",
	},
}

// MessagesFor returns the translations for l, falling back to English
func MessagesFor(l Locale) Messages {
	if m, ok := messages[l]; ok {
		return m
	}
	return messages[LocaleEnglish]
}
