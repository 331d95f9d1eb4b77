package parser

import "testview/internal/domain"

// Parser reads a results document and extracts one record per test case
type Parser interface {
	Parse(path string) ([]domain.TestCaseResult, error)
}
