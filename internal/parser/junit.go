package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"testview/internal/domain"
)

// ErrMalformed is returned when a document is not well-formed JUnit XML
var ErrMalformed = errors.New("malformed results document")

type junitSuites struct {
	Suites []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name   string       `xml:"name,attr"`
	Cases  []junitCase  `xml:"testcase"`
	Suites []junitSuite `xml:"testsuite"`
}

type junitCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Failures  []junitMarker `xml:"failure"`
	Errors    []junitMarker `xml:"error"`
	Skipped   []junitSkip   `xml:"skipped"`
}

// junitMarker is a failure or error element; its detail is the contained text
type junitMarker struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

// junitSkip carries its reason in the message attribute, not in its text
type junitSkip struct {
	Message string `xml:"message,attr"`
}

// JUnitParser parses JUnit XML documents as written by pytest --junitxml
type JUnitParser struct{}

// NewJUnitParser creates a new JUnitParser
func NewJUnitParser() *JUnitParser {
	return &JUnitParser{}
}

// Parse reads the document at path. A missing file yields an error wrapping
// fs.ErrNotExist; anything that is not JUnit XML yields ErrMalformed.
func (p *JUnitParser) Parse(path string) ([]domain.TestCaseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results document: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses an in-memory document. Records come back in document
// order, suites outer and cases inner. No partial results are returned.
func (p *JUnitParser) ParseBytes(data []byte) ([]domain.TestCaseResult, error) {
	suites, err := decodeSuites(data)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TestCaseResult, 0)
	for _, suite := range suites {
		records, err = appendSuite(records, suite)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// decodeSuites accepts either a <testsuites> root or a single <testsuite> root
func decodeSuites(data []byte) ([]junitSuite, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.CharsetReader = charset.NewReaderLabel

	start, err := rootElement(d)
	if err != nil {
		return nil, err
	}

	var suites []junitSuite
	switch start.Name.Local {
	case "testsuites":
		var root junitSuites
		if err := d.DecodeElement(&root, &start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		suites = root.Suites
	case "testsuite":
		var root junitSuite
		if err := d.DecodeElement(&root, &start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		suites = []junitSuite{root}
	default:
		return nil, fmt.Errorf("%w: unexpected root element <%s>", ErrMalformed, start.Name.Local)
	}

	if err := expectEOF(d); err != nil {
		return nil, err
	}
	return suites, nil
}

func rootElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, fmt.Errorf("%w: document has no root element", ErrMalformed)
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// expectEOF rejects trailing elements or broken markup after the root
func expectEOF(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return fmt.Errorf("%w: unexpected element <%s> after root", ErrMalformed, start.Name.Local)
		}
	}
}

// appendSuite adds the suite's own cases, then those of nested suites
func appendSuite(records []domain.TestCaseResult, suite junitSuite) ([]domain.TestCaseResult, error) {
	for _, tc := range suite.Cases {
		record, err := toRecord(tc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	for _, child := range suite.Suites {
		var err error
		records, err = appendSuite(records, child)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// toRecord classifies a case: failure wins over error, error over skip,
// and no marker at all means the case passed.
func toRecord(tc junitCase) (domain.TestCaseResult, error) {
	duration, err := parseSeconds(tc.Time)
	if err != nil {
		return domain.TestCaseResult{}, fmt.Errorf("%w: testcase %q: %v", ErrMalformed, tc.Name, err)
	}

	record := domain.TestCaseResult{
		ContainingUnit:  tc.ClassName,
		Name:            tc.Name,
		DurationSeconds: duration,
	}

	switch {
	case len(tc.Failures) > 0:
		record.Outcome = domain.OutcomeFailed
		record.Detail = tc.Failures[0].Text
	case len(tc.Errors) > 0:
		record.Outcome = domain.OutcomeError
		record.Detail = tc.Errors[0].Text
	case len(tc.Skipped) > 0:
		record.Outcome = domain.OutcomeSkipped
		record.Detail = tc.Skipped[0].Message
	default:
		record.Outcome = domain.OutcomePassed
	}
	record.Detail = strings.TrimSpace(record.Detail)

	return record, nil
}

// parseSeconds treats a missing time attribute as zero
func parseSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return v, nil
}
