package domain

// Outcome is the classification of a single executed test case
type Outcome string

const (
	OutcomePassed  Outcome = "PASSED"
	OutcomeFailed  Outcome = "FAILED"
	OutcomeError   Outcome = "ERROR"
	OutcomeSkipped Outcome = "SKIPPED"
)

// Outcomes lists the known outcomes in display order
var Outcomes = []Outcome{OutcomePassed, OutcomeFailed, OutcomeError, OutcomeSkipped}

// IsProblem reports whether the outcome needs attention (failed or errored)
func (o Outcome) IsProblem() bool {
	return o == OutcomeFailed || o == OutcomeError
}

func (o Outcome) String() string {
	return string(o)
}
