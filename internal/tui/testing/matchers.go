package testing

import (
	"fmt"
	"strings"
)

// StateMatcher collects view assertions and reports them together.
type StateMatcher struct {
	failures []string
}

// NewStateMatcher creates a new state matcher.
func NewStateMatcher() *StateMatcher {
	return &StateMatcher{
		failures: make([]string, 0),
	}
}

// ViewContains asserts that the ANSI-stripped view contains the expected string.
func (m *StateMatcher) ViewContains(view, expected string) *StateMatcher {
	if !strings.Contains(StripANSI(view), expected) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain '%s'", expected))
	}
	return m
}

// ViewNotContains asserts that the ANSI-stripped view does not contain the unexpected string.
func (m *StateMatcher) ViewNotContains(view, unexpected string) *StateMatcher {
	if strings.Contains(StripANSI(view), unexpected) {
		m.failures = append(m.failures, fmt.Sprintf("view contains unexpected '%s'", unexpected))
	}
	return m
}

// ViewContainsInOrder asserts that the strings appear in the view in order.
func (m *StateMatcher) ViewContainsInOrder(view string, expected ...string) *StateMatcher {
	if !ContainsInOrder(StripANSI(view), expected...) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain %q in order", expected))
	}
	return m
}

// Check returns an error listing every failed assertion.
func (m *StateMatcher) Check() error {
	if len(m.failures) == 0 {
		return nil
	}
	return fmt.Errorf("state assertions failed:\n%s", strings.Join(m.failures, "\n"))
}
