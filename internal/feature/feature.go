// Package feature holds the parsed document model that code generation
// consumes. Values are produced by a document provider and never mutated
// afterwards.
package feature

import "strings"

// Document is a parsed feature: its title and the scenarios in file order.
type Document struct {
	Description string
	Scenarios   []Scenario
	Source      string // path the document was read from, if any
}

// Scenario is one named test case.
type Scenario struct {
	Name        string
	Description *string // nil when the scenario has no free-text description
	Steps       []Step
	Line        int // 1-based line number of the Scenario: line
}

// Step is a keyword plus free-form text, e.g. "Given" and "a user".
type Step struct {
	Keyword string
	Text    string
	Line    int
}

// Describe returns a pointer to s, or nil when s is empty.
func Describe(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StepKeyword trims a step keyword and maps the Gherkin bullet "*" to "And",
// since a bullet continues the step before it.
func StepKeyword(keyword string) string {
	k := strings.TrimSpace(keyword)
	if k == "*" {
		return "And"
	}
	return k
}
