package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// Options are the fixed literals of the target scenario-test convention.
// A Generator copies them once; they are never mutated during generation.
type Options struct {
	Indent                string
	Placeholder           rune
	ClassSuffix           string
	BaseClass             string
	TestAnnotation        string
	DescriptionAnnotation string
	Continuations         []string // step keywords that extend the previous statement
}

// DefaultOptions targets the JGiven ScenarioTest convention.
func DefaultOptions() Options {
	return Options{
		Indent:                "    ",
		Placeholder:           '$',
		ClassSuffix:           "Test",
		BaseClass:             "ScenarioTest<GivenState, WhenAction, ThenOutcome>",
		TestAnnotation:        "@Test",
		DescriptionAnnotation: "@As",
		Continuations:         []string{"and"},
	}
}

// Validate reports option values that would make the generated code or the
// tokenizer inconsistent.
func (o Options) Validate() error {
	if o.Indent == "" {
		return fmt.Errorf("indent must not be empty")
	}
	if strings.TrimSpace(o.Indent) != "" {
		return fmt.Errorf("indent must be whitespace, got %q", o.Indent)
	}
	switch {
	case o.Placeholder == 0:
		return fmt.Errorf("placeholder must be set")
	case o.Placeholder == '.' || o.Placeholder == ',' || unicode.IsDigit(o.Placeholder):
		return fmt.Errorf("placeholder %q overlaps the number pattern", o.Placeholder)
	case unicode.IsLetter(o.Placeholder) || o.Placeholder == '_':
		return fmt.Errorf("placeholder %q is indistinguishable from step text", o.Placeholder)
	}
	if o.BaseClass == "" {
		return fmt.Errorf("base class must not be empty")
	}
	for _, k := range o.Continuations {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("continuation keywords must not be blank")
		}
	}
	return nil
}

func (o Options) isContinuation(keyword string) bool {
	for _, k := range o.Continuations {
		if strings.EqualFold(strings.TrimSpace(k), keyword) {
			return true
		}
	}
	return false
}
