package codegen

import (
	"regexp"
	"strings"
)

// numberPattern matches integer and decimal literals; both "." and "," are
// accepted as the decimal separator.
var numberPattern = regexp.MustCompile(`[0-9]+[.,]?[0-9]*`)

// StepCall is a step's text split into a method name and literal arguments.
type StepCall struct {
	Name string
	Args []string
}

// Tokenize lifts every numeric literal out of text, in textual order, and
// derives the method name from what remains. Literals are kept verbatim:
// "2,5" stays "2,5".
func Tokenize(text string, placeholder rune) StepCall {
	args := numberPattern.FindAllString(text, -1)
	stripped := numberPattern.ReplaceAllLiteralString(text, string(placeholder))
	return StepCall{
		Name: legalize(Normalize(stripped, placeholder)),
		Args: args,
	}
}

// String renders the call, e.g. "I_have_$_apples(3)".
func (c StepCall) String() string {
	return c.Name + "(" + strings.Join(c.Args, ", ") + ")"
}
