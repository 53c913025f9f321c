package codegen

import (
	"strings"

	"github.com/chriserin/gwtgen/internal/feature"
)

type chainState int

const (
	stateFirst chainState = iota
	stateChaining
	stateNewStatement
)

// Call is one rendered step: the keyword's entry point followed by the step
// method, e.g. given().a_user().
type Call struct {
	Keyword string
	Step    StepCall
}

func (c Call) String() string {
	return c.Keyword + "()." + c.Step.String()
}

// Statement is a run of calls chained into one fluent expression.
type Statement struct {
	Calls []Call
}

// BuildChain groups steps into statements. A step whose keyword is a
// continuation joins the current statement; any other keyword starts a new
// one. The first step always starts the first statement.
func (g *Generator) BuildChain(steps []feature.Step) []Statement {
	var stmts []Statement
	state := stateFirst
	for _, step := range steps {
		keyword := strings.ToLower(strings.TrimSpace(step.Keyword))
		call := Call{Keyword: keyword, Step: Tokenize(step.Text, g.opts.Placeholder)}

		if state != stateFirst && g.opts.isContinuation(keyword) {
			state = stateChaining
		} else {
			state = stateNewStatement
			stmts = append(stmts, Statement{})
		}
		last := &stmts[len(stmts)-1]
		last.Calls = append(last.Calls, call)
	}
	return stmts
}

// writeBody emits the statements of one method body. An empty chain emits
// nothing, so no terminator can appear without a preceding call.
func (g *Generator) writeBody(w *bodyWriter, stmts []Statement) {
	indent2 := strings.Repeat(g.opts.Indent, 2)
	for i, stmt := range stmts {
		if i > 0 {
			w.line("")
		}
		for j, call := range stmt.Calls {
			if j == 0 {
				w.text(indent2 + call.String())
				continue
			}
			w.line(".")
			w.text(indent2 + g.opts.Indent + call.String())
		}
		w.line(";")
	}
}
