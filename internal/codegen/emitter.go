// Package codegen turns a parsed feature document into the source of a
// three-stage (given/when/then) scenario test class.
package codegen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/gwtgen/internal/feature"
)

// WriteError is returned when the output sink rejects a write. Whatever was
// flushed before the failure stays in the sink.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "writing generated source: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// Generator emits scenario test classes. It holds no mutable state and may be
// shared between goroutines generating different documents.
type Generator struct {
	opts Options
}

// New returns a Generator for opts.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	opts.Continuations = append([]string(nil), opts.Continuations...)
	return &Generator{opts: opts}, nil
}

// ClassName is the name of the class generated for doc.
func (g *Generator) ClassName(doc *feature.Document) string {
	return ToTypeIdentifier(doc.Description) + g.opts.ClassSuffix
}

// Generate writes one class for doc to w.
func (g *Generator) Generate(w io.Writer, doc *feature.Document) (err error) {
	bw := &bodyWriter{w: bufio.NewWriter(w)}
	defer func() {
		if ferr := bw.flush(); err == nil && ferr != nil {
			err = &WriteError{Err: ferr}
		}
	}()

	bw.line("public class " + g.ClassName(doc) + " extends")
	bw.line(strings.Repeat(g.opts.Indent, 2) + g.opts.BaseClass + " {")

	for _, sc := range doc.Scenarios {
		g.writeScenario(bw, sc)
		if bw.err != nil {
			return &WriteError{Err: bw.err}
		}
	}

	bw.line("}")
	if bw.err != nil {
		return &WriteError{Err: bw.err}
	}
	return nil
}

// GenerateString is Generate into a string.
func (g *Generator) GenerateString(doc *feature.Document) (string, error) {
	var b strings.Builder
	if err := g.Generate(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (g *Generator) writeScenario(w *bodyWriter, sc feature.Scenario) {
	indent := g.opts.Indent
	w.line("")
	w.line(indent + g.opts.TestAnnotation)
	if !IsLegalBareIdentifier(sc.Description) {
		w.line(fmt.Sprintf("%s%s(\"%s\")", indent, g.opts.DescriptionAnnotation, EscapeBackslashes(*sc.Description)))
	}
	w.line(indent + "public void " + ToMethodIdentifier(sc.Name) + "() {")
	g.writeBody(w, g.BuildChain(sc.Steps))
	w.line(indent + "}")
}

// MethodPlan summarizes one generated test method.
type MethodPlan struct {
	Name       string
	Statements int
	Line       int
}

// ClassPlan summarizes the class Generate would write for a document.
type ClassPlan struct {
	ClassName string
	Methods   []MethodPlan
}

// Describe computes the names and statement counts of the generated class
// without rendering it.
func (g *Generator) Describe(doc *feature.Document) ClassPlan {
	plan := ClassPlan{ClassName: g.ClassName(doc)}
	for _, sc := range doc.Scenarios {
		plan.Methods = append(plan.Methods, MethodPlan{
			Name:       ToMethodIdentifier(sc.Name),
			Statements: len(g.BuildChain(sc.Steps)),
			Line:       sc.Line,
		})
	}
	return plan
}

// bodyWriter stops writing after the first error.
type bodyWriter struct {
	w   *bufio.Writer
	err error
}

func (b *bodyWriter) text(s string) {
	if b.err != nil {
		return
	}
	_, b.err = b.w.WriteString(s)
}

func (b *bodyWriter) line(s string) {
	b.text(s + "\n")
}

func (b *bodyWriter) flush() error {
	if err := b.w.Flush(); err != nil {
		return err
	}
	return b.err
}
