package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chriserin/gwtgen/internal/codegen"
	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/feature"
	"github.com/chriserin/gwtgen/internal/gherkin"
	"github.com/chriserin/gwtgen/internal/logger"
	"github.com/chriserin/gwtgen/internal/parser"
)

// loadDocument reads a feature file. .ft files go through the line parser,
// everything else through the cucumber Gherkin parser.
func loadDocument(path string) (*feature.Document, []parser.ParseError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if filepath.Ext(path) == ".ft" {
		doc, parseErrors := parser.Load(path, content)
		return doc, parseErrors, nil
	}

	doc, err := gherkin.ParseBytes(path, content)
	if err != nil {
		return nil, nil, err
	}
	return doc, nil, nil
}

func newGenerator(c config.Config) (*codegen.Generator, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return codegen.New(opts)
}

func logParseErrors(path string, parseErrors []parser.ParseError) {
	for _, pe := range parseErrors {
		logger.Warningf("%s:%d: %s", path, pe.Line, pe.Message)
	}
}
