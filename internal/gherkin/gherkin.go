// Package gherkin reads standard .feature files with the cucumber parser and
// converts them into the document model used for code generation.
package gherkin

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/chriserin/gwtgen/internal/feature"
)

// Parse reads a Gherkin document from r. name is used as the document source
// and, when the feature has no title, as its description.
func Parse(name string, r io.Reader) (*feature.Document, error) {
	gd, err := gherkin.ParseGherkinDocument(r, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return Convert(name, gd), nil
}

// ParseBytes is Parse over an in-memory file.
func ParseBytes(name string, content []byte) (*feature.Document, error) {
	return Parse(name, bytes.NewReader(content))
}

// Convert maps a cucumber document onto the generation model. Backgrounds,
// tables, doc strings and examples are dropped; scenarios inside rules are
// flattened in file order.
func Convert(name string, gd *messages.GherkinDocument) *feature.Document {
	doc := &feature.Document{Source: name}
	if gd == nil || gd.Feature == nil {
		doc.Description = baseName(name)
		return doc
	}

	doc.Description = strings.TrimSpace(gd.Feature.Name)
	if doc.Description == "" {
		doc.Description = baseName(name)
	}

	for _, child := range gd.Feature.Children {
		switch {
		case child.Scenario != nil:
			doc.Scenarios = append(doc.Scenarios, convertScenario(child.Scenario))
		case child.Rule != nil:
			for _, rc := range child.Rule.Children {
				if rc.Scenario != nil {
					doc.Scenarios = append(doc.Scenarios, convertScenario(rc.Scenario))
				}
			}
		}
	}
	return doc
}

func convertScenario(s *messages.Scenario) feature.Scenario {
	sc := feature.Scenario{
		Name:        strings.TrimSpace(s.Name),
		Description: feature.Describe(trimLines(s.Description)),
		Line:        line(s.Location),
	}
	for _, st := range s.Steps {
		sc.Steps = append(sc.Steps, feature.Step{
			Keyword: feature.StepKeyword(st.Keyword),
			Text:    st.Text,
			Line:    line(st.Location),
		})
	}
	return sc
}

func trimLines(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}

func line(loc *messages.Location) int {
	if loc == nil {
		return 0
	}
	return int(loc.Line)
}

func baseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
