package parser

import (
	"strings"

	"github.com/chriserin/gwtgen/internal/feature"
)

// Transform converts a Layer 1 Document into the Layer 2 document model
// that code generation consumes. Step groups are flattened back into file
// order.
func Transform(doc *Document, filename string) *feature.Document {
	out := &feature.Document{Source: filename}

	if doc.Feature == nil {
		out.Description = filenameWithoutExt(filename)
		return out
	}
	out.Description = doc.Feature.Header.Name

	for _, sd := range doc.Feature.Scenarios {
		sc := feature.Scenario{
			Name:        sd.Scenario.Name,
			Description: feature.Describe(sd.Scenario.Description),
			Line:        sd.Line,
		}
		for _, group := range sd.Scenario.StepGroups {
			sc.Steps = append(sc.Steps, toStep(group.Step))
			for _, alt := range group.AltSteps {
				sc.Steps = append(sc.Steps, toStep(alt))
			}
		}
		out.Scenarios = append(out.Scenarios, sc)
	}

	return out
}

// Load parses content and transforms it in one go.
func Load(filename string, content []byte) (*feature.Document, []ParseError) {
	doc, errors := Parse(filename, content)
	return Transform(doc, filename), errors
}

func toStep(s Step) feature.Step {
	return feature.Step{Keyword: feature.StepKeyword(s.Keyword), Text: s.Text, Line: s.Line}
}

func filenameWithoutExt(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
