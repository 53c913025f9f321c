package parser

import (
	"strings"
)

var (
	continuationKeywords = []string{"And", "But", "*"}
	stepKeywords         = []string{"Given", "When", "Then", "And", "But", "*"}
)

// Parse parses a .ft file and returns a Document AST and any parse errors.
func Parse(filename string, content []byte) (*Document, []ParseError) {
	lines := strings.Split(string(content), "\n")
	var errors []ParseError

	doc := &Document{}
	feature := &Feature{}
	doc.Feature = feature

	i := 0

	// Skip leading blanks, comments and feature tags
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || isTagLine(trimmed) {
			i++
			continue
		}
		break
	}

	feature.Header.Name = filenameWithoutExt(filename)
	if i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "Feature:") {
			if name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Feature:")); name != "" {
				feature.Header.Name = name
			}
			i++

			var descLines []string
			i, descLines = collectDescription(lines, i)
			feature.Header.Description = strings.Join(descLines, "\n")
		}
	}

	// Body loop
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if isDocStringDelimiter(trimmed) {
			i = skipDocString(lines, i)
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") || isTagLine(trimmed) {
			i++
			continue
		}

		// Background steps are not part of any scenario
		if strings.HasPrefix(trimmed, "Background:") {
			i++
			i = consumeBlock(lines, i)
			continue
		}

		if strings.HasPrefix(trimmed, "Scenario:") {
			sd := ScenarioDefinition{
				Scenario: Scenario{Name: strings.TrimSpace(strings.TrimPrefix(trimmed, "Scenario:"))},
				Line:     i + 1,
			}
			i++
			i = parseScenarioBody(lines, i, &sd.Scenario)
			feature.Scenarios = append(feature.Scenarios, sd)
			continue
		}

		// Unsupported keywords
		if msg, ok := unsupported(trimmed); ok {
			errors = append(errors, ParseError{Line: i + 1, Message: msg})
			i++
			i = consumeBlock(lines, i)
			continue
		}

		// Stray content line outside any scenario
		i++
	}

	return doc, errors
}

// parseScenarioBody reads the description and steps of a scenario starting
// at line i and returns the index of the first line after it.
func parseScenarioBody(lines []string, i int, sc *Scenario) int {
	var descLines []string
	i, descLines = collectDescription(lines, i)
	sc.Description = strings.Join(descLines, "\n")

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isDocStringDelimiter(trimmed) {
			i = skipDocString(lines, i)
			continue
		}
		if isKeyword(trimmed) || isTagLine(trimmed) {
			break
		}
		if keyword, text, ok := splitStep(trimmed); ok {
			step := Step{Keyword: keyword, Text: text, Line: i + 1}
			if isContinuation(keyword) && len(sc.StepGroups) > 0 {
				last := &sc.StepGroups[len(sc.StepGroups)-1]
				last.AltSteps = append(last.AltSteps, step)
			} else {
				sc.StepGroups = append(sc.StepGroups, StepGroup{Step: step})
			}
		}
		// Blank lines, comments and table rows fall through
		i++
	}
	return i
}

// collectDescription gathers free-text lines up to the first step, keyword,
// tag or doc string. Surrounding blank lines are dropped.
func collectDescription(lines []string, i int) (int, []string) {
	var desc []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if isKeyword(trimmed) || isTagLine(trimmed) || isDocStringDelimiter(trimmed) {
			break
		}
		if _, _, ok := splitStep(trimmed); ok {
			break
		}
		if !strings.HasPrefix(trimmed, "#") && (trimmed != "" || len(desc) > 0) {
			desc = append(desc, trimmed)
		}
		i++
	}
	for len(desc) > 0 && desc[len(desc)-1] == "" {
		desc = desc[:len(desc)-1]
	}
	return i, desc
}

// splitStep separates a step line into keyword and text.
func splitStep(trimmed string) (keyword, text string, ok bool) {
	for _, kw := range stepKeywords {
		rest, found := strings.CutPrefix(trimmed, kw)
		if !found {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return kw, strings.TrimSpace(rest), true
	}
	return "", "", false
}

func isContinuation(keyword string) bool {
	for _, kw := range continuationKeywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

func unsupported(trimmed string) (string, bool) {
	switch {
	case strings.HasPrefix(trimmed, "Scenario Outline:"):
		return "Scenario Outline is not supported", true
	case strings.HasPrefix(trimmed, "Rule:"):
		return "Rule is not supported", true
	case strings.HasPrefix(trimmed, "Examples:"):
		return "Examples is not supported", true
	}
	return "", false
}

func isTagLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "@")
}

func isKeyword(trimmed string) bool {
	return strings.HasPrefix(trimmed, "Feature:") ||
		strings.HasPrefix(trimmed, "Background:") ||
		strings.HasPrefix(trimmed, "Scenario:") ||
		strings.HasPrefix(trimmed, "Scenario Outline:") ||
		strings.HasPrefix(trimmed, "Rule:") ||
		strings.HasPrefix(trimmed, "Examples:")
}

func isDocStringDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "```")
}

// skipDocString advances past a doc string block. i points at the opening delimiter.
// Returns the index of the line after the closing delimiter.
func skipDocString(lines []string, i int) int {
	delimiter := `"""`
	if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		delimiter = "```"
	}
	i++
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == delimiter {
			return i + 1
		}
		i++
	}
	return i // EOF without closing delimiter
}

// consumeBlock advances past content lines, skipping over doc strings,
// until the next keyword, tag line, or EOF.
func consumeBlock(lines []string, i int) int {
	for i < len(lines) {
		t := strings.TrimSpace(lines[i])
		if isDocStringDelimiter(t) {
			i = skipDocString(lines, i)
			continue
		}
		if isKeyword(t) || isTagLine(t) {
			break
		}
		i++
	}
	return i
}
