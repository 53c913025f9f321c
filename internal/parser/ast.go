package parser

// Layer 1: syntax tree of a .ft file

type Document struct {
	Feature *Feature
}

type Feature struct {
	Header    FeatureHeader
	Scenarios []ScenarioDefinition
}

type FeatureHeader struct {
	Name        string
	Description string
}

type ScenarioDefinition struct {
	Scenario Scenario
	Line     int // 1-based line number of Scenario: line
}

type Scenario struct {
	Name        string
	Description string
	StepGroups  []StepGroup
}

// StepGroup is a leading step and the And/But/* steps that follow it.
type StepGroup struct {
	Step     Step
	AltSteps []Step
}

type Step struct {
	Keyword string // Given, When, Then, And, But, *
	Text    string
	Line    int
}

type ParseError struct {
	Line    int
	Message string
}
