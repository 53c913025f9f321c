package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwtgen/internal/config"
)

func generateFeatureFile(name string, scenarioCount int) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Feature: %s\n", name)
	buf.WriteString("  Background:\n")
	buf.WriteString("    Given the system is running\n\n")
	for i := 1; i <= scenarioCount; i++ {
		fmt.Fprintf(&buf, "  Scenario: %s scenario %d\n", name, i)
		fmt.Fprintf(&buf, "    Given precondition %d\n", i)
		fmt.Fprintf(&buf, "    And %d.5 units in stock\n", i)
		fmt.Fprintf(&buf, "    When action %d is taken\n", i)
		fmt.Fprintf(&buf, "    Then result %d is observed\n\n", i)
	}
	return buf.String()
}

func setupBenchProject(b *testing.B, fileCount, scenariosPerFile int, ext string) string {
	b.Helper()
	dir := b.TempDir()
	features := filepath.Join(dir, "features")
	require.NoError(b, os.MkdirAll(features, 0o755))
	for i := 0; i < fileCount; i++ {
		name := fmt.Sprintf("feature %d", i)
		path := filepath.Join(features, fmt.Sprintf("feature_%d%s", i, ext))
		require.NoError(b, os.WriteFile(path, []byte(generateFeatureFile(name, scenariosPerFile)), 0o644))
	}
	return dir
}

func benchBatch(b *testing.B, fileCount, scenariosPerFile, jobs int, ext string) {
	dir := setupBenchProject(b, fileCount, scenariosPerFile, ext)
	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		require.NoError(b, RunBatch(context.Background(), &buf, config.Default(),
			filepath.Join(dir, "features"), filepath.Join(dir, "out"), jobs))
	}
}

// BenchmarkBatch_Small: 5 files, 10 scenarios each, sequential
func BenchmarkBatch_Small(b *testing.B) { benchBatch(b, 5, 10, 1, ".feature") }

// BenchmarkBatch_Large: 50 files, 50 scenarios each, sequential
func BenchmarkBatch_Large(b *testing.B) { benchBatch(b, 50, 50, 1, ".feature") }

// BenchmarkBatch_Large_Parallel: 50 files, 50 scenarios each, 8 jobs
func BenchmarkBatch_Large_Parallel(b *testing.B) { benchBatch(b, 50, 50, 8, ".feature") }

// BenchmarkBatch_LineParser_Large: the same project through the .ft parser
func BenchmarkBatch_LineParser_Large(b *testing.B) { benchBatch(b, 50, 50, 8, ".ft") }
