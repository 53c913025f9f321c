package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwtgen/internal/config"
)

func runBatch(t *testing.T, c config.Config, dir, outDir string, jobs int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunBatch(context.Background(), &buf, c, dir, outDir, jobs))
	return buf.String()
}

func writeFeatures(t *testing.T) {
	t.Helper()
	require.NoError(t, os.MkdirAll("features/nested", 0o755))
	require.NoError(t, os.WriteFile("features/login.feature", []byte(loginFeature), 0o644))
	require.NoError(t, os.WriteFile("features/nested/cart.ft", []byte(`Feature: Shopping cart
  Scenario: Add 2 items
    Given an empty cart
    When I add 2 items
    Then the cart holds 2 items
`), 0o644))
	require.NoError(t, os.WriteFile("features/README.md", []byte("not a feature"), 0o644))
}

func TestBatch_GeneratesOneClassPerFile(t *testing.T) {
	inTempDir(t)
	writeFeatures(t)

	out := runBatch(t, config.Default(), "features", "out", 4)

	data, err := os.ReadFile(filepath.Join("out", "UserLoginTest.java"))
	require.NoError(t, err)
	assert.Equal(t, loginClass, string(data))

	data, err = os.ReadFile(filepath.Join("out", "ShoppingCartTest.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public void Add_2_items() {")
	assert.Contains(t, string(data), "when().I_add_$_items(2);")

	assert.Contains(t, out, "gen  features/login.feature -> out/UserLoginTest.java")
	assert.Contains(t, out, "gen  features/nested/cart.ft -> out/ShoppingCartTest.java")
	assert.Contains(t, out, "generated 2 classes")
}

func TestBatch_ReportsInSortedOrder(t *testing.T) {
	inTempDir(t)
	writeFeatures(t)

	out := runBatch(t, config.Default(), "features", "out", 8)

	login := bytes.Index([]byte(out), []byte("features/login.feature"))
	cart := bytes.Index([]byte(out), []byte("features/nested/cart.ft"))
	assert.Less(t, login, cart)
}

func TestBatch_TracksAndMarksKnownFiles(t *testing.T) {
	inTempDir(t)
	writeFeatures(t)

	runBatch(t, trackingConfig(), "features", "out", 2)
	out := runBatch(t, trackingConfig(), "features", "out", 2)

	assert.Contains(t, out, "trk  features/login.feature -> out/UserLoginTest.java")
	assert.Contains(t, out, "trk  features/nested/cart.ft -> out/ShoppingCartTest.java")
}

func TestBatch_WarnsOnUnsupportedFtKeywords(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll("features", 0o755))
	require.NoError(t, os.WriteFile("features/outline.ft", []byte(`Feature: Outline
  Scenario Outline: Many
    Given <n> users
`), 0o644))

	out := runBatch(t, config.Default(), "features", "out", 1)

	assert.Contains(t, out, "features/outline.ft:2: Scenario Outline is not supported")
	assert.FileExists(t, filepath.Join("out", "OutlineTest.java"))
}

func TestBatch_DuplicateClassNames(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll("features", 0o755))
	require.NoError(t, os.WriteFile("features/a.feature", []byte(loginFeature), 0o644))
	require.NoError(t, os.WriteFile("features/b.feature", []byte(loginFeature), 0o644))

	var buf bytes.Buffer
	err := RunBatch(context.Background(), &buf, config.Default(), "features", "out", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both generate")
}

func TestBatch_ParseErrorStopsBatch(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll("features", 0o755))
	require.NoError(t, os.WriteFile("features/bad.feature", []byte("Feature: Bad\n  Scenario: x\n    Given y\n      \"\"\"\n"), 0o644))

	var buf bytes.Buffer
	err := RunBatch(context.Background(), &buf, config.Default(), "features", "out", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "features/bad.feature")
}

func TestBatch_EmptyDirectory(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll("features", 0o755))

	out := runBatch(t, config.Default(), "features", "out", 2)

	assert.Contains(t, out, "generated 0 classes")
}

func TestBatch_CustomExtension(t *testing.T) {
	inTempDir(t)
	writeFeatures(t)
	c := config.Default()
	c.Output.Extension = ".kt"

	runBatch(t, c, "features", "out", 2)

	assert.FileExists(t, filepath.Join("out", "UserLoginTest.kt"))
}
