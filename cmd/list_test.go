package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gwtgen/internal/config"
)

func runList(t *testing.T, c config.Config, className string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, c, className))
	return buf.String()
}

func TestList_RequiresInit(t *testing.T) {
	inTempDir(t)
	var buf bytes.Buffer

	err := RunList(&buf, config.Default(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gwtgen init")

	err = RunList(&buf, trackingConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gwtgen init")
}

func TestList_ShowsTrackedMethods(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeFeatures(t)
	runBatch(t, trackingConfig(), "features", "out", 2)

	out := runList(t, trackingConfig(), "")

	assert.Contains(t, out, "ShoppingCartTest  Add_2_items   3  features/nested/cart.ft:2")
	assert.Contains(t, out, "UserLoginTest     User_logs_in  3  features/login.feature:2")
}

func TestList_FilterByClass(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeFeatures(t)
	runBatch(t, trackingConfig(), "features", "out", 2)

	out := runList(t, trackingConfig(), "UserLoginTest")

	assert.Contains(t, out, "User_logs_in")
	assert.NotContains(t, out, "Add_2_items")
}

func TestList_EmptyDatabase(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runList(t, trackingConfig(), "")
	assert.Empty(t, out)
}

func TestList_UnknownClass(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("login.feature", []byte(loginFeature), 0o644))
	runGenerate(t, trackingConfig(), "login.feature", "")

	out := runList(t, trackingConfig(), "NopeTest")
	assert.Empty(t, out)
}
