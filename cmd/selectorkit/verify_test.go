package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyCommandUpdateThenMatch(t *testing.T) {
	t.Parallel()

	sheetPath := writeTempFile(t, "docs.yaml", docsSheet)
	goldenPath := filepath.Join(t.TempDir(), "docs.golden.json")

	stdout, _, err := executeCommand("verify", "--update", sheetPath, goldenPath)
	require.NoError(t, err)
	require.Equal(t, "updated "+goldenPath+"\n", stdout)

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	require.Contains(t, string(golden), `"selector": "div#main + table#data"`)

	stdout, _, err = executeCommand("verify", sheetPath, goldenPath)
	require.NoError(t, err)
	require.Equal(t, "ok\n", stdout)
}

func TestVerifyCommandReportsDrift(t *testing.T) {
	t.Parallel()

	sheetPath := writeTempFile(t, "docs.yaml", docsSheet)
	goldenPath := filepath.Join(t.TempDir(), "docs.golden.json")
	_, _, err := executeCommand("verify", "--update", sheetPath, goldenPath)
	require.NoError(t, err)

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(goldenPath, []byte(strings.Replace(string(golden), "table#data", "table#grid", 1)), 0o600))

	stdout, _, err := executeCommand("verify", sheetPath, goldenPath)
	require.ErrorIs(t, err, errGoldenMismatch)
	require.Contains(t, stdout, `-    "selector": "table#grid",`)
	require.Contains(t, stdout, `+    "selector": "table#data",`)
}

func TestVerifyCommandMissingGolden(t *testing.T) {
	t.Parallel()

	sheetPath := writeTempFile(t, "docs.yaml", docsSheet)
	_, _, err := executeCommand("verify", sheetPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "--update")
}

func TestVerifyCommandRejectsBrokenSheet(t *testing.T) {
	t.Parallel()

	sheetPath := writeTempFile(t, "broken.yaml", brokenSheet)
	goldenPath := filepath.Join(t.TempDir(), "broken.golden.json")
	_, _, err := executeCommand("verify", "--update", sheetPath, goldenPath)
	require.Error(t, err)

	_, statErr := os.Stat(goldenPath)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestVerifyCommandExampleSheet(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("verify",
		filepath.Join("..", "..", "examples", "sheets", "docs.yaml"),
		filepath.Join("..", "..", "examples", "sheets", "docs.golden.json"))
	require.NoError(t, err)
	require.Equal(t, "ok\n", stdout)
}
