package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectorkit/internal/sheet"
	selectorerrors "github.com/alexisbeaulieu97/selectorkit/pkg/errors"
)

const docsSheet = `version: 1.0.0
name: docs
selectors:
  - name: main
    parts:
      - { kind: element, value: div }
      - { kind: id, value: main }
  - name: data
    parts:
      - { kind: element, value: table }
      - { kind: id, value: data }
  - name: main-then-data
    combine: { left: main, combinator: adjacent-sibling, right: data }
`

const brokenSheet = `version: 1.0.0
name: broken
selectors:
  - name: ok
    parts: [{ kind: element, value: p }]
  - name: late-element
    parts:
      - { kind: class, value: x }
      - { kind: element, value: div }
`

func TestRenderCommandTable(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "docs.yaml", docsSheet)
	stdout, _, err := executeCommand("render", path)
	require.NoError(t, err)
	require.Equal(t, "main            div#main\ndata            table#data\nmain-then-data  div#main + table#data\n", stdout)
}

func TestRenderCommandJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "docs.yaml", docsSheet)
	stdout, _, err := executeCommand("render", "--json", path)
	require.NoError(t, err)

	var entries []sheet.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 3)
	require.Equal(t, "div#main + table#data", entries[2].Selector)
	require.Equal(t, sheet.KindCombined, entries[2].Kind)
}

func TestRenderCommandReportsBrokenSelectors(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "broken.yaml", brokenSheet)
	stdout, stderr, err := executeCommand("render", path)
	require.Error(t, err)
	require.ErrorIs(t, err, selectorerrors.ErrOutOfOrderFragment)
	require.Contains(t, err.Error(), `selector "late-element"`)
	require.Equal(t, "ok  p\n", stdout)
	require.Contains(t, stderr, "selector failed to build")
}

func TestRenderCommandStrict(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "odd.yaml", `version: 1.0.0
name: odd
selectors:
  - name: odd
    parts: [{ kind: element, value: "div[" }]
`)
	stdout, _, err := executeCommand("render", path)
	require.NoError(t, err)
	require.Equal(t, "odd  div[\n", stdout)

	_, _, err = executeCommand("render", "--strict", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "checking selectors")
}

func TestRenderCommandInputErrors(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("render", "/path/does/not/exist.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")

	_, _, err = executeCommand("render", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")

	path := writeTempFile(t, "invalid.yaml", "version: 1.0.0\nname: x\nselectors: 5\n")
	_, _, err = executeCommand("render", path)
	var parseErr *selectorerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateInputPath(t *testing.T) {
	t.Parallel()

	_, err := validateInputPath("sheet", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "sheet file is required")

	path := writeTempFile(t, "x.yaml", "")
	abs, err := validateInputPath("sheet", path)
	require.NoError(t, err)
	require.Equal(t, path, abs)
}
