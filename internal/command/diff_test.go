// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeDoc(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runDiff(t *testing.T, args ...string) error {
	t.Helper()
	argv := append([]string{"jcmp", "diff"}, args...)
	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)
	return app.Run(context.Background(), argv)
}

func TestDiffIdentical(t *testing.T) {
	left := writeDoc(t, "left.json", `{"a": 1}`)
	right := writeDoc(t, "right.json", `{"a": 1}`)

	out := filepath.Join(t.TempDir(), "report.json")
	err := runDiff(t, left, right, "--output", "json", "--out", out)
	assert.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gjson.GetBytes(raw, "summary.total_differences").Int())
}

func TestDiffDifferencesExitCode(t *testing.T) {
	left := writeDoc(t, "left.json", `{"a": 1, "b": 2}`)
	right := writeDoc(t, "right.json", `{"a": 9}`)

	out := filepath.Join(t.TempDir(), "report.json")
	err := runDiff(t, left, right, "--output", "json", "--out", out)

	require.ErrorIs(t, err, ErrDifferencesFound)

	raw, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, int64(2), gjson.GetBytes(raw, "summary.total_differences").Int())
	assert.Equal(t, "root['b']", gjson.GetBytes(raw, "differences.missing_in_right.0.path").String())
}

func TestDiffSelect(t *testing.T) {
	left := writeDoc(t, "left.json", `{"data": {"items": [1, 2]}, "ts": 1}`)
	right := writeDoc(t, "right.json", `{"data": {"items": [1, 2]}, "ts": 2}`)

	// Narrowed to data.items the ts mismatch is out of scope.
	out := filepath.Join(t.TempDir(), "report.json")
	err := runDiff(t, left, right, "--select", "data.items", "--output", "json", "--out", out)
	assert.NoError(t, err)
}

func TestDiffFilter(t *testing.T) {
	left := writeDoc(t, "left.json", `{"a": 1, "meta": {"ts": 1}}`)
	right := writeDoc(t, "right.json", `{"a": 2, "meta": {"ts": 2}}`)

	out := filepath.Join(t.TempDir(), "report.json")
	err := runDiff(t, left, right, "--filter", "!~meta", "--output", "json", "--out", out)

	require.Error(t, err) // one difference survives the filter
	raw, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, int64(1), gjson.GetBytes(raw, "summary.total_differences").Int())
	assert.Equal(t, "root['a']", gjson.GetBytes(raw, "differences.value_mismatches.0.path").String())
}

func TestDiffWrongArgCount(t *testing.T) {
	left := writeDoc(t, "left.json", `{}`)
	err := runDiff(t, left)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two")
}

func TestDiffMissingFile(t *testing.T) {
	left := writeDoc(t, "left.json", `{}`)
	err := runDiff(t, left, filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
