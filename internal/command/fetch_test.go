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
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/fetch"
	"github.com/jcmp/jcmp/internal/meta"
)

// parseRequest runs the fetch command's flag parsing far enough to capture
// what buildRequest produces for the given argv tail.
func parseRequest(t *testing.T, args ...string) (fetch.Request, error) {
	t.Helper()

	var req fetch.Request
	var reqErr error

	cmd := fetchCommandBuilder(meta.Meta{})
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		req, reqErr = buildRequest(c)
		return nil
	}

	argv := append([]string{"fetch"}, args...)
	require.NoError(t, cmd.Run(context.Background(), argv))
	return req, reqErr
}

func TestBuildRequestURL(t *testing.T) {
	req, err := parseRequest(t,
		"https://api.example.com/items",
		"-H", "Accept: application/json",
		"-X", "GET")
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/items", req.URL)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, map[string]string{"Accept": "application/json"}, req.Headers)
}

func TestBuildRequestDataImpliesPost(t *testing.T) {
	req, err := parseRequest(t, "https://api.example.com", "-d", `{"q": 1}`)
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, `{"q": 1}`, req.Data)
}

func TestBuildRequestCurl(t *testing.T) {
	req, err := parseRequest(t, "--curl", `curl -X PUT https://api.example.com -H 'X-K: v'`)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", req.URL)
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t, map[string]string{"X-K": "v"}, req.Headers)
}

func TestBuildRequestCurlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.curl")
	require.NoError(t, os.WriteFile(path, []byte("curl https://api.example.com/from-file"), 0o600))

	req, err := parseRequest(t, "--curl-file", path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/from-file", req.URL)
}

func TestBuildRequestMutuallyExclusive(t *testing.T) {
	_, err := parseRequest(t, "https://api.example.com", "--curl", "curl https://other.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	_, err = parseRequest(t)
	assert.Error(t, err)
}

func TestBuildRequestMalformedHeader(t *testing.T) {
	_, err := parseRequest(t, "https://api.example.com", "-H", "NoColonHere")
	assert.Error(t, err)
}
