// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": [1, 2]}`), 0o600))

	doc, err := Load(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Spec)
	assert.JSONEq(t, `{"a": [1, 2]}`, string(doc.Raw))

	tree, ok := doc.Tree.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, tree, "a")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), false)
	assert.Error(t, err)
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": `), 0o600))

	_, err := Load(context.Background(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))
	defer srv.Close()

	doc, err := Load(context.Background(), srv.URL, false)
	require.NoError(t, err)

	tree, ok := doc.Tree.([]interface{})
	require.True(t, ok)
	assert.Len(t, tree, 3)
}

func TestDecodeScalarRoot(t *testing.T) {
	doc, err := Decode("inline", []byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, float64(42), doc.Tree)
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		spec      string
		bucket    string
		key       string
		expectErr bool
	}{
		{"s3://bucket/path/to/doc.json", "bucket", "path/to/doc.json", false},
		{"s3://bucket/key", "bucket", "key", false},
		{"s3://bucket", "", "", true},
		{"s3://bucket/", "", "", true},
		{"s3:///key", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			bucket, key, err := parseS3URI(tt.spec)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
