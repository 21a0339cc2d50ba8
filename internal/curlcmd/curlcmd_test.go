// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package curlcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		expURL      string
		expMethod   string
		expHeaders  map[string]string
		expData     string
		expectError bool
	}{
		{
			name:    "bare url",
			command: `curl https://api.example.com/v1/items`,
			expURL:  "https://api.example.com/v1/items",
		},
		{
			name:    "without curl prefix",
			command: `https://api.example.com/v1/items`,
			expURL:  "https://api.example.com/v1/items",
		},
		{
			name:       "headers and explicit method",
			command:    `curl -X PUT -H "Authorization: Bearer tok" -H 'Accept: application/json' https://api.example.com`,
			expURL:     "https://api.example.com",
			expMethod:  "PUT",
			expHeaders: map[string]string{"Authorization": "Bearer tok", "Accept": "application/json"},
		},
		{
			name:      "data implies post",
			command:   `curl https://api.example.com -d '{"q": 1}'`,
			expURL:    "https://api.example.com",
			expMethod: "POST",
			expData:   `{"q": 1}`,
		},
		{
			name:      "data with explicit method wins",
			command:   `curl -X PATCH --data-raw '{"q": 1}' https://api.example.com`,
			expURL:    "https://api.example.com",
			expMethod: "PATCH",
			expData:   `{"q": 1}`,
		},
		{
			name: "line continuations",
			command: `curl -H "Accept: application/json" \
				-X GET \
				https://api.example.com/items`,
			expURL:     "https://api.example.com/items",
			expMethod:  "GET",
			expHeaders: map[string]string{"Accept": "application/json"},
		},
		{
			name:    "location flag ignored",
			command: `curl -L https://api.example.com`,
			expURL:  "https://api.example.com",
		},
		{
			name:        "no url",
			command:     `curl -X GET`,
			expectError: true,
		},
		{
			name:        "two urls",
			command:     `curl https://a.example.com https://b.example.com`,
			expectError: true,
		},
		{
			name:        "malformed header",
			command:     `curl -H "NotAHeader" https://api.example.com`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(tt.command)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expURL, req.URL)
			assert.Equal(t, tt.expMethod, req.Method)
			assert.Equal(t, tt.expData, req.Data)
			if tt.expHeaders != nil {
				assert.Equal(t, tt.expHeaders, req.Headers)
			}
		})
	}
}
