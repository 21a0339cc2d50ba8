// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/pretty"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/log"
)

const (
	defaultRetryMax = 3
	previewLen      = 120
)

// cacheSubdir is where fetched responses live under the cache base dir.
var cacheSubdir = []string{"responses"}

// Request describes an HTTP fetch of a JSON document.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
	Data    string
}

// Fetch performs the request and returns the response body, which must be
// valid JSON. GET responses are served from and written to the local cache
// when useCache is true.
func Fetch(ctx context.Context, req Request, useCache bool) ([]byte, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	if useCache && method == http.MethodGet {
		if entry, ok := cacheutil.Read(cacheSubdir, req.URL); ok {
			log.Debugf("served from cache: url=%s", req.URL)
			return entry.Data, nil
		}
	}

	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.Logger = nil

	var body io.Reader
	if req.Data != "" {
		body = strings.NewReader(req.Data)
	}

	hreq, err := retryablehttp.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, v := range req.Headers {
		hreq.Header.Set(k, v)
	}
	if req.Data != "" && hreq.Header.Get("Content-Type") == "" {
		hreq.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("fetching: method=%s, url=%s", method, req.URL)
	resp, err := client.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	log.Debugf("response: status=%d, size=%s", resp.StatusCode, humanize.Bytes(uint64(len(raw))))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("response from %s is not valid JSON: %s", req.URL, preview(raw))
	}

	if useCache && method == http.MethodGet {
		if err := cacheutil.Write(cacheSubdir, req.URL, raw); err != nil {
			log.WithError(err).Warnf("failed to cache response for %s", req.URL)
		}
	}

	return raw, nil
}

// Save writes the document, pretty-printed, to the named file. "-" or ""
// writes to stdout.
func Save(data []byte, out string) error {
	formatted := pretty.Pretty(data)

	if out == "" || out == "-" {
		_, err := os.Stdout.Write(formatted)
		return err
	}

	if err := os.WriteFile(out, formatted, os.FileMode(0o644)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Infof("wrote %s (%s)", out, humanize.Bytes(uint64(len(formatted))))
	return nil
}

func preview(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > previewLen {
		s = s[:previewLen] + "..."
	}
	return s
}
