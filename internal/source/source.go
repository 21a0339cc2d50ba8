// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcmp/jcmp/internal/fetch"
	"github.com/jcmp/jcmp/internal/log"
)

// Document is a loaded JSON document, both the raw bytes as read and the
// decoded tree the comparator walks.
type Document struct {
	Spec string
	Raw  []byte
	Tree interface{}
}

// Load reads a JSON document from a source spec. Supported specs:
//
//	-                  stdin
//	http:// https://   fetched over HTTP (cached per useCache)
//	s3://bucket/key    fetched from S3
//	anything else      local file path
//
// The bytes must decode as JSON or Load fails.
func Load(ctx context.Context, spec string, useCache bool) (*Document, error) {
	var raw []byte
	var err error

	switch {
	case spec == "-":
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			err = fmt.Errorf("failed to read stdin: %w", err)
		}
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		raw, err = fetch.Fetch(ctx, fetch.Request{URL: spec}, useCache)
	case strings.HasPrefix(spec, "s3://"):
		raw, err = loadS3(ctx, spec)
	default:
		raw, err = os.ReadFile(spec)
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", spec, err)
		}
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded source: spec=%s, bytes=%d", spec, len(raw))

	return Decode(spec, raw)
}

// Decode parses raw bytes into a Document. Split out from Load so callers
// holding bytes from elsewhere (a pasted curl response, a --select
// subdocument) get identical decoding.
func Decode(spec string, raw []byte) (*Document, error) {
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", spec, err)
	}
	return &Document{Spec: spec, Raw: raw, Tree: tree}, nil
}
