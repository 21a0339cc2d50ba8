// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package curlcmd

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/shlex"

	"github.com/jcmp/jcmp/internal/fetch"
	"github.com/jcmp/jcmp/internal/log"
)

// continuationRegex collapses backslash-newline line continuations so a
// multi-line curl command pasted from a terminal tokenizes cleanly.
var continuationRegex = regexp.MustCompile(`\\\s*\n\s*`)

// Parse converts a curl command line into a fetch.Request. The leading "curl"
// token is optional. Supported flags: -X/--request, -H/--header,
// -d/--data/--data-raw/--data-binary (implies POST), -L/--location (ignored,
// redirects are always followed).
func Parse(command string) (fetch.Request, error) {
	req := fetch.Request{Headers: map[string]string{}}

	flattened := continuationRegex.ReplaceAllString(command, " ")
	tokens, err := shlex.Split(flattened)
	if err != nil {
		return req, fmt.Errorf("failed to tokenize curl command: %w", err)
	}
	if len(tokens) > 0 && tokens[0] == "curl" {
		tokens = tokens[1:]
	}

	dataSeen := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "-X", "--request":
			i++
			if i >= len(tokens) {
				return req, fmt.Errorf("%s requires a value", tok)
			}
			req.Method = strings.ToUpper(tokens[i])
		case "-H", "--header":
			i++
			if i >= len(tokens) {
				return req, fmt.Errorf("%s requires a value", tok)
			}
			name, value, found := strings.Cut(tokens[i], ":")
			if !found {
				return req, fmt.Errorf("malformed header %q", tokens[i])
			}
			req.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
		case "-d", "--data", "--data-raw", "--data-binary":
			i++
			if i >= len(tokens) {
				return req, fmt.Errorf("%s requires a value", tok)
			}
			req.Data = tokens[i]
			dataSeen = true
		case "-L", "--location":
			// Redirects are followed regardless.
		default:
			if strings.HasPrefix(tok, "-") {
				log.Debugf("ignoring unsupported curl flag: flag=%s", tok)
				continue
			}
			if req.URL != "" {
				return req, fmt.Errorf("multiple URLs in curl command: %q and %q", req.URL, tok)
			}
			req.URL = tok
		}
	}

	if req.URL == "" {
		return req, fmt.Errorf("no URL found in curl command")
	}

	// curl switches to POST when a body is given and no method is set.
	if dataSeen && req.Method == "" {
		req.Method = http.MethodPost
	}

	return req, nil
}
