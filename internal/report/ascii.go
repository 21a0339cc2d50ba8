// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Ascii renders a unified line-oriented diff of the two raw documents. This is
// a raw structural view that bypasses identity-aware matching, useful for
// eyeballing small documents. Only object-rooted documents are supported by
// the underlying formatter.
func Ascii(leftRaw []byte, rightRaw []byte, opts Options) error {
	var jdoc map[string]interface{}
	if err := json.Unmarshal(leftRaw, &jdoc); err != nil {
		return fmt.Errorf("ascii output requires object-rooted documents: %w", err)
	}

	delta, err := gojsondiff.New().Compare(leftRaw, rightRaw)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		_, err = fmt.Fprintln(opts.writer(), "The documents are identical.")
		return err
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(opts.writer(), diffString)
	return err
}
