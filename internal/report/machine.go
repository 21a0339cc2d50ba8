// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// JSON renders the document as an indented JSON report with a summary block
// and the four difference lists.
func JSON(doc Document, opts Options) error {
	w := opts.writer()

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	out = append(out, '\n')

	_, err = w.Write(out)
	return err
}

// YAML renders the document as a YAML report with the same shape as JSON.
func YAML(doc Document, opts Options) error {
	w := opts.writer()

	// yaml.v2 only honors `yaml` struct tags, which Document carries in
	// parallel with its json tags.
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = w.Write(out)
	return err
}
