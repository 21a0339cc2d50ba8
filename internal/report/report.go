// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jcmp/jcmp/internal/compare"
)

// Summary carries the per-kind difference counts plus the source specs.
type Summary struct {
	Left             string `json:"left" yaml:"left"`
	Right            string `json:"right" yaml:"right"`
	TotalDifferences int    `json:"total_differences" yaml:"total_differences"`
	MissingInRight   int    `json:"missing_in_right" yaml:"missing_in_right"`
	MissingInLeft    int    `json:"missing_in_left" yaml:"missing_in_left"`
	TypeMismatches   int    `json:"type_mismatches" yaml:"type_mismatches"`
	ValueMismatches  int    `json:"value_mismatches" yaml:"value_mismatches"`
}

// Document is the renderer-facing shape of one comparison: a summary block
// and the full difference record set. Renderers read it, never write it.
type Document struct {
	Summary     Summary         `json:"summary" yaml:"summary"`
	Differences *compare.Result `json:"differences" yaml:"differences"`
}

// NewDocument builds a Document from a comparison result and the two source
// specs it was produced from.
func NewDocument(res *compare.Result, left string, right string) Document {
	return Document{
		Summary: Summary{
			Left:             left,
			Right:            right,
			TotalDifferences: res.Total(),
			MissingInRight:   len(res.MissingInRight),
			MissingInLeft:    len(res.MissingInLeft),
			TypeMismatches:   len(res.TypeMismatches),
			ValueMismatches:  len(res.ValueMismatches),
		},
		Differences: res,
	}
}

// Options controls where and how a report is rendered.
type Options struct {
	// Writer receives the rendered report. Defaults to os.Stdout.
	Writer io.Writer
	// Color enables styled text output. Ignored by machine formats.
	Color bool
}

func (o Options) writer() io.Writer {
	if o.Writer == nil {
		return os.Stdout
	}
	return o.Writer
}

// Render dispatches to the named renderer. Formats: text, json, yaml.
func Render(doc Document, format string, opts Options) error {
	switch format {
	case "", "text":
		return Text(doc, opts)
	case "json":
		return JSON(doc, opts)
	case "yaml":
		return YAML(doc, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
