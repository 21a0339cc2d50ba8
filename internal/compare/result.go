// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

// Missing is a key or element present on one side only. Value holds a
// formatted snapshot of the side that has it.
type Missing struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}

// TypeMismatch is a location where the two sides hold values of different
// kinds. Children below a type mismatch are not diffed individually.
type TypeMismatch struct {
	Path      string `json:"path" yaml:"path"`
	LeftType  string `json:"left_type" yaml:"left_type"`
	RightType string `json:"right_type" yaml:"right_type"`
	Left      string `json:"left" yaml:"left"`
	Right     string `json:"right" yaml:"right"`
}

// ValueMismatch is a location where both sides hold scalars of the same kind
// but with different values. The raw decoded values are kept so machine
// renderers can emit them natively.
type ValueMismatch struct {
	Path  string      `json:"path" yaml:"path"`
	Left  interface{} `json:"left" yaml:"left"`
	Right interface{} `json:"right" yaml:"right"`
}

// Result accumulates one comparison invocation's differences, one ordered
// slice per kind. A Result is created fresh by Compare and never reused.
type Result struct {
	MissingInRight  []Missing       `json:"missing_in_right" yaml:"missing_in_right"`
	MissingInLeft   []Missing       `json:"missing_in_left" yaml:"missing_in_left"`
	TypeMismatches  []TypeMismatch  `json:"type_mismatches" yaml:"type_mismatches"`
	ValueMismatches []ValueMismatch `json:"value_mismatches" yaml:"value_mismatches"`
}

// Total returns the number of differences of all kinds.
func (r *Result) Total() int {
	return len(r.MissingInRight) +
		len(r.MissingInLeft) +
		len(r.TypeMismatches) +
		len(r.ValueMismatches)
}

// Identical reports whether the comparison found no differences.
func (r *Result) Identical() bool {
	return r.Total() == 0
}
