// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strings"

	"github.com/apex/log"

	"github.com/jcmp/jcmp/internal/compare"
)

// filterRegex parses a filter expression into negation, operand and target.
// Operand is one of = ^ ~ /, optionally prefixed with '!'. A bare word with
// no operand is shorthand for a contains match. Examples: "~items",
// "=root['a']", "!^root['meta']", "/id=\d+".
var filterRegex = regexp.MustCompile(`^(!)?([=^~/])?(.*)$`)

// Filter is a single parsed --filter expression applied to difference paths.
type Filter struct {
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (bad regex, empty expression) are skipped.
func BuildFilters(spec string) []Filter {
	// Don't prealloc because we don't know what len will be and performance is
	// not critical.
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override for situations where the
	// value contains commas.
	delim := ","
	if d, ok := os.LookupEnv("JCMP_FILTER_DELIM"); ok {
		delim = d
	}

	filterSpecs := strings.Split(spec, delim)
	for _, filterSpec := range filterSpecs {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)

		// Regex should always match, so check for nil just in case.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		f := Filter{
			Negate:  parts[1] == "!",
			Operand: parts[2],
			Value:   parts[3],
		}

		if f.Operand == "" {
			f.Operand = "~"
		}

		if f.Value == "" {
			log.Error("invalid filter (no value): " + filterSpec)
			continue
		}

		if f.Operand == "/" {
			if _, err := regexp.Compile(f.Value); err != nil {
				log.Error("invalid filter regex: " + filterSpec)
				continue
			}
		}

		filters = append(filters, f)
	}

	return filters
}

// Apply returns a copy of res holding only the difference records whose paths
// pass every filter in spec. The input Result is left untouched. An empty
// spec returns res unchanged.
func Apply(res *compare.Result, spec string) *compare.Result {
	fs := BuildFilters(spec)
	if len(fs) == 0 {
		return res
	}

	out := &compare.Result{}

	for _, r := range res.MissingInRight {
		if MatchPath(r.Path, fs) {
			out.MissingInRight = append(out.MissingInRight, r)
		}
	}
	for _, r := range res.MissingInLeft {
		if MatchPath(r.Path, fs) {
			out.MissingInLeft = append(out.MissingInLeft, r)
		}
	}
	for _, r := range res.TypeMismatches {
		if MatchPath(r.Path, fs) {
			out.TypeMismatches = append(out.TypeMismatches, r)
		}
	}
	for _, r := range res.ValueMismatches {
		if MatchPath(r.Path, fs) {
			out.ValueMismatches = append(out.ValueMismatches, r)
		}
	}

	return out
}

// MatchPath reports whether path passes every filter.
func MatchPath(path string, fs []Filter) bool {
	for _, f := range fs {
		var hit bool
		switch f.Operand {
		case "=":
			hit = path == f.Value
		case "^":
			hit = strings.HasPrefix(path, f.Value)
		case "~":
			hit = strings.Contains(path, f.Value)
		case "/":
			// Validity was checked when the filter was built.
			re, err := regexp.Compile(f.Value)
			if err != nil {
				return false
			}
			hit = re.MatchString(path)
		default:
			return false
		}

		if hit == f.Negate {
			return false
		}
	}
	return true
}
