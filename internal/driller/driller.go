// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+)\])?$`)

// Drill navigates JSON using a dot path with optional array indexes, e.g.
// "data.items[2].meta". It returns the zero Result when the path does not
// resolve.
func Drill(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		val := current.Get(key)
		if !val.Exists() {
			return gjson.Result{}
		}

		if matches[3] != "" {
			i, err := strconv.Atoi(matches[3])
			if err != nil || !val.IsArray() {
				return gjson.Result{}
			}
			arr := val.Array()
			if i >= len(arr) {
				return gjson.Result{}
			}
			val = arr[i]
		}

		current = val
	}

	return current
}

// Select drills into a raw JSON document and returns the raw bytes of the
// subdocument at path. The selected value keeps its original JSON form so a
// re-decode sees exactly what the source held.
func Select(raw []byte, path string) ([]byte, error) {
	result := Drill(string(raw), path)
	if !result.Exists() {
		return nil, fmt.Errorf("path %q not found in document", path)
	}

	// Raw is populated for values parsed out of a document. A result built
	// any other way falls back to its String form.
	if result.Raw != "" {
		return []byte(result.Raw), nil
	}
	return []byte(result.String()), nil
}
