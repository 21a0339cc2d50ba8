// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// maxSnippetLen caps the rendered length of compound value snapshots.
const maxSnippetLen = 100

// Snippet renders a value for inclusion in a difference record. Compound
// values become compact JSON truncated to maxSnippetLen runes with an
// ellipsis marker; scalars render in their plain text form.
func Snippet(v interface{}) string {
	switch KindOf(v) {
	case KindObject, KindArray:
		b, err := json.Marshal(v)
		if err != nil {
			// %v would recurse forever on a cyclic value, so don't try to
			// render it at all.
			return "<unrenderable: " + err.Error() + ">"
		}
		runes := []rune(string(b))
		if len(runes) > maxSnippetLen {
			return string(runes[:maxSnippetLen]) + "..."
		}
		return string(b)
	default:
		return ScalarString(v)
	}
}

// ScalarString renders a scalar value without quoting.
func ScalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
