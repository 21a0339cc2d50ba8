// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jcmp/jcmp/internal/log"
)

// Kind classifies a decoded JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// KindOf maps a decoded JSON value to its Kind. Integer types are accepted
// alongside float64 so hand-built trees behave like decoded ones.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		// Anything else is outside the JSON data model. Treat it as null so the
		// walker stays total.
		return KindNull
	}
}

// Comparator diffs two JSON trees. The zero value is not usable; construct
// with New.
type Comparator struct {
	// maxIDDepth caps identity-field discovery. Negative means unlimited,
	// zero disables discovery entirely.
	maxIDDepth int
}

// Option customizes a Comparator.
type Option func(*Comparator)

// WithMaxIDDepth caps the depth of identity-field discovery. A depth of 0
// disables identity matching; a negative depth (the default) is unlimited.
func WithMaxIDDepth(depth int) Option {
	return func(c *Comparator) { c.maxIDDepth = depth }
}

// New constructs a Comparator.
func New(opts ...Option) *Comparator {
	c := &Comparator{maxIDDepth: -1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare walks both trees and returns a fresh Result. Inputs are never
// mutated; the accumulator is local to this call.
func (c *Comparator) Compare(left, right interface{}) *Result {
	res := &Result{}
	c.walk(left, right, "root", res)
	log.Debugf("compare done: total=%d", res.Total())
	return res
}

// walk dispatches on the kinds of the two values at path.
func (c *Comparator) walk(left, right interface{}, path string, res *Result) {
	lk, rk := KindOf(left), KindOf(right)

	// A kind mismatch terminates this branch; children are not diffed.
	if lk != rk {
		res.TypeMismatches = append(res.TypeMismatches, TypeMismatch{
			Path:      path,
			LeftType:  lk.String(),
			RightType: rk.String(),
			Left:      Snippet(left),
			Right:     Snippet(right),
		})
		return
	}

	switch lk {
	case KindObject:
		c.walkObjects(left.(map[string]interface{}), right.(map[string]interface{}), path, res)
	case KindArray:
		c.walkArrays(left.([]interface{}), right.([]interface{}), path, res)
	default:
		if !scalarEqual(left, right) {
			res.ValueMismatches = append(res.ValueMismatches, ValueMismatch{
				Path:  path,
				Left:  left,
				Right: right,
			})
		}
	}
}

// walkObjects reports key-set differences and recurses into common keys.
// Key comparison is exact-string and case-sensitive.
func (c *Comparator) walkObjects(left, right map[string]interface{}, path string, res *Result) {
	for _, key := range sortedKeys(left) {
		if _, ok := right[key]; !ok {
			res.MissingInRight = append(res.MissingInRight, Missing{
				Path:  keyPath(path, key),
				Value: Snippet(left[key]),
			})
		}
	}

	for _, key := range sortedKeys(right) {
		if _, ok := left[key]; !ok {
			res.MissingInLeft = append(res.MissingInLeft, Missing{
				Path:  keyPath(path, key),
				Value: Snippet(right[key]),
			})
		}
	}

	for _, key := range sortedKeys(left) {
		if rv, ok := right[key]; ok {
			c.walk(left[key], rv, keyPath(path, key), res)
		}
	}
}

// walkArrays matches elements by a discovered identity field when both sides
// agree on one, otherwise falls back to positional comparison.
func (c *Comparator) walkArrays(left, right []interface{}, path string, res *Result) {
	leftKey := c.findIdentityKey(left)
	rightKey := c.findIdentityKey(right)

	if leftKey != "" && leftKey == rightKey {
		log.Tracef("identity match: path=%s key=%s", path, leftKey)
		c.walkArraysByIdentity(left, right, path, leftKey, res)
		return
	}

	c.walkArraysByIndex(left, right, path, res)
}

// walkArraysByIdentity builds identity-value to object mappings for both
// sides and diffs by identity value. Elements without a resolvable scalar
// identity value are silently excluded from the mapping.
func (c *Comparator) walkArraysByIdentity(left, right []interface{}, path, idKey string, res *Result) {
	lm := identityMap(left, idKey)
	rm := identityMap(right, idKey)

	for _, id := range sortedIdentityValues(lm) {
		if _, ok := rm[id]; !ok {
			res.MissingInRight = append(res.MissingInRight, Missing{
				Path:  identityPath(path, idKey, id),
				Value: Snippet(lm[id]),
			})
		}
	}

	for _, id := range sortedIdentityValues(rm) {
		if _, ok := lm[id]; !ok {
			res.MissingInLeft = append(res.MissingInLeft, Missing{
				Path:  identityPath(path, idKey, id),
				Value: Snippet(rm[id]),
			})
		}
	}

	for _, id := range sortedIdentityValues(lm) {
		if robj, ok := rm[id]; ok {
			c.walk(lm[id], robj, identityPath(path, idKey, id), res)
		}
	}
}

// walkArraysByIndex compares element-by-element up to the shorter length and
// reports any length excess as missing on the other side.
func (c *Comparator) walkArraysByIndex(left, right []interface{}, path string, res *Result) {
	shorter := len(left)
	if len(right) < shorter {
		shorter = len(right)
	}

	for i := 0; i < shorter; i++ {
		c.walk(left[i], right[i], indexPath(path, i), res)
	}

	for i := shorter; i < len(left); i++ {
		res.MissingInRight = append(res.MissingInRight, Missing{
			Path:  indexPath(path, i),
			Value: Snippet(left[i]),
		})
	}

	for i := shorter; i < len(right); i++ {
		res.MissingInLeft = append(res.MissingInLeft, Missing{
			Path:  indexPath(path, i),
			Value: Snippet(right[i]),
		})
	}
}

// scalarEqual compares two scalars of the same kind. Numbers compare by
// numeric value regardless of the concrete Go type; there is no cross-kind
// coercion because kinds have already been matched by the caller.
func scalarEqual(a, b interface{}) bool {
	if na, ok := toFloat(a); ok {
		nb, ok := toFloat(b)
		return ok && na == nb
	}
	return a == b
}

// toFloat normalizes the numeric types KindOf admits to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// keyPath extends a path with an object key.
func keyPath(path, key string) string {
	return fmt.Sprintf("%s['%s']", path, key)
}

// indexPath extends a path with an array index.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// identityPath extends a path with a key=value identity token.
func identityPath(path, idKey string, id interface{}) string {
	return fmt.Sprintf("%s[%s=%s]", path, idKey, ScalarString(id))
}

// sortedKeys returns the map's keys in sorted order so reports and discovery
// are deterministic run to run.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
