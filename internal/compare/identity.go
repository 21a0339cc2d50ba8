// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"reflect"
	"sort"
	"strings"
)

// identityNames are the candidate field names for identity-based array
// matching, matched case-insensitively against direct keys.
var identityNames = []string{"id", "_id", "identifier", "key", "uuid"}

// findIdentityKey returns the dotted path of an identity field discovered in
// the array's first element, or "" when the array is empty, its first element
// is not an object, or no candidate field is found within the depth budget.
func (c *Comparator) findIdentityKey(arr []interface{}) string {
	if len(arr) == 0 {
		return ""
	}

	obj, ok := arr[0].(map[string]interface{})
	if !ok {
		return ""
	}

	return searchIdentityField(obj, "", c.maxIDDepth, map[uintptr]struct{}{})
}

// searchIdentityField recursively scans obj for an identity field and returns
// its dotted path relative to prefix. The budget is checked on entry, so a
// budget of 0 finds nothing and 1 admits direct keys only; a negative budget
// is unlimited. The visited set holds map identities and stops recursion on
// self-referential structures.
func searchIdentityField(obj map[string]interface{}, prefix string, budget int, visited map[uintptr]struct{}) string {
	ptr := reflect.ValueOf(obj).Pointer()
	if _, seen := visited[ptr]; seen {
		return ""
	}
	visited[ptr] = struct{}{}

	if budget == 0 {
		return ""
	}

	for _, key := range sortedKeys(obj) {
		if isIdentityName(key) {
			return joinField(prefix, key)
		}
	}

	next := budget
	if next > 0 {
		next--
	}

	// A single-key object is often just a wrapper envelope, e.g.
	// {"Category": {...}}. Dive into it before scanning everything.
	if len(obj) == 1 {
		for key, v := range obj {
			if nested, ok := v.(map[string]interface{}); ok {
				if found := searchIdentityField(nested, joinField(prefix, key), next, visited); found != "" {
					return found
				}
			}
		}
	}

	for _, key := range sortedKeys(obj) {
		if nested, ok := obj[key].(map[string]interface{}); ok {
			if found := searchIdentityField(nested, joinField(prefix, key), next, visited); found != "" {
				return found
			}
		}
	}

	return ""
}

// identityMap maps each element's identity value to the element itself.
// Non-object elements, elements missing the field anywhere along the dotted
// path, and compound (object/array) identity values are excluded rather than
// reported. Later duplicates overwrite earlier ones.
func identityMap(arr []interface{}, idKey string) map[interface{}]map[string]interface{} {
	m := make(map[interface{}]map[string]interface{})
	for _, el := range arr {
		obj, ok := el.(map[string]interface{})
		if !ok {
			continue
		}
		v, ok := identityValue(obj, idKey)
		if !ok {
			continue
		}
		m[normalizeScalar(v)] = obj
	}
	return m
}

// identityValue traverses obj along the dotted idKey. It reports false when
// any segment is missing, when the resolved value is null, or when it is a
// compound value that cannot serve as a map key.
func identityValue(obj map[string]interface{}, idKey string) (interface{}, bool) {
	var current interface{} = obj
	for _, key := range strings.Split(idKey, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	switch KindOf(current) {
	case KindNull, KindObject, KindArray:
		return nil, false
	}

	return current, true
}

// normalizeScalar collapses the numeric types to float64 so that an identity
// value compares equal across representations.
func normalizeScalar(v interface{}) interface{} {
	if f, ok := toFloat(v); ok {
		return f
	}
	return v
}

// sortedIdentityValues returns the mapping's identity values ordered by their
// rendered form, keeping report order deterministic.
func sortedIdentityValues(m map[interface{}]map[string]interface{}) []interface{} {
	ids := make([]interface{}, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ScalarString(ids[i]) < ScalarString(ids[j])
	})
	return ids
}

func isIdentityName(key string) bool {
	lower := strings.ToLower(key)
	for _, name := range identityNames {
		if lower == name {
			return true
		}
	}
	return false
}

func joinField(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
