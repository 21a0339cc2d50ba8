// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIdentityKey(t *testing.T) {
	tests := []struct {
		name       string
		arr        []interface{}
		maxIDDepth int
		expected   string
	}{
		{
			name:       "empty array",
			arr:        []interface{}{},
			maxIDDepth: -1,
			expected:   "",
		},
		{
			name:       "first element not an object",
			arr:        []interface{}{"scalar", map[string]interface{}{"id": 1}},
			maxIDDepth: -1,
			expected:   "",
		},
		{
			name:       "direct id",
			arr:        []interface{}{map[string]interface{}{"id": 1, "name": "x"}},
			maxIDDepth: -1,
			expected:   "id",
		},
		{
			name:       "direct underscore id",
			arr:        []interface{}{map[string]interface{}{"_id": "abc"}},
			maxIDDepth: -1,
			expected:   "_id",
		},
		{
			name:       "case insensitive match keeps original key",
			arr:        []interface{}{map[string]interface{}{"UUID": "u-1"}},
			maxIDDepth: -1,
			expected:   "UUID",
		},
		{
			name: "single key wrapper before sibling scan",
			arr: []interface{}{map[string]interface{}{
				"Category": map[string]interface{}{"id": 3},
			}},
			maxIDDepth: -1,
			expected:   "Category.id",
		},
		{
			name: "nested object scan",
			arr: []interface{}{map[string]interface{}{
				"name": "x",
				"meta": map[string]interface{}{"identifier": 9},
			}},
			maxIDDepth: -1,
			expected:   "meta.identifier",
		},
		{
			name:       "depth zero disables discovery",
			arr:        []interface{}{map[string]interface{}{"id": 1}},
			maxIDDepth: 0,
			expected:   "",
		},
		{
			name: "depth one admits direct keys only",
			arr: []interface{}{map[string]interface{}{
				"meta": map[string]interface{}{"id": 1},
			}},
			maxIDDepth: 1,
			expected:   "",
		},
		{
			name: "depth two reaches one nesting level",
			arr: []interface{}{map[string]interface{}{
				"meta": map[string]interface{}{"id": 1},
			}},
			maxIDDepth: 2,
			expected:   "meta.id",
		},
		{
			name:       "no candidate names",
			arr:        []interface{}{map[string]interface{}{"name": "x", "value": 1}},
			maxIDDepth: -1,
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithMaxIDDepth(tt.maxIDDepth))
			assert.Equal(t, tt.expected, c.findIdentityKey(tt.arr))
		})
	}
}

func TestFindIdentityKeyCycle(t *testing.T) {
	obj := map[string]interface{}{"name": "loop"}
	obj["self"] = obj

	c := New()
	assert.Equal(t, "", c.findIdentityKey([]interface{}{obj}))
}

func TestIdentityValue(t *testing.T) {
	obj := map[string]interface{}{
		"id": float64(1),
		"meta": map[string]interface{}{
			"uuid": "u-1",
			"null": nil,
			"deep": map[string]interface{}{"key": "k"},
		},
	}

	tests := []struct {
		name     string
		idKey    string
		expected interface{}
		found    bool
	}{
		{"direct", "id", float64(1), true},
		{"dotted", "meta.uuid", "u-1", true},
		{"two levels", "meta.deep.key", "k", true},
		{"missing segment", "meta.absent", nil, false},
		{"traverse through scalar", "id.sub", nil, false},
		{"null value excluded", "meta.null", nil, false},
		{"compound value excluded", "meta.deep", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := identityValue(obj, tt.idKey)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestIdentityMapDuplicatesAndExclusions(t *testing.T) {
	arr := []interface{}{
		map[string]interface{}{"id": float64(1), "v": "first"},
		map[string]interface{}{"id": float64(1), "v": "last wins"},
		map[string]interface{}{"v": "no id"},
		"not an object",
	}

	m := identityMap(arr, "id")
	assert.Len(t, m, 1)
	assert.Equal(t, "last wins", m[float64(1)]["v"])
}

func TestIdentityValueNumericNormalization(t *testing.T) {
	// An int identity on one side must collide with a float64 on the other.
	left := []interface{}{map[string]interface{}{"id": 1, "v": "x"}}
	right := []interface{}{map[string]interface{}{"id": float64(1), "v": "x"}}

	res := New().Compare(left, right)
	assert.True(t, res.Identical())
}
