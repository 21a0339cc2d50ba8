// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package compare

import (
	"embed"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// compareTestCase represents a single test case for TestCompareTable.
type compareTestCase struct {
	Name            string      `yaml:"name"`
	Left            interface{} `yaml:"left"`
	Right           interface{} `yaml:"right"`
	MissingInRight  []string    `yaml:"missingInRight"`
	MissingInLeft   []string    `yaml:"missingInLeft"`
	TypeMismatches  []string    `yaml:"typeMismatches"`
	ValueMismatches []string    `yaml:"valueMismatches"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func missingPaths(records []Missing) []string {
	var paths []string
	for _, r := range records {
		paths = append(paths, r.Path)
	}
	return paths
}

func TestCompareTable(t *testing.T) {
	var tests []compareTestCase
	err := loadTestData("compare_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			res := New().Compare(tt.Left, tt.Right)

			assert.Equal(t, tt.MissingInRight, missingPaths(res.MissingInRight), "missing in right")
			assert.Equal(t, tt.MissingInLeft, missingPaths(res.MissingInLeft), "missing in left")

			var tmPaths []string
			for _, r := range res.TypeMismatches {
				tmPaths = append(tmPaths, r.Path)
			}
			assert.Equal(t, tt.TypeMismatches, tmPaths, "type mismatches")

			var vmPaths []string
			for _, r := range res.ValueMismatches {
				vmPaths = append(vmPaths, r.Path)
			}
			assert.Equal(t, tt.ValueMismatches, vmPaths, "value mismatches")
		})
	}
}

func TestCompareReflexive(t *testing.T) {
	doc := mustDecode(t, `{
		"a": 1,
		"b": [1, 2, {"id": 3, "name": "x"}],
		"c": {"nested": {"deep": null}},
		"d": [{"id": 1}, {"id": 2}],
		"e": [],
		"f": {}
	}`)

	res := New().Compare(doc, doc)
	assert.True(t, res.Identical())
	assert.Zero(t, res.Total())
}

func TestCompareSymmetry(t *testing.T) {
	left := mustDecode(t, `{"a": 1, "b": "x", "only_left": true, "arr": [{"id": 1, "v": 1}, {"id": 2}]}`)
	right := mustDecode(t, `{"a": 2, "b": 3, "only_right": true, "arr": [{"id": 1, "v": 9}]}`)

	fwd := New().Compare(left, right)
	rev := New().Compare(right, left)

	// MissingInRight and MissingInLeft swap one-to-one; mismatch counts hold.
	assert.Equal(t, fwd.MissingInRight, rev.MissingInLeft)
	assert.Equal(t, fwd.MissingInLeft, rev.MissingInRight)
	assert.Len(t, rev.TypeMismatches, len(fwd.TypeMismatches))
	assert.Len(t, rev.ValueMismatches, len(fwd.ValueMismatches))
}

func TestCompareTypeMismatchShortCircuit(t *testing.T) {
	left := mustDecode(t, `{"a": 1}`)
	right := mustDecode(t, `["a"]`)

	res := New().Compare(left, right)

	require.Len(t, res.TypeMismatches, 1)
	assert.Equal(t, 1, res.Total())

	want := TypeMismatch{
		Path:      "root",
		LeftType:  "object",
		RightType: "array",
		Left:      `{"a":1}`,
		Right:     `["a"]`,
	}
	if diff := cmp.Diff(want, res.TypeMismatches[0]); diff != "" {
		t.Errorf("type mismatch record mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareNoCoercion(t *testing.T) {
	left := mustDecode(t, `{"n": 1, "s": "A"}`)
	right := mustDecode(t, `{"n": "1", "s": "a"}`)

	res := New().Compare(left, right)

	// 1 vs "1" is a type mismatch, never equal.
	require.Len(t, res.TypeMismatches, 1)
	assert.Equal(t, "root['n']", res.TypeMismatches[0].Path)

	// String comparison is case-sensitive.
	require.Len(t, res.ValueMismatches, 1)
	assert.Equal(t, "root['s']", res.ValueMismatches[0].Path)
}

func TestCompareDepthCap(t *testing.T) {
	left := mustDecode(t, `[{"meta": {"id": 1}, "v": "x"}, {"meta": {"id": 2}, "v": "y"}]`)
	right := mustDecode(t, `[{"meta": {"id": 2}, "v": "y"}, {"meta": {"id": 1}, "v": "x"}]`)

	// Unlimited depth finds meta.id and matches the reordered elements.
	res := New().Compare(left, right)
	assert.True(t, res.Identical())

	// Depth 1 admits direct keys only; the nested id is out of reach, so the
	// reordered arrays are compared positionally and differ.
	res = New(WithMaxIDDepth(1)).Compare(left, right)
	assert.NotZero(t, res.Total())

	// Depth 0 disables discovery entirely, even for direct keys.
	direct := mustDecode(t, `[{"id": 1}, {"id": 2}]`)
	swapped := mustDecode(t, `[{"id": 2}, {"id": 1}]`)
	res = New(WithMaxIDDepth(0)).Compare(direct, swapped)
	assert.NotZero(t, res.Total())
}

func TestCompareCycleSafety(t *testing.T) {
	// A self-referential first element must not hang identity discovery.
	inner := map[string]interface{}{"name": "loop"}
	inner["self"] = inner
	left := []interface{}{inner}
	right := []interface{}{map[string]interface{}{"name": "loop"}}

	done := make(chan *Result, 1)
	go func() {
		done <- New().Compare(left, right)
	}()

	res := <-done
	// No identity field exists, so the comparison is positional; the extra
	// self key shows up as missing on the right.
	assert.NotZero(t, res.Total())
}

func TestCompareInputNotMutated(t *testing.T) {
	left := mustDecode(t, `{"a": [1, 2], "b": {"c": 3}}`)
	right := mustDecode(t, `{"a": [1], "b": {"d": 4}}`)

	leftCopy := mustDecode(t, `{"a": [1, 2], "b": {"c": 3}}`)
	rightCopy := mustDecode(t, `{"a": [1], "b": {"d": 4}}`)

	_ = New().Compare(left, right)

	if diff := cmp.Diff(leftCopy, left); diff != "" {
		t.Errorf("left mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rightCopy, right); diff != "" {
		t.Errorf("right mutated (-want +got):\n%s", diff)
	}
}

func TestCompareFreshResultPerCall(t *testing.T) {
	c := New()
	left := mustDecode(t, `{"a": 1}`)
	right := mustDecode(t, `{"a": 2}`)

	first := c.Compare(left, right)
	second := c.Compare(left, right)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Total(), second.Total())
}

func mustDecode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}
