// Package fieldmapper implements path-driven access to JSON-like trees.
//
// Provider APIs place the prompt, model and generation parameters at
// provider-specific nesting depths (OpenAI's "messages[0].content" vs
// Gemini's "contents[0].parts[0].text"). Expressing those locations as path
// strings in configuration keeps the gateway free of per-provider request
// builders; this package is the walker that realizes those paths.
//
// Trees are the values produced by encoding/json: map[string]interface{},
// []interface{} and scalars. None of the operations here ever return an
// error; absence is reported through the ok result of Get.
package fieldmapper

import (
	"strconv"
	"strings"
)

type segment struct {
	key   string
	index int
	isIdx bool
}

// parsePath splits a dotted/bracketed path such as
// "choices[0].message.content" into ordered segments. Empty segments are
// dropped. A bracketed segment that does not parse as an unsigned integer is
// treated as a literal object key, so malformed bracket syntax degrades to
// key access instead of failing.
func parsePath(path string) []segment {
	raw := strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '[' || r == ']'
	})
	segments := make([]segment, 0, len(raw))
	for _, part := range raw {
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil && idx >= 0 {
			segments = append(segments, segment{index: idx, isIdx: true})
			continue
		}
		segments = append(segments, segment{key: part})
	}
	return segments
}

// Set writes value at path, creating missing intermediate containers along
// the way: an array when the next segment is an index, an object otherwise.
// An intermediate that exists but is not a container of the required kind is
// replaced. The input tree may be mutated; only the returned tree is
// authoritative. An empty path leaves the tree untouched.
func Set(tree interface{}, path string, value interface{}) interface{} {
	segments := parsePath(path)
	if len(segments) == 0 {
		return tree
	}
	return setSegments(tree, segments, value)
}

func setSegments(node interface{}, segments []segment, value interface{}) interface{} {
	seg := segments[0]
	if seg.isIdx {
		arr, ok := node.([]interface{})
		if !ok {
			arr = nil
		}
		for len(arr) <= seg.index {
			arr = append(arr, nil)
		}
		if len(segments) == 1 {
			arr[seg.index] = value
		} else {
			arr[seg.index] = setSegments(arr[seg.index], segments[1:], value)
		}
		return arr
	}

	obj, ok := node.(map[string]interface{})
	if !ok {
		obj = make(map[string]interface{})
	}
	if len(segments) == 1 {
		obj[seg.key] = value
	} else {
		obj[seg.key] = setSegments(obj[seg.key], segments[1:], value)
	}
	return obj
}

// Get resolves path against tree. The second result is false as soon as a
// segment is missing, the current node is nil, or the node cannot be indexed
// by the segment kind. Get never panics; a false result is the normal
// not-found signal.
func Get(tree interface{}, path string) (interface{}, bool) {
	node := tree
	for _, seg := range parsePath(path) {
		if node == nil {
			return nil, false
		}
		if seg.isIdx {
			arr, ok := node.([]interface{})
			if !ok || seg.index >= len(arr) {
				return nil, false
			}
			node = arr[seg.index]
			continue
		}
		obj, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = obj[seg.key]
		if !ok {
			return nil, false
		}
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// Merge shallow-merges partial over the object located at path: keys in
// partial win, existing keys elsewhere are preserved. A missing or
// non-object target is treated as an empty object. An empty path merges
// partial directly into the root of tree.
func Merge(tree interface{}, path string, partial map[string]interface{}) interface{} {
	if len(parsePath(path)) == 0 {
		root, ok := tree.(map[string]interface{})
		if !ok {
			root = make(map[string]interface{})
		}
		for k, v := range partial {
			root[k] = v
		}
		return root
	}

	target := make(map[string]interface{})
	if existing, ok := Get(tree, path); ok {
		if obj, ok := existing.(map[string]interface{}); ok {
			for k, v := range obj {
				target[k] = v
			}
		}
	}
	for k, v := range partial {
		target[k] = v
	}
	return Set(tree, path, target)
}
