package fieldmapper_test

import (
	"encoding/json"
	"testing"

	"github.com/modelshift-ai/modelshift-gateway/pkg/fieldmapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	paths := []string{
		"prompt",
		"messages[0].content",
		"contents[0].parts[0].text",
		"input.messages[2].content[0].text",
		"model_id",
		"a.b.c.d.e",
	}
	for _, p := range paths {
		tree := fieldmapper.Set(map[string]interface{}{}, p, "payload")
		got, ok := fieldmapper.Get(tree, p)
		require.True(t, ok, "path %q", p)
		assert.Equal(t, "payload", got, "path %q", p)
	}
}

func TestGetMissingPath(t *testing.T) {
	got, ok := fieldmapper.Get(map[string]interface{}{}, "a.b.c")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetOnNilAndScalarNodes(t *testing.T) {
	tree := map[string]interface{}{
		"a": "scalar",
		"b": nil,
	}
	_, ok := fieldmapper.Get(tree, "a.b")
	assert.False(t, ok)
	_, ok = fieldmapper.Get(tree, "b.c")
	assert.False(t, ok)
	_, ok = fieldmapper.Get(nil, "a")
	assert.False(t, ok)
}

func TestGetArrayOutOfRange(t *testing.T) {
	tree := map[string]interface{}{
		"choices": []interface{}{},
	}
	_, ok := fieldmapper.Get(tree, "choices[0].message.content")
	assert.False(t, ok)
}

func TestSetCreatesArrayForNumericSegment(t *testing.T) {
	tree := fieldmapper.Set(map[string]interface{}{}, "items[0].name", "x")

	obj, ok := tree.(map[string]interface{})
	require.True(t, ok)
	items, ok := obj["items"].([]interface{})
	require.True(t, ok, "numeric segment must create an array, not an object")
	require.Len(t, items, 1)
	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "x", first["name"])
}

func TestSetPadsSparseArray(t *testing.T) {
	tree := fieldmapper.Set(map[string]interface{}{}, "parts[2].text", "hi")
	parts, ok := tree.(map[string]interface{})["parts"].([]interface{})
	require.True(t, ok)
	require.Len(t, parts, 3)
	assert.Nil(t, parts[0])
	assert.Nil(t, parts[1])

	got, ok := fieldmapper.Get(tree, "parts[2].text")
	require.True(t, ok)
	assert.Equal(t, "hi", got)
}

func TestSetOverwritesScalarWithContainer(t *testing.T) {
	tree := fieldmapper.Set(map[string]interface{}{}, "a", "scalar")
	tree = fieldmapper.Set(tree, "a.b", 1)

	got, ok := fieldmapper.Get(tree, "a.b")
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestSetEmptyPathIsNoop(t *testing.T) {
	original := map[string]interface{}{"a": 1}
	tree := fieldmapper.Set(original, "", "ignored")
	assert.Equal(t, map[string]interface{}{"a": 1}, tree)
}

func TestSetMalformedBracketFallsBackToKey(t *testing.T) {
	tree := fieldmapper.Set(map[string]interface{}{}, "a[b].c", "v")
	got, ok := fieldmapper.Get(tree, "a.b.c")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMergeAtPath(t *testing.T) {
	tree := fieldmapper.Merge(
		map[string]interface{}{"config": map[string]interface{}{"a": 1}},
		"config",
		map[string]interface{}{"b": 2},
	)
	obj, ok := tree.(map[string]interface{})["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, obj["a"])
	assert.Equal(t, 2, obj["b"])
}

func TestMergePartialWins(t *testing.T) {
	tree := fieldmapper.Merge(
		map[string]interface{}{"config": map[string]interface{}{"a": 1}},
		"config",
		map[string]interface{}{"a": 9},
	)
	got, ok := fieldmapper.Get(tree, "config.a")
	require.True(t, ok)
	assert.Equal(t, 9, got)
}

func TestMergeEmptyPathMergesRoot(t *testing.T) {
	tree := fieldmapper.Merge(
		map[string]interface{}{"a": 1},
		"",
		map[string]interface{}{"b": 2},
	)
	obj, ok := tree.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, obj["a"])
	assert.Equal(t, 2, obj["b"])
}

func TestMergeAtAbsentPathCreatesObject(t *testing.T) {
	tree := fieldmapper.Merge(map[string]interface{}{}, "generationConfig", map[string]interface{}{
		"temperature": 0.7,
	})
	got, ok := fieldmapper.Get(tree, "generationConfig.temperature")
	require.True(t, ok)
	assert.Equal(t, 0.7, got)
}

func TestExtractFromProviderResponse(t *testing.T) {
	var tree interface{}
	err := json.Unmarshal([]byte(`{"choices":[{"message":{"content":"hi"}}]}`), &tree)
	require.NoError(t, err)

	got, ok := fieldmapper.Get(tree, "choices[0].message.content")
	require.True(t, ok)
	assert.Equal(t, "hi", got)

	err = json.Unmarshal([]byte(`{"choices":[]}`), &tree)
	require.NoError(t, err)
	_, ok = fieldmapper.Get(tree, "choices[0].message.content")
	assert.False(t, ok)
}

func TestBuildRequestBodyFromSkeleton(t *testing.T) {
	skeleton := map[string]interface{}{
		"model":      "",
		"messages":   []interface{}{},
		"max_tokens": 1000,
	}
	tree := fieldmapper.Set(interface{}(skeleton), "messages[0].role", "user")
	tree = fieldmapper.Set(tree, "messages[0].content", "hello")
	tree = fieldmapper.Set(tree, "model", "gpt-4o")
	tree = fieldmapper.Merge(tree, "", map[string]interface{}{"temperature": 0.2})

	b, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"model":"gpt-4o","messages":[{"role":"user","content":"hello"}],"max_tokens":1000,"temperature":0.2}`,
		string(b),
	)
}
