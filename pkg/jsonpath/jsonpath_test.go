package jsonpath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var tree any
	require.NoError(t, json.Unmarshal([]byte(raw), &tree))
	return tree
}

func TestEvalFieldAccess(t *testing.T) {
	tree := decode(t, `{"post": {"caption": {"text": "hello"}}}`)

	v, ok := MustCompile("post.caption.text").Eval(tree)
	require.True(t, ok)
	require.Equal(t, "hello", v)
}

func TestEvalMissingIntermediateIsAbsent(t *testing.T) {
	tree := decode(t, `{"post": {}}`)

	_, ok := MustCompile("post.caption.text").Eval(tree)
	require.False(t, ok)
}

func TestEvalScalarWhereObjectExpectedIsAbsent(t *testing.T) {
	tree := decode(t, `{"post": "not an object"}`)

	_, ok := MustCompile("post.caption").Eval(tree)
	require.False(t, ok)
}

func TestEvalIndexAccess(t *testing.T) {
	tree := decode(t, `{"candidates": [{"url": "a"}, {"url": "b"}]}`)

	v, ok := MustCompile("candidates[1].url").Eval(tree)
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestEvalIndexOutOfRangeIsAbsent(t *testing.T) {
	tree := decode(t, `{"candidates": [{"url": "a"}]}`)

	_, ok := MustCompile("candidates[1].url").Eval(tree)
	require.False(t, ok)
}

func TestEvalMapOverArray(t *testing.T) {
	tree := decode(t, `{
		"media": [
			{"versions": {"candidates": [{"url": "a0"}, {"url": "a1"}]}},
			{"versions": {}},
			{"versions": {"candidates": [{"url": "c0"}, {"url": "c1"}]}}
		]
	}`)

	v, ok := MustCompile("media[].versions.candidates[1].url").Eval(tree)
	require.True(t, ok)
	// Elements where the rest of the path is absent are dropped.
	require.Equal(t, []any{"a1", "c1"}, v)
}

func TestEvalMapOverMissingArrayIsAbsent(t *testing.T) {
	tree := decode(t, `{"post": {}}`)

	_, ok := MustCompile("post.media[].url").Eval(tree)
	require.False(t, ok)
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{"", "a[", "a[x]", "a[-1]", "[0]", "a..b"} {
		_, err := Compile(expr)
		require.Error(t, err, "expression %q", expr)
	}
}

func TestMustCompilePanicsOnBadExpression(t *testing.T) {
	require.Panics(t, func() { MustCompile("bad[") })
}
