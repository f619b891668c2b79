// Package jsonpath evaluates small dotted path expressions against
// decoded JSON value trees.
//
// A path is a dot-separated list of segments. Each segment is a field
// name, optionally suffixed with an index selector:
//
//	post.caption.text
//	post.carousel_media[].image_versions2.candidates[1].url
//
// "name[n]" selects element n of the array held under name. "name[]"
// maps the rest of the path over every element of that array, the result
// being the list of per-element values (elements where the rest of the
// path is absent are dropped). A missing field, a non-container where a
// container is expected, or an out-of-range index makes the whole path
// absent rather than an error.
package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
)

type stepKind int

const (
	stepField stepKind = iota
	stepIndex
	stepMapOver
)

type step struct {
	kind  stepKind
	field string
	index int
}

// Path is a compiled path expression. Safe for concurrent use.
type Path struct {
	expr  string
	steps []step
}

func Compile(expr string) (*Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("jsonpath: empty expression")
	}

	var steps []step
	for _, segment := range strings.Split(expr, ".") {
		name := segment
		selector := ""
		open := strings.IndexByte(segment, '[')

		if open >= 0 {
			if !strings.HasSuffix(segment, "]") {
				return nil, fmt.Errorf("jsonpath: malformed segment %q in %q", segment, expr)
			}
			name = segment[:open]
			selector = segment[open+1 : len(segment)-1]
		}
		if name == "" {
			return nil, fmt.Errorf("jsonpath: malformed segment %q in %q", segment, expr)
		}

		steps = append(steps, step{kind: stepField, field: name})

		if open < 0 {
			continue
		}
		if selector == "" {
			steps = append(steps, step{kind: stepMapOver})
			continue
		}
		n, err := strconv.Atoi(selector)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("jsonpath: bad index %q in %q", selector, expr)
		}
		steps = append(steps, step{kind: stepIndex, index: n})
	}

	return &Path{expr: expr, steps: steps}, nil
}

func MustCompile(expr string) *Path {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Path) String() string { return p.expr }

// Eval resolves the path against tree. The second return value reports
// whether the path was present at all.
func (p *Path) Eval(tree any) (any, bool) {
	return eval(p.steps, tree)
}

func eval(steps []step, node any) (any, bool) {
	if len(steps) == 0 {
		return node, true
	}

	s := steps[0]
	rest := steps[1:]

	switch s.kind {
	case stepField:
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		child, ok := obj[s.field]
		if !ok {
			return nil, false
		}
		return eval(rest, child)

	case stepIndex:
		arr, ok := node.([]any)
		if !ok || s.index >= len(arr) {
			return nil, false
		}
		return eval(rest, arr[s.index])

	case stepMapOver:
		arr, ok := node.([]any)
		if !ok {
			return nil, false
		}
		results := make([]any, 0, len(arr))
		for _, item := range arr {
			if v, ok := eval(rest, item); ok {
				results = append(results, v)
			}
		}
		return results, true
	}

	return nil, false
}
