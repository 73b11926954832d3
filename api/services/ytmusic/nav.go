package ytmusic

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is one step of a Path: an object field or an array index.
type Key interface {
	step(node interface{}) (interface{}, bool)
	String() string
}

type Field string

type Index int

func (f Field) step(node interface{}) (interface{}, bool) {
	obj, ok := node.(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := obj[string(f)]
	return v, ok
}

func (f Field) String() string { return string(f) }

func (ix Index) step(node interface{}) (interface{}, bool) {
	arr, ok := node.([]interface{})
	if !ok || int(ix) < 0 || int(ix) >= len(arr) {
		return nil, false
	}
	return arr[int(ix)], true
}

func (ix Index) String() string { return strconv.Itoa(int(ix)) }

// Path is an ordered key sequence into a raw browse response tree. The
// shared paths in nav_consts.go are built once and reused by every parser.
type Path []Key

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = k.String()
	}
	return "/" + strings.Join(parts, "/")
}

// Join returns a new path with more keys appended, leaving the receiver
// untouched. Since Path is a []Key, another Path can be appended with `p2...`.
func (p Path) Join(more ...Key) Path {
	joined := make(Path, 0, len(p)+len(more))
	joined = append(joined, p...)
	return append(joined, more...)
}

// NavigationError reports a required path that could not be resolved, which
// usually means the remote schema changed underneath us.
type NavigationError struct {
	Key  Key         // key that failed to resolve
	Path Path        // full requested path
	Node interface{} // node reached when resolution stopped
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("ytmusic: key %q not found navigating %s", e.Key, e.Path)
}

// Navigate walks path from root and fails with a *NavigationError on the
// first key that does not resolve. A type mismatch (indexing an object,
// fielding an array) counts as missing. A nil root is never an error: the
// result is nil in both strict and optional mode.
func Navigate(root interface{}, path Path) (interface{}, error) {
	if root == nil {
		return nil, nil
	}
	node := root
	for _, k := range path {
		next, ok := k.step(node)
		if !ok {
			return nil, &NavigationError{Key: k, Path: path, Node: node}
		}
		node = next
	}
	return node, nil
}

// NavigateOptional is Navigate for fields that may legitimately be absent;
// any unresolvable key yields nil instead of an error.
func NavigateOptional(root interface{}, path Path) interface{} {
	node, err := Navigate(root, path)
	if err != nil {
		return nil
	}
	return node
}

// navigateString resolves path strictly and requires a string leaf.
func navigateString(root interface{}, path Path) (string, error) {
	node, err := Navigate(root, path)
	if err != nil {
		return "", err
	}
	s, ok := node.(string)
	if !ok {
		return "", &NavigationError{Key: path[len(path)-1], Path: path, Node: node}
	}
	return s, nil
}

// optionalString resolves path leniently, returning "" when absent or not
// string-typed.
func optionalString(root interface{}, path Path) string {
	s, _ := NavigateOptional(root, path).(string)
	return s
}

// intValue reads a JSON number. Decoded trees carry float64, hand-built test
// fixtures may carry int.
func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
