/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package segmenttrie provides a prefix index over dot-separated code
// strings with longest-prefix-match lookup.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys. Each node
// represents one segment; the wildcard "*" matches exactly one segment.
// Lookup is longest-prefix-match with segment boundaries, so a more
// specific rule wins over a shorter one.
//
// A Trie is mutable during Insert and must be treated as frozen once
// lookups begin; codemap builds tries at snapshot-construction time only.
type Trie[T any] struct {
	children map[string]*Trie[T]
	// pattern holds the canonical dotted prefix (with '*' where a wildcard
	// was used) when this node terminates a rule; hasVal marks that state.
	// Keeping the pattern on the node lets Match report which rule fired
	// without building strings during traversal.
	pattern string
	val     T
	hasVal  bool
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix and associates it with val.
//
// Examples:
//
//	"storage.pg"
//	"auth.token.expired"
//	"auth.*.expired"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected as too generic. Inserting the same prefix twice
// replaces the value but keeps the original pattern string.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.val = val
	cur.hasVal = true
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the deepest rule whose prefix covers key, treating key as a
// dot-separated sequence of segments, and returns the rule's value and
// stored pattern. Exact branches and "*" branches are both explored; the
// deepest terminating node wins. When key is malformed past some point,
// only the prefix parsed so far participates in matching.
func (t *Trie[T]) Match(key string) (val T, pattern string, ok bool) {
	if t == nil {
		return val, "", false
	}
	best := -1

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best = depth
			val = n.val
			pattern = n.pattern
		}
		if off >= len(key) {
			return
		}

		// Parse the next segment [off:end) as [a-z][a-z0-9_]*; stop this
		// path on anything else.
		if c := key[off]; c < 'a' || c > 'z' {
			return
		}
		end := off + 1
		for end < len(key) && key[end] != '.' {
			c := key[end]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
				return
			}
			end++
		}
		seg := key[off:end]
		next := end
		if next < len(key) && key[next] == '.' {
			next++
		}

		if child, found := n.children[seg]; found {
			walk(child, next, depth+1)
		}
		if child, found := n.children["*"]; found {
			walk(child, next, depth+1)
		}
	}

	walk(t, 0, 0)
	if best < 0 {
		var zero T
		return zero, "", false
	}
	return val, pattern, true
}

// validSegment reports whether seg may appear in an inserted prefix:
// either the single-segment wildcard "*", or [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
