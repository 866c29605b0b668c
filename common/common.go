// Package common holds functionality that is shared by the other packages of
// audiotag: small generic containers, the clamp helper and fail-fast error
// reporting.
package common

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Panicf panics with an error constructed with the given format and args.
//
// It's used on "can never happen" conditions and on fail-fast convenience
// entry points, where returning an error would only burden the caller.
func Panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// Set implements a Set for the key type T.
type Set[T comparable] map[T]struct{}

// MakeSet returns an empty Set of the given type. Size is optional, and if given
// will reserve the expected size.
func MakeSet[T comparable](size ...int) Set[T] {
	if len(size) == 0 {
		return make(Set[T])
	}
	return make(Set[T], size[0])
}

// Has returns true if Set s has the given key.
func (s Set[T]) Has(key T) bool {
	_, found := s[key]
	return found
}

// Insert key into set.
func (s Set[T]) Insert(key T) {
	s[key] = struct{}{}
}

// Delete key from set. A no-op if key is not in the set.
func (s Set[T]) Delete(key T) {
	delete(s, key)
}

// SortedKeys enumerate keys from a string map and sort them.
// TODO: make it for any key type.
func SortedKeys[T any](m map[string]T) (keys []string) {
	keys = make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

func minT[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// InBetween returns x limited to the closed interval [from, to].
func InBetween[T constraints.Ordered](x, from, to T) T {
	return minT(maxT(x, from), to)
}
