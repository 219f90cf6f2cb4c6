// Package ulist provides an insertion-ordered list that holds each value
// at most once.
package ulist

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// UniqueList is an ordered list without duplicates. The zero value is an
// empty list ready to use. A UniqueList is not safe for concurrent
// mutation.
type UniqueList[T comparable] struct {
	items []T
	index map[T]int
}

// New returns a list holding the first occurrence of each item, in order.
func New[T comparable](items ...T) *UniqueList[T] {
	l := &UniqueList[T]{}
	l.Extend(items...)
	return l
}

// Append adds v at the end and reports whether it was added. A value
// already present is left where it is.
func (l *UniqueList[T]) Append(v T) bool {
	if l.index == nil {
		l.index = make(map[T]int)
	}
	if _, ok := l.index[v]; ok {
		return false
	}
	l.index[v] = len(l.items)
	l.items = append(l.items, v)
	return true
}

// Extend appends each value in order and returns how many were added.
func (l *UniqueList[T]) Extend(vs ...T) int {
	added := 0
	for _, v := range vs {
		if l.Append(v) {
			added++
		}
	}
	return added
}

// Concat returns a new list with the items of l followed by those of
// others. l is not modified.
func (l *UniqueList[T]) Concat(others ...[]T) *UniqueList[T] {
	out := New(l.items...)
	for _, o := range others {
		out.Extend(o...)
	}
	return out
}

// Get returns the item at i. It panics if i is out of range.
func (l *UniqueList[T]) Get(i int) T {
	return l.items[i]
}

// Slice returns a new list with the items in [start, end). It panics if
// the bounds are out of range.
func (l *UniqueList[T]) Slice(start, end int) *UniqueList[T] {
	return New(l.items[start:end]...)
}

// Set replaces the item at i with v. It reports false, and changes
// nothing, when v is already present at another index. It panics if i is
// out of range.
func (l *UniqueList[T]) Set(i int, v T) bool {
	old := l.items[i]
	if j, ok := l.index[v]; ok {
		return j == i
	}
	delete(l.index, old)
	l.items[i] = v
	l.index[v] = i
	return true
}

// Contains reports whether v is in the list.
func (l *UniqueList[T]) Contains(v T) bool {
	_, ok := l.index[v]
	return ok
}

// Index returns the position of v, or -1.
func (l *UniqueList[T]) Index(v T) int {
	if i, ok := l.index[v]; ok {
		return i
	}
	return -1
}

// Remove deletes v and reports whether it was present.
func (l *UniqueList[T]) Remove(v T) bool {
	i, ok := l.index[v]
	if !ok {
		return false
	}
	delete(l.index, v)
	l.items = slices.Delete(l.items, i, i+1)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j]] = j
	}
	return true
}

// Len returns the number of items.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the items in order. It is never nil.
func (l *UniqueList[T]) Items() []T {
	return append(make([]T, 0, len(l.items)), l.items...)
}

// All iterates over the items with their positions.
func (l *UniqueList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// String formats the list as "[a, b, c]".
func (l *UniqueList[T]) String() string {
	parts := make([]string, len(l.items))
	for i, v := range l.items {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
