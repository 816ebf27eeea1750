// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"iter"
	"slices"
)

// A List is an append-only sequence of values kept in insertion order.
// A zero List is empty and ready for use.
type List[T any] struct {
	items []T
}

// Add appends v to the end of l.
func (l *List[T]) Add(v T) { l.items = append(l.items, v) }

// Len reports the number of elements in l.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// At returns the element of l at index i, which must be in range.
func (l *List[T]) At(i int) T { return l.items[i] }

// All returns a sequence of the elements of l, in insertion order.
func (l *List[T]) All() iter.Seq[T] { return slices.Values(l.items) }
