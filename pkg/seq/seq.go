package seq

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Seq is an immutable ordered sequence. The zero value is empty.
type Seq[T any] struct {
	items []T
}

func New[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice copies items, later changes to the slice are not observed.
func FromSlice[T any](items []T) Seq[T] {
	if len(items) == 0 {
		return Seq[T]{}
	}
	return Seq[T]{items: slices.Clone(items)}
}

func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Pure returns a single-element sequence.
func Pure[T any](v T) Seq[T] {
	return Seq[T]{items: []T{v}}
}

func (s Seq[T]) Len() int {
	return len(s.items)
}

func (s Seq[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s Seq[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s Seq[T]) Head() (T, bool) {
	return s.At(0)
}

// ToSlice returns a copy of the elements.
func (s Seq[T]) ToSlice() []T {
	return slices.Clone(s.items)
}

// All iterates over index/value pairs in order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

func (s Seq[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s Seq[T]) Append(other Seq[T]) Seq[T] {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	items := make([]T, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return Seq[T]{items: items}
}

func (s Seq[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for _, v := range s.items {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	if s.IsEmpty() {
		return Seq[B]{}
	}
	items := make([]B, 0, len(s.items))
	for _, v := range s.items {
		items = append(items, f(v))
	}
	return Seq[B]{items: items}
}

// Bind maps every element to a sequence and concatenates the results.
func Bind[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	var items []B
	for _, v := range s.items {
		items = append(items, f(v).items...)
	}
	return Seq[B]{items: items}
}

func Filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	var items []T
	for _, v := range s.items {
		if keep(v) {
			items = append(items, v)
		}
	}
	return Seq[T]{items: items}
}

// Fold reduces the sequence left to right.
func Fold[T, S any](s Seq[T], state S, f func(S, T) S) S {
	for _, v := range s.items {
		state = f(state, v)
	}
	return state
}

// Sort returns a sorted copy.
func Sort[T constraints.Ordered](s Seq[T]) Seq[T] {
	items := s.ToSlice()
	slices.Sort(items)
	return Seq[T]{items: items}
}
