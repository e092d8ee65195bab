// Package cells has small typed holders: a mutable Box and a Lazy value
// resolved on first access. Neither is safe for concurrent use.
package cells

// Box is a mutable cell, handy for state captured and updated by closures.
type Box[T any] struct {
	Value T
}

func NewBox[T any](value T) *Box[T] {
	return &Box[T]{Value: value}
}

func (b *Box[T]) Get() T { return b.Value }

func (b *Box[T]) Set(value T) { b.Value = value }

// Update replaces the value with fn(value) and returns the new value.
func (b *Box[T]) Update(fn func(T) T) T {
	b.Value = fn(b.Value)
	return b.Value
}

// Lazy holds a value computed by its initializer the first time it is read.
// The zero Lazy has no initializer; use GetOr or Set with it.
type Lazy[T any] struct {
	init  func() T
	value T
	set   bool
}

func NewLazy[T any](init func() T) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Get resolves the value once and caches it. Without an initializer it
// returns the zero value and leaves the cell unset.
func (l *Lazy[T]) Get() T {
	if !l.set && l.init != nil {
		l.Set(l.init())
	}
	return l.value
}

// GetOr resolves the value with init instead of the stored initializer if
// the cell is still unset.
func (l *Lazy[T]) GetOr(init func() T) T {
	if !l.set {
		l.Set(init())
	}
	return l.value
}

func (l *Lazy[T]) Set(value T) {
	l.value, l.set = value, true
	l.init = nil
}

func (l *Lazy[T]) IsSet() bool { return l.set }
