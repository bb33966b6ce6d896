// Package ipq implements the indexed D-ary min priority queue operations.
//
// This file holds the public operation set and the sift machinery. Every
// swap updates the position and inverse maps together, so the mutual
// inverse invariant holds at each step of a sift, not only at rest.
package ipq

import "fmt"

// checkKey validates that ki is a usable key index.
func (q *Queue[T]) checkKey(ki int) error {
	if ki < 0 || ki >= len(q.values) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrKeyOutOfRange, ki, len(q.values))
	}

	return nil
}

// Contains reports whether ki currently holds a value.
// Out-of-range key indices report false.
//
// Complexity: O(1)
func (q *Queue[T]) Contains(ki int) bool {
	if ki < 0 || ki >= len(q.values) {
		return false
	}

	return q.present[ki]
}

// ValueOf returns the value currently bound to ki.
//
// Returns ErrKeyOutOfRange or ErrKeyNotFound on contract violation.
//
// Complexity: O(1)
func (q *Queue[T]) ValueOf(ki int) (T, error) {
	var zero T
	if err := q.checkKey(ki); err != nil {
		return zero, err
	}
	if !q.present[ki] {
		return zero, fmt.Errorf("%w: %d", ErrKeyNotFound, ki)
	}

	return q.values[ki], nil
}

// Insert binds value v to key index ki and restores the heap invariant
// by sifting up from the appended position.
//
// Returns ErrKeyOutOfRange if ki is outside [0, Capacity), or
// ErrKeyExists if ki already holds a value.
//
// Complexity: O(log_D n)
func (q *Queue[T]) Insert(ki int, v T) error {
	if err := q.checkKey(ki); err != nil {
		return err
	}
	if q.present[ki] {
		return fmt.Errorf("%w: %d", ErrKeyExists, ki)
	}
	pos := q.size
	q.values[ki] = v
	q.present[ki] = true
	q.pm[ki] = pos
	q.im[pos] = ki
	q.size++
	q.siftUp(pos)

	return nil
}

// Peek returns the value at the heap root — a minimum under cmp —
// without removing it.
//
// Returns ErrEmpty if the queue holds no entries.
//
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}

	return q.values[q.im[0]], nil
}

// PeekKeyIndex returns the key index at the heap root without removing it.
//
// Returns ErrEmpty if the queue holds no entries.
//
// Complexity: O(1)
func (q *Queue[T]) PeekKeyIndex() (int, error) {
	if q.size == 0 {
		return -1, ErrEmpty
	}

	return q.im[0], nil
}

// Extract removes the minimum entry and returns its value.
//
// Returns ErrEmpty if the queue holds no entries.
//
// Complexity: O(D · log_D n)
func (q *Queue[T]) Extract() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}

	return q.Delete(q.im[0])
}

// ExtractKeyIndex removes the minimum entry and returns its key index.
//
// Returns ErrEmpty if the queue holds no entries.
//
// Complexity: O(D · log_D n)
func (q *Queue[T]) ExtractKeyIndex() (int, error) {
	if q.size == 0 {
		return -1, ErrEmpty
	}
	ki := q.im[0]
	if _, err := q.Delete(ki); err != nil {
		return -1, err
	}

	return ki, nil
}

// Delete removes the entry bound to ki and returns its value. The vacated
// heap position is repaired by sifting both ways, since the relocated
// last entry may violate the invariant in either direction.
//
// Returns ErrKeyOutOfRange or ErrKeyNotFound on contract violation.
//
// Complexity: O(D · log_D n)
func (q *Queue[T]) Delete(ki int) (T, error) {
	var zero T
	if err := q.checkKey(ki); err != nil {
		return zero, err
	}
	if !q.present[ki] {
		return zero, fmt.Errorf("%w: %d", ErrKeyNotFound, ki)
	}

	// Swap with the last entry, shrink, then clear ki's slot.
	pos := q.pm[ki]
	q.size--
	q.swap(pos, q.size)
	removed := q.values[ki]
	q.pm[ki] = -1
	q.present[ki] = false
	q.values[ki] = zero

	// Repair only if something was actually relocated into pos.
	if pos < q.size {
		q.siftUp(pos)
		q.siftDown(pos)
	}

	return removed, nil
}

// Update replaces the value bound to ki and returns the old value.
// The entry is re-sifted both ways from its current position.
//
// Returns ErrKeyOutOfRange or ErrKeyNotFound on contract violation.
//
// Complexity: O(D · log_D n)
func (q *Queue[T]) Update(ki int, v T) (T, error) {
	var zero T
	if err := q.checkKey(ki); err != nil {
		return zero, err
	}
	if !q.present[ki] {
		return zero, fmt.Errorf("%w: %d", ErrKeyNotFound, ki)
	}
	old := q.values[ki]
	q.values[ki] = v
	q.siftUp(q.pm[ki])
	q.siftDown(q.pm[ki])

	return old, nil
}

// Decrease replaces the value bound to ki with v when v is strictly less
// under cmp, sifting up from the current position. A non-strict
// replacement is a no-op with a nil error, so callers may call Decrease
// unconditionally after a relaxation test.
//
// Returns ErrKeyOutOfRange or ErrKeyNotFound on contract violation.
//
// Complexity: O(log_D n)
func (q *Queue[T]) Decrease(ki int, v T) error {
	if err := q.checkKey(ki); err != nil {
		return err
	}
	if !q.present[ki] {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, ki)
	}
	if q.cmp(v, q.values[ki]) >= 0 {
		return nil
	}
	q.values[ki] = v
	q.siftUp(q.pm[ki])

	return nil
}

// Increase replaces the value bound to ki with v when v is strictly
// greater under cmp, sifting down from the current position. A non-strict
// replacement is a no-op with a nil error.
//
// Returns ErrKeyOutOfRange or ErrKeyNotFound on contract violation.
//
// Complexity: O(D · log_D n)
func (q *Queue[T]) Increase(ki int, v T) error {
	if err := q.checkKey(ki); err != nil {
		return err
	}
	if !q.present[ki] {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, ki)
	}
	if q.cmp(v, q.values[ki]) <= 0 {
		return nil
	}
	q.values[ki] = v
	q.siftDown(q.pm[ki])

	return nil
}

// less reports whether the value at heap position a is strictly less
// than the value at heap position b.
func (q *Queue[T]) less(a, b int) bool {
	return q.cmp(q.values[q.im[a]], q.values[q.im[b]]) < 0
}

// swap exchanges the entries at heap positions a and b, keeping the
// position and inverse maps mutual inverses.
func (q *Queue[T]) swap(a, b int) {
	q.im[a], q.im[b] = q.im[b], q.im[a]
	q.pm[q.im[a]] = a
	q.pm[q.im[b]] = b
}

// minChild returns the heap position of the least child of i,
// or -1 if i has no children.
func (q *Queue[T]) minChild(i int) int {
	lo := q.d*i + 1
	if lo >= q.size {
		return -1
	}
	hi := q.d*i + q.d
	if hi >= q.size {
		hi = q.size - 1
	}
	best := lo
	for c := lo + 1; c <= hi; c++ {
		if q.less(c, best) {
			best = c
		}
	}

	return best
}

// siftUp moves the entry at position i toward the root while it is
// strictly less than its parent. Equal values never swap.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / q.d
		if !q.less(i, p) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at position i toward the leaves while its
// least child is strictly less than it. Equal values never swap.
func (q *Queue[T]) siftDown(i int) {
	for {
		c := q.minChild(i)
		if c == -1 || !q.less(c, i) {
			break
		}
		q.swap(i, c)
		i = c
	}
}
