package repository

import (
	"slices"
	"sync"
)

type keyed interface {
	Key() string
}

// table is an ordered in-memory collection. Every mutation builds a new slice
// and swaps it in, so a snapshot handed to a reader never changes under it.
type table[T keyed] struct {
	mu   sync.RWMutex
	rows []T
}

func (t *table[T]) snapshot() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) set(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = slices.Clone(rows)
}

func (t *table[T]) get(key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if row.Key() == key {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) add(row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := make([]T, 0, len(t.rows)+1)
	next = append(next, t.rows...)
	t.rows = append(next, row)
}

// update applies fn to the row with the given key and reports whether it existed.
func (t *table[T]) update(key string, fn func(T) T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := slices.IndexFunc(t.rows, func(row T) bool { return row.Key() == key })
	if idx == -1 {
		return false
	}
	next := slices.Clone(t.rows)
	next[idx] = fn(next[idx])
	t.rows = next
	return true
}

// updateWhere applies fn to every row matching pred and returns how many changed.
func (t *table[T]) updateWhere(pred func(T) bool, fn func(T) T) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := slices.Clone(t.rows)
	n := 0
	for i, row := range next {
		if pred(row) {
			next[i] = fn(row)
			n++
		}
	}
	if n > 0 {
		t.rows = next
	}
	return n
}

func (t *table[T]) remove(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(t.rows), func(row T) bool { return row.Key() == key })
	if len(next) == len(t.rows) {
		return false
	}
	t.rows = next
	return true
}
