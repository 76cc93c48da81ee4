package balloon

import "math/rand"

// Lifecycle manages one transient collection: spawn on a fixed cadence,
// advance every entity each frame, then drop whatever has left the screen.
type Lifecycle[T any] struct {
	cadence int     // Frames between spawns; <= 0 disables spawning
	jitter  float64 // Max extra spawn x beyond the right edge

	spawn func(x float64, rng *rand.Rand) T
	step  func(*T)
	gone  func(T) bool

	items []T
}

// NewLifecycle creates an empty lifecycle.
func NewLifecycle[T any](cadence int, jitter float64, spawn func(float64, *rand.Rand) T, step func(*T), gone func(T) bool) *Lifecycle[T] {
	return &Lifecycle[T]{
		cadence: cadence,
		jitter:  jitter,
		spawn:   spawn,
		step:    step,
		gone:    gone,
		items:   make([]T, 0, 16),
	}
}

// Update runs one frame: maybe spawn at spawnX plus jitter, step, cull.
func (l *Lifecycle[T]) Update(frame int, spawnX float64, rng *rand.Rand) {
	if l.cadence > 0 && frame%l.cadence == 0 {
		x := spawnX
		if l.jitter > 0 {
			x += rng.Float64() * l.jitter
		}
		l.items = append(l.items, l.spawn(x, rng))
	}

	for i := range l.items {
		l.step(&l.items[i])
	}

	kept := l.items[:0]
	for _, it := range l.items {
		if !l.gone(it) {
			kept = append(kept, it)
		}
	}
	clear(l.items[len(kept):])
	l.items = kept
}

// Add appends an entity without stepping it.
func (l *Lifecycle[T]) Add(item T) {
	l.items = append(l.items, item)
}

// Clear drops every entity.
func (l *Lifecycle[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Items returns a copy of the active entities in spawn order.
func (l *Lifecycle[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Len returns the number of active entities.
func (l *Lifecycle[T]) Len() int {
	return len(l.items)
}
