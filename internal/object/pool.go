package object

// Pool is an ordered collection of live entities of one kind.
// Iteration order is insertion order; removals keep the remaining order.
type Pool[T Entity] struct {
	items []T
}

// Add appends an entity to the pool.
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Items returns the live entities in insertion order. The slice is only valid
// until the pool is next modified and must not be mutated by callers.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Advance moves every entity by its per-tick velocity.
func (p *Pool[T]) Advance() {
	for _, item := range p.items {
		item.Advance()
	}
}

// Retain keeps only the entities for which keep returns true. keep is called
// exactly once per entity, in order, and may safely modify other pools.
func (p *Pool[T]) Retain(keep func(T) bool) {
	kept := p.items[:0] // reuse backing array
	for _, item := range p.items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	clear(p.items[len(kept):]) // drop references to removed entities
	p.items = kept
}

// RemoveAt removes the entity at index i, preserving the order of the rest.
func (p *Pool[T]) RemoveAt(i int) T {
	item := p.items[i]
	copy(p.items[i:], p.items[i+1:])
	var zero T
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
	return item
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
