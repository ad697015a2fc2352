package memory

// collection is a keyed map plus the insertion order of its keys.
// Removal tombstones the key's slot; the order slice is compacted once
// more than half of it is dead, so remove stays O(1) amortized.
// It is not safe for concurrent use; Store serializes access.
type collection[T any] struct {
	items   map[string]T
	pos     map[string]int
	order   []slot
	removed int
	clone   func(T) T
}

type slot struct {
	id   string
	dead bool
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		pos:   make(map[string]int),
		clone: clone,
	}
}

func (c *collection[T]) get(id string) (T, bool) {
	item, ok := c.items[id]
	if !ok {
		return item, false
	}
	return c.clone(item), true
}

// put inserts or replaces. Replacing keeps the existing position.
func (c *collection[T]) put(id string, item T) {
	if _, exists := c.items[id]; !exists {
		c.pos[id] = len(c.order)
		c.order = append(c.order, slot{id: id})
	}
	c.items[id] = c.clone(item)
}

func (c *collection[T]) remove(id string) bool {
	i, exists := c.pos[id]
	if !exists {
		return false
	}
	delete(c.items, id)
	delete(c.pos, id)
	c.order[i].dead = true
	c.removed++
	if c.removed*2 > len(c.order) {
		c.compact()
	}
	return true
}

func (c *collection[T]) compact() {
	live := 0
	for _, s := range c.order {
		if s.dead {
			continue
		}
		c.order[live] = s
		c.pos[s.id] = live
		live++
	}
	clear(c.order[live:])
	c.order = c.order[:live]
	c.removed = 0
}

// list returns copies in insertion order.
func (c *collection[T]) list() []T {
	result := make([]T, 0, len(c.items))
	for _, s := range c.order {
		if s.dead {
			continue
		}
		result = append(result, c.clone(c.items[s.id]))
	}
	return result
}

// find returns a copy of the first item, in insertion order, that matches.
func (c *collection[T]) find(match func(T) bool) (T, bool) {
	for _, s := range c.order {
		if s.dead {
			continue
		}
		if item := c.items[s.id]; match(item) {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}
