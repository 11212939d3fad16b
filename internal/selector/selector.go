// Package selector provides a wrap-around selection over a fixed list.
package selector

// Cyclic tracks an optional selected index over an ordered list of items.
// Moving past either end wraps around. On an empty list every move is a
// no-op and nothing is ever selected.
type Cyclic[T any] struct {
	items    []T
	selected int
	ok       bool
}

// New returns a selector over items with nothing selected.
func New[T any](items []T) *Cyclic[T] {
	return &Cyclic[T]{items: items}
}

// Next selects the following item, or the first one if nothing is
// selected yet.
func (c *Cyclic[T]) Next() {
	if len(c.items) == 0 {
		return
	}
	if !c.ok {
		c.selected, c.ok = 0, true
		return
	}
	c.selected = (c.selected + 1) % len(c.items)
}

// Previous selects the preceding item. With nothing selected it selects
// the first item, not the last.
func (c *Cyclic[T]) Previous() {
	if len(c.items) == 0 {
		return
	}
	if !c.ok {
		c.selected, c.ok = 0, true
		return
	}
	c.selected = (c.selected + len(c.items) - 1) % len(c.items)
}

// Selected returns the selected index and whether one is selected.
func (c *Cyclic[T]) Selected() (int, bool) {
	return c.selected, c.ok
}

// SelectedItem returns the selected item and whether one is selected.
func (c *Cyclic[T]) SelectedItem() (T, bool) {
	if !c.ok {
		var zero T
		return zero, false
	}
	return c.items[c.selected], true
}

// Select selects index i. Out-of-range indices are ignored.
func (c *Cyclic[T]) Select(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.selected, c.ok = i, true
}

// Unselect clears the selection.
func (c *Cyclic[T]) Unselect() {
	c.selected, c.ok = 0, false
}

// Items returns the underlying list. Callers must not modify it.
func (c *Cyclic[T]) Items() []T {
	return c.items
}

// Len returns the number of items.
func (c *Cyclic[T]) Len() int {
	return len(c.items)
}
