package model

import "strconv"

// Collection is an insertion-ordered list of resources returned by a query.
// The zero value is an empty collection.
type Collection[T Resource] struct {
	items []T
}

// NewCollection creates a collection preserving the order of items.
func NewCollection[T Resource](items ...T) Collection[T] {
	return Collection[T]{items: append([]T(nil), items...)}
}

// Len returns the number of resources.
func (c Collection[T]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the collection holds no resources.
func (c Collection[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// All returns a copy of the resources in insertion order.
func (c Collection[T]) All() []T {
	return append([]T(nil), c.items...)
}

// First returns the first resource, if any.
func (c Collection[T]) First() (T, bool) {
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Where returns the resources matching the predicate, preserving order.
func (c Collection[T]) Where(pred func(T) bool) Collection[T] {
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return Collection[T]{items: out}
}

// WhereName returns the resources named name.
func (c Collection[T]) WhereName(name string) Collection[T] {
	return c.Where(func(item T) bool { return item.Name() == name })
}

// HasNameCollision reports whether more than one resource is named name.
func (c Collection[T]) HasNameCollision(name string) bool {
	return c.WhereName(name).Len() > 1
}

// FirstWhereIDOrName returns the first resource whose ID or name matches
// idOrName. IDs only match resources with a non-zero identifier.
func (c Collection[T]) FirstWhereIDOrName(idOrName string) (T, bool) {
	id, err := strconv.Atoi(idOrName)
	numeric := err == nil

	for _, item := range c.items {
		if numeric && item.ID() != 0 && item.ID() == id {
			return item, true
		}
		if item.Name() == idOrName {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Find looks a resource up by ID or name.
func (c Collection[T]) Find(idOrName string) (T, bool) {
	return c.FirstWhereIDOrName(idOrName)
}

// Filter keeps the resources whose attributes equal every filter value.
// Resources that cannot report a filtered attribute are dropped.
func (c Collection[T]) Filter(filters map[string]string) Collection[T] {
	if len(filters) == 0 {
		return c
	}
	return c.Where(func(item T) bool {
		attributed, ok := any(item).(Attributed)
		if !ok {
			return false
		}
		for key, want := range filters {
			got, ok := attributed.Attribute(key)
			if !ok || got != want {
				return false
			}
		}
		return true
	})
}

// Names returns resource names in insertion order.
func (c Collection[T]) Names() []string {
	return Map(c, func(item T) string { return item.Name() })
}

// Map applies fn to every resource, preserving order.
func Map[T Resource, R any](c Collection[T], fn func(T) R) []R {
	out := make([]R, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, fn(item))
	}
	return out
}
