package sets

// Set keeps its elements in insertion order, so Items is stable for as long as
// the set is not modified.
type Set[T comparable] struct {
	m     map[T]struct{}
	items []T
}

func New[T comparable]() Set[T] {
	return Set[T]{
		m: make(map[T]struct{}),
	}
}

func WithCapacity[T comparable](n int) Set[T] {
	return Set[T]{
		m:     make(map[T]struct{}, n),
		items: make([]T, 0, n),
	}
}

func Of[T comparable](elements ...T) Set[T] {
	set := WithCapacity[T](len(elements))
	for _, e := range elements {
		set.Insert(e)
	}
	return set
}

func (set *Set[T]) Clear() {
	for key := range set.m {
		delete(set.m, key)
	}
	set.items = set.items[:0]
}

// Insert adds element and reports whether it was not already present.
func (set *Set[T]) Insert(element T) bool {
	if set.m == nil {
		set.m = make(map[T]struct{})
	}
	if _, present := set.m[element]; present {
		return false
	}
	set.m[element] = struct{}{}
	set.items = append(set.items, element)
	return true
}

func (set *Set[T]) Contains(element T) bool {
	_, present := set.m[element]
	return present
}

func (set *Set[T]) IsEmpty() bool {
	return len(set.m) == 0
}

func (set *Set[T]) Len() int {
	return len(set.m)
}

// Items returns a copy of the elements in insertion order.
func (set *Set[T]) Items() []T {
	res := make([]T, len(set.items))
	copy(res, set.items)
	return res
}

// Each calls f for every element in insertion order until f returns false.
func (set *Set[T]) Each(f func(T) bool) {
	for _, e := range set.items {
		if !f(e) {
			return
		}
	}
}

func (set *Set[T]) Clone() Set[T] {
	clone := WithCapacity[T](len(set.items))
	for _, e := range set.items {
		clone.m[e] = struct{}{}
	}
	clone.items = append(clone.items, set.items...)
	return clone
}
