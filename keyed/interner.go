package keyed

// Interner maps keys to dense ids 0, 1, 2, … in first-seen order.
// The zero value is not usable; call NewInterner.
type Interner[K comparable] struct {
	ids  map[K]int
	keys []K
}

// NewInterner returns an empty Interner.
func NewInterner[K comparable]() *Interner[K] {
	return &Interner[K]{ids: make(map[K]int)}
}

// Intern returns k's id, assigning the next free id if k is new.
func (in *Interner[K]) Intern(k K) int {
	if id, ok := in.ids[k]; ok {
		return id
	}
	id := len(in.keys)
	in.ids[k] = id
	in.keys = append(in.keys, k)

	return id
}

// Lookup returns k's id without assigning one.
func (in *Interner[K]) Lookup(k K) (int, bool) {
	id, ok := in.ids[k]

	return id, ok
}

// Key returns the key with the given id.
func (in *Interner[K]) Key(id int) (K, bool) {
	if id < 0 || id >= len(in.keys) {
		var zero K
		return zero, false
	}

	return in.keys[id], true
}

// Len returns the number of interned keys.
func (in *Interner[K]) Len() int {
	return len(in.keys)
}

// Keys returns all keys in id order.
func (in *Interner[K]) Keys() []K {
	return append([]K(nil), in.keys...)
}
