package grove

import "iter"

// Table is a fixed-capacity hash table mapping string keys to buckets of
// type B. The capacity is fixed at construction to a prime sized for the
// expected element count; there is no rehashing and no per-slot collision
// chain. A slot's bucket must absorb collisions itself, typically by being a
// *Tree or another *Table, which is what lets tables nest.
//
// Table deliberately offers no insert or remove: the key that selects a
// bucket here may differ from the key the bucket organizes its own contents
// by, so mutation happens through the bucket returned by Bucket.
type Table[B any] struct {
	buckets []B
}

// NewTable builds a table sized for expected elements, constructing every
// bucket eagerly with newBucket. A non-positive expected count returns
// ErrInvalidCapacity.
func NewTable[B any](expected int, newBucket func() B) (*Table[B], error) {
	capacity, err := tableCapacity(expected)
	if err != nil {
		return nil, err
	}
	return newTable(capacity, newBucket), nil
}

// newTable trusts capacity to be positive; NewTable validates it.
func newTable[B any](capacity int, newBucket func() B) *Table[B] {
	t := &Table[B]{buckets: make([]B, capacity)}
	for i := range t.buckets {
		t.buckets[i] = newBucket()
	}
	return t
}

// Bucket returns the bucket key maps to. This is a structural accessor, not
// a presence check: every slot exists from construction, so it always
// succeeds and a never-used key simply yields its still-empty bucket.
func (t *Table[B]) Bucket(key string) B {
	return t.buckets[fnv1a(key)%uint64(len(t.buckets))]
}

// Cap returns the fixed slot count.
func (t *Table[B]) Cap() int { return len(t.buckets) }

// Buckets yields every bucket in slot order, empty or not. Whole-table
// traversals fan out through it and delegate to each bucket.
func (t *Table[B]) Buckets() iter.Seq[B] {
	return func(yield func(B) bool) {
		for _, b := range t.buckets {
			if !yield(b) {
				return
			}
		}
	}
}
