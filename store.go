package grove

import (
	"iter"

	"github.com/pkg/errors"
)

// nameBucket is one outer slot: a second-level table keyed by last name
// whose buckets are trees ordered by phone number.
type nameBucket = Table[*Tree[string, Record]]

// Store is the two-level composition: records are placed by hashing the
// first name into the outer table, hashing the last name within that bucket,
// then inserting into the bucket's tree keyed by number. Lookups and
// removals mirror the same path.
//
// Store is not safe for concurrent use.
type Store struct {
	opts  *options
	outer *Table[*nameBucket]
	size  int
}

// NewStore builds an empty store. Both table levels are sized up front from
// the expected counts (see Options); neither resizes afterwards.
func NewStore(opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}

	// Inner tables all share one capacity, computed once so the per-bucket
	// constructor below cannot fail.
	innerCap, err := tableCapacity(o.expectedPerName)
	if err != nil {
		return nil, errors.Wrap(err, "size last-name tables")
	}

	newTree := func() *Tree[string, Record] { return NewTree[string, Record]() }
	newInner := func() *nameBucket { return newTable(innerCap, newTree) }

	outer, err := NewTable(o.expectedRecords, newInner)
	if err != nil {
		return nil, errors.Wrap(err, "size first-name table")
	}

	return &Store{opts: o, outer: outer}, nil
}

// bucket resolves the tree a (first, last) pair maps to. It always succeeds;
// a never-seen name pair yields its still-empty tree, which is exactly what
// Put inserts into.
func (s *Store) bucket(first, last string) *Tree[string, Record] {
	return s.outer.Bucket(first).Bucket(last)
}

// Len returns the number of records stored.
func (s *Store) Len() int { return s.size }

// Put inserts a record. A record whose number is already present in its
// bucket returns ErrKeyExists and the stored record is retained.
func (s *Store) Put(r Record) error {
	if err := s.bucket(r.FirstName, r.LastName).Insert(r.Number, r); err != nil {
		return errors.Wrapf(err, "put %s %s", r.FirstName, r.LastName)
	}
	s.size++
	return nil
}

// Get returns the record stored under number in the bucket the names map
// to, or ErrKeyNotFound.
func (s *Store) Get(first, last, number string) (Record, error) {
	r, err := s.bucket(first, last).Search(number)
	if err != nil {
		return Record{}, errors.Wrapf(err, "get %s %s", first, last)
	}
	return r, nil
}

// Remove deletes the record stored under number in the bucket the names map
// to. Removing an absent number returns ErrKeyNotFound.
func (s *Store) Remove(first, last, number string) error {
	if err := s.bucket(first, last).Remove(number); err != nil {
		return errors.Wrapf(err, "remove %s %s", first, last)
	}
	s.size--
	return nil
}

// RemoveByName deletes every record whose names equal (first, last) and
// returns how many were removed. The bucket's tree is ordered by number, so
// this walks the whole bucket; records of other names that merely share the
// bucket are untouched.
func (s *Store) RemoveByName(first, last string) int {
	removed := s.bucket(first, last).RemoveFunc(func(_ string, r Record) bool {
		return r.FirstName == first && r.LastName == last
	})
	s.size -= removed
	return removed
}

// Records yields every record, fanning out across all outer and inner
// buckets in slot order, ascending by number within each tree.
func (s *Store) Records() iter.Seq[Record] {
	return s.records(nil)
}

// WithFirstName is Records restricted to records carrying the given first
// name.
func (s *Store) WithFirstName(first string) iter.Seq[Record] {
	return s.records(func(_ string, r Record) bool {
		return r.FirstName == first
	})
}

func (s *Store) records(match func(string, Record) bool) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for inner := range s.outer.Buckets() {
			for tree := range inner.Buckets() {
				for _, r := range tree.AscendFunc(match) {
					if !yield(r) {
						return
					}
				}
			}
		}
	}
}
