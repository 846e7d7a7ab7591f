// Package grove implements an in-memory key-value store whose hash buckets
// resolve collisions with AVL trees instead of linked chains, so every bucket
// operation stays O(log n) in the worst case.
//
// The building blocks compose freely: Table is a fixed-capacity, prime-sized
// bucket array generic over its bucket type, and Tree is a self-balancing
// search tree. Because a bucket can itself be another Table, the Store wires
// a two-level table (first name, then last name) whose leaves are trees
// ordered by phone number.
//
// The store offers no persistence and no concurrent-access guarantees; it is
// exclusively owned by one writer at a time.
package grove
