package grove

const (
	fnvOffsetBasis = uint64(14695981039346656037)
	fnvPrime       = uint64(1099511628211)
)

// fnv1a hashes key with 64-bit FNV-1a: xor each byte into the accumulator,
// then multiply by the FNV prime. Deterministic and unseeded, so the same
// key lands in the same bucket across processes and platforms. Not
// cryptographically secure.
func fnv1a(key string) uint64 {
	hash := fnvOffsetBasis
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= fnvPrime
	}
	return hash
}
