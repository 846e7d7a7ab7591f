package grove

import (
	"math"

	"github.com/pkg/errors"
)

// loadFactor anticipates hash-table occupancy: tables are sized so the
// expected element count fills roughly three quarters of the slots.
const loadFactor = 0.75

// smallPrimes returns the ascending primes <= limit, seeded with 2 and
// testing odd candidates by trial division against the primes found so far.
func smallPrimes(limit int) []int {
	if limit < 2 {
		return nil
	}

	primes := make([]int, 1, 16)
	primes[0] = 2

	for i := 3; i <= limit; i += 2 {
		prime := true
		for _, p := range primes {
			if p*p > i {
				break
			}
			if i%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			primes = append(primes, i)
		}
	}

	return primes
}

// isPrime reports whether n is prime by trial division against primes.
// NOTE: the caller must supply every prime <= sqrt(n), otherwise the result
// is unreliable.
func isPrime(n int, primes []int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := int(math.Sqrt(float64(n)))
	for _, p := range primes {
		if p > limit {
			break
		}
		if n%p == 0 {
			return false
		}
	}

	return true
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}

	primes := smallPrimes(int(math.Sqrt(float64(n))) + 1)
	for !isPrime(n, primes) {
		n += 2
	}

	return n
}

// tableCapacity sizes a hash table for the expected element count: the
// smallest prime >= expected/loadFactor + 1, which keeps clustering low.
// A non-positive count is a programming error and fails fast.
func tableCapacity(expected int) (int, error) {
	if expected <= 0 {
		return 0, errors.Wrapf(ErrInvalidCapacity, "expected %d", expected)
	}

	return nextPrime(int(float64(expected)/loadFactor) + 1), nil
}
