package spiral

import "sync"

// PrimeCache memoises primality checks. It is safe for concurrent use.
type PrimeCache struct {
	mu    sync.RWMutex
	known map[int]bool
}

// NewPrimeCache returns an empty cache.
func NewPrimeCache() *PrimeCache {
	return &PrimeCache{known: make(map[int]bool)}
}

// IsPrime reports whether n is prime.
func (c *PrimeCache) IsPrime(n int) bool {
	c.mu.RLock()
	v, ok := c.known[n]
	c.mu.RUnlock()
	if ok {
		return v
	}
	v = isPrime(n)
	c.mu.Lock()
	c.known[n] = v
	c.mu.Unlock()
	return v
}

// Len returns the number of memoised entries.
func (c *PrimeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.known)
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
