package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/benx3/double-hash-demo/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Products generates n products with distinct codes and pseudo-random
// payload fields. The same seed always yields the same products.
func (r *RNG) Products(n int) []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{
			Code:     fmt.Sprintf("P%04d", i),
			Name:     fmt.Sprintf("product %d", i),
			Price:    float64(r.rand.Intn(100000)) / 100,
			Quantity: r.rand.Intn(500),
		}
	}
	return out
}
