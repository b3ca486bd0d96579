package hashtable

import "fmt"

// asciiSum returns the sum of the code point values of key. It is the basis
// of both hash functions, so identical keys always produce identical probe
// sequences.
func asciiSum(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum
}

// isPrime reports whether n is prime, by trial division up to sqrt(n).
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// largestPrimeBelow returns the greatest prime strictly less than n.
// If no prime exists below n it returns 1, so the secondary hash never
// divides by zero for degenerate capacities.
func largestPrimeBelow(n int) int {
	for i := n - 1; i >= 2; i-- {
		if isPrime(i) {
			return i
		}
	}
	return 1
}

// hashes bundles the derived hash values for one key against one capacity.
//
// h1 is the primary probe start, h2 the step size. With R the largest prime
// below capacity, h2 = R - (sum mod R) lies in [1, R] and is therefore never
// zero; it is not guaranteed coprime with the capacity.
type hashes struct {
	sum int
	r   int
	h1  int
	h2  int
}

func deriveHashes(key string, capacity int) hashes {
	sum := asciiSum(key)
	r := largestPrimeBelow(capacity)
	return hashes{
		sum: sum,
		r:   r,
		h1:  sum % capacity,
		h2:  r - sum%r,
	}
}

// position returns the slot index for probe attempt i:
// (h1 + i*h2) mod capacity.
func (h hashes) position(i, capacity int) int {
	return (h.h1 + i*h.h2) % capacity
}

// CharCode is one character of a key together with its code point value.
type CharCode struct {
	Char string `json:"char"`
	Code int    `json:"code"`
}

// Step describes a single probe attempt: the formula that produced the slot
// index and the state of that slot before the operation mutated anything.
type Step struct {
	Attempt    int        `json:"attempt"`
	Formula    string     `json:"formula"`
	Position   int        `json:"position"`
	Status     SlotStatus `json:"status"`
	OccupiedBy string     `json:"occupied_by,omitempty"`
}

// Calculation captures the complete hash arithmetic for one operation so the
// collision log can replay it step by step.
type Calculation struct {
	Key       string     `json:"key"`
	ASCIISum  int        `json:"ascii_sum"`
	Breakdown []CharCode `json:"ascii_breakdown"`
	Capacity  int        `json:"capacity"`
	R         int        `json:"r"`
	H1        int        `json:"h1"`
	H1Formula string     `json:"h1_formula"`
	H2        int        `json:"h2"`
	H2Formula string     `json:"h2_formula"`
	Steps     []Step     `json:"probe_steps"`
}

// newCalculation derives the hashes for key and records the formulas used.
func newCalculation(key string, capacity int) (hashes, *Calculation) {
	h := deriveHashes(key, capacity)

	breakdown := make([]CharCode, 0, len(key))
	for _, r := range key {
		breakdown = append(breakdown, CharCode{Char: string(r), Code: int(r)})
	}

	calc := &Calculation{
		Key:       key,
		ASCIISum:  h.sum,
		Breakdown: breakdown,
		Capacity:  capacity,
		R:         h.r,
		H1:        h.h1,
		H1Formula: fmt.Sprintf("%d mod %d = %d", h.sum, capacity, h.h1),
		H2:        h.h2,
		H2Formula: fmt.Sprintf("%d - (%d mod %d) = %d - %d = %d", h.r, h.sum, h.r, h.r, h.sum%h.r, h.h2),
	}

	return h, calc
}

// addStep appends the diagnostic record for probe attempt i landing on pos.
func (c *Calculation) addStep(h hashes, i, pos int, status SlotStatus, occupiedBy string) {
	formula := fmt.Sprintf("(%d + %d * %d) mod %d = (%d + %d) mod %d = %d",
		h.h1, i, h.h2, c.Capacity, h.h1, i*h.h2, c.Capacity, pos)
	c.Steps = append(c.Steps, Step{
		Attempt:    i,
		Formula:    formula,
		Position:   pos,
		Status:     status,
		OccupiedBy: occupiedBy,
	})
}
