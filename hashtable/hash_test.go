package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIISum(t *testing.T) {
	assert.Equal(t, 0, asciiSum(""))
	assert.Equal(t, 65, asciiSum("A"))
	assert.Equal(t, 114, asciiSum("A1")) // 65 + 49
	assert.Equal(t, 125, asciiSum("L1")) // 76 + 49
}

func TestLargestPrimeBelow(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{11, 7},
		{10, 7},
		{8, 7},
		{5, 3},
		{3, 2},
		{2, 1}, // no prime below 2
		{1, 1},
		{0, 1},
		{100, 97},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, largestPrimeBelow(tt.n), "largestPrimeBelow(%d)", tt.n)
	}
}

func TestDeriveHashes(t *testing.T) {
	t.Run("HandComputed", func(t *testing.T) {
		// Capacity 11: R = 7. "A1" sums to 114, so h1 = 114 mod 11 = 4 and
		// h2 = 7 - (114 mod 7) = 7 - 2 = 5.
		h := deriveHashes("A1", 11)
		assert.Equal(t, 114, h.sum)
		assert.Equal(t, 7, h.r)
		assert.Equal(t, 4, h.h1)
		assert.Equal(t, 5, h.h2)

		assert.Equal(t, 4, h.position(0, 11))
		assert.Equal(t, 9, h.position(1, 11))
		assert.Equal(t, 3, h.position(2, 11))
	})

	t.Run("Deterministic", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, deriveHashes("B2", 11), deriveHashes("B2", 11))
		}
	})

	t.Run("StepNeverZero", func(t *testing.T) {
		for _, key := range []string{"", "A", "A1", "B2", "C3", "xyz", "0000000"} {
			for _, capacity := range []int{1, 2, 3, 5, 11, 17} {
				h := deriveHashes(key, capacity)
				assert.Greater(t, h.h2, 0, "key %q capacity %d", key, capacity)
				assert.LessOrEqual(t, h.h2, h.r, "key %q capacity %d", key, capacity)
			}
		}
	})

	t.Run("DegenerateCapacity", func(t *testing.T) {
		// Capacity 2 has no prime below it; R falls back to 1 and the
		// step size degrades to 1 instead of dividing by zero.
		h := deriveHashes("A1", 2)
		assert.Equal(t, 1, h.r)
		assert.Equal(t, 1, h.h2)
	})
}

func TestCalculationFormulas(t *testing.T) {
	h, calc := newCalculation("A1", 11)

	assert.Equal(t, "114 mod 11 = 4", calc.H1Formula)
	assert.Equal(t, "7 - (114 mod 7) = 7 - 2 = 5", calc.H2Formula)
	assert.Equal(t, []CharCode{{Char: "A", Code: 65}, {Char: "1", Code: 49}}, calc.Breakdown)

	calc.addStep(h, 1, h.position(1, 11), SlotEmpty, "")
	assert.Len(t, calc.Steps, 1)
	assert.Equal(t, "(4 + 1 * 5) mod 11 = (4 + 5) mod 11 = 9", calc.Steps[0].Formula)
	assert.Equal(t, 9, calc.Steps[0].Position)
}
