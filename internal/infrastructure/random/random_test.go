package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Bounds(t *testing.T) {
	s := NewSource()
	for i := 0; i < 10000; i++ {
		n := s.IntN(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)

		f := s.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestSource_Independent(t *testing.T) {
	a, b := NewSource(), NewSource()
	same := 0
	for i := 0; i < 64; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 4)
}
