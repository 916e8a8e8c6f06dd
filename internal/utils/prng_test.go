package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededServicesAgree(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(7)
	assert.Equal(t, -1, s.ChooseWeighted(nil))
	assert.Equal(t, 0, s.ChooseWeighted([]int{0, 0}))

	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, s.ChooseWeighted([]int{0, -3, 5, 0}))
	}

	counts := make([]int, 2)
	for i := 0; i < 2000; i++ {
		counts[s.ChooseWeighted([]int{1, 3})]++
	}
	assert.Greater(t, counts[1], counts[0])
}

func TestRange(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		v := s.Range(5, 6)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.Less(t, v, 6.0)
	}
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 15.0, Lerp(10, 20, 0.5), 1e-9)
	assert.InDelta(t, 0.25, InverseLerp(0, 8, 2), 1e-9)
	assert.Equal(t, 0.0, InverseLerp(0, 8, -5))
	assert.Equal(t, 1.0, InverseLerp(0, 8, 50))
	assert.Equal(t, 0.0, InverseLerp(3, 3, 3))
}
