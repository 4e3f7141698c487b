package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for i := 0; i < 200; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(8, "ABCDEF"), b.String(8, "ABCDEF"))
}

func TestStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(7).String(32, "AB")
	assert.Len(t, s, 32)
	for _, c := range s {
		assert.Contains(t, "AB", string(c))
	}
	assert.Empty(t, New().String(0, "AB"))
	assert.Empty(t, New().String(4, ""))
}
