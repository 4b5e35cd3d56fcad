package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestOf(t *testing.T) {
	best := NewBestOf()

	assert.True(t, best.Offer(1, 60))
	assert.True(t, best.Offer(1, 90))
	assert.False(t, best.Offer(1, 75))
	assert.True(t, best.Offer(2, 50))

	v, ok := best.Value(1)
	assert.True(t, ok)
	assert.Equal(t, 90.0, v)

	assert.Equal(t, 2, best.Len())
	assert.Equal(t, 140.0, best.Sum())
	assert.Equal(t, []int64{1, 2}, best.Keys())

	_, ok = best.Value(3)
	assert.False(t, ok)
}

func TestBestOfEqualValueKeepsFirst(t *testing.T) {
	best := NewBestOf()
	assert.True(t, best.Offer(1, 60))
	assert.False(t, best.Offer(1, 60))
}
