package compliance

import "sort"

// BestOf keeps the single highest value seen per key. Coverage and
// transitive-benefit aggregation both reduce many edges onto the same
// target requirement this way: the best contribution wins, values are
// never summed per key.
type BestOf struct {
	best map[int64]float64
}

func NewBestOf() *BestOf {
	return &BestOf{best: map[int64]float64{}}
}

// Offer records value for key if it beats the current best. Returns true
// when the value was retained.
func (b *BestOf) Offer(key int64, value float64) bool {
	current, ok := b.best[key]
	if ok && current >= value {
		return false
	}
	b.best[key] = value
	return true
}

// Value returns the retained value for key.
func (b *BestOf) Value(key int64) (float64, bool) {
	v, ok := b.best[key]
	return v, ok
}

// Len returns the number of keys with a retained value.
func (b *BestOf) Len() int {
	return len(b.best)
}

// Sum returns the sum of all retained values.
func (b *BestOf) Sum() float64 {
	var sum float64
	for _, v := range b.best {
		sum += v
	}
	return sum
}

// Keys returns all keys in ascending order.
func (b *BestOf) Keys() []int64 {
	keys := make([]int64, 0, len(b.best))
	for k := range b.best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
