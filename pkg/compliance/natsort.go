package compliance

import (
	"sort"

	"github.com/complymap/complymap/pkg/model"
)

// NaturalLess compares requirement identifiers with numeric runs compared
// by value, so "5.2" sorts before "5.10" and "A.9" before "A.12".
func NaturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		aChunk, aNum, aRest := nextChunk(a)
		bChunk, bNum, bRest := nextChunk(b)

		if aNum && bNum {
			av := numericValue(aChunk)
			bv := numericValue(bChunk)
			if av != bv {
				return av < bv
			}
			// Equal values with different widths ("02" vs "2") fall
			// back to the shorter chunk first.
			if len(aChunk) != len(bChunk) {
				return len(aChunk) < len(bChunk)
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}

		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

func nextChunk(s string) (chunk string, numeric bool, rest string) {
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}

func numericValue(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SortRequirements orders requirements by the natural convention of their
// requirement identifiers.
func SortRequirements(reqs []model.Requirement) {
	sort.SliceStable(reqs, func(i, j int) bool {
		return NaturalLess(reqs[i].RequirementID, reqs[j].RequirementID)
	})
}
