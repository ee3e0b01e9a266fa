package slice

// FixedSizeSlice is a set over the indices [0, length). It is used as visited/closed set
// keyed by the row-major index of a grid cell.
type FixedSizeSlice struct {
	slice        []bool
	numSetValues int
}

func MakeFixedSizeSlice(length int) FixedSizeSlice {
	return FixedSizeSlice{slice: make([]bool, length), numSetValues: 0}
}
func (s *FixedSizeSlice) Len() int { return s.numSetValues }
func (s *FixedSizeSlice) Add(indices ...int) {
	for _, index := range indices {
		if !s.slice[index] {
			s.slice[index] = true
			s.numSetValues++
		}
	}
}

func (s *FixedSizeSlice) Has(index int) bool { return s.slice[index] }
func (s *FixedSizeSlice) Ratio() float64 {
	if len(s.slice) == 0 {
		return 0
	}
	return float64(s.numSetValues) / float64(len(s.slice))
}

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
