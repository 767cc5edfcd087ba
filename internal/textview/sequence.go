package textview

// Sequence is read-only indexed access over a list of words.
type Sequence interface {
	// Len returns the number of elements.
	Len() int

	// At returns element i. Negative indices count from the end.
	At(i int) (string, error)

	// Slice returns the elements selected by r, clamping out-of-range bounds.
	Slice(r Range) []string

	// Repr returns a short debug rendering.
	Repr() string
}

// Collect returns every element of s in order using only Len and At.
func Collect(s Sequence) []string {
	out := make([]string, 0, s.Len())
	for i := range s.Len() {
		w, err := s.At(i)
		if err != nil {
			break
		}
		out = append(out, w)
	}
	return out
}
