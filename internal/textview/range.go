package textview

import (
	"fmt"
	"strconv"
	"strings"
)

// Range selects a sub-sequence with half-open slice semantics.
// A nil Start or Stop means "from the edge" in the direction of Step.
// Negative bounds count from the end, and bounds past either end are
// clamped. A zero Step means 1. A negative Step walks backwards.
type Range struct {
	Start *int
	Stop  *int
	Step  int
}

// Span selects [start, stop).
func Span(start, stop int) Range {
	return Range{Start: &start, Stop: &stop}
}

// From selects everything from start to the end.
func From(start int) Range {
	return Range{Start: &start}
}

// Until selects everything before stop.
func Until(stop int) Range {
	return Range{Stop: &stop}
}

// Whole selects every element.
func Whole() Range {
	return Range{}
}

// By returns a copy of r with the given step.
func (r Range) By(step int) Range {
	r.Step = step
	return r
}

// String renders r in start:stop[:step] form.
func (r Range) String() string {
	var b strings.Builder
	if r.Start != nil {
		b.WriteString(strconv.Itoa(*r.Start))
	}
	b.WriteByte(':')
	if r.Stop != nil {
		b.WriteString(strconv.Itoa(*r.Stop))
	}
	if r.Step != 0 && r.Step != 1 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.Step))
	}
	return b.String()
}

// indices resolves r against a sequence of length n. It returns the first
// index, the exclusive stop, the step, and the number of selected elements.
func (r Range) indices(n int) (start, stop, step, count int) {
	step = r.Step
	if step == 0 {
		step = 1
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	if step > 0 {
		start = clamp(r.Start, lower)
		stop = clamp(r.Stop, upper)
		if start < stop {
			count = (stop-start-1)/step + 1
		}
	} else {
		start = clamp(r.Start, upper)
		stop = clamp(r.Stop, lower)
		if stop < start {
			count = (start-stop-1)/(-step) + 1
		}
	}
	return start, stop, step, count
}

// ParseRange parses start:stop[:step], where each part may be empty.
// Examples: "0:3", "-3:", ":2", "::-1". An explicit zero step is rejected.
func ParseRange(expr string) (Range, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Range{}, fmt.Errorf("%w: %q (want start:stop[:step])", ErrInvalidRange, expr)
	}

	var r Range
	bound := func(s string) (*int, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRange, expr, err)
		}
		return &v, nil
	}

	var err error
	if r.Start, err = bound(parts[0]); err != nil {
		return Range{}, err
	}
	if r.Stop, err = bound(parts[1]); err != nil {
		return Range{}, err
	}
	if len(parts) == 3 {
		step, err := bound(parts[2])
		if err != nil {
			return Range{}, err
		}
		if step != nil {
			if *step == 0 {
				return Range{}, fmt.Errorf("%w: %q: step cannot be zero", ErrInvalidRange, expr)
			}
			r.Step = *step
		}
	}
	return r, nil
}
