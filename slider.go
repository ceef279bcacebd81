package kite

// Slider produces the next frame of a repeating animation each time it is
// asked, such as a menu row redrawn once per tick.
type Slider[T any] interface {
	Next() T
}

// HighlightSlider iterates a highlight through a row of filler values,
// producing one row per Next call. With a width of 3 and values 'f'/'H' the
// frames cycle H f f → f H f → f f H.
type HighlightSlider[T any] struct {
	filler    T
	highlight T

	// width is the total row length
	width int

	// pointer is the current highlight position
	pointer int
}

// NewHighlightSlider creates a slider producing rows of the given filler
// value with one highlighted value walking through them.
func NewHighlightSlider[T any](filler, highlight T) *HighlightSlider[T] {
	return &HighlightSlider[T]{
		filler:    filler,
		highlight: highlight,
		width:     1,
	}
}

// Width sets the total row length and returns the slider for chaining.
// Widths below 1 are clamped to 1.
func (s *HighlightSlider[T]) Width(width int) *HighlightSlider[T] {
	if width < 1 {
		width = 1
	}
	s.width = width
	return s
}

// Next returns the next frame and advances the highlight by one position,
// wrapping around at the end of the row.
func (s *HighlightSlider[T]) Next() []T {
	if s.pointer >= s.width {
		s.pointer = 0
	}

	row := make([]T, 0, s.width)
	for i := 0; i < s.pointer; i++ {
		row = append(row, s.filler)
	}
	row = append(row, s.highlight)
	for i := s.pointer + 1; i < s.width; i++ {
		row = append(row, s.filler)
	}

	s.pointer++
	return row
}

// Compile-time check that HighlightSlider implements Slider.
var _ Slider[[]string] = (*HighlightSlider[string])(nil)
