package presenter

// Navigator is the current-slide index of a deck, always clamped to
// [0, count-1] (0 for an empty deck). It is a value; moves return a copy.
type Navigator struct {
	index int
	count int
}

// NewNavigator returns a Navigator at the first of count slides.
func NewNavigator(count int) Navigator {
	return Navigator{count: max(count, 0)}
}

// Index returns the current slide index.
func (n Navigator) Index() int { return n.index }

// Count returns the number of slides.
func (n Navigator) Count() int { return n.count }

// First reports whether the index is on the first slide.
func (n Navigator) First() bool { return n.index == 0 }

// Last reports whether the index is on the last slide.
func (n Navigator) Last() bool { return n.index >= n.count-1 }

// Next, Prev, Start and End move one slide forward, one back, to the first
// slide and to the last slide. Moves past either end stay put.
func (n Navigator) Next() Navigator { return n.Jump(n.index + 1) }
func (n Navigator) Prev() Navigator { return n.Jump(n.index - 1) }
func (n Navigator) Start() Navigator { return n.Jump(0) }
func (n Navigator) End() Navigator { return n.Jump(n.count - 1) }

// Jump moves to slide i, clamped to the deck.
func (n Navigator) Jump(i int) Navigator {
	n.index = min(max(i, 0), max(n.count-1, 0))
	return n
}

// Resize changes the slide count, keeping the index when it is still valid.
func (n Navigator) Resize(count int) Navigator {
	n.count = max(count, 0)
	return n.Jump(n.index)
}

// Percent is the progress through the deck in (0, 1], or 0 when empty.
func (n Navigator) Percent() float64 {
	if n.count == 0 {
		return 0
	}
	return float64(n.index+1) / float64(n.count)
}
