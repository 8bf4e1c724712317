package vocabulary

import (
	"fmt"
	"strconv"
)

// Direction is a cursor movement directive.
type Direction string

const (
	DirectionCurrent Direction = "current"
	DirectionFirst   Direction = "first"
	DirectionLast    Direction = "last"
	DirectionPrev    Direction = "prev"
	DirectionNext    Direction = "next"
)

var allDirections = []Direction{DirectionCurrent, DirectionFirst, DirectionLast, DirectionPrev, DirectionNext}

// ParseDirection converts s into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range allDirections {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid direction: %s", s)
}

// Cursor tracks the index of the displayed entry.
// While the store is non-empty the index stays within [0, Len()-1].
type Cursor struct {
	store *Store
	index int
}

// NewCursor creates a cursor positioned at the first entry of store.
func NewCursor(store *Store) *Cursor {
	return &Cursor{store: store}
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.index
}

// Move applies a direction.
func (c *Cursor) Move(direction Direction) {
	switch direction {
	case DirectionFirst:
		c.index = 0
	case DirectionLast:
		c.index = c.lastIndex()
	case DirectionPrev:
		if c.index > 0 {
			c.index--
		}
	case DirectionNext:
		if c.index < c.lastIndex() {
			c.index++
		} else {
			c.index = c.lastIndex()
		}
	case DirectionCurrent:
	}
}

// Jump moves to index.
func (c *Cursor) Jump(index int) error {
	if index < 0 || index >= c.store.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, c.store.Len())
	}
	c.index = index
	return nil
}

// Current returns the entry under the cursor. It reports false when the store is empty.
func (c *Cursor) Current() (Entry, bool) {
	return c.store.At(c.index)
}

func (c *Cursor) lastIndex() int {
	if c.store.Len() == 0 {
		return 0
	}
	return c.store.Len() - 1
}

// ParsePosition resolves "first", "last", or a zero-based index.
func ParsePosition(s string, length int) (int, error) {
	switch Direction(s) {
	case DirectionFirst:
		return 0, nil
	case DirectionLast:
		return length - 1, nil
	}
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi(%s) > %w", s, err)
	}
	return index, nil
}
