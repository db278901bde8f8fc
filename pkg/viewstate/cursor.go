package viewstate

// Cursor is a highlighted position within a list of n items.
type Cursor struct {
	pos int
	n   int
}

// SetLen updates the list length and clamps the position.
func (c *Cursor) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	c.n = n
	c.clamp()
}

// Len returns the list length.
func (c *Cursor) Len() int { return c.n }

// Index returns the current position, or -1 for an empty list.
func (c *Cursor) Index() int {
	if c.n == 0 {
		return -1
	}
	return c.pos
}

// Move shifts the position by delta and stops at either end.
func (c *Cursor) Move(delta int) {
	c.pos += delta
	c.clamp()
}

// Set moves to position i, clamped to the list.
func (c *Cursor) Set(i int) {
	c.pos = i
	c.clamp()
}

func (c *Cursor) clamp() {
	if c.pos >= c.n {
		c.pos = c.n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}
