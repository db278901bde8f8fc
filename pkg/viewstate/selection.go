package viewstate

import "github.com/m-mizutani/goerr/v2"

// Check is the value of a tri-state "select all" checkbox.
type Check int

const (
	// Unchecked means no row is selected.
	Unchecked Check = iota
	// Checked means every row is selected.
	Checked
	// Indeterminate means some, but not all, rows are selected.
	Indeterminate
)

func (c Check) String() string {
	switch c {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Selectable is a row value that carries its own selected flag. WithSelected
// returns a copy with the flag replaced; rows are treated as values.
type Selectable[T any] interface {
	SelectionKey() string
	IsSelected() bool
	WithSelected(selected bool) T
}

// Selection tracks the selected flag of an ordered set of rows. Row order is
// fixed at construction and never changes.
type Selection[T Selectable[T]] struct {
	rows  []T
	index map[string]int
}

// NewSelection copies rows into a new selection. When keys repeat, the first
// row with a key is the one addressed by Toggle.
func NewSelection[T Selectable[T]](rows []T) *Selection[T] {
	s := &Selection[T]{
		rows:  make([]T, len(rows)),
		index: make(map[string]int, len(rows)),
	}
	copy(s.rows, rows)
	for i, row := range s.rows {
		key := row.SelectionKey()
		if _, ok := s.index[key]; !ok {
			s.index[key] = i
		}
	}
	return s
}

// Len returns the number of rows.
func (s *Selection[T]) Len() int { return len(s.rows) }

// Rows returns a copy of the rows in their original order.
func (s *Selection[T]) Rows() []T {
	out := make([]T, len(s.rows))
	copy(out, s.rows)
	return out
}

// Row returns the row at index i.
func (s *Selection[T]) Row(i int) (T, bool) {
	if i < 0 || i >= len(s.rows) {
		var zero T
		return zero, false
	}
	return s.rows[i], true
}

// Selected returns the selected rows in their original order.
func (s *Selection[T]) Selected() []T {
	var out []T
	for _, row := range s.rows {
		if row.IsSelected() {
			out = append(out, row)
		}
	}
	return out
}

// Toggle flips the selected flag of the row keyed by id.
func (s *Selection[T]) Toggle(id string) error {
	i, ok := s.index[id]
	if !ok {
		return goerr.New("selection row not found",
			goerr.V("id", id),
			goerr.T(ErrTagNotFound))
	}
	s.rows[i] = s.rows[i].WithSelected(!s.rows[i].IsSelected())
	return nil
}

// SetAll sets every row's selected flag to selected.
func (s *Selection[T]) SetAll(selected bool) {
	for i := range s.rows {
		s.rows[i] = s.rows[i].WithSelected(selected)
	}
}

// Apply sets every row from a header checkbox value. Indeterminate cannot be
// applied to rows and leaves the selection untouched.
func (s *Selection[T]) Apply(c Check) error {
	switch c {
	case Checked:
		s.SetAll(true)
	case Unchecked:
		s.SetAll(false)
	default:
		return goerr.New("check value cannot be applied to rows",
			goerr.V("check", c.String()),
			goerr.T(ErrTagInvalidState))
	}
	return nil
}

// AllSelected reports whether the selection is non-empty and every row is
// selected.
func (s *Selection[T]) AllSelected() bool {
	if len(s.rows) == 0 {
		return false
	}
	for _, row := range s.rows {
		if !row.IsSelected() {
			return false
		}
	}
	return true
}

// SomeSelected reports whether at least one, but not every, row is selected.
func (s *Selection[T]) SomeSelected() bool {
	if s.AllSelected() {
		return false
	}
	for _, row := range s.rows {
		if row.IsSelected() {
			return true
		}
	}
	return false
}

// State derives the header checkbox value.
func (s *Selection[T]) State() Check {
	switch {
	case s.AllSelected():
		return Checked
	case s.SomeSelected():
		return Indeterminate
	default:
		return Unchecked
	}
}

// Next returns the header value a click on the checkbox moves to: anything
// other than Checked selects every row.
func (c Check) Next() Check {
	if c == Checked {
		return Unchecked
	}
	return Checked
}
