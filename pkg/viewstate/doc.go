// Package viewstate holds the small pieces of local UI state the dashboard
// components share: row selection with a tri-state aggregate, accordion and
// independent disclosure flags, a bounded list cursor, and first-occurrence
// grouping of flat record sequences.
//
// None of the types are safe for concurrent use. They are owned by a single
// Bubble Tea model and mutated from its Update method.
package viewstate
