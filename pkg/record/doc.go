// Package record defines the dashboard's read-only records and the static
// sample dataset the views are rendered from.
package record
