// Package availablebooks implements the Available Books report: every book with at least
// one copy on the shelf, in catalog order.
package availablebooks
