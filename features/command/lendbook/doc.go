// Package lendbook implements the Lend Book use case.
//
// A registered patron borrows one copy of a registered book. The library rejects the
// request when no copy is on the shelf or when the patron already holds a copy of the same book.
// Successful and rejected requests both produce a domain event for the event publisher.
package lendbook
