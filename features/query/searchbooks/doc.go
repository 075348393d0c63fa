// Package searchbooks implements the Search Books query use case.
//
// Title and author searches are case-insensitive substring matches, year searches are exact.
// A year query that is not a number, or a field the library does not know, yields an empty result.
// This is a read-only operation that never changes the library.
package searchbooks
