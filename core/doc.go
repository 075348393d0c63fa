// Package core contains the domain model of the lending library:
// books with copy counters, patrons with their active loans, the closed set of lending errors,
// and the domain events emitted by the use cases.
//
// Book and Patron guard their own invariants. Keeping both sides consistent with each other
// is the job of the library package, which is the only place that mutates them together.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
