// Package library coordinates books and patrons of one lending library.
//
// A Library owns every Book and Patron, indexed by their unique keys and kept in registration order.
// It is the only component that mutates both sides of a loan, so it is where the
// conservation invariant lives: for every book, the number of patrons holding a loan of it
// equals the number of copies that are not on the shelf.
//
// Lend and ReturnBook are two-step mutations. Lend compensates the first step when the second
// one fails. ReturnBook cannot compensate; a failure of its second step is reported
// as a consistency fault (errors.Is(err, core.ErrConsistencyFault)) and logged at error level.
//
// A Library is not safe for concurrent use. Everything runs synchronously in memory.
//
// Typical usage:
//
//	lib, err := library.New(library.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	_ = lib.RegisterBook("Dune", "Frank Herbert", 1965, "ISBN1", 2)
//	_ = lib.RegisterPatron("Ana", "P1", "ana@example.org")
//
//	if err := lib.Lend("P1", "ISBN1"); err != nil {
//		switch kind, _ := core.KindOf(err); kind { ... }
//	}
package library
