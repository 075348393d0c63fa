package library

import (
	"errors"
)

// SeedBook describes a catalog entry used to pre-populate a Library.
type SeedBook struct {
	Title       string
	Author      string
	Year        int
	Key         string
	TotalCopies int
}

// SeedPatron describes a patron used to pre-populate a Library.
type SeedPatron struct {
	Name    string
	Key     string
	Contact string
}

// SeedData returns example books and patrons for demos.
func SeedData() ([]SeedBook, []SeedPatron) {
	books := []SeedBook{
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", Year: 2015, Key: "9780134190440", TotalCopies: 3},
		{Title: "Introducing Go", Author: "Caleb Doxsey", Year: 2016, Key: "9781491941959", TotalCopies: 1},
		{Title: "Concurrency in Go", Author: "Katherine Cox-Buday", Year: 2017, Key: "9781491941195", TotalCopies: 2},
		{Title: "Go in Practice", Author: "Matt Butcher", Year: 2016, Key: "9781633430075", TotalCopies: 1},
		{Title: "Dune", Author: "Frank Herbert", Year: 1965, Key: "9780441172719", TotalCopies: 2},
	}

	patrons := []SeedPatron{
		{Name: "Ana Souza", Key: "P1", Contact: "ana@example.org"},
		{Name: "Bruno Lima", Key: "P2", Contact: "bruno@example.org"},
	}

	return books, patrons
}

// Seed registers the SeedData books and patrons.
// Entries whose key is already taken are reported but do not stop the seeding.
func Seed(l *Library) error {
	books, patrons := SeedData()
	var errs []error

	for _, b := range books {
		if err := l.RegisterBook(b.Title, b.Author, b.Year, b.Key, b.TotalCopies); err != nil {
			errs = append(errs, err)
		}
	}

	for _, p := range patrons {
		if err := l.RegisterPatron(p.Name, p.Key, p.Contact); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
