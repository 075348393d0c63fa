package core

// Book is a catalog entry with a counter of copies currently on the shelf.
//
// The copy counters are unexported so that only Lend and ReturnCopy can change them;
// 0 <= CopiesAvailable() <= TotalCopies() always holds.
type Book struct {
	Title  string
	Author string
	Year   int
	Key    BookKeyString

	totalCopies     int
	copiesAvailable int
}

// NewBook creates a Book with all copies available.
func NewBook(title, author string, year int, key BookKeyString, totalCopies int) (Book, error) {
	if totalCopies < 0 {
		return Book{}, NewError(KindInvalidCopyCount, key, "")
	}

	return Book{
		Title:           title,
		Author:          author,
		Year:            year,
		Key:             key,
		totalCopies:     totalCopies,
		copiesAvailable: totalCopies,
	}, nil
}

// Lend takes one copy off the shelf.
func (b *Book) Lend() error {
	if b.copiesAvailable == 0 {
		return NewError(KindNoCopiesAvailable, b.Key, "")
	}

	b.copiesAvailable--

	return nil
}

// ReturnCopy puts one copy back on the shelf.
func (b *Book) ReturnCopy() error {
	if b.copiesAvailable == b.totalCopies {
		return NewError(KindOverReturn, b.Key, "")
	}

	b.copiesAvailable++

	return nil
}

func (b Book) TotalCopies() int {
	return b.totalCopies
}

func (b Book) CopiesAvailable() int {
	return b.copiesAvailable
}

// CopiesLent returns how many copies are currently out.
func (b Book) CopiesLent() int {
	return b.totalCopies - b.copiesAvailable
}

func (b Book) IsAvailable() bool {
	return b.copiesAvailable > 0
}

// IsOnLoan reports whether at least one copy is out.
func (b Book) IsOnLoan() bool {
	return b.copiesAvailable < b.totalCopies
}
