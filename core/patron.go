package core

import (
	"time"
)

// Loan is one active loan held by a patron.
type Loan struct {
	BookKey BookKeyString
	LentAt  OccurredAtTS
}

// Patron is a registered library user together with the books they currently hold.
// A patron never holds two loans of the same catalog key.
type Patron struct {
	Name    string
	Key     PatronKeyString
	Contact string

	loans     map[BookKeyString]OccurredAtTS
	loanOrder []BookKeyString
}

// NewPatron creates a Patron without loans.
func NewPatron(name string, key PatronKeyString, contact string) Patron {
	return Patron{
		Name:    name,
		Key:     key,
		Contact: contact,
		loans:   make(map[BookKeyString]OccurredAtTS),
	}
}

// RecordLoan adds an active loan for the catalog key.
func (p *Patron) RecordLoan(bookKey BookKeyString, lentAt time.Time) error {
	if p.HasLoan(bookKey) {
		return NewError(KindDuplicateLoan, bookKey, p.Key)
	}

	if p.loans == nil {
		p.loans = make(map[BookKeyString]OccurredAtTS)
	}

	p.loans[bookKey] = ToOccurredAt(lentAt)
	p.loanOrder = append(p.loanOrder, bookKey)

	return nil
}

// RecordReturn removes the active loan for the catalog key.
func (p *Patron) RecordReturn(bookKey BookKeyString) error {
	if !p.HasLoan(bookKey) {
		return NewError(KindNoSuchLoan, bookKey, p.Key)
	}

	delete(p.loans, bookKey)

	for i, key := range p.loanOrder {
		if key == bookKey {
			p.loanOrder = append(p.loanOrder[:i:i], p.loanOrder[i+1:]...)
			break
		}
	}

	return nil
}

func (p Patron) HasLoan(bookKey BookKeyString) bool {
	_, ok := p.loans[bookKey]
	return ok
}

// LoanedAt returns when the loan for the catalog key was recorded.
func (p Patron) LoanedAt(bookKey BookKeyString) (time.Time, bool) {
	lentAt, ok := p.loans[bookKey]
	return lentAt, ok
}

func (p Patron) LoanCount() int {
	return len(p.loans)
}

// ActiveLoans returns the loans in the order they were recorded.
func (p Patron) ActiveLoans() []Loan {
	loans := make([]Loan, 0, len(p.loanOrder))
	for _, key := range p.loanOrder {
		loans = append(loans, Loan{BookKey: key, LentAt: p.loans[key]})
	}

	return loans
}

// Clone returns a deep copy that shares no loan state with p.
func (p Patron) Clone() Patron {
	c := p
	c.loans = make(map[BookKeyString]OccurredAtTS, len(p.loans))
	for key, lentAt := range p.loans {
		c.loans[key] = lentAt
	}
	c.loanOrder = append([]BookKeyString(nil), p.loanOrder...)

	return c
}
