package activeloans

import (
	"github.com/AntonStoeckl/library-lending-go/library"
)

// ProjectActiveLoans builds the report.
func ProjectActiveLoans(loans []library.ActiveLoan) ActiveLoans {
	result := ActiveLoans{Loans: make([]LoanInfo, 0, len(loans))}

	for _, loan := range loans {
		result.Loans = append(result.Loans, LoanInfo{
			PatronKey:  loan.Patron.Key,
			PatronName: loan.Patron.Name,
			BookKey:    loan.Book.Key,
			BookTitle:  loan.Book.Title,
			LentAt:     loan.LentAt,
		})
	}

	result.Count = len(result.Loans)

	return result
}
