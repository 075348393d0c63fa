// Package booksonloan implements the Books On Loan report.
//
// It lists every book with at least one copy out, in catalog order,
// together with the number of copies that are lent.
package booksonloan
