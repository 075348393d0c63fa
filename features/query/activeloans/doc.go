// Package activeloans implements the Active Loans report.
//
// Every loan is reported with its patron, its book, and the moment it was recorded.
// Patrons appear in registration order and each patron's loans in the order they were made.
package activeloans
